// Package config loads and validates weft.json, the project
// configuration consumed by the weft CLI. A missing file is not an
// error; defaults apply.
package config
