// Package live serves rendered trees over HTTP. A full HTML snapshot of
// the current committed tree is available at /, and incremental patch
// frames stream to websocket clients on /ws as new trees are rendered.
// Snapshots are persisted through pkg/snapshot so reconnecting clients
// can bootstrap from the last sequence number they saw.
package live
