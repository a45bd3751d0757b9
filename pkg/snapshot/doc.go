// Package snapshot persists renderings of committed host trees so that
// live-preview clients joining mid-stream can bootstrap from a full
// snapshot and then apply patch frames from the recorded sequence number
// onward.
//
// Three backends are provided: MemoryStore for development, SQLStore for
// single-node durability, and S3Store for multi-node deployments.
package snapshot
