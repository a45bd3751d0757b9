// Package protocol implements the binary wire format for streaming
// committed host-tree mutations to live-preview clients.
//
// Every host node mutation performed during a commit (node creation,
// property set/remove, text update, attach, detach) is captured as a
// Patch addressing nodes by stable uint64 IDs. Patches for one commit are
// batched into a PatchFrame carrying a monotonically increasing sequence
// number so clients can detect gaps and resync from a full snapshot.
//
// The encoding is varint-based (protobuf-style LEB128 with ZigZag for
// signed values) with length-prefixed strings. The decoder is defensive:
// allocation sizes and collection counts are bounded to survive malicious
// or corrupted input.
package protocol
