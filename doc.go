// Package gdelta provides fast delta compression between similar binary
// blobs via content-defined matching over a rolling fingerprint index.
//
// # Overview
//
// gdelta computes a compact byte-level patch ("delta") between two similar
// blobs (a "base" and a "new" version) and later reconstructs the new
// blob from the base and the delta. It targets chunks in the 4 KiB - 2 MiB
// range where inter-chunk redundancy is high: document versions,
// VM/container layer diffs, replication payloads, backup chains.
//
// # When to Use gdelta
//
// gdelta excels at compressing pairs of blobs that are mostly identical:
//   - Successive versions of the same document or database page
//   - Adjacent layers in a container image
//   - Replicated payloads that differ by a small edit
//
// # When NOT to Use gdelta
//
// gdelta is not suitable for:
//   - Unrelated inputs with no shared byte runs to match
//   - Cryptographic integrity checking (gdelta performs none)
//   - Semantic/structural diffing (gdelta only sees bytes)
//   - Streaming inputs (both blobs must be fully addressable up front)
//
// # Basic Usage
//
//	base := []byte("The quick brown fox jumps over the lazy dog")
//	newData := []byte("The quick brown cat jumps over the lazy dog")
//
//	delta := gdelta.Encode(newData, base)
//	recovered, err := gdelta.Decode(delta, base)
//	// recovered == newData
//
// # Performance Characteristics
//
// Encoding is O(|new|) with a one-time O(|base|) hash-index build; peak
// additional memory is roughly |new| + |hash index| + O(1). Decoding is a
// single linear pass over the instruction stream, with no hashing at all.
//
// # Compatibility
//
// The wire format has no version byte; the rolling-hash table constants
// are frozen. Any change to the unit header layout, varint scheme, or hash
// constants is a wire-format break (see the package-level constants in
// fingerprint.go and varint.go).
package gdelta
