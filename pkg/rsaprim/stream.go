package rsaprim

import "io"

// DigestFunc hashes arbitrary input to a fixed 32-byte digest. The library
// default is sha256.Sum256; the kem and sig schemes accept substitutes so
// embedders can swap the hash without touching the primitives.
type DigestFunc func(data []byte) [32]byte

// StreamFunc expands a 32-byte seed into a deterministic byte stream. A
// stream must be self-contained: reading it never consumes or advances any
// process-wide randomness source, and the same seed always yields the same
// bytes. The library default is drbg.NewStream.
type StreamFunc func(seed [32]byte) io.Reader
