package drbg

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Fixed context strings; not secret, they bind the generator to this library
// so the same seed fed to an unrelated HKDF consumer diverges.
const (
	streamSalt = "rsaprim-seeded-stream-hkdf"
	streamInfo = "rsaprim-seeded-stream"
)

// NewStream returns a deterministic byte stream expanded from seed with
// HKDF-SHA256. The same seed always yields the same bytes, reads may be
// chunked arbitrarily, and the stream is fully independent of process-wide
// randomness. A single stream can serve up to 255*32 bytes, far beyond the
// largest supported modulus width.
func NewStream(seed [32]byte) io.Reader {
	return hkdf.New(sha256.New, seed[:], []byte(streamSalt), []byte(streamInfo))
}
