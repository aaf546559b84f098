package sig

import (
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/seedsign/rsaprim-go/pkg/rsaprim"
	"github.com/seedsign/rsaprim-go/pkg/rsaprim/drbg"
)

// Scheme binds the signature operations to a digest and a seeded-stream
// constructor. The zero value is not usable; construct with New.
type Scheme struct {
	digest rsaprim.DigestFunc
	stream rsaprim.StreamFunc
}

// Option adjusts a Scheme during construction.
type Option func(*Scheme)

// WithDigest substitutes the message digest (default sha256.Sum256).
func WithDigest(digest rsaprim.DigestFunc) Option {
	return func(s *Scheme) { s.digest = digest }
}

// WithStream substitutes the seeded stream (default drbg.NewStream). Signer
// and verifier must agree on the stream or every signature looks invalid.
func WithStream(stream rsaprim.StreamFunc) Option {
	return func(s *Scheme) { s.stream = stream }
}

// New returns a Scheme with the library defaults applied, then the options.
func New(opts ...Option) *Scheme {
	s := &Scheme{
		digest: sha256.Sum256,
		stream: drbg.NewStream,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MessageToResidue maps msg to a pseudo-random residue modulo n: digest(msg)
// seeds a fresh stream, byte_length(n) bytes are drawn as a big-endian
// integer X, and X mod n is returned. The map is deterministic in (n, msg)
// and consumes no process-wide randomness.
func (s *Scheme) MessageToResidue(n *big.Int, msg []byte) (*big.Int, error) {
	const op = "sig.MessageToResidue"
	if n == nil || n.Sign() <= 0 {
		return nil, rsaprim.Errorf(op, "%w: modulus must be positive", rsaprim.ErrInvalidParameter)
	}
	buf := make([]byte, (n.BitLen()+7)/8)
	if _, err := io.ReadFull(s.stream(s.digest(msg)), buf); err != nil {
		return nil, rsaprim.Errorf(op, "stream read: %w", err)
	}
	x := new(big.Int).SetBytes(buf)
	return x.Mod(x, n), nil
}

// Sign raises the message residue to the private signing exponent D3. The
// modular mechanics are exponent-agnostic; D3 is simply the inverse this
// library designates for signatures.
func (s *Scheme) Sign(priv *rsaprim.PrivateKey, msg []byte) (*big.Int, error) {
	const op = "sig.Sign"
	if priv == nil || priv.N == nil || priv.D3 == nil {
		return nil, rsaprim.Errorf(op, "%w: incomplete private key", rsaprim.ErrInvalidParameter)
	}
	residue, err := s.MessageToResidue(priv.N, msg)
	if err != nil {
		return nil, err
	}
	return residue.Exp(residue, priv.D3, priv.N), nil
}

// SignInt signs the canonical unsigned big-endian encoding of m. Zero
// encodes to the empty message.
func (s *Scheme) SignInt(priv *rsaprim.PrivateKey, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() < 0 {
		return nil, rsaprim.Errorf("sig.SignInt", "%w: message integer must be non-negative", rsaprim.ErrInvalidParameter)
	}
	return s.Sign(priv, m.Bytes())
}

// Verify recomputes the message residue and compares it against
// signature^E mod N. Signatures outside [0, N) never verify. A nil error
// means the signature is valid for msg under pub.
func (s *Scheme) Verify(pub rsaprim.PublicKey, msg []byte, signature *big.Int) error {
	const op = "sig.Verify"
	if err := pub.Validate(); err != nil {
		return rsaprim.Errorf(op, "public key: %w", err)
	}
	if signature == nil {
		return rsaprim.Errorf(op, "%w: nil signature", rsaprim.ErrInvalidParameter)
	}
	if signature.Sign() < 0 || signature.Cmp(pub.N) >= 0 {
		return rsaprim.Errorf(op, "%w: signature outside [0, N)", rsaprim.ErrInvalidSignature)
	}
	recovered := new(big.Int).Exp(signature, pub.E.BigInt(), pub.N)
	residue, err := s.MessageToResidue(pub.N, msg)
	if err != nil {
		return err
	}
	if recovered.Cmp(residue) != 0 {
		return rsaprim.Errorf(op, "%w", rsaprim.ErrInvalidSignature)
	}
	return nil
}

// VerifyInt verifies a signature over the canonical unsigned big-endian
// encoding of m, mirroring SignInt.
func (s *Scheme) VerifyInt(pub rsaprim.PublicKey, m *big.Int, signature *big.Int) error {
	if m == nil || m.Sign() < 0 {
		return rsaprim.Errorf("sig.VerifyInt", "%w: message integer must be non-negative", rsaprim.ErrInvalidParameter)
	}
	return s.Verify(pub, m.Bytes(), signature)
}
