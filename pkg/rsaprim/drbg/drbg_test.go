package drbg

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/seedsign/rsaprim-go/pkg/rsaprim"
)

func testSeed() [32]byte {
	var seed [32]byte
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func TestNewStreamDeterministic(t *testing.T) {
	a := make([]byte, 64)
	b := make([]byte, 64)
	if _, err := io.ReadFull(NewStream(testSeed()), a); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if _, err := io.ReadFull(NewStream(testSeed()), b); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("same seed produced different streams")
	}
}

func TestNewStreamKnownAnswer(t *testing.T) {
	// HKDF-SHA256 over seed 00..1f with the package context strings.
	const want = "c60f3dba0c9d9bed536fa884c520e549bd0fdc5f4eb19d5ecdd01b7059fe5241" +
		"5a4e2cfda717ff1530b90fb416f4529215e95f8b5b610e36481c5a6a8e9a1958"
	got := make([]byte, 64)
	if _, err := io.ReadFull(NewStream(testSeed()), got); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	wantBytes, err := hex.DecodeString(want)
	if err != nil {
		t.Fatalf("decode expectation: %v", err)
	}
	if !bytes.Equal(got, wantBytes) {
		t.Fatalf("stream mismatch\n got %x\nwant %s", got, want)
	}
}

func TestNewStreamSeedSensitivity(t *testing.T) {
	other := testSeed()
	other[0] ^= 1
	a := make([]byte, 32)
	b := make([]byte, 32)
	if _, err := io.ReadFull(NewStream(testSeed()), a); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if _, err := io.ReadFull(NewStream(other), b); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("distinct seeds produced identical streams")
	}
}

func TestNewStreamChunkedReads(t *testing.T) {
	whole := make([]byte, 100)
	if _, err := io.ReadFull(NewStream(testSeed()), whole); err != nil {
		t.Fatalf("read stream: %v", err)
	}

	chunked := make([]byte, 0, 100)
	stream := NewStream(testSeed())
	for _, n := range []int{1, 7, 32, 60} {
		buf := make([]byte, n)
		if _, err := io.ReadFull(stream, buf); err != nil {
			t.Fatalf("read chunk of %d: %v", n, err)
		}
		chunked = append(chunked, buf...)
	}
	if !bytes.Equal(whole, chunked) {
		t.Fatal("chunked reads diverge from a single read")
	}
}

func TestUniformBounds(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi int64
	}{
		{"single point", 7, 7},
		{"small range", 0, 9},
		{"offset range", 100, 131},
		{"negative lo", -5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo := big.NewInt(tc.lo)
			hi := big.NewInt(tc.hi)
			seen := map[int64]bool{}
			for i := 0; i < 400; i++ {
				n, err := Uniform(rand.Reader, lo, hi)
				if err != nil {
					t.Fatalf("draw %d: %v", i, err)
				}
				if n.Cmp(lo) < 0 || n.Cmp(hi) > 0 {
					t.Fatalf("draw %v outside [%v, %v]", n, lo, hi)
				}
				seen[n.Int64()] = true
			}
			// Both endpoints are reachable: with 400 draws over a range of at
			// most 32 values, missing one has probability under 1e-5.
			if tc.hi-tc.lo > 0 && tc.hi-tc.lo <= 32 {
				if !seen[tc.lo] || !seen[tc.hi] {
					t.Fatalf("inclusive endpoints not hit: lo=%v hi=%v seen=%v", seen[tc.lo], seen[tc.hi], seen)
				}
			}
		})
	}
}

func TestUniformRejectsBadInput(t *testing.T) {
	lo := big.NewInt(10)
	hi := big.NewInt(5)
	if _, err := Uniform(rand.Reader, lo, hi); !errors.Is(err, rsaprim.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for empty range, got %v", err)
	}
	if _, err := Uniform(nil, big.NewInt(0), big.NewInt(1)); !errors.Is(err, rsaprim.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for nil reader, got %v", err)
	}
	if _, err := Uniform(rand.Reader, nil, big.NewInt(1)); !errors.Is(err, rsaprim.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for nil bound, got %v", err)
	}
}

func TestUniformWithDeterministicReader(t *testing.T) {
	// A seeded stream is a valid entropy handle, which makes draws repeatable.
	lo := big.NewInt(0)
	hi := new(big.Int).Lsh(big.NewInt(1), 128)
	a, err := Uniform(NewStream(testSeed()), lo, hi)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	b, err := Uniform(NewStream(testSeed()), lo, hi)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if a.Cmp(b) != 0 {
		t.Fatalf("deterministic reader produced different draws: %v vs %v", a, b)
	}
}

func BenchmarkNewStream(b *testing.B) {
	seed := testSeed()
	buf := make([]byte, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := io.ReadFull(NewStream(seed), buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUniform1024(b *testing.B) {
	lo := new(big.Int).Lsh(big.NewInt(1), 1023)
	hi := new(big.Int).Lsh(big.NewInt(1), 1024)
	hi.Sub(hi, big.NewInt(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Uniform(rand.Reader, lo, hi); err != nil {
			b.Fatal(err)
		}
	}
}
