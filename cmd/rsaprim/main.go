// Command rsaprim is an informal debugging tool for the rsaprim primitives:
// generate dual-exponent key pairs, inspect message residues, and run an
// end-to-end encapsulation and signing round trip.
//
// Output prints raw key components and is meant for humans at a terminal,
// not for key storage.
package main

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/seedsign/rsaprim-go/pkg/rsaprim"
	"github.com/seedsign/rsaprim-go/pkg/rsaprim/kem"
	"github.com/seedsign/rsaprim-go/pkg/rsaprim/keygen"
	"github.com/seedsign/rsaprim-go/pkg/rsaprim/logging"
	"github.com/seedsign/rsaprim-go/pkg/rsaprim/sig"
)

var logger logging.Logger

func main() {
	app := cli.NewApp()
	app.Name = "rsaprim"
	app.Usage = "debugging tool for dual-exponent RSA primitives"
	app.Version = rsaprim.LibraryVersion()

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging",
		},
	}
	app.Before = func(cctx *cli.Context) error {
		level := slog.LevelInfo
		if cctx.Bool("verbose") {
			level = slog.LevelDebug
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))
		logger = logging.New(nil)
		return nil
	}

	app.Commands = []*cli.Command{
		keygenCmd,
		residueCmd,
		demoCmd,
	}

	app.RunAndExitOnError()
}

var keygenCmd = &cli.Command{
	Name:  "keygen",
	Usage: "generate a key pair and print its components in hex",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "bits",
			Value: 2048,
			Usage: "modulus width in bits (2048..8192)",
		},
	},
	Action: func(cctx *cli.Context) error {
		bits := cctx.Int("bits")
		logger.Info(cctx.Context, "generating key pair", "bits", bits)

		key, err := keygen.GenerateKeyPair(rand.Reader, bits)
		if err != nil {
			return err
		}
		logger.Info(cctx.Context, "key pair ready",
			logging.Fingerprint("modulus", key.N),
			logging.Redacted("p"),
			logging.Redacted("q"),
		)

		fmt.Printf("N  = %x\n", key.N)
		fmt.Printf("P  = %x\n", key.P)
		fmt.Printf("Q  = %x\n", key.Q)
		fmt.Printf("D3 = %x\n", key.D3)
		fmt.Printf("D5 = %x\n", key.D5)
		return nil
	},
}

var residueCmd = &cli.Command{
	Name:      "residue",
	Usage:     "map a message to its pseudo-random residue modulo N",
	ArgsUsage: "<message>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "modulus",
			Usage:    "public modulus N in hex",
			Required: true,
		},
	},
	Action: func(cctx *cli.Context) error {
		n, ok := new(big.Int).SetString(cctx.String("modulus"), 16)
		if !ok {
			return fmt.Errorf("modulus is not valid hex")
		}
		msg := []byte(cctx.Args().First())

		residue, err := sig.New().MessageToResidue(n, msg)
		if err != nil {
			return err
		}
		fmt.Printf("%x\n", residue)
		return nil
	},
}

var demoCmd = &cli.Command{
	Name:  "demo",
	Usage: "run key generation, encapsulation, and signing end to end",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "bits",
			Value: 2048,
			Usage: "modulus width in bits (2048..8192)",
		},
		&cli.StringFlag{
			Name:  "message",
			Value: "hello from rsaprim",
			Usage: "message to sign",
		},
	},
	Action: func(cctx *cli.Context) error {
		bits := cctx.Int("bits")
		msg := []byte(cctx.String("message"))

		fmt.Printf("Generating %d-bit key pair (this can take a few seconds)...\n", bits)
		key, err := keygen.GenerateKeyPair(rand.Reader, bits)
		if err != nil {
			return err
		}
		logger.Debug(cctx.Context, "key pair generated", logging.Fingerprint("modulus", key.N))
		fmt.Println("✓ key pair ready")

		// Hybrid encapsulation round trip. A preimage drawn at or above the
		// modulus derives mismatched keys; re-encapsulating is the caller's
		// move, so the demo does exactly that.
		kemScheme := kem.New()
		for attempt := 1; ; attempt++ {
			symKey, ct, err := kemScheme.Encapsulate(rand.Reader, key.EncryptionKey())
			if err != nil {
				return err
			}
			back, err := kemScheme.Decapsulate(key, ct)
			if err != nil {
				return err
			}
			if bytes.Equal(symKey[:], back[:]) {
				fmt.Printf("✓ encapsulation round trip on attempt %d (ciphertext %d bits)\n", attempt, ct.BitLen())
				break
			}
			fmt.Printf("  preimage exceeded the modulus on attempt %d; re-encapsulating\n", attempt)
		}

		sigScheme := sig.New()
		signature, err := sigScheme.Sign(key, msg)
		if err != nil {
			return err
		}
		if err := sigScheme.Verify(key.VerificationKey(), msg, signature); err != nil {
			return err
		}
		fmt.Printf("✓ signature over %q verifies\n", msg)

		tampered := new(big.Int).Xor(signature, big.NewInt(1))
		if err := sigScheme.Verify(key.VerificationKey(), msg, tampered); err == nil {
			return fmt.Errorf("tampered signature unexpectedly verified")
		}
		fmt.Println("✓ tampered signature rejected")
		return nil
	},
}
