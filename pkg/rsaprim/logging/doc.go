// Package logging provides a minimal logging facade for tools built on the
// rsaprim primitives.
//
// The primitive packages themselves never log; key generation, encapsulation,
// and signing stay silent. This package exists for the layer above (CLIs,
// services, examples) that wants structured progress and audit lines without
// inventing its own slog wrapper each time.
//
// # Logger Interface
//
// The Logger interface wraps the context-aware subset of log/slog:
//
//	logger := logging.New(nil) // binds to slog.Default()
//	logger.Info(ctx, "key pair generated", "bits", 2048)
//
// Applications plug in their own slog handler:
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	logger := logging.New(slog.New(handler))
//
// # Redaction
//
// Never log primes, private exponents, preimages, or derived symmetric keys.
// Redacted marks the spot where a secret deliberately is not:
//
//	logger.Info(ctx, "key pair generated",
//	    "bits", 2048,
//	    logging.Redacted("p"),
//	    logging.Redacted("q"),
//	)
//
// Public moduli are safe to identify but noisy to print; Fingerprint logs a
// short stable digest instead:
//
//	logger.Info(ctx, "verifying", logging.Fingerprint("modulus", pub.N))
package logging
