// Package logging provides a minimal logging facade for cb-rsa-go.
//
// The Logger interface wraps the subset of log/slog used by the library. Two
// implementations ship with the package: New binds to a *slog.Logger and
// NewZap binds to a *zap.Logger, which is what the cbrsa command uses.
//
//	logger := logging.New(nil) // slog.Default()
//	logger.Info(ctx, "generating key", "size", 2048)
//
// # Redaction
//
// Key generation never logs key material. Where a log line would naturally
// carry a secret, Redacted is passed in its place:
//
//	logger.Debug(ctx, "prime accepted", logging.Redacted("p"), "bits", 1024)
//	// p="[redacted]"
//
// Nop discards everything and is the default for library code that has not
// been given a logger.
package logging
