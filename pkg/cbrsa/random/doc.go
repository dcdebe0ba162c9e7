// Package random supplies uniform random bit strings as bigint values.
//
// Two sources are provided. Deterministic expands a 64-bit seed with the
// ChaCha20 keystream so that the same seed always yields the same sequence of
// draws; it is what reproducible key generation and tests use. Crypto reads
// from crypto/rand.
//
// A Source is a sequential stream. Sources are not safe for concurrent use;
// callers that share one across goroutines must synchronize externally.
// Reseeding only affects the Source it is called on.
package random
