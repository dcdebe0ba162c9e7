// Package cbrsa is the root of the cb-rsa-go library: arbitrary-precision
// integer primitives and an RSA cryptosystem built on them.
//
// The root package only carries what every subpackage shares: the error
// taxonomy, build version information and zeroization helpers. The actual
// functionality lives in subpackages:
//
//   - bigint: signed multi-limb integers with custom addition/subtraction
//   - montgomery: modular exponentiation by Montgomery multiplication
//   - modexp: interchangeable exponentiation backends
//   - prime: probabilistic primality testing and round-count tables
//   - random: seeded deterministic and crypto/rand bit sources
//   - rsa: key generation and the public/private transforms
//   - logging, metrics: ambient observability hooks
//
// None of the code in this module is constant-time. It must not be used where
// side channels matter.
package cbrsa
