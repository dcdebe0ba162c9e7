// Package rsa implements textbook RSA on top of the bigint package: key
// generation with optional CRT parameters and the raw public and private
// transforms.
//
// # Key generation
//
// A KeyGenerator walks a fixed sequence of states for every key:
//
//	Init -> GeneratingP -> GeneratingQ -> DerivingParameters -> Done
//
// Init validates the requested size against the configured Miller-Rabin
// round table. GeneratingP and GeneratingQ draw size/2-bit odd candidates
// with their two top bits set, so that N = p*q has exactly size bits, and
// redraw until a candidate is probably prime, satisfies gcd(candidate-1, e)
// = 1 and (for q) differs from p. DerivingParameters computes N, d and, when
// enabled, dp, dq and qInv. The public and private keys are returned
// together or not at all.
//
//	gen, err := rsa.NewKeyGenerator(rsa.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	pub, priv, err := gen.GenerateKey(ctx, 2048)
//
// Candidate loops are unbounded; cancel ctx to stop them.
//
// # Transforms
//
// PublicTransform computes in**e mod N, taking a fixed chain of sixteen
// squarings and one multiply when e = 65537. PrivateTransform computes
// in**d mod N, through the Chinese remainder theorem when the key carries CRT
// values. Both paths produce identical output. Inputs must lie in [0, N).
//
// Encrypt, Decrypt, Sign and Verify are unpadded aliases of the two
// transforms. They provide no semantic security on their own.
package rsa
