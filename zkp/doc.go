// Package zkp implements the Chaum-Pedersen protocol: a proof that the
// prover knows x with y1 = g^x and y2 = h^x for two independent generators
// g and h, without revealing x.
//
// The package works over any [group.Group]. Groups for each [group.Kind]
// are available through [Lookup]; they are derived once and shared.
//
// # Interactive Protocol
//
// The three moves of the sigma protocol map onto three functions:
//
//	grp, _ := zkp.Lookup(group.Curve25519)
//	key, _ := zkp.GenerateKey(grp, rand.Reader)
//
//	// Prover commits with a fresh nonce k
//	r1, r2, _ := zkp.Commit(grp, k, grp.Generator(), grp.SecondGenerator())
//
//	// Verifier draws a challenge
//	c, _ := grp.GenerateChallenge(rand.Reader)
//
//	// Prover responds
//	s, _ := zkp.SolveChallenge(key.Secret, k, c, grp.Order())
//
//	ok, err := zkp.Verify(&group.VerificationParams{ ... })
//
// Verify returns false for a transcript that does not satisfy the
// verification equations and an error only when the inputs cannot be
// evaluated. [VerifyBatch] checks many transcripts concurrently.
//
// # Non-Interactive Proofs
//
// [Prove] and [VerifyProof] apply the Fiat-Shamir transform: the challenge
// is the hash of the group, both generators, both public values and both
// commitments. The hash function is pluggable through [Hasher]:
//
//   - [Blake3Hasher]: BLAKE3 key derivation mode (the default)
//   - [Blake2bHasher]: Blake2b-512 with a domain prefix
//   - [SHA256Hasher]: SHA-256
//
// Prover and verifier must agree on the hasher.
package zkp
