// Package session provides a high-level API for interactive Chaum-Pedersen
// proofs. A Session holds one secret x and runs any number of
// challenge-response rounds for it, handling round bookkeeping and nonce
// hygiene so that each nonce answers exactly one challenge.
//
// For single proofs without state, use the [zkp] package directly.
//
// # Lifecycle
//
// A session starts in Initial, becomes Active with its first round and
// ends in Finalized after an explicit call. Finalized is terminal:
//
//	sess, err := session.New(group.EllipticCurve)
//	if err != nil {
//		return err
//	}
//
//	// Prover: commit and send the commitment to the verifier
//	com, err := sess.StartRound()
//
//	// Verifier: answer with a challenge
//	c, err := sess.GenerateChallenge()
//
//	// Prover: respond
//	s, err := sess.RecordResponse(com.Round, c)
//
//	ok, err := sess.VerifyRound(com.Round)
//
//	sess.Finalize()
//
// Verification always uses the challenge the response was computed for.
// [Session.VerifyRoundWith] checks a round against any other challenge and
// fails for every value but the recorded one.
//
// # Persistence
//
// Only finalized sessions can be encoded with [Session.MarshalBinary]. The
// CBOR encoding carries the group parameters, the public values and every
// round transcript, never the secret or nonces. [Restore] decodes it into
// a Finalized session that can still verify its rounds.
//
// # Transport Agnostic
//
// This package does not handle network communication. Commitments,
// challenges and responses are plain values; moving them between prover
// and verifier is up to the caller.
package session
