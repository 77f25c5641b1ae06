package session

import (
	"math/big"

	"github.com/f3rmion/cpzkp/group"
)

// Commitment is the prover's first message of a round, to be sent to the
// verifier together with its index.
type Commitment struct {
	Round  int
	R1, R2 group.Element
}

// Round is a snapshot of one round of a session.
type Round struct {
	Index  int
	R1, R2 group.Element

	// C and S are nil until the response has been recorded.
	C, S *big.Int
}

// Answered reports whether the round's response has been recorded.
func (r Round) Answered() bool {
	return r.S != nil
}

// round is the session-owned state of a round. The nonce k is kept only
// between StartRound and RecordResponse.
type round struct {
	Round
	k *big.Int
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

func (r *round) snapshot() Round {
	return Round{
		Index: r.Index,
		R1:    r.R1,
		R2:    r.R2,
		C:     copyInt(r.C),
		S:     copyInt(r.S),
	}
}

// zeroNonce overwrites the nonce so it cannot be reused. This is a
// best-effort cleanup; Go doesn't guarantee memory zeroing.
func (r *round) zeroNonce() {
	if r.k == nil {
		return
	}
	r.k.SetUint64(0)
	r.k = nil
}
