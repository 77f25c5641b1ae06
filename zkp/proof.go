package zkp

import (
	"fmt"
	"io"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/f3rmion/cpzkp/group"
	"github.com/f3rmion/cpzkp/sample"
)

// transcriptDomain separates Fiat-Shamir challenges of this protocol from
// any other use of the same hasher.
const transcriptDomain = "cpzkp/chaum-pedersen/v1"

// Proof is a non-interactive Chaum-Pedersen proof that log_g(y1) = log_h(y2).
type Proof struct {
	Kind   group.Kind
	R1, R2 group.Element
	C, S   *big.Int
}

// proofMarshal is the CBOR shape of a Proof. Elements travel in their wire
// encoding and integers as big-endian magnitudes.
type proofMarshal struct {
	Kind   group.Kind
	R1, R2 []byte
	C, S   []byte
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *Proof) MarshalBinary() ([]byte, error) {
	if p.C == nil || p.S == nil || !group.SameForm(p.R1, p.R2) {
		return nil, fmt.Errorf("%w: incomplete proof", group.ErrInvalidSerialization)
	}
	if p.C.Sign() < 0 || p.S.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative challenge or response", group.ErrInvalidSerialization)
	}
	r1, err := p.R1.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("proof: r1: %w", err)
	}
	r2, err := p.R2.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("proof: r2: %w", err)
	}
	return cbor.Marshal(&proofMarshal{
		Kind: p.Kind,
		R1:   r1,
		R2:   r2,
		C:    p.C.Bytes(),
		S:    p.S.Bytes(),
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Proof) UnmarshalBinary(data []byte) error {
	var pm proofMarshal
	if err := cbor.Unmarshal(data, &pm); err != nil {
		return fmt.Errorf("%w: proof: %v", group.ErrInvalidSerialization, err)
	}
	r1, err := group.Decode(pm.R1, pm.Kind)
	if err != nil {
		return fmt.Errorf("proof: r1: %w", err)
	}
	r2, err := group.Decode(pm.R2, pm.Kind)
	if err != nil {
		return fmt.Errorf("proof: r2: %w", err)
	}
	*p = Proof{
		Kind: pm.Kind,
		R1:   r1,
		R2:   r2,
		C:    new(big.Int).SetBytes(pm.C),
		S:    new(big.Int).SetBytes(pm.S),
	}
	return nil
}

func transcript(grp group.Group, y1, y2, r1, r2 group.Element) [][]byte {
	return [][]byte{
		[]byte(transcriptDomain),
		[]byte(grp.Kind().String()),
		grp.Generator().Bytes(),
		grp.SecondGenerator().Bytes(),
		y1.Bytes(),
		y2.Bytes(),
		r1.Bytes(),
		r2.Bytes(),
	}
}

// Prove produces a non-interactive proof of knowledge of key.Secret. The
// commitment randomness is drawn from r; the challenge is derived from the
// transcript with hasher, or [DefaultHasher] if hasher is nil.
func Prove(grp group.Group, hasher Hasher, key *KeyPair, r io.Reader) (*Proof, error) {
	if grp == nil || key == nil || key.Secret == nil {
		return nil, fmt.Errorf("%w: nil group or key", group.ErrInvalidArguments)
	}
	if hasher == nil {
		hasher = DefaultHasher()
	}
	q := grp.Order()
	k, err := sample.NonZeroModN(r, q)
	if err != nil {
		return nil, fmt.Errorf("prove: %w", err)
	}
	defer k.SetUint64(0)

	r1, r2, err := Commit(grp, k, grp.Generator(), grp.SecondGenerator())
	if err != nil {
		return nil, fmt.Errorf("prove: %w", err)
	}
	c := hasher.Challenge(q, transcript(grp, key.Y1, key.Y2, r1, r2)...)
	return &Proof{
		Kind: grp.Kind(),
		R1:   r1,
		R2:   r2,
		C:    c,
		S:    group.SolveChallenge(key.Secret, k, c, q),
	}, nil
}

// VerifyProof checks a proof against the public values y1 and y2. The
// challenge is recomputed from the transcript, so a proof whose challenge
// was not derived from its own commitments is rejected.
func VerifyProof(grp group.Group, hasher Hasher, y1, y2 group.Element, proof *Proof) (bool, error) {
	if grp == nil || proof == nil || proof.C == nil || proof.S == nil {
		return false, fmt.Errorf("%w: nil group or proof", group.ErrInvalidArguments)
	}
	if proof.Kind != grp.Kind() {
		return false, fmt.Errorf("%w: proof for %s, group is %s", group.ErrInvalidGroupType, proof.Kind, grp.Kind())
	}
	if hasher == nil {
		hasher = DefaultHasher()
	}
	c := hasher.Challenge(grp.Order(), transcript(grp, y1, y2, proof.R1, proof.R2)...)
	if c.Cmp(proof.C) != 0 {
		return false, nil
	}
	return grp.VerifyProof(&group.VerificationParams{
		Kind: grp.Kind(),
		R1:   proof.R1,
		R2:   proof.R2,
		Y1:   y1,
		Y2:   y2,
		G:    grp.Generator(),
		H:    grp.SecondGenerator(),
		C:    c,
		S:    proof.S,
		P:    grp.Prime(),
	})
}
