package group

import (
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/cpzkp/sample"
)

// SolveChallenge computes the prover's response s = (k - c·x) mod q
// without going through a negative intermediate:
//
//	k ≥ c·x:  s = (k - c·x) mod q
//	k < c·x:  s = q - ((c·x - k) mod q)
//
// followed by a final reduction, so 0 ≤ s < q always holds. It returns nil
// if an operand is nil or q is not positive; zkp.SolveChallenge reports
// those cases as errors.
func SolveChallenge(x, k, c, q *big.Int) *big.Int {
	if x == nil || k == nil || c == nil || q == nil || q.Sign() <= 0 {
		return nil
	}
	cx := new(big.Int).Mul(c, x)
	s := new(big.Int)
	if k.Cmp(cx) >= 0 {
		s.Sub(k, cx)
		s.Mod(s, q)
	} else {
		s.Sub(cx, k)
		s.Mod(s, q)
		s.Sub(q, s)
	}
	return s.Mod(s, q)
}

// GenerateChallenge draws a challenge uniformly from [0, q).
func GenerateChallenge(r io.Reader, q *big.Int) (*big.Int, error) {
	c, err := sample.ModN(r, q)
	if err != nil {
		return nil, fmt.Errorf("generate challenge: %w", err)
	}
	return c, nil
}

// CheckForm returns ErrPointTypeMismatch unless every element has the
// variant used by kind.
func CheckForm(kind Kind, elems ...Element) error {
	want := kind.Form()
	for _, e := range elems {
		if !e.Valid() {
			return fmt.Errorf("%w: element has no variant", ErrInvalidArguments)
		}
		if e.Form() != want {
			return fmt.Errorf("%w: %s element in a %s group", ErrPointTypeMismatch, e.Form(), kind)
		}
	}
	return nil
}

// CheckRelation verifies an additively written transcript with the
// arithmetic of g:
//
//	R1 = s·G + c·Y1  and  R2 = s·H + c·Y2
//
// Any input that is neither on the curve nor the identity rejects the
// proof. Curve groups use this as their VerifyProof.
func CheckRelation(g Group, params *VerificationParams) (bool, error) {
	if err := params.Validate(); err != nil {
		return false, err
	}
	if params.Kind != g.Kind() {
		return false, fmt.Errorf("%w: %s params for a %s group", ErrPointTypeMismatch, params.Kind, g.Kind())
	}
	id := g.Identity()
	for _, e := range []Element{params.R1, params.R2, params.Y1, params.Y2, params.G, params.H} {
		if !e.Equal(id) && !g.IsOnCurve(e) {
			return false, nil
		}
	}
	ok1, err := checkOne(g, params.R1, params.G, params.Y1, params.S, params.C)
	if err != nil || !ok1 {
		return false, err
	}
	return checkOne(g, params.R2, params.H, params.Y2, params.S, params.C)
}

func checkOne(g Group, r, base, y Element, s, c *big.Int) (bool, error) {
	sb, err := g.Scale(base, s)
	if err != nil {
		return false, err
	}
	cy, err := g.Scale(y, c)
	if err != nil {
		return false, err
	}
	sum, err := g.Add(sb, cy)
	if err != nil {
		return false, err
	}
	return r.Equal(sum), nil
}
