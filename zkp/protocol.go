package zkp

import (
	"fmt"
	"math/big"

	"github.com/f3rmion/cpzkp/group"
)

// Commit raises both generators to exp: (g^exp mod p, h^exp mod p) in the
// Scalar group, (exp·g, exp·h) on a curve.
//
// g and h must share one variant, and it must be the variant of grp;
// otherwise Commit fails with [group.ErrPointTypeMismatch].
func Commit(grp group.Group, exp *big.Int, g, h group.Element) (group.Element, group.Element, error) {
	if grp == nil || exp == nil {
		return group.Element{}, group.Element{}, fmt.Errorf("%w: nil group or exponent", group.ErrInvalidArguments)
	}
	if !group.SameForm(g, h) {
		return group.Element{}, group.Element{}, group.ErrPointTypeMismatch
	}
	gk, err := grp.Scale(g, exp)
	if err != nil {
		return group.Element{}, group.Element{}, fmt.Errorf("commit: %w", err)
	}
	hk, err := grp.Scale(h, exp)
	if err != nil {
		return group.Element{}, group.Element{}, fmt.Errorf("commit: %w", err)
	}
	return gk, hk, nil
}

// SolveChallenge returns the response s = (k - c·x) mod q for secret x,
// commitment randomness k and challenge c.
func SolveChallenge(x, k, c, q *big.Int) (*big.Int, error) {
	if x == nil || k == nil || c == nil || q == nil {
		return nil, fmt.Errorf("%w: nil operand", group.ErrInvalidArguments)
	}
	if q.Sign() <= 0 || x.Sign() < 0 || k.Sign() < 0 || c.Sign() < 0 {
		return nil, fmt.Errorf("%w: operands must be non-negative and q positive", group.ErrInvalidArguments)
	}
	return group.SolveChallenge(x, k, c, q), nil
}

// Verify checks one Chaum-Pedersen transcript in the group named by
// params.Kind:
//
//	Scalar:     r1 ≡ g^s·y1^c and r2 ≡ h^s·y2^c (mod p)
//	Coordinate: r1 = s·g + c·y1 and r2 = s·h + c·y2
//
// A transcript that does not satisfy the relation returns false with a nil
// error. Errors are reserved for inputs that cannot be evaluated, such as
// elements of mixed variants.
func Verify(params *group.VerificationParams) (bool, error) {
	if err := params.Validate(); err != nil {
		return false, err
	}
	grp, err := Lookup(params.Kind)
	if err != nil {
		return false, err
	}
	return grp.VerifyProof(params)
}

// VerifyIn is Verify with an explicit group, for groups built with
// custom parameters such as [modp.New].
func VerifyIn(grp group.Group, params *group.VerificationParams) (bool, error) {
	if grp == nil {
		return false, fmt.Errorf("%w: nil group", group.ErrInvalidArguments)
	}
	return grp.VerifyProof(params)
}
