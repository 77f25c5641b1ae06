package modp

import (
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/f3rmion/cpzkp/group"
)

// Default parameters shared by both protocol participants.
const (
	DefaultPrime           = 10009
	DefaultOrder           = 5004
	DefaultGenerator       = 3
	DefaultSecondGenerator = 2892
)

// Group implements [group.Group] for the multiplicative group of integers
// modulo a prime p, restricted to a subgroup of order q generated by g.
type Group struct {
	p, q, g, h *big.Int
	modulus    *saferith.Modulus
}

var defaultGroup = mustNew(
	big.NewInt(DefaultPrime),
	big.NewInt(DefaultOrder),
	big.NewInt(DefaultGenerator),
	big.NewInt(DefaultSecondGenerator),
)

func mustNew(p, q, g, h *big.Int) *Group {
	grp, err := New(p, q, g, h)
	if err != nil {
		panic(err)
	}
	return grp
}

// Default returns the group with the default parameters.
func Default() *Group {
	return defaultGroup
}

// New returns the group with prime p, order q and generators g, h.
//
// The generators must be distinct, lie in [2, p) and both have order
// dividing q; otherwise New fails with [group.ErrInvalidArguments].
func New(p, q, g, h *big.Int) (*Group, error) {
	if p == nil || q == nil || g == nil || h == nil {
		return nil, fmt.Errorf("%w: nil group parameter", group.ErrInvalidArguments)
	}
	if p.Cmp(big.NewInt(3)) < 0 || p.Bit(0) == 0 || q.Sign() <= 0 || q.Cmp(p) >= 0 {
		return nil, fmt.Errorf("%w: need an odd prime p and 0 < q < p", group.ErrInvalidArguments)
	}
	two := big.NewInt(2)
	for _, v := range []*big.Int{g, h} {
		if v.Cmp(two) < 0 || v.Cmp(p) >= 0 {
			return nil, fmt.Errorf("%w: generator %s outside [2, p)", group.ErrInvalidArguments, v)
		}
	}
	if g.Cmp(h) == 0 {
		return nil, fmt.Errorf("%w: generators must differ", group.ErrInvalidArguments)
	}
	grp := &Group{
		p:       new(big.Int).Set(p),
		q:       new(big.Int).Set(q),
		g:       new(big.Int).Set(g),
		h:       new(big.Int).Set(h),
		modulus: saferith.ModulusFromBytes(p.Bytes()),
	}
	one := big.NewInt(1)
	for _, v := range []*big.Int{grp.g, grp.h} {
		if grp.exp(v, grp.q).Cmp(one) != 0 {
			return nil, fmt.Errorf("%w: %s does not have order dividing %s", group.ErrInvalidArguments, v, q)
		}
	}
	return grp, nil
}

func nat(v *big.Int) *saferith.Nat {
	return new(saferith.Nat).SetBytes(v.Bytes())
}

// exp returns base^e mod p. Base is reduced first so any non-negative
// integer is accepted.
func (grp *Group) exp(base, e *big.Int) *big.Int {
	b := new(big.Int).Mod(base, grp.p)
	return new(saferith.Nat).Exp(nat(b), nat(e), grp.modulus).Big()
}

func (grp *Group) mul(a, b *big.Int) *big.Int {
	x := new(big.Int).Mod(a, grp.p)
	y := new(big.Int).Mod(b, grp.p)
	return new(saferith.Nat).ModMul(nat(x), nat(y), grp.modulus).Big()
}

// Kind returns [group.Scalar].
func (grp *Group) Kind() group.Kind { return group.Scalar }

// Prime returns p.
func (grp *Group) Prime() *big.Int { return new(big.Int).Set(grp.p) }

// Order returns q.
func (grp *Group) Order() *big.Int { return new(big.Int).Set(grp.q) }

// Generator returns g.
func (grp *Group) Generator() group.Element { return group.NewScalar(grp.g) }

// SecondGenerator returns h.
func (grp *Group) SecondGenerator() group.Element { return group.NewScalar(grp.h) }

// Identity returns Scalar(1).
func (grp *Group) Identity() group.Element { return group.NewScalar(big.NewInt(1)) }

// Deserialize parses the whole buffer as one big-endian integer.
func (grp *Group) Deserialize(data []byte) (group.Element, error) {
	return group.Decode(data, group.Scalar)
}

// IsOnCurve accepts every Scalar element.
func (grp *Group) IsOnCurve(e group.Element) bool {
	return e.Form() == group.FormScalar
}

// Add returns a·b mod p.
func (grp *Group) Add(a, b group.Element) (group.Element, error) {
	if err := group.CheckForm(group.Scalar, a, b); err != nil {
		return group.Element{}, err
	}
	return group.NewScalar(grp.mul(a.Value(), b.Value())), nil
}

// Double returns e unchanged; doubling is expressed through Scale.
func (grp *Group) Double(e group.Element) (group.Element, error) {
	if err := group.CheckForm(group.Scalar, e); err != nil {
		return group.Element{}, err
	}
	return e, nil
}

// Scale returns e^k mod p.
func (grp *Group) Scale(e group.Element, k *big.Int) (group.Element, error) {
	if err := group.CheckForm(group.Scalar, e); err != nil {
		return group.Element{}, err
	}
	if k == nil || k.Sign() < 0 {
		return group.Element{}, fmt.Errorf("%w: exponent must be non-negative", group.ErrInvalidArguments)
	}
	return group.NewScalar(grp.exp(e.Value(), k)), nil
}

// GenerateChallenge draws a challenge uniformly from [0, q).
func (grp *Group) GenerateChallenge(r io.Reader) (*big.Int, error) {
	return group.GenerateChallenge(r, grp.q)
}

// SolveChallenge returns (k - c·x) mod q.
func (grp *Group) SolveChallenge(x, k, c *big.Int) *big.Int {
	return group.SolveChallenge(x, k, c, grp.q)
}

// VerifyProof accepts iff r1 ≡ g^s·y1^c and r2 ≡ h^s·y2^c modulo the prime
// carried in params.
func (grp *Group) VerifyProof(params *group.VerificationParams) (bool, error) {
	if err := params.Validate(); err != nil {
		return false, err
	}
	if params.Kind != group.Scalar {
		return false, fmt.Errorf("%w: %s params for a scalar group", group.ErrPointTypeMismatch, params.Kind)
	}
	if params.P.Cmp(big.NewInt(3)) < 0 || params.P.Bit(0) == 0 {
		return false, fmt.Errorf("%w: %s is not an odd prime", group.ErrInvalidArguments, params.P)
	}
	m := saferith.ModulusFromBytes(params.P.Bytes())
	check := func(r, base, y group.Element) bool {
		p := params.P
		lhs := new(saferith.Nat).Exp(nat(new(big.Int).Mod(base.Value(), p)), nat(params.S), m)
		rhs := new(saferith.Nat).Exp(nat(new(big.Int).Mod(y.Value(), p)), nat(params.C), m)
		got := new(saferith.Nat).ModMul(lhs, rhs, m).Big()
		return got.Cmp(r.Value()) == 0
	}
	return check(params.R1, params.G, params.Y1) && check(params.R2, params.H, params.Y2), nil
}
