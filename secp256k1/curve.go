package secp256k1

import (
	"fmt"
	"io"
	"math/big"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/f3rmion/cpzkp/group"
)

// SecondGeneratorScale is the fixed multiple of the base point used as the
// second generator h.
const SecondGeneratorScale = 13

// Curve implements [group.Group] for secp256k1, y² = x³ + a·x + b over
// GF(p) with a = 0 and b = 7.
//
// Arithmetic runs on affine coordinates with math/big. The identity (point
// at infinity) is represented by the Coordinate (0, 0), which does not
// satisfy the curve equation.
type Curve struct {
	p, n   *big.Int
	a, b   *big.Int
	gx, gy *big.Int
	h      affine
}

// affine is a point in affine coordinates. inf marks the identity.
type affine struct {
	x, y *big.Int
	inf  bool
}

var infinity = affine{inf: true}

// New returns the secp256k1 group. Its field prime, order and base point
// come from the decred curve definition; h is SecondGeneratorScale·G.
//
// New fails with [group.ErrEllipticCurve] if h degenerates to the identity.
func New() (*Curve, error) {
	params := dcrsecp.S256().Params()
	c := &Curve{
		p:  new(big.Int).Set(params.P),
		n:  new(big.Int).Set(params.N),
		a:  big.NewInt(0),
		b:  big.NewInt(7),
		gx: new(big.Int).Set(params.Gx),
		gy: new(big.Int).Set(params.Gy),
	}
	h := c.scale(c.base(), big.NewInt(SecondGeneratorScale))
	if h.inf {
		return nil, fmt.Errorf("%w: second generator is the identity", group.ErrEllipticCurve)
	}
	c.h = h
	return c, nil
}

func (c *Curve) base() affine {
	return affine{x: c.gx, y: c.gy}
}

func (c *Curve) mod(v *big.Int) *big.Int {
	return v.Mod(v, c.p)
}

// inverse returns v⁻¹ mod p as v^(p-2), by Fermat's little theorem.
func (c *Curve) inverse(v *big.Int) *big.Int {
	e := new(big.Int).Sub(c.p, big.NewInt(2))
	return new(big.Int).Exp(v, e, c.p)
}

// double returns 2·pt. A point with y = 0 has a vertical tangent and
// doubles to the identity.
func (c *Curve) double(pt affine) affine {
	if pt.inf || pt.y.Sign() == 0 {
		return infinity
	}
	// λ = (3x² + a) / 2y
	num := new(big.Int).Mul(pt.x, pt.x)
	num.Mul(num, big.NewInt(3))
	num.Add(num, c.a)
	den := new(big.Int).Lsh(pt.y, 1)
	lambda := c.mod(num.Mul(num, c.inverse(c.mod(den))))

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, new(big.Int).Lsh(pt.x, 1))
	c.mod(x3)

	y3 := new(big.Int).Sub(pt.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, pt.y)
	c.mod(y3)
	return affine{x: x3, y: y3}
}

func (c *Curve) add(p1, p2 affine) affine {
	if p1.inf {
		return p2
	}
	if p2.inf {
		return p1
	}
	if p1.x.Cmp(p2.x) == 0 {
		sum := new(big.Int).Add(p1.y, p2.y)
		if c.mod(sum).Sign() == 0 {
			return infinity
		}
		return c.double(p1)
	}
	// λ = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(p2.y, p1.y)
	den := c.mod(new(big.Int).Sub(p2.x, p1.x))
	lambda := c.mod(num.Mul(num, c.inverse(den)))

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p1.x)
	x3.Sub(x3, p2.x)
	c.mod(x3)

	y3 := new(big.Int).Sub(p1.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p1.y)
	c.mod(y3)
	return affine{x: x3, y: y3}
}

// scale computes k·pt by double-and-add, walking k from its least
// significant bit: the running point is doubled every step and added to
// the accumulator when the bit is set.
func (c *Curve) scale(pt affine, k *big.Int) affine {
	acc := infinity
	run := pt
	n := k.BitLen()
	for i := 0; i < n; i++ {
		if k.Bit(i) == 1 {
			acc = c.add(acc, run)
		}
		if i+1 < n {
			run = c.double(run)
		}
	}
	return acc
}

func (c *Curve) toAffine(e group.Element) (affine, error) {
	if err := group.CheckForm(group.EllipticCurve, e); err != nil {
		return affine{}, err
	}
	x, y := e.Coordinates()
	if x.Sign() == 0 && y.Sign() == 0 {
		return infinity, nil
	}
	return affine{x: c.mod(x), y: c.mod(y)}, nil
}

func fromAffine(pt affine) group.Element {
	if pt.inf {
		return group.NewCoordinate(nil, nil)
	}
	return group.NewCoordinate(pt.x, pt.y)
}

// Kind returns [group.EllipticCurve].
func (c *Curve) Kind() group.Kind { return group.EllipticCurve }

// Prime returns the field prime p.
func (c *Curve) Prime() *big.Int { return new(big.Int).Set(c.p) }

// Order returns the order n of the base point.
func (c *Curve) Order() *big.Int { return new(big.Int).Set(c.n) }

// Generator returns the standard base point G.
func (c *Curve) Generator() group.Element { return fromAffine(c.base()) }

// SecondGenerator returns h = SecondGeneratorScale·G.
func (c *Curve) SecondGenerator() group.Element { return fromAffine(c.h) }

// Identity returns the point at infinity, encoded as (0, 0).
func (c *Curve) Identity() group.Element { return fromAffine(infinity) }

// Deserialize splits an even-length buffer into x and y.
func (c *Curve) Deserialize(data []byte) (group.Element, error) {
	return group.Decode(data, group.EllipticCurve)
}

// IsOnCurve reports whether e is a Coordinate with reduced coordinates
// satisfying y² ≡ x³ + a·x + b (mod p). The identity is not on the curve.
func (c *Curve) IsOnCurve(e group.Element) bool {
	if e.Form() != group.FormCoordinate {
		return false
	}
	x, y := e.Coordinates()
	if x.Cmp(c.p) >= 0 || y.Cmp(c.p) >= 0 {
		return false
	}
	lhs := c.mod(new(big.Int).Mul(y, y))
	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, new(big.Int).Mul(c.a, x))
	rhs.Add(rhs, c.b)
	return lhs.Cmp(c.mod(rhs)) == 0
}

// Add returns a + b.
func (c *Curve) Add(a, b group.Element) (group.Element, error) {
	pa, err := c.toAffine(a)
	if err != nil {
		return group.Element{}, err
	}
	pb, err := c.toAffine(b)
	if err != nil {
		return group.Element{}, err
	}
	return fromAffine(c.add(pa, pb)), nil
}

// Negate returns -e.
func (c *Curve) Negate(e group.Element) (group.Element, error) {
	pt, err := c.toAffine(e)
	if err != nil {
		return group.Element{}, err
	}
	if pt.inf {
		return e, nil
	}
	return fromAffine(affine{x: pt.x, y: c.mod(new(big.Int).Neg(pt.y))}), nil
}

// Double returns 2·e using the short-Weierstrass tangent formula.
func (c *Curve) Double(e group.Element) (group.Element, error) {
	pt, err := c.toAffine(e)
	if err != nil {
		return group.Element{}, err
	}
	return fromAffine(c.double(pt)), nil
}

// Scale returns k·e. The exponent is used as given, without reduction
// modulo the order.
func (c *Curve) Scale(e group.Element, k *big.Int) (group.Element, error) {
	pt, err := c.toAffine(e)
	if err != nil {
		return group.Element{}, err
	}
	if k == nil || k.Sign() < 0 {
		return group.Element{}, fmt.Errorf("%w: scalar must be non-negative", group.ErrInvalidArguments)
	}
	return fromAffine(c.scale(pt, k)), nil
}

// GenerateChallenge draws a challenge uniformly from [0, n).
func (c *Curve) GenerateChallenge(r io.Reader) (*big.Int, error) {
	return group.GenerateChallenge(r, c.n)
}

// SolveChallenge returns (k - c·x) mod n.
func (c *Curve) SolveChallenge(x, k, ch *big.Int) *big.Int {
	return group.SolveChallenge(x, k, ch, c.n)
}

// VerifyProof accepts iff r1 = s·g + c·y1 and r2 = s·h + c·y2.
func (c *Curve) VerifyProof(params *group.VerificationParams) (bool, error) {
	return group.CheckRelation(c, params)
}
