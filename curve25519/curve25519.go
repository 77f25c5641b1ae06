package curve25519

import (
	"fmt"
	"io"
	"math/big"
	"slices"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	"github.com/f3rmion/cpzkp/group"
)

// SecondGeneratorScale is the fixed multiple of the base point used as the
// second generator h.
const SecondGeneratorScale = 13

var (
	// fieldPrime is 2^255 - 19.
	fieldPrime = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))
	// subgroupOrder is 2^252 + 27742317777372353535851937790883648493.
	subgroupOrder, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
	// curveD is -121665/121666 mod p.
	curveD = func() *big.Int {
		num := new(big.Int).Sub(fieldPrime, big.NewInt(121665))
		den := new(big.Int).ModInverse(big.NewInt(121666), fieldPrime)
		return num.Mul(num, den).Mod(num, fieldPrime)
	}()
)

// Group implements [group.Group] for edwards25519, the twisted Edwards
// form -x² + y² = 1 + d·x²·y² birationally equivalent to Curve25519.
//
// Elements are affine (x, y) Coordinates; the identity is (0, 1).
type Group struct {
	h *edwards25519.Point
}

// New returns the edwards25519 group with h = SecondGeneratorScale·B.
func New() (*Group, error) {
	h := scale(edwards25519.NewGeneratorPoint(), big.NewInt(SecondGeneratorScale))
	if h.Equal(edwards25519.NewIdentityPoint()) == 1 {
		return nil, fmt.Errorf("%w: second generator is the identity", group.ErrEllipticCurve)
	}
	return &Group{h: h}, nil
}

// scale computes k·pt by double-and-add from the least significant bit.
func scale(pt *edwards25519.Point, k *big.Int) *edwards25519.Point {
	acc := edwards25519.NewIdentityPoint()
	run := new(edwards25519.Point).Set(pt)
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			acc.Add(acc, run)
		}
		run.Add(run, run)
	}
	return acc
}

func bigFromField(v *field.Element) *big.Int {
	b := v.Bytes()
	slices.Reverse(b)
	return new(big.Int).SetBytes(b)
}

func fieldFromBig(v *big.Int) (*field.Element, error) {
	var buf [32]byte
	v.FillBytes(buf[:])
	slices.Reverse(buf[:])
	return new(field.Element).SetBytes(buf[:])
}

func fromPoint(pt *edwards25519.Point) group.Element {
	X, Y, Z, _ := pt.ExtendedCoordinates()
	zInv := new(field.Element).Invert(Z)
	x := new(field.Element).Multiply(X, zInv)
	y := new(field.Element).Multiply(Y, zInv)
	return group.NewCoordinate(bigFromField(x), bigFromField(y))
}

func toPoint(e group.Element) (*edwards25519.Point, error) {
	if err := group.CheckForm(group.Curve25519, e); err != nil {
		return nil, err
	}
	x, y := e.Coordinates()
	if x.Cmp(fieldPrime) >= 0 || y.Cmp(fieldPrime) >= 0 {
		return nil, fmt.Errorf("%w: coordinate out of field range", group.ErrEllipticCurve)
	}
	fx, err := fieldFromBig(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrEllipticCurve, err)
	}
	fy, err := fieldFromBig(y)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrEllipticCurve, err)
	}
	ft := new(field.Element).Multiply(fx, fy)
	one := new(field.Element).One()
	pt, err := new(edwards25519.Point).SetExtendedCoordinates(fx, fy, one, ft)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrEllipticCurve, err)
	}
	return pt, nil
}

// Kind returns [group.Curve25519].
func (g *Group) Kind() group.Kind { return group.Curve25519 }

// Prime returns 2^255 - 19.
func (g *Group) Prime() *big.Int { return new(big.Int).Set(fieldPrime) }

// Order returns the prime order ℓ of the base point.
func (g *Group) Order() *big.Int { return new(big.Int).Set(subgroupOrder) }

// Generator returns the standard base point B.
func (g *Group) Generator() group.Element { return fromPoint(edwards25519.NewGeneratorPoint()) }

// SecondGenerator returns h = SecondGeneratorScale·B.
func (g *Group) SecondGenerator() group.Element { return fromPoint(g.h) }

// Identity returns (0, 1).
func (g *Group) Identity() group.Element { return group.NewCoordinate(big.NewInt(0), big.NewInt(1)) }

// Deserialize splits an even-length buffer into x and y.
func (g *Group) Deserialize(data []byte) (group.Element, error) {
	return group.Decode(data, group.Curve25519)
}

// IsOnCurve reports whether e satisfies -x² + y² ≡ 1 + d·x²·y² (mod p).
func (g *Group) IsOnCurve(e group.Element) bool {
	if e.Form() != group.FormCoordinate {
		return false
	}
	x, y := e.Coordinates()
	if x.Cmp(fieldPrime) >= 0 || y.Cmp(fieldPrime) >= 0 {
		return false
	}
	x2 := new(big.Int).Mul(x, x)
	y2 := new(big.Int).Mul(y, y)
	lhs := new(big.Int).Sub(y2, x2)
	lhs.Mod(lhs, fieldPrime)
	rhs := new(big.Int).Mul(x2, y2)
	rhs.Mul(rhs, curveD)
	rhs.Add(rhs, big.NewInt(1))
	rhs.Mod(rhs, fieldPrime)
	return lhs.Cmp(rhs) == 0
}

// Add returns a + b.
func (g *Group) Add(a, b group.Element) (group.Element, error) {
	pa, err := toPoint(a)
	if err != nil {
		return group.Element{}, err
	}
	pb, err := toPoint(b)
	if err != nil {
		return group.Element{}, err
	}
	return fromPoint(new(edwards25519.Point).Add(pa, pb)), nil
}

// Double returns 2·e.
func (g *Group) Double(e group.Element) (group.Element, error) {
	pt, err := toPoint(e)
	if err != nil {
		return group.Element{}, err
	}
	return fromPoint(new(edwards25519.Point).Add(pt, pt)), nil
}

// Scale returns k·e. The exponent is used as given, without reduction
// modulo the order, so points with a torsion component scale exactly.
func (g *Group) Scale(e group.Element, k *big.Int) (group.Element, error) {
	pt, err := toPoint(e)
	if err != nil {
		return group.Element{}, err
	}
	if k == nil || k.Sign() < 0 {
		return group.Element{}, fmt.Errorf("%w: scalar must be non-negative", group.ErrInvalidArguments)
	}
	return fromPoint(scale(pt, k)), nil
}

// GenerateChallenge draws a challenge uniformly from [0, ℓ).
func (g *Group) GenerateChallenge(r io.Reader) (*big.Int, error) {
	return group.GenerateChallenge(r, subgroupOrder)
}

// SolveChallenge returns (k - c·x) mod ℓ.
func (g *Group) SolveChallenge(x, k, c *big.Int) *big.Int {
	return group.SolveChallenge(x, k, c, subgroupOrder)
}

// VerifyProof accepts iff r1 = s·g + c·y1 and r2 = s·h + c·y2.
func (g *Group) VerifyProof(params *group.VerificationParams) (bool, error) {
	return group.CheckRelation(g, params)
}
