package bjj

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/f3rmion/cpzkp/group"
)

// SecondGeneratorScale is the fixed multiple of the base point used as the
// second generator h.
const SecondGeneratorScale = 13

// curveOrder is the Baby Jubjub subgroup order.
// This is distinct from the BN254 scalar field order (Fr).
var curveOrder *big.Int

// fieldPrime is the BN254 scalar field modulus, the base field of Baby Jubjub.
var fieldPrime *big.Int

func init() {
	curve := twistededwards.GetEdwardsCurve()
	curveOrder = new(big.Int).Set(&curve.Order)
	fieldPrime = fr.Modulus()
}

// BJJ implements [group.Group] for the Baby Jubjub curve.
//
// Points are represented in affine coordinates (x, y) on the twisted
// Edwards curve. The identity element is (0, 1).
type BJJ struct {
	h twistededwards.PointAffine
}

// New returns the Baby Jubjub group with h = SecondGeneratorScale·B.
func New() (*BJJ, error) {
	base := twistededwards.GetEdwardsCurve().Base
	g := &BJJ{}
	g.h.ScalarMultiplication(&base, big.NewInt(SecondGeneratorScale))
	if g.h.IsZero() {
		return nil, fmt.Errorf("%w: second generator is the identity", group.ErrEllipticCurve)
	}
	return g, nil
}

func fromPoint(p *twistededwards.PointAffine) group.Element {
	return group.NewCoordinate(p.X.BigInt(new(big.Int)), p.Y.BigInt(new(big.Int)))
}

// toPoint converts e into gnark-crypto's representation.
// Returns an error if e is not a valid curve point.
func toPoint(e group.Element) (twistededwards.PointAffine, error) {
	var p twistededwards.PointAffine
	if err := group.CheckForm(group.BabyJubjub, e); err != nil {
		return p, err
	}
	x, y := e.Coordinates()
	if x.Cmp(fieldPrime) >= 0 || y.Cmp(fieldPrime) >= 0 {
		return p, fmt.Errorf("%w: coordinate out of field range", group.ErrEllipticCurve)
	}
	p.X.SetBigInt(x)
	p.Y.SetBigInt(y)
	if !p.IsOnCurve() {
		return p, fmt.Errorf("%w: point not on curve", group.ErrEllipticCurve)
	}
	return p, nil
}

// Kind returns [group.BabyJubjub].
func (g *BJJ) Kind() group.Kind { return group.BabyJubjub }

// Prime returns the BN254 scalar field modulus.
func (g *BJJ) Prime() *big.Int { return new(big.Int).Set(fieldPrime) }

// Order returns the order of the Baby Jubjub curve's prime-order subgroup.
func (g *BJJ) Order() *big.Int { return new(big.Int).Set(curveOrder) }

// Generator returns the standard base point for the Baby Jubjub curve.
func (g *BJJ) Generator() group.Element {
	base := twistededwards.GetEdwardsCurve().Base
	return fromPoint(&base)
}

// SecondGenerator returns h = SecondGeneratorScale·B.
func (g *BJJ) SecondGenerator() group.Element { return fromPoint(&g.h) }

// Identity returns (0, 1).
func (g *BJJ) Identity() group.Element {
	return group.NewCoordinate(big.NewInt(0), big.NewInt(1))
}

// Deserialize splits an even-length buffer into x and y.
func (g *BJJ) Deserialize(data []byte) (group.Element, error) {
	return group.Decode(data, group.BabyJubjub)
}

// IsOnCurve reports whether e satisfies a·x² + y² = 1 + d·x²·y².
func (g *BJJ) IsOnCurve(e group.Element) bool {
	_, err := toPoint(e)
	return err == nil
}

// Add returns a + b.
func (g *BJJ) Add(a, b group.Element) (group.Element, error) {
	pa, err := toPoint(a)
	if err != nil {
		return group.Element{}, err
	}
	pb, err := toPoint(b)
	if err != nil {
		return group.Element{}, err
	}
	var out twistededwards.PointAffine
	out.Add(&pa, &pb)
	return fromPoint(&out), nil
}

// Double returns 2·e.
func (g *BJJ) Double(e group.Element) (group.Element, error) {
	p, err := toPoint(e)
	if err != nil {
		return group.Element{}, err
	}
	var out twistededwards.PointAffine
	out.Double(&p)
	return fromPoint(&out), nil
}

// Scale returns k·e.
func (g *BJJ) Scale(e group.Element, k *big.Int) (group.Element, error) {
	p, err := toPoint(e)
	if err != nil {
		return group.Element{}, err
	}
	if k == nil || k.Sign() < 0 {
		return group.Element{}, fmt.Errorf("%w: scalar must be non-negative", group.ErrInvalidArguments)
	}
	var out twistededwards.PointAffine
	out.ScalarMultiplication(&p, k)
	return fromPoint(&out), nil
}

// GenerateChallenge draws a challenge uniformly from [0, curveOrder).
func (g *BJJ) GenerateChallenge(r io.Reader) (*big.Int, error) {
	return group.GenerateChallenge(r, curveOrder)
}

// SolveChallenge returns (k - c·x) mod curveOrder.
func (g *BJJ) SolveChallenge(x, k, c *big.Int) *big.Int {
	return group.SolveChallenge(x, k, c, curveOrder)
}

// VerifyProof accepts iff r1 = s·g + c·y1 and r2 = s·h + c·y2.
func (g *BJJ) VerifyProof(params *group.VerificationParams) (bool, error) {
	return group.CheckRelation(g, params)
}
