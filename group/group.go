package group

import (
	"fmt"
	"io"
	"math/big"
)

// Group is one cyclic group the Chaum-Pedersen protocol can run in.
//
// A Group is selected once, by [Kind], and every element passed to its
// methods must have the variant given by Kind().Form(). Methods reject other
// variants with [ErrPointTypeMismatch]. Implementations are immutable and
// safe for concurrent use.
type Group interface {
	// Kind returns the kind this group implements.
	Kind() Kind
	// Prime returns the modulus of the underlying field.
	Prime() *big.Int
	// Order returns the order of the subgroup generated by Generator.
	// Exponents and challenges are reduced modulo this value.
	Order() *big.Int
	// Generator returns g.
	Generator() Element
	// SecondGenerator returns h, independent of g.
	SecondGenerator() Element
	// Identity returns the neutral element.
	Identity() Element

	// Deserialize parses the wire encoding of an element of this group.
	Deserialize(data []byte) (Element, error)
	// IsOnCurve reports whether e satisfies the group's curve equation.
	// Scalar elements are trivially accepted.
	IsOnCurve(e Element) bool
	// Add applies the group law to a and b.
	Add(a, b Element) (Element, error)
	// Double returns e combined with itself. For the Scalar group this is
	// a no-op, since repeated application is handled by Scale.
	Double(e Element) (Element, error)
	// Scale returns e raised to (Scalar) or multiplied by (Coordinate) k.
	// k must be non-negative; Scale(e, 0) is the identity.
	Scale(e Element, k *big.Int) (Element, error)

	// GenerateChallenge draws a uniform challenge in [0, Order()) from r.
	GenerateChallenge(r io.Reader) (*big.Int, error)
	// SolveChallenge returns s = (k - c·x) mod Order().
	SolveChallenge(x, k, c *big.Int) *big.Int
	// VerifyProof checks one Chaum-Pedersen transcript. An algebraic
	// mismatch returns false and a nil error.
	VerifyProof(params *VerificationParams) (bool, error)
}

// Params are the public constants both protocol participants must share.
type Params struct {
	Kind Kind
	P    *big.Int
	Q    *big.Int
	G    Element
	H    Element
}

// ParamsOf collects the public constants of g.
func ParamsOf(g Group) *Params {
	return &Params{
		Kind: g.Kind(),
		P:    g.Prime(),
		Q:    g.Order(),
		G:    g.Generator(),
		H:    g.SecondGenerator(),
	}
}

// Equal reports whether p and o describe the same group.
func (p *Params) Equal(o *Params) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Kind == o.Kind &&
		p.P.Cmp(o.P) == 0 &&
		p.Q.Cmp(o.Q) == 0 &&
		p.G.Equal(o.G) &&
		p.H.Equal(o.H)
}

// VerificationParams is the complete input to one verification:
// commitments R1, R2, public values Y1, Y2, generators G, H, challenge C,
// response S and prime P, all in a group of the given Kind.
type VerificationParams struct {
	Kind   Kind
	R1, R2 Element
	Y1, Y2 Element
	G, H   Element
	C, S   *big.Int
	P      *big.Int
}

// Validate checks that params are structurally usable: integers present
// and non-negative, and the six elements sharing one variant that matches
// Kind.
func (params *VerificationParams) Validate() error {
	if params == nil {
		return fmt.Errorf("%w: nil verification params", ErrInvalidArguments)
	}
	if params.C == nil || params.S == nil || params.P == nil {
		return fmt.Errorf("%w: challenge, response and prime are required", ErrInvalidArguments)
	}
	if params.C.Sign() < 0 || params.S.Sign() < 0 || params.P.Sign() <= 0 {
		return fmt.Errorf("%w: negative challenge, response or prime", ErrInvalidArguments)
	}
	if !params.Kind.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidGroupType, params.Kind)
	}
	if !SameForm(params.R1, params.R2, params.Y1, params.Y2, params.G, params.H) {
		return ErrPointTypeMismatch
	}
	if params.G.Form() != params.Kind.Form() {
		return fmt.Errorf("%w: %s elements in a %s group", ErrPointTypeMismatch, params.G.Form(), params.Kind)
	}
	return nil
}
