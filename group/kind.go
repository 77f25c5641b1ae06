package group

import (
	"fmt"
	"strings"
)

// Kind selects the cyclic group a proof runs in. The zero value is
// [Scalar], which is also the default for absent input in [ParseKind].
type Kind uint8

const (
	// Scalar is the multiplicative group of integers modulo a prime.
	Scalar Kind = iota
	// EllipticCurve is the secp256k1 short-Weierstrass curve group.
	EllipticCurve
	// Curve25519 is the edwards25519 twisted Edwards group.
	Curve25519
	// BabyJubjub is the twisted Edwards curve over the BN254 scalar field.
	BabyJubjub
)

// Kinds lists every supported group kind.
var Kinds = []Kind{Scalar, EllipticCurve, Curve25519, BabyJubjub}

// String returns the canonical selector for k.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case EllipticCurve:
		return "elliptic"
	case Curve25519:
		return "curve25519"
	case BabyJubjub:
		return "babyjubjub"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of [Kinds].
func (k Kind) Valid() bool {
	return k <= BabyJubjub
}

// Form returns the element variant used by groups of kind k.
func (k Kind) Form() Form {
	if k == Scalar {
		return FormScalar
	}
	return FormCoordinate
}

// ParseKind maps free-form input to a Kind. Matching ignores case,
// surrounding whitespace and a leading "--", so command line flags such as
// "--elliptic" are accepted. Empty input selects [Scalar]; any other
// unrecognized value fails with [ErrInvalidGroupType].
func ParseKind(s string) (Kind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "--")
	switch v {
	case "", "scalar":
		return Scalar, nil
	case "elliptic", "ec", "secp256k1":
		return EllipticCurve, nil
	case "curve25519", "ed25519":
		return Curve25519, nil
	case "babyjubjub", "bjj":
		return BabyJubjub, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGroupType, s)
}
