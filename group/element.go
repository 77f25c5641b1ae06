package group

import (
	"fmt"
	"math/big"
)

// Form is the variant tag of an [Element].
type Form uint8

const (
	// FormScalar tags a single integer modulo the group prime.
	FormScalar Form = iota + 1
	// FormCoordinate tags an affine (x, y) curve point.
	FormCoordinate
)

func (f Form) String() string {
	switch f {
	case FormScalar:
		return "scalar"
	case FormCoordinate:
		return "coordinate"
	default:
		return "invalid"
	}
}

// Element is a group element: either a single modular scalar or a
// two-coordinate curve point. Elements are values; constructors and
// accessors copy the underlying integers, so an Element never shares
// mutable state with its caller.
//
// The zero Element has no variant and is rejected by every operation.
type Element struct {
	form Form
	x, y *big.Int
}

func clone(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// NewScalar returns the Scalar element v. A nil v is read as zero. v must be
// non-negative: the wire encoding carries magnitudes only, and
// [Element.MarshalBinary] rejects a negative element.
func NewScalar(v *big.Int) Element {
	return Element{form: FormScalar, x: clone(v)}
}

// NewCoordinate returns the Coordinate element (x, y). Nil coordinates are
// read as zero. Like [NewScalar], both must be non-negative to encode.
func NewCoordinate(x, y *big.Int) Element {
	return Element{form: FormCoordinate, x: clone(x), y: clone(y)}
}

// Form returns the variant of e.
func (e Element) Form() Form {
	return e.form
}

// Negative reports whether any integer of e is below zero.
func (e Element) Negative() bool {
	switch e.form {
	case FormScalar:
		return e.x.Sign() < 0
	case FormCoordinate:
		return e.x.Sign() < 0 || e.y.Sign() < 0
	default:
		return false
	}
}

// Valid reports whether e carries a variant.
func (e Element) Valid() bool {
	return e.form == FormScalar || e.form == FormCoordinate
}

// Value returns the integer of a Scalar element, or nil for any other
// variant.
func (e Element) Value() *big.Int {
	if e.form != FormScalar {
		return nil
	}
	return clone(e.x)
}

// Coordinates returns (x, y) of a Coordinate element, or (nil, nil) for any
// other variant.
func (e Element) Coordinates() (x, y *big.Int) {
	if e.form != FormCoordinate {
		return nil, nil
	}
	return clone(e.x), clone(e.y)
}

// Equal reports whether e and o have the same variant and value.
func (e Element) Equal(o Element) bool {
	if e.form != o.form || !e.Valid() {
		return false
	}
	if e.x.Cmp(o.x) != 0 {
		return false
	}
	return e.form == FormScalar || e.y.Cmp(o.y) == 0
}

// Bytes returns the wire encoding of e. Signs are dropped, so Bytes of a
// negative element does not decode back to it.
//
// A Scalar encodes as the big-endian bytes of its integer with no padding.
// A Coordinate encodes as x followed by y, both big-endian and left-padded
// with zeros to the length of the longer one, so the buffer always splits
// evenly. An invalid Element encodes as nil.
func (e Element) Bytes() []byte {
	switch e.form {
	case FormScalar:
		return e.x.Bytes()
	case FormCoordinate:
		xb, yb := e.x.Bytes(), e.y.Bytes()
		n := max(len(xb), len(yb))
		out := make([]byte, 2*n)
		copy(out[n-len(xb):n], xb)
		copy(out[2*n-len(yb):], yb)
		return out
	default:
		return nil
	}
}

// MarshalBinary implements encoding.BinaryMarshaler using [Element.Bytes].
func (e Element) MarshalBinary() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: element has no variant", ErrInvalidSerialization)
	}
	if e.Negative() {
		return nil, fmt.Errorf("%w: negative %s", ErrInvalidSerialization, e)
	}
	return e.Bytes(), nil
}

// Decode parses data as an element of a group of the given kind. It is the
// exact inverse of [Element.Bytes].
func Decode(data []byte, kind Kind) (Element, error) {
	if !kind.Valid() {
		return Element{}, fmt.Errorf("%w: %s", ErrInvalidGroupType, kind)
	}
	if kind.Form() == FormScalar {
		return NewScalar(new(big.Int).SetBytes(data)), nil
	}
	if len(data)%2 != 0 {
		return Element{}, fmt.Errorf("%w: the length of a serialized point must be even, got %d", ErrInvalidSerialization, len(data))
	}
	half := len(data) / 2
	return NewCoordinate(
		new(big.Int).SetBytes(data[:half]),
		new(big.Int).SetBytes(data[half:]),
	), nil
}

// SameForm reports whether all elements are valid and share one variant.
func SameForm(elems ...Element) bool {
	if len(elems) == 0 {
		return true
	}
	f := elems[0].form
	for _, e := range elems {
		if !e.Valid() || e.form != f {
			return false
		}
	}
	return true
}

func (e Element) String() string {
	switch e.form {
	case FormScalar:
		return fmt.Sprintf("Scalar(%s)", e.x)
	case FormCoordinate:
		return fmt.Sprintf("Coordinate(%s, %s)", e.x, e.y)
	default:
		return "Element(invalid)"
	}
}
