package group

import (
	"errors"

	"github.com/f3rmion/cpzkp/sample"
)

// Error kinds surfaced by every fallible operation in this module.
// Wrapped errors carry extra context; match them with [errors.Is].
var (
	// ErrInvalidArguments reports a structurally invalid call.
	ErrInvalidArguments = errors.New("invalid arguments provided")
	// ErrPointTypeMismatch reports operands of different element variants.
	ErrPointTypeMismatch = errors.New("mismatched point types in operation")
	// ErrInvalidSerialization reports a malformed encoding.
	ErrInvalidSerialization = errors.New("serialization error")
	// ErrEllipticCurve reports curve arithmetic reaching a state that
	// cannot be represented where a finite point is required.
	ErrEllipticCurve = errors.New("elliptic curve error")
	// ErrInvalidGroupType reports an unrecognized group kind selector.
	ErrInvalidGroupType = errors.New("invalid group type specified")
	// ErrRandomGeneration reports that secure randomness was unavailable.
	ErrRandomGeneration = sample.ErrRandomGeneration
)
