package zkp

import (
	"fmt"
	"sync"

	"github.com/f3rmion/cpzkp/bjj"
	"github.com/f3rmion/cpzkp/curve25519"
	"github.com/f3rmion/cpzkp/group"
	"github.com/f3rmion/cpzkp/modp"
	"github.com/f3rmion/cpzkp/secp256k1"
)

// providers derive each group once; the results are immutable and shared
// by all callers.
var providers = map[group.Kind]func() (group.Group, error){
	group.Scalar: func() (group.Group, error) { return modp.Default(), nil },
	group.EllipticCurve: sync.OnceValues(func() (group.Group, error) {
		return secp256k1.New()
	}),
	group.Curve25519: sync.OnceValues(func() (group.Group, error) {
		return curve25519.New()
	}),
	group.BabyJubjub: sync.OnceValues(func() (group.Group, error) {
		return bjj.New()
	}),
}

// Lookup returns the group for kind with its deployment parameters.
func Lookup(kind group.Kind) (group.Group, error) {
	provider, ok := providers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", group.ErrInvalidGroupType, kind)
	}
	return provider()
}

// Parameters returns (p, q, g, h) for kind.
func Parameters(kind group.Kind) (*group.Params, error) {
	g, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	return group.ParamsOf(g), nil
}
