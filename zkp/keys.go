package zkp

import (
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/cpzkp/group"
	"github.com/f3rmion/cpzkp/sample"
)

// KeyPair is a prover's secret x with its public values y1 = g^x and
// y2 = h^x.
type KeyPair struct {
	Secret *big.Int
	Y1, Y2 group.Element
}

// GenerateKey draws x uniformly from [1, q) and derives its public values.
func GenerateKey(grp group.Group, r io.Reader) (*KeyPair, error) {
	x, err := sample.NonZeroModN(r, grp.Order())
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return KeyFromSecret(grp, x)
}

// KeyFromSecret derives the public values of a known secret.
func KeyFromSecret(grp group.Group, x *big.Int) (*KeyPair, error) {
	if x == nil || x.Sign() < 0 {
		return nil, fmt.Errorf("%w: secret must be non-negative", group.ErrInvalidArguments)
	}
	y1, y2, err := Commit(grp, x, grp.Generator(), grp.SecondGenerator())
	if err != nil {
		return nil, err
	}
	return &KeyPair{Secret: new(big.Int).Set(x), Y1: y1, Y2: y2}, nil
}
