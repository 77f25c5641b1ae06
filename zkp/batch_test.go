package zkp

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/cpzkp/group"
	"github.com/f3rmion/cpzkp/modp"
)

func TestVerifyBatch(t *testing.T) {
	var params []*group.VerificationParams
	var want []bool
	for _, kind := range group.Kinds {
		grp := lookup(t, kind)
		r := testReader(31 + byte(kind))
		key, err := GenerateKey(grp, r)
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			p := transcriptFor(t, grp, key, r)
			if i%2 == 1 {
				p.S = new(big.Int).Add(p.S, big.NewInt(1))
				p.S.Mod(p.S, grp.Order())
			}
			params = append(params, p)
			want = append(want, i%2 == 0)
		}
	}

	t.Run("Results", func(t *testing.T) {
		got, err := VerifyBatch(context.Background(), params)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := VerifyBatch(context.Background(), nil)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("EvaluationError", func(t *testing.T) {
		broken := append([]*group.VerificationParams{}, params...)
		bad := *broken[2]
		bad.Y1 = group.NewCoordinate(big.NewInt(1), big.NewInt(2))
		broken[2] = &bad
		_, err := VerifyBatch(context.Background(), broken)
		require.ErrorIs(t, err, group.ErrPointTypeMismatch)
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := VerifyBatch(ctx, params)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestVerifyBatchIn(t *testing.T) {
	toy, err := modp.New(big.NewInt(23), big.NewInt(11), big.NewInt(4), big.NewInt(9))
	require.NoError(t, err)
	r := testReader(41)
	key, err := GenerateKey(toy, r)
	require.NoError(t, err)
	params := []*group.VerificationParams{
		transcriptFor(t, toy, key, r),
		transcriptFor(t, toy, key, r),
	}

	got, err := VerifyBatchIn(context.Background(), toy, params)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true}, got)

	// Entries are checked in the given group, not the one registered for
	// their kind.
	_, err = VerifyBatchIn(context.Background(), lookup(t, group.Curve25519), params)
	require.ErrorIs(t, err, group.ErrPointTypeMismatch)

	_, err = VerifyBatchIn(context.Background(), nil, params)
	require.ErrorIs(t, err, group.ErrInvalidArguments)
}
