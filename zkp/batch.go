package zkp

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/cpzkp/group"
)

// VerifyBatch verifies every parameter set concurrently with [Verify] and
// returns one result per entry, in order. The first entry that cannot be
// evaluated cancels the remaining work and its error is returned, prefixed
// with the entry index. A cancelled ctx stops the batch with ctx.Err().
func VerifyBatch(ctx context.Context, params []*group.VerificationParams) ([]bool, error) {
	return verifyBatch(ctx, params, Verify)
}

// VerifyBatchIn is VerifyBatch with every entry checked in grp, as
// [VerifyIn] does.
func VerifyBatchIn(ctx context.Context, grp group.Group, params []*group.VerificationParams) ([]bool, error) {
	if grp == nil {
		return nil, fmt.Errorf("%w: nil group", group.ErrInvalidArguments)
	}
	return verifyBatch(ctx, params, func(p *group.VerificationParams) (bool, error) {
		return VerifyIn(grp, p)
	})
}

func verifyBatch(ctx context.Context, params []*group.VerificationParams, verify func(*group.VerificationParams) (bool, error)) ([]bool, error) {
	results := make([]bool, len(params))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range params {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := verify(p)
			if err != nil {
				return fmt.Errorf("batch entry %d: %w", i, err)
			}
			results[i] = ok
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
