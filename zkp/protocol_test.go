package zkp

import (
	"math/big"
	"math/rand/v2"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/cpzkp/group"
	"github.com/f3rmion/cpzkp/modp"
)

func testReader(seed byte) *rand.ChaCha8 {
	return rand.NewChaCha8([32]byte{seed})
}

func lookup(t *testing.T, kind group.Kind) group.Group {
	t.Helper()
	grp, err := Lookup(kind)
	require.NoError(t, err)
	return grp
}

// transcriptFor runs one interactive round in grp and returns its
// verification input.
func transcriptFor(t *testing.T, grp group.Group, key *KeyPair, r *rand.ChaCha8) *group.VerificationParams {
	t.Helper()
	q := grp.Order()
	k, err := grp.GenerateChallenge(r)
	require.NoError(t, err)
	c, err := grp.GenerateChallenge(r)
	require.NoError(t, err)

	r1, r2, err := Commit(grp, k, grp.Generator(), grp.SecondGenerator())
	require.NoError(t, err)
	s, err := SolveChallenge(key.Secret, k, c, q)
	require.NoError(t, err)
	return &group.VerificationParams{
		Kind: grp.Kind(),
		R1:   r1, R2: r2,
		Y1: key.Y1, Y2: key.Y2,
		G: grp.Generator(), H: grp.SecondGenerator(),
		C: c, S: s, P: grp.Prime(),
	}
}

func TestLookup(t *testing.T) {
	for _, kind := range group.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			a := lookup(t, kind)
			b := lookup(t, kind)
			require.Same(t, a, b, "groups are derived once")
			require.Equal(t, kind, a.Kind())

			params, err := Parameters(kind)
			require.NoError(t, err)
			require.Equal(t, kind, params.Kind)
			require.True(t, params.G.Equal(a.Generator()))
			require.False(t, params.H.Equal(params.G))
			require.False(t, params.H.Equal(a.Identity()))
		})
	}

	_, err := Lookup(group.Kind(99))
	require.ErrorIs(t, err, group.ErrInvalidGroupType)
	_, err = Parameters(group.Kind(99))
	require.ErrorIs(t, err, group.ErrInvalidGroupType)
}

func TestSoundness(t *testing.T) {
	for _, kind := range group.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			grp := lookup(t, kind)
			r := testReader(byte(kind) + 1)
			key, err := GenerateKey(grp, r)
			require.NoError(t, err)

			for i := 0; i < 5; i++ {
				params := transcriptFor(t, grp, key, r)
				ok, err := Verify(params)
				require.NoError(t, err)
				require.True(t, ok)

				params.S = new(big.Int).Add(params.S, big.NewInt(1))
				params.S.Mod(params.S, grp.Order())
				ok, err = Verify(params)
				require.NoError(t, err)
				require.False(t, ok, "perturbed response must be rejected")
			}
		})
	}
}

func TestToyScalarGroup(t *testing.T) {
	grp, err := modp.New(big.NewInt(23), big.NewInt(11), big.NewInt(4), big.NewInt(9))
	require.NoError(t, err)

	key, err := KeyFromSecret(grp, big.NewInt(6))
	require.NoError(t, err)
	require.True(t, key.Y1.Equal(group.NewScalar(big.NewInt(2))))
	require.True(t, key.Y2.Equal(group.NewScalar(big.NewInt(3))))

	r1, r2, err := Commit(grp, big.NewInt(7), grp.Generator(), grp.SecondGenerator())
	require.NoError(t, err)
	require.True(t, r1.Equal(group.NewScalar(big.NewInt(8))))
	require.True(t, r2.Equal(group.NewScalar(big.NewInt(4))))

	s, err := SolveChallenge(key.Secret, big.NewInt(7), big.NewInt(4), grp.Order())
	require.NoError(t, err)
	require.Equal(t, int64(5), s.Int64())

	params := &group.VerificationParams{
		Kind: group.Scalar,
		R1:   r1, R2: r2,
		Y1: key.Y1, Y2: key.Y2,
		G: grp.Generator(), H: grp.SecondGenerator(),
		C: big.NewInt(4), S: s, P: grp.Prime(),
	}
	for _, verify := range []func(*group.VerificationParams) (bool, error){
		Verify,
		func(p *group.VerificationParams) (bool, error) { return VerifyIn(grp, p) },
	} {
		ok, err := verify(params)
		require.NoError(t, err)
		require.True(t, ok)
	}

	params.S = big.NewInt(4)
	ok, err := Verify(params)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCommitErrors(t *testing.T) {
	grp := lookup(t, group.EllipticCurve)

	_, _, err := Commit(grp, big.NewInt(3), grp.Generator(), group.NewScalar(big.NewInt(2)))
	require.ErrorIs(t, err, group.ErrPointTypeMismatch)

	scalars := lookup(t, group.Scalar)
	_, _, err = Commit(grp, big.NewInt(3), scalars.Generator(), scalars.SecondGenerator())
	require.ErrorIs(t, err, group.ErrPointTypeMismatch, "scalar generators in a curve group")

	_, _, err = Commit(grp, nil, grp.Generator(), grp.SecondGenerator())
	require.ErrorIs(t, err, group.ErrInvalidArguments)
}

func TestVerifyErrors(t *testing.T) {
	grp := lookup(t, group.Curve25519)
	key, err := GenerateKey(grp, testReader(11))
	require.NoError(t, err)
	params := transcriptFor(t, grp, key, testReader(12))

	mixed := *params
	mixed.R1 = group.NewScalar(big.NewInt(5))
	_, err = Verify(&mixed)
	require.ErrorIs(t, err, group.ErrPointTypeMismatch)

	wrongKind := *params
	wrongKind.Kind = group.Scalar
	_, err = Verify(&wrongKind)
	require.ErrorIs(t, err, group.ErrPointTypeMismatch)

	missing := *params
	missing.C = nil
	_, err = Verify(&missing)
	require.ErrorIs(t, err, group.ErrInvalidArguments)

	_, err = VerifyIn(nil, params)
	require.ErrorIs(t, err, group.ErrInvalidArguments)
}

func TestSolveChallengeErrors(t *testing.T) {
	one := big.NewInt(1)
	_, err := SolveChallenge(nil, one, one, one)
	require.ErrorIs(t, err, group.ErrInvalidArguments)
	_, err = SolveChallenge(one, one, one, big.NewInt(0))
	require.ErrorIs(t, err, group.ErrInvalidArguments)
	_, err = SolveChallenge(one, big.NewInt(-1), one, big.NewInt(11))
	require.ErrorIs(t, err, group.ErrInvalidArguments)
}

func TestGenerateKey(t *testing.T) {
	grp := lookup(t, group.BabyJubjub)
	key, err := GenerateKey(grp, testReader(13))
	require.NoError(t, err)
	require.Positive(t, key.Secret.Sign())
	require.Negative(t, key.Secret.Cmp(grp.Order()))

	again, err := KeyFromSecret(grp, key.Secret)
	require.NoError(t, err)
	require.True(t, again.Y1.Equal(key.Y1))
	require.True(t, again.Y2.Equal(key.Y2))

	_, err = GenerateKey(grp, iotest.ErrReader(iotest.ErrTimeout))
	require.ErrorIs(t, err, group.ErrRandomGeneration)

	_, err = KeyFromSecret(grp, big.NewInt(-5))
	require.ErrorIs(t, err, group.ErrInvalidArguments)
}
