package curve25519

import (
	"math/big"
	"math/rand/v2"
	"slices"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/cpzkp/group"
)

func newGroup(t *testing.T) *Group {
	t.Helper()
	g, err := New()
	require.NoError(t, err)
	return g
}

func edScalar(t *testing.T, k *big.Int) *edwards25519.Scalar {
	t.Helper()
	var buf [32]byte
	new(big.Int).Mod(k, subgroupOrder).FillBytes(buf[:])
	slices.Reverse(buf[:])
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	require.NoError(t, err)
	return s
}

func randomScalar(rng *rand.ChaCha8) *big.Int {
	buf := make([]byte, 40)
	rng.Read(buf)
	k := new(big.Int).SetBytes(buf)
	return k.Mod(k, subgroupOrder)
}

func TestParameters(t *testing.T) {
	g := newGroup(t)
	require.True(t, g.IsOnCurve(g.Generator()))
	require.True(t, g.IsOnCurve(g.SecondGenerator()))
	require.True(t, g.IsOnCurve(g.Identity()))
	require.False(t, g.SecondGenerator().Equal(g.Generator()))

	want := new(edwards25519.Point).ScalarBaseMult(edScalar(t, big.NewInt(SecondGeneratorScale)))
	require.True(t, g.SecondGenerator().Equal(fromPoint(want)))

	// The base point has x positive and y = 4/5.
	_, y := g.Generator().Coordinates()
	four := big.NewInt(4)
	five := new(big.Int).ModInverse(big.NewInt(5), fieldPrime)
	require.Zero(t, y.Cmp(four.Mul(four, five).Mod(four, fieldPrime)))
}

func TestScaleMatchesReference(t *testing.T) {
	g := newGroup(t)
	rng := rand.NewChaCha8([32]byte{1})
	for i := 0; i < 20; i++ {
		k := randomScalar(rng)
		got, err := g.Scale(g.Generator(), k)
		require.NoError(t, err)
		want := new(edwards25519.Point).ScalarBaseMult(edScalar(t, k))
		require.True(t, got.Equal(fromPoint(want)), "k=%s", k)

		gotH, err := g.Scale(g.SecondGenerator(), k)
		require.NoError(t, err)
		wantH := new(edwards25519.Point).ScalarMult(edScalar(t, k), g.h)
		require.True(t, gotH.Equal(fromPoint(wantH)), "k=%s", k)
	}
}

func TestGroupLaw(t *testing.T) {
	g := newGroup(t)
	rng := rand.NewChaCha8([32]byte{2})
	id := g.Identity()

	t.Run("ScaleZero", func(t *testing.T) {
		got, err := g.Scale(g.Generator(), big.NewInt(0))
		require.NoError(t, err)
		require.True(t, got.Equal(id))
	})

	t.Run("ScaleOrder", func(t *testing.T) {
		got, err := g.Scale(g.Generator(), g.Order())
		require.NoError(t, err)
		require.True(t, got.Equal(id))
	})

	t.Run("Homomorphism", func(t *testing.T) {
		a, b := randomScalar(rng), randomScalar(rng)
		pa, _ := g.Scale(g.Generator(), a)
		pb, _ := g.Scale(g.Generator(), b)
		sum, err := g.Add(pa, pb)
		require.NoError(t, err)
		pab, err := g.Scale(g.Generator(), new(big.Int).Add(a, b))
		require.NoError(t, err)
		require.True(t, sum.Equal(pab))
	})

	t.Run("Double", func(t *testing.T) {
		d, err := g.Double(g.Generator())
		require.NoError(t, err)
		two, err := g.Scale(g.Generator(), big.NewInt(2))
		require.NoError(t, err)
		require.True(t, d.Equal(two))
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		p, _ := g.Scale(g.Generator(), randomScalar(rng))
		restored, err := g.Deserialize(p.Bytes())
		require.NoError(t, err)
		require.True(t, restored.Equal(p))
	})

	t.Run("RejectsOffCurve", func(t *testing.T) {
		x, y := g.Generator().Coordinates()
		bad := group.NewCoordinate(x, y.Add(y, big.NewInt(1)))
		require.False(t, g.IsOnCurve(bad))
		_, err := g.Add(bad, g.Generator())
		require.ErrorIs(t, err, group.ErrEllipticCurve)
	})
}

func TestVerifyProof(t *testing.T) {
	g := newGroup(t)
	rng := rand.NewChaCha8([32]byte{3})
	x, k := randomScalar(rng), randomScalar(rng)
	c, err := g.GenerateChallenge(rng)
	require.NoError(t, err)

	y1, _ := g.Scale(g.Generator(), x)
	y2, _ := g.Scale(g.SecondGenerator(), x)
	r1, _ := g.Scale(g.Generator(), k)
	r2, _ := g.Scale(g.SecondGenerator(), k)
	params := &group.VerificationParams{
		Kind: group.Curve25519,
		R1:   r1, R2: r2,
		Y1: y1, Y2: y2,
		G: g.Generator(), H: g.SecondGenerator(),
		C: c, S: g.SolveChallenge(x, k, c), P: g.Prime(),
	}
	ok, err := g.VerifyProof(params)
	require.NoError(t, err)
	require.True(t, ok)

	params.C = new(big.Int).Add(c, big.NewInt(1))
	ok, err = g.VerifyProof(params)
	require.NoError(t, err)
	require.False(t, ok)
}
