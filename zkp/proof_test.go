package zkp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/cpzkp/group"
)

func hashers() map[string]Hasher {
	return map[string]Hasher{
		"sha256":  &SHA256Hasher{},
		"blake2b": NewBlake2bHasher(),
		"blake3":  NewBlake3Hasher(),
		"default": nil,
	}
}

func TestProveVerify(t *testing.T) {
	for _, kind := range group.Kinds {
		grp := lookup(t, kind)
		for name, h := range hashers() {
			t.Run(kind.String()+"/"+name, func(t *testing.T) {
				r := testReader(21)
				key, err := GenerateKey(grp, r)
				require.NoError(t, err)

				proof, err := Prove(grp, h, key, r)
				require.NoError(t, err)
				require.Equal(t, kind, proof.Kind)

				ok, err := VerifyProof(grp, h, key.Y1, key.Y2, proof)
				require.NoError(t, err)
				require.True(t, ok)

				other, err := GenerateKey(grp, r)
				require.NoError(t, err)
				ok, err = VerifyProof(grp, h, other.Y1, other.Y2, proof)
				require.NoError(t, err)
				require.False(t, ok, "proof must not verify for another key")
			})
		}
	}
}

func TestVerifyProofRejectsTampering(t *testing.T) {
	grp := lookup(t, group.EllipticCurve)
	r := testReader(22)
	key, err := GenerateKey(grp, r)
	require.NoError(t, err)
	proof, err := Prove(grp, nil, key, r)
	require.NoError(t, err)

	t.Run("Response", func(t *testing.T) {
		bad := *proof
		bad.S = new(big.Int).Add(proof.S, big.NewInt(1))
		ok, err := VerifyProof(grp, nil, key.Y1, key.Y2, &bad)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("Challenge", func(t *testing.T) {
		bad := *proof
		bad.C = new(big.Int).Add(proof.C, big.NewInt(1))
		ok, err := VerifyProof(grp, nil, key.Y1, key.Y2, &bad)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("Commitment", func(t *testing.T) {
		bad := *proof
		bad.R1, bad.R2 = proof.R2, proof.R1
		ok, err := VerifyProof(grp, nil, key.Y1, key.Y2, &bad)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("Hasher", func(t *testing.T) {
		ok, err := VerifyProof(grp, &SHA256Hasher{}, key.Y1, key.Y2, proof)
		require.NoError(t, err)
		require.False(t, ok, "prover and verifier must agree on the hasher")
	})

	t.Run("WrongGroup", func(t *testing.T) {
		_, err := VerifyProof(lookup(t, group.Curve25519), nil, key.Y1, key.Y2, proof)
		require.ErrorIs(t, err, group.ErrInvalidGroupType)
	})
}

func TestProofMarshal(t *testing.T) {
	for _, kind := range group.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			grp := lookup(t, kind)
			r := testReader(23)
			key, err := GenerateKey(grp, r)
			require.NoError(t, err)
			proof, err := Prove(grp, nil, key, r)
			require.NoError(t, err)

			data, err := proof.MarshalBinary()
			require.NoError(t, err)

			var decoded Proof
			require.NoError(t, decoded.UnmarshalBinary(data))
			ok, err := VerifyProof(grp, nil, key.Y1, key.Y2, &decoded)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}

	t.Run("Incomplete", func(t *testing.T) {
		_, err := (&Proof{}).MarshalBinary()
		require.ErrorIs(t, err, group.ErrInvalidSerialization)
	})

	t.Run("Negative", func(t *testing.T) {
		grp := lookup(t, group.Scalar)
		bad := &Proof{
			Kind: group.Scalar,
			R1:   group.NewScalar(big.NewInt(-5)),
			R2:   grp.Generator(),
			C:    big.NewInt(1),
			S:    big.NewInt(1),
		}
		_, err := bad.MarshalBinary()
		require.ErrorIs(t, err, group.ErrInvalidSerialization)

		bad.R1 = grp.Generator()
		bad.S = big.NewInt(-1)
		_, err = bad.MarshalBinary()
		require.ErrorIs(t, err, group.ErrInvalidSerialization)
	})

	t.Run("Garbage", func(t *testing.T) {
		var p Proof
		require.ErrorIs(t, p.UnmarshalBinary([]byte{0xff, 0x00}), group.ErrInvalidSerialization)
	})
}

func TestHashers(t *testing.T) {
	q := big.NewInt(5004)
	for name, h := range hashers() {
		if h == nil {
			continue
		}
		t.Run(name, func(t *testing.T) {
			a := h.Challenge(q, []byte("ab"), []byte("c"))
			b := h.Challenge(q, []byte("ab"), []byte("c"))
			require.Zero(t, a.Cmp(b), "deterministic")
			require.Negative(t, a.Cmp(q))
			require.GreaterOrEqual(t, a.Sign(), 0)

			// Entries are framed, so moving a byte across a boundary changes
			// the challenge. With q this small a collision is possible, so
			// compare over a wide modulus.
			wide := new(big.Int).Lsh(big.NewInt(1), 250)
			x := h.Challenge(wide, []byte("ab"), []byte("c"))
			y := h.Challenge(wide, []byte("a"), []byte("bc"))
			require.NotZero(t, x.Cmp(y))
		})
	}

	t.Run("Domains", func(t *testing.T) {
		wide := new(big.Int).Lsh(big.NewInt(1), 250)
		a := NewBlake3Hasher().Challenge(wide, []byte("m"))
		b := (&Blake3Hasher{Context: "other"}).Challenge(wide, []byte("m"))
		require.NotZero(t, a.Cmp(b))

		c := NewBlake2bHasher().Challenge(wide, []byte("m"))
		d := (&Blake2bHasher{Prefix: "other"}).Challenge(wide, []byte("m"))
		require.NotZero(t, c.Cmp(d))
	})
}
