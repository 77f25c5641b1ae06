package sample

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/google/uuid"
)

// NumberBytes is the width of the integers returned by [Number].
const NumberBytes = 32

const maxIterations = 255

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ErrRandomGeneration is returned when the random source fails or cannot
// produce an acceptable value.
var ErrRandomGeneration = errors.New("random generation error")

// ErrInvalidModulus is returned when sampling is requested below a
// non-positive bound.
var ErrInvalidModulus = errors.New("sample: modulus must be positive")

// ErrInvalidLength is returned for a negative byte count.
var ErrInvalidLength = errors.New("sample: length must be non-negative")

func read(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("%w: %v", ErrRandomGeneration, err)
	}
	return nil
}

// Bytes returns n bytes read from r.
func Bytes(r io.Reader, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	buf := make([]byte, n)
	if err := read(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Number returns an integer built from NumberBytes random bytes,
// interpreted big-endian.
func Number(r io.Reader) (*big.Int, error) {
	buf, err := Bytes(r, NumberBytes)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(buf), nil
}

// ModN samples an element of ℤₙ uniformly by rejection.
func ModN(r io.Reader, n *big.Int) (*big.Int, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	m := saferith.ModulusFromBytes(n.Bytes())
	buf := make([]byte, (n.BitLen()+7)/8)
	// Top byte is masked to the bit length of n so that each draw is
	// accepted with probability at least 1/2.
	mask := byte(0xff)
	if excess := len(buf)*8 - n.BitLen(); excess > 0 {
		mask >>= uint(excess)
	}
	out := new(saferith.Nat)
	for i := 0; i < maxIterations; i++ {
		if err := read(r, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask
		out.SetBytes(buf)
		if _, _, lt := out.CmpMod(m); lt == 1 {
			return out.Big(), nil
		}
	}
	return nil, fmt.Errorf("%w: no value below modulus after %d draws", ErrRandomGeneration, maxIterations)
}

// NonZeroModN samples an element of [1, n).
func NonZeroModN(r io.Reader, n *big.Int) (*big.Int, error) {
	for i := 0; i < maxIterations; i++ {
		v, err := ModN(r, n)
		if err != nil {
			return nil, err
		}
		if v.Sign() != 0 {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: no non-zero value after %d draws", ErrRandomGeneration, maxIterations)
}

// String returns a random alphanumeric string of length n.
func String(r io.Reader, n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	// 62*4 = 248, bytes at or above it are rejected to keep the alphabet uniform.
	const limit = byte(len(alphanumeric) * 4)
	for iter := 0; len(out) < n; iter++ {
		if iter == maxIterations {
			return "", fmt.Errorf("%w: string sampling exhausted", ErrRandomGeneration)
		}
		if err := read(r, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphanumeric[int(b)%len(alphanumeric)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}

// ID returns a random (version 4) UUID drawn from r.
func ID(r io.Reader) (uuid.UUID, error) {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrRandomGeneration, err)
	}
	return id, nil
}
