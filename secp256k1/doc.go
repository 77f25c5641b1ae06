// Package secp256k1 provides the EllipticCurve kind of [group.Group] over
// the secp256k1 short-Weierstrass curve.
//
// The curve constants (field prime, group order and base point) are taken
// from github.com/decred/dcrd/dcrec/secp256k1/v4. The arithmetic itself is
// written out on affine coordinates:
//
//   - doubling uses λ = (3x² + a) / 2y with the inverse computed as
//     (2y)^(p-2) mod p
//   - scalar multiplication is double-and-add over the bits of the
//     exponent, least significant first
//
// # Identity
//
// The point at infinity is the Coordinate (0, 0). It is reachable through
// Scale(P, 0), P + (-P) and doubling a point with y = 0, and it serializes
// to the empty buffer.
//
// # Security
//
// This arithmetic is not constant time. It is meant for proofs whose
// secrets do not need protection against timing side channels, and for
// cross-checking other implementations.
package secp256k1
