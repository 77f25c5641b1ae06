// Package group defines the group abstraction shared by every
// Chaum-Pedersen proof in this module.
//
// The package provides:
//
//   - [Kind]: the closed set of supported groups and [ParseKind] for
//     selecting one from free-form input
//   - [Element]: a tagged value that is either a single modular scalar or a
//     two-coordinate curve point, with its fixed wire encoding
//   - [Group]: the per-kind arithmetic (scale, double, add, curve
//     membership, challenge generation and solving, verification)
//   - [Params] and [VerificationParams]: the public constants of a group and
//     the complete input to one verification
//
// # Element Variants
//
// Operands of one operation must share a variant. Mixing a Scalar with a
// Coordinate is never silently coerced; it fails with
// [ErrPointTypeMismatch]:
//
//	_, err := g.Add(group.NewScalar(a), group.NewCoordinate(x, y))
//	// errors.Is(err, group.ErrPointTypeMismatch) == true
//
// # Wire Format
//
// A Scalar encodes as its raw big-endian integer. A Coordinate encodes as
// two big-endian integers zero-padded to a common length, so the buffer
// length is always even:
//
//	group.NewCoordinate(big.NewInt(65256), big.NewInt(8475)).Bytes()
//	// [0xfe 0xe8 0x21 0x1b]
//
// # Implementing a Group
//
// See the modp, secp256k1, curve25519 and bjj packages. Curve groups can
// reuse [CheckRelation] for VerifyProof and [SolveChallenge] and
// [GenerateChallenge] for the response and challenge steps.
package group
