// Package curve25519 provides the Curve25519 kind of [group.Group] on the
// edwards25519 curve, using filippo.io/edwards25519 for point arithmetic.
//
// Points cross the [group.Element] boundary as affine (x, y) coordinates,
// big-endian on the wire like every other Coordinate kind. Conversion back
// into the library rejects values outside the field or off the curve with
// [group.ErrEllipticCurve].
package curve25519
