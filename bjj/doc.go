// Package bjj provides a Baby Jubjub elliptic curve implementation of the
// [group.Group] interface, the BabyJubjub kind of Chaum-Pedersen proofs.
//
// Baby Jubjub is a twisted Edwards curve defined over the scalar field of
// BN254 (also known as alt_bn128). It is commonly used in zero-knowledge
// proof systems and privacy-preserving applications.
//
// This package wraps the Baby Jubjub implementation from gnark-crypto,
// exchanging points with the rest of the module as affine
// [group.FormCoordinate] elements.
//
// # Curve Parameters
//
// Baby Jubjub is defined by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// where a = 168700 and d = 168696 over the BN254 scalar field.
//
// The curve has a prime-order subgroup of size:
//
//	2736030358979909402780800718157159386076813972158567259200215660948447373041
//
// # Usage
//
//	g, err := bjj.New()
//	y1, err := g.Scale(g.Generator(), x)
//
// # Security
//
// This implementation relies on gnark-crypto for the underlying curve
// arithmetic. Points handed in as coordinates are checked against the
// curve equation before any arithmetic.
package bjj
