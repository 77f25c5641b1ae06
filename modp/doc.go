// Package modp provides the Scalar kind of [group.Group]: the
// multiplicative group of integers modulo a prime.
//
// Elements are [group.FormScalar] values. Scaling is modular
// exponentiation, the group law is modular multiplication, and doubling is
// a no-op because repeated application is carried by the exponent.
//
// # Parameters
//
// [Default] uses p = 10009, q = 5004, g = 3 and h = 2892. Both generators are
// quadratic residues, so their orders divide q and responses reduced modulo
// q verify correctly. [New] accepts other parameters, for example the toy
// group p = 23, q = 11, g = 4, h = 9:
//
//	grp, err := modp.New(big.NewInt(23), big.NewInt(11), big.NewInt(4), big.NewInt(9))
//
// The default group is small and exists for interoperability; it offers no
// meaningful security margin.
//
// # Arithmetic
//
// Exponentiation and multiplication are delegated to saferith, which
// keeps their running time independent of the operand values.
package modp
