package refcurve

import "math/big"

// toyPrime is a deliberately small prime used only to drive this module's
// own test suite. p = 419 ≡ 3 (mod 4), so the curve y^2 = x^3 + x is
// supersingular over Fp with #E(Fp) = p+1 = 420 = 2^2 * 3 * 5 * 7. The odd
// part of that group order, 105 = 3*5*7, is split across the Lp/Lm buckets
// below so both sides of a strategy have primes to walk.
//
// A real B-SIDH deployment derives Lp from the p+1 torsion and Lm from the
// p-1 torsion of a CM-constructed prime; that two-sided construction is
// exactly the elliptic-curve/parameter-table machinery spec.md declares an
// external collaborator. This reference curve does not reproduce it: both
// buckets are drawn from the same rational 105-torsion subgroup, which is
// enough to exercise the optimizer and evaluator without claiming to be a
// cryptographically faithful B-SIDH parameter set.
var toyPrime = big.NewInt(419)

// Lp, Ep and Lm, Em split the smooth odd part of p+1 = 4 * 3 * 5 * 7.
var (
	toyLp = []int{3, 5}
	toyEp = []int{1, 1}
	toyLm = []int{7}
	toyEm = []int{1}
)

// toyCXMul gives a made-up but monotonically increasing per-prime cost,
// indexed the same way as L() = Lp ++ Lm; realistic cost tables are
// measured, not guessed, and are themselves an external collaborator.
var toyCXMul = []int64{3, 5, 7}
