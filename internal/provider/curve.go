// Package provider defines the boundary between the strategy engine and its
// elliptic-curve and isogeny-formula collaborators. A Curve supplies x-only
// Montgomery arithmetic over a fixed prime; a Formula supplies one vélu-style
// isogeny construction/evaluation back-end over a fixed factor list. Neither
// interface is implemented by the strategy engine itself: it only calls
// through them.
package provider

import (
	"math/big"

	"github.com/bytemare/bsidh/internal/field"
)

// Point is a projective x-only coordinate pair (X:Z) on a Montgomery curve.
type Point struct {
	X field.Elt2
	Z field.Elt2
}

// CurveConstants holds the two Montgomery coefficients the evaluator and the
// formula back-end thread through a strategy: A24 = A+2C and C24 = 4C (so
// A24/C24 = (A+2)/4), or an equivalent projective pair depending on the
// curve model a backend chooses. The strategy engine never inspects these fields; it only passes
// the pair between Curve and Formula calls.
type CurveConstants struct {
	A24 field.Elt2
	C24 field.Elt2
}

// Curve abstracts the x-only elliptic-curve primitives a B-SIDH session
// needs: scalar multiplication, the three-point ladder used at key
// generation, and a supersingularity check used to validate a peer's curve
// before deriving a shared secret.
type Curve interface {
	// Field returns the quadratic extension field points are coordinates in.
	Field() field.Fp2

	// P returns the underlying prime.
	P() *big.Int

	// BaseCurve returns the fixed public starting curve (A24, C24) that
	// every session's walk begins from.
	BaseCurve() CurveConstants

	// L is the full ordered list of small odd primes the strategy degree
	// graph is built from (L = Lp ∪ Lm, in the traversal order the
	// optimizer and evaluator both index into).
	L() []int

	// Lp and Lm split L into the two cofactor sides of p+1 and p-1.
	Lp() []int
	Lm() []int

	// Ep and Em give the exponent of each prime in Lp/Lm within p+1/p-1.
	Ep() []int
	Em() []int

	// CXMul gives the per-prime cost of one scalar multiplication step by
	// that prime, indexed the same way as L.
	CXMul() []int64

	// XMul computes [l]P on the curve described by c, where l = L()[pos].
	XMul(p Point, c CurveConstants, pos int) Point

	// Ladder3pt computes P + [sk]Q using the differential addition chain
	// seeded by the precomputed difference PmQ = P-Q.
	Ladder3pt(sk *big.Int, p, q, pmq Point, c CurveConstants) Point

	// IsSupersingular reports whether the curve described by c is
	// supersingular. Callers must check this on any peer-supplied curve
	// before doing further secret-dependent work with it.
	IsSupersingular(c CurveConstants) bool

	// Measure maps a raw field-operation cost to the comparable unit the
	// optimizer's dynamic program minimizes over. The default provided by
	// the reference curve is the identity.
	Measure(cost int64) int64
}

// BasisDeriver is an optional capability a Curve backend may implement to let
// a generator file store only the two x-coordinates of a fixed public basis
// (P, Q) and have x(P-Q) reconstructed deterministically at load time,
// instead of also persisting a third coordinate. A backend that cannot
// recover a y-coordinate from x alone (and therefore cannot disambiguate P-Q
// from P+Q) need not implement this; the generator-file loader reads only
// x(P) and x(Q), so building a Strategy over such a backend fails with
// ErrUnsupportedBasisDerivation.
type BasisDeriver interface {
	// DifferenceX returns x(P-Q) for the given P, Q on the curve described
	// by c, using a fixed, deterministic choice of square root so repeated
	// calls with the same inputs always agree.
	DifferenceX(p, q Point, c CurveConstants) (Point, error)
}
