package provider

// Formula abstracts one isogeny-construction back-end (the spec names three
// concrete shapes: tvelu, svelu and hvelu) over a fixed factor list shared
// with the owning Curve.
//
// Degree-l isogenies are built in three steps that the evaluator always
// calls in the same order: Kps precomputes whatever multiples of the kernel
// generator the construction needs, XIsog builds the codomain curve
// constants, and XEval pushes an arbitrary point through the isogeny just
// built. SetParametersVelu tunes internal optimization parameters (the
// "suitable" baby-step/giant-step split used by svelu/hvelu) and must be
// called at most once per (prime, position) before Kps.
type Formula interface {
	// Name identifies the construction: "tvelu", "svelu" or "hvelu".
	Name() string

	// L is the ordered factor list this back-end was built for. It must
	// be identical, element for element, to the owning Curve's L.
	L() []int

	// CXIsog and CXEval give the per-prime cost of building a degree-l
	// isogeny and of pushing one point through it, indexed the same way
	// as L.
	CXIsog() []int64
	CXEval() []int64

	// SJList and SIList give the baby-step/giant-step split sizes used by
	// the optimized (svelu/hvelu) constructions; unused by tvelu.
	SJList() []int
	SIList() []int

	// HybridBound is the degree threshold at or below which hvelu falls
	// back to the unoptimized tvelu construction.
	HybridBound() int

	// SetParametersVelu tunes the (b, c) split for the degree at L()[pos].
	// A no-op for tvelu.
	SetParametersVelu(b, c, pos int)

	// Kps precomputes kernel-point data for the degree at L()[pos] on the
	// curve described by c.
	Kps(p Point, c CurveConstants, pos int)

	// XIsog returns the codomain curve of the degree-L()[pos] isogeny
	// whose kernel was fixed by the most recent Kps call.
	XIsog(c CurveConstants, pos int) CurveConstants

	// XEval pushes p through the most recently built isogeny. arg is
	// either an int position (when evaluating against L: tvelu, hvelu at
	// or below HybridBound, and any degree-4 step) or a CurveConstants
	// pair (the curve the isogeny was built on, before XIsog, for the
	// remaining svelu and hvelu steps).
	XEval(p Point, arg any) Point
}
