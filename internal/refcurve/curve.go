// Package refcurve is a reference implementation of provider.Curve: real,
// textbook x-only Montgomery arithmetic over a deliberately small prime,
// good enough to drive the strategy engine's own tests end to end. It is
// not constant-time and is not meant to be run against production-sized
// parameters; see params.go for why its factor lists aren't a faithful
// B-SIDH parameter set.
package refcurve

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/bytemare/bsidh/internal/field"
	"github.com/bytemare/bsidh/internal/provider"
)

// Curve is the reference x-only Montgomery curve provider.
type Curve struct {
	field Field
	fp2   field.Fp2
	a     *big.Int // affine Montgomery A coefficient, used by Ladder3pt/IsSupersingular
}

// New returns the reference curve over the toy prime declared in params.go.
func New() *Curve {
	f := field.NewField(toyPrime)

	return &Curve{
		field: f,
		fp2:   field.NewFp2(f),
		a:     big.NewInt(0), // y^2 = x^3 + x
	}
}

// A24 returns this curve's base (A+2)/4 constant, C24 normalized to 1.
func (c *Curve) A24() provider.CurveConstants {
	two := big.NewInt(2)
	a2 := new(big.Int).Add(c.a, two)
	c.field.Mod(a2)

	four := big.NewInt(4)
	fourInv := new(big.Int)
	c.field.Inv(fourInv, four)

	a24 := new(big.Int).Mul(a2, fourInv)
	c.field.Mod(a24)

	return provider.CurveConstants{
		A24: field.Elt2{A: a24, B: big.NewInt(0)},
		C24: c.fp2.One(),
	}
}

// BaseCurve returns the fixed starting curve, (A24:C24) for y^2=x^3+x.
func (c *Curve) BaseCurve() provider.CurveConstants { return c.A24() }

// Field returns the quadratic extension points are coordinates in.
func (c *Curve) Field() field.Fp2 { return c.fp2 }

// P returns the underlying prime.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.field.Order()) }

// L is Lp ++ Lm, in traversal order.
func (c *Curve) L() []int {
	l := make([]int, 0, len(toyLp)+len(toyLm))
	l = append(l, toyLp...)
	l = append(l, toyLm...)

	return l
}

// Lp returns the p+1-side primes.
func (c *Curve) Lp() []int { return append([]int(nil), toyLp...) }

// Lm returns the p-1-side primes.
func (c *Curve) Lm() []int { return append([]int(nil), toyLm...) }

// Ep returns the p+1-side exponents.
func (c *Curve) Ep() []int { return append([]int(nil), toyEp...) }

// Em returns the p-1-side exponents.
func (c *Curve) Em() []int { return append([]int(nil), toyEm...) }

// CXMul returns the per-prime scalar multiplication cost.
func (c *Curve) CXMul() []int64 { return append([]int64(nil), toyCXMul...) }

// Measure is the identity for this reference curve.
func (c *Curve) Measure(cost int64) int64 { return cost }

// xDBL doubles P on the curve whose (A+2)/4, normalized C24=1, is a24.
func (c *Curve) xDBL(p provider.Point, a24 field.Elt2) provider.Point {
	f := c.fp2

	t0 := f.Sub(p.X, p.Z)
	t1 := f.Add(p.X, p.Z)
	t0 = f.Sqr(t0)
	t1 = f.Sqr(t1)

	x2 := f.Mul(t0, t1)

	t1m := f.Sub(t1, t0)
	t0p := f.Mul(a24, t1m)
	t0s := f.Add(t0, t0p)
	z2 := f.Mul(t1m, t0s)

	return provider.Point{X: x2, Z: z2}
}

// xADD computes P+Q given the x-only difference xm = x(P-Q) (affine, Z=1).
func (c *Curve) xADD(p, q provider.Point, xm field.Elt2) provider.Point {
	f := c.fp2

	t0 := f.Add(p.X, p.Z)
	t1 := f.Sub(p.X, p.Z)
	t2 := f.Add(q.X, q.Z)
	t3 := f.Sub(q.X, q.Z)

	ta := f.Mul(t0, t3)
	tb := f.Mul(t1, t2)

	tsum := f.Sqr(f.Add(ta, tb))
	tdiff := f.Sqr(f.Sub(ta, tb))

	xPlus := tsum
	zPlus := f.Mul(xm, tdiff)

	return provider.Point{X: xPlus, Z: zPlus}
}

// XMul computes [L()[pos]]P via a standard x-only Montgomery ladder.
func (c *Curve) XMul(p provider.Point, cc provider.CurveConstants, pos int) provider.Point {
	l := c.L()[pos]

	return c.xmulScalar(p, cc, big.NewInt(int64(l)))
}

func (c *Curve) xmulScalar(p provider.Point, cc provider.CurveConstants, k *big.Int) provider.Point {
	f := c.fp2

	r0 := provider.Point{X: f.One(), Z: f.Zero()}
	r1 := p

	for i := k.BitLen() - 1; i >= 0; i-- {
		if k.Bit(i) == 0 {
			r1 = c.xADD(r0, r1, p.X)
			r0 = c.xDBL(r0, cc.A24)
		} else {
			r0 = c.xADD(r0, r1, p.X)
			r1 = c.xDBL(r1, cc.A24)
		}
	}

	return r0
}

// affineA recovers the Montgomery A coefficient from a curve's (A24:C24)
// constants, a = 4*A24/C24 - 2, assuming both lie in the rational subfield
// (Im part zero) as every curve this reference backend produces does.
func (c *Curve) affineA(cc provider.CurveConstants) (*big.Int, bool) {
	if !c.field.IsZero(cc.A24.B) || !c.field.IsZero(cc.C24.B) {
		return nil, false
	}

	c24Inv := new(big.Int)
	c.field.Inv(c24Inv, cc.C24.A)

	a := new(big.Int).Mul(cc.A24.A, big.NewInt(4))
	a.Mul(a, c24Inv)
	a.Sub(a, big.NewInt(2))
	c.field.Mod(a)

	return a, true
}

// affineOf recovers an affine point for an x-only coordinate whose
// imaginary part is zero, on the curve described by cc.
func (c *Curve) affineOf(x field.Elt2, cc provider.CurveConstants) (affinePoint, bool) {
	if !c.field.IsZero(x.B) {
		return affinePoint{}, false
	}

	a, ok := c.affineA(cc)
	if !ok {
		return affinePoint{}, false
	}

	ac := affineCurve{f: c.field, a: a}

	return ac.yFromX(x.A)
}

// Ladder3pt computes P + [sk]Q given P, Q and x(P-Q), by lifting to affine
// points (recovering y via the curve equation and disambiguating sign
// against the supplied difference), running the textbook affine
// double-and-add, and projecting back to an x-only result. This trades the
// constant-time, genuinely x-only ladder a production backend would use for
// a construction whose correctness is easy to check by hand; see
// affine.go's doc comment.
func (c *Curve) Ladder3pt(sk *big.Int, p, q, pmq provider.Point, cc provider.CurveConstants) provider.Point {
	a, ok := c.affineA(cc)
	if !ok {
		panic("refcurve: Ladder3pt: curve constants are not in the rational subfield")
	}

	ac := affineCurve{f: c.field, a: a}

	ap, ok := c.affineOf(p.X, cc)
	if !ok {
		panic("refcurve: Ladder3pt: P is not on the curve's rational subfield")
	}

	aq0, ok := c.affineOf(q.X, cc)
	if !ok {
		panic("refcurve: Ladder3pt: Q is not on the curve's rational subfield")
	}

	candDiff := ac.add(ap, ac.neg(aq0))

	var aq affinePoint
	if c.field.AreEqual(candDiff.x, pmq.X.A) {
		aq = aq0
	} else {
		aq = ac.neg(aq0)
	}

	r := ac.add(ap, ac.smul(sk, aq))

	if r.zero {
		return provider.Point{X: c.fp2.One(), Z: c.fp2.Zero()}
	}

	return provider.Point{X: field.Elt2{A: r.x, B: big.NewInt(0)}, Z: c.fp2.One()}
}

// DifferenceX recovers x(P-Q) from x(P) and x(Q) alone, by lifting both to
// affine points via the curve equation's deterministic principal square root
// (see affine.go's sqrtSubfield) and subtracting. Because both lifts always
// pick the same root for the same input, this is reproducible across runs
// without needing a third stored coordinate. It implements
// provider.BasisDeriver.
func (c *Curve) DifferenceX(p, q provider.Point, cc provider.CurveConstants) (provider.Point, error) {
	ap, ok := c.affineOf(p.X, cc)
	if !ok {
		return provider.Point{}, fmt.Errorf("refcurve: DifferenceX: P is not on the curve's rational subfield")
	}

	aq, ok := c.affineOf(q.X, cc)
	if !ok {
		return provider.Point{}, fmt.Errorf("refcurve: DifferenceX: Q is not on the curve's rational subfield")
	}

	a, ok := c.affineA(cc)
	if !ok {
		return provider.Point{}, fmt.Errorf("refcurve: DifferenceX: curve constants are not in the rational subfield")
	}

	ac := affineCurve{f: c.field, a: a}
	diff := ac.add(ap, ac.neg(aq))

	if diff.zero {
		return provider.Point{X: c.fp2.One(), Z: c.fp2.Zero()}, nil
	}

	return provider.Point{X: field.Elt2{A: diff.x, B: big.NewInt(0)}, Z: c.fp2.One()}, nil
}

// IsSupersingular heuristically checks that [p+1] kills several random
// points on the curve described by cc, which holds for any supersingular
// curve over Fp and fails with overwhelming probability otherwise. A
// production backend verifies this structurally (e.g. via the curve's
// construction), rather than by sampling.
func (c *Curve) IsSupersingular(cc provider.CurveConstants) bool {
	a, ok := c.affineA(cc)
	if !ok {
		return false
	}

	pPlus1 := new(big.Int).Add(c.field.Order(), big.NewInt(1))
	ac := affineCurve{f: c.field, a: a}

	for i := 0; i < 8; i++ {
		x, err := rand.Int(rand.Reader, c.field.Order())
		if err != nil {
			panic(err)
		}

		ap, ok := ac.yFromX(x)
		if !ok {
			continue
		}

		if !ac.smul(pPlus1, ap).zero {
			return false
		}
	}

	return true
}
