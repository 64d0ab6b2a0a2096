package refcurve

import (
	"math/big"

	"github.com/bytemare/bsidh/internal/field"
)

// affinePoint is a full (x, y) point on the Montgomery curve By^2 = x^3 +
// A x^2 + x, used only inside this package to give Ladder3pt and
// IsSupersingular textbook-correct group-law arithmetic. The reference
// curve restricts itself to B=1 and to x-coordinates with a zero imaginary
// part, which is all the toy parameters in params.go ever produce; nothing
// outside this package ever sees an affinePoint.
type affinePoint struct {
	x, y *big.Int
	zero bool // the point at infinity
}

func infinity() affinePoint {
	return affinePoint{zero: true}
}

type affineCurve struct {
	f Field
	a *big.Int // Montgomery A coefficient
}

// Field is the subset of field.Field this package's affine arithmetic uses.
type Field = field.Field

func (c affineCurve) double(p affinePoint) affinePoint {
	if p.zero || c.f.IsZero(p.y) {
		return infinity()
	}

	num := new(big.Int).Mul(p.x, p.x)
	num.Mul(num, big.NewInt(3))
	tmp := new(big.Int).Mul(p.x, c.a)
	tmp.Mul(tmp, big.NewInt(2))
	num.Add(num, tmp)
	num.Add(num, big.NewInt(1))
	c.f.Mod(num)

	den := new(big.Int).Mul(big.NewInt(2), p.y)
	c.f.Mod(den)

	denInv := new(big.Int)
	c.f.Inv(denInv, den)

	lambda := new(big.Int).Mul(num, denInv)
	c.f.Mod(lambda)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, c.a)
	x3.Sub(x3, p.x)
	x3.Sub(x3, p.x)
	c.f.Mod(x3)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	c.f.Mod(y3)

	return affinePoint{x: x3, y: y3}
}

func (c affineCurve) add(p, q affinePoint) affinePoint {
	if p.zero {
		return q
	}

	if q.zero {
		return p
	}

	if c.f.AreEqual(p.x, q.x) {
		sum := new(big.Int).Add(p.y, q.y)
		c.f.Mod(sum)

		if c.f.IsZero(sum) {
			return infinity()
		}

		return c.double(p)
	}

	num := new(big.Int).Sub(q.y, p.y)
	c.f.Mod(num)

	den := new(big.Int).Sub(q.x, p.x)
	c.f.Mod(den)

	denInv := new(big.Int)
	c.f.Inv(denInv, den)

	lambda := new(big.Int).Mul(num, denInv)
	c.f.Mod(lambda)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.x)
	x3.Sub(x3, q.x)
	c.f.Mod(x3)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	c.f.Mod(y3)

	return affinePoint{x: x3, y: y3}
}

func (c affineCurve) neg(p affinePoint) affinePoint {
	if p.zero {
		return p
	}

	negY := new(big.Int).Neg(p.y)
	c.f.Mod(negY)

	return affinePoint{x: new(big.Int).Set(p.x), y: negY}
}

func (c affineCurve) smul(k *big.Int, p affinePoint) affinePoint {
	r := infinity()
	q := p

	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			r = c.add(r, q)
		}

		q = c.double(q)
	}

	return r
}

// sqrtSubfield computes a square root of a in the base field, assuming p ≡ 3
// (mod 4) (true of toyPrime), by the standard a^((p+1)/4) shortcut. Callers
// must check the result squares back to a; a is otherwise not a square.
func sqrtSubfield(f Field, a *big.Int) *big.Int {
	exp := new(big.Int).Add(f.Order(), big.NewInt(1))
	exp.Rsh(exp, 2)

	res := new(big.Int)
	f.Exponent(res, a, exp)

	return res
}

// yFromX recovers a y-coordinate for x on By^2 = x^3+Ax^2+x (B=1), choosing
// an arbitrary sign; the caller disambiguates against a known difference
// point.
func (c affineCurve) yFromX(x *big.Int) (affinePoint, bool) {
	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	tmp := new(big.Int).Mul(c.a, x)
	tmp.Mul(tmp, x)
	rhs.Add(rhs, tmp)
	rhs.Add(rhs, x)
	c.f.Mod(rhs)

	y := sqrtSubfield(c.f, rhs)

	check := new(big.Int).Mul(y, y)
	c.f.Mod(check)

	if !c.f.AreEqual(check, rhs) {
		return affinePoint{}, false
	}

	return affinePoint{x: new(big.Int).Set(x), y: y}, true
}
