package field

import (
	"fmt"
	"math/big"
	"strings"
)

// Elt2 is an element a + b*i of the quadratic extension Fp2 = Fp[i]/(i^2+1),
// used throughout as the x-only coordinate field for Montgomery curves.
type Elt2 struct {
	A *big.Int
	B *big.Int
}

// Fp2 implements arithmetic over the quadratic extension of a base Field.
type Fp2 struct {
	Base Field
}

// NewFp2 returns a quadratic extension built over the given base field.
func NewFp2(base Field) Fp2 {
	return Fp2{Base: base}
}

// Zero returns the additive identity.
func (f Fp2) Zero() Elt2 {
	return Elt2{big.NewInt(0), big.NewInt(0)}
}

// One returns the multiplicative identity.
func (f Fp2) One() Elt2 {
	return Elt2{big.NewInt(1), big.NewInt(0)}
}

// Copy returns an independent copy of x.
func (f Fp2) Copy(x Elt2) Elt2 {
	return Elt2{new(big.Int).Set(x.A), new(big.Int).Set(x.B)}
}

// Add sets res to x + y.
func (f Fp2) Add(x, y Elt2) Elt2 {
	res := Elt2{new(big.Int), new(big.Int)}
	f.Base.Add(res.A, x.A, y.A)
	f.Base.Add(res.B, x.B, y.B)

	return res
}

// Sub sets res to x - y.
func (f Fp2) Sub(x, y Elt2) Elt2 {
	res := Elt2{new(big.Int), new(big.Int)}
	f.Base.Sub(res.A, x.A, y.A)
	f.Base.Sub(res.B, x.B, y.B)

	return res
}

// Neg returns -x.
func (f Fp2) Neg(x Elt2) Elt2 {
	return f.Sub(f.Zero(), x)
}

// Mul computes (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (f Fp2) Mul(x, y Elt2) Elt2 {
	ac := new(big.Int)
	f.Base.Mul(ac, x.A, y.A)

	bd := new(big.Int)
	f.Base.Mul(bd, x.B, y.B)

	ad := new(big.Int)
	f.Base.Mul(ad, x.A, y.B)

	bc := new(big.Int)
	f.Base.Mul(bc, x.B, y.A)

	real := f.Base.Sub(new(big.Int), ac, bd)

	imag := new(big.Int)
	f.Base.Add(imag, ad, bc)

	return Elt2{real, imag}
}

// Sqr returns x*x.
func (f Fp2) Sqr(x Elt2) Elt2 {
	return f.Mul(x, x)
}

// IsZero reports whether x is the additive identity.
func (f Fp2) IsZero(x Elt2) bool {
	return f.Base.IsZero(x.A) && f.Base.IsZero(x.B)
}

// Equal reports whether x and y represent the same element.
func (f Fp2) Equal(x, y Elt2) bool {
	return f.Base.AreEqual(x.A, y.A) && f.Base.AreEqual(x.B, y.B)
}

// Inv returns the multiplicative inverse of x via its norm: (a-bi)/(a^2+b^2).
func (f Fp2) Inv(x Elt2) Elt2 {
	a2 := new(big.Int)
	f.Base.Mul(a2, x.A, x.A)

	b2 := new(big.Int)
	f.Base.Mul(b2, x.B, x.B)

	norm := new(big.Int)
	f.Base.Add(norm, a2, b2)

	normInv := new(big.Int)
	f.Base.Inv(normInv, norm)

	real := new(big.Int)
	f.Base.Mul(real, x.A, normInv)

	negB := f.Base.Sub(new(big.Int), f.Base.Zero(), x.B)

	imag := new(big.Int)
	f.Base.Mul(imag, negB, normInv)

	return Elt2{real, imag}
}

// Div returns x/y.
func (f Fp2) Div(x, y Elt2) Elt2 {
	return f.Mul(x, f.Inv(y))
}

// FromInt builds an Elt2 from two machine integers, reduced into the field.
func (f Fp2) FromInt(a, b int64) Elt2 {
	res := Elt2{big.NewInt(a), big.NewInt(b)}
	f.Base.Mod(res.A)
	f.Base.Mod(res.B)

	return res
}

// EncodeHex serializes x as "<hex A>:<hex B>", a format private to this
// module's own parameter files (not a wire format any external tool reads).
func (f Fp2) EncodeHex(x Elt2) string {
	return x.A.Text(16) + ":" + x.B.Text(16)
}

// DecodeHex parses the format EncodeHex produces.
func (f Fp2) DecodeHex(s string) (Elt2, error) {
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return Elt2{}, fmt.Errorf("field: malformed Fp2 hex %q: missing separator", s)
	}

	a, ok := new(big.Int).SetString(s[:idx], 16)
	if !ok {
		return Elt2{}, fmt.Errorf("field: malformed Fp2 hex %q: bad real part", s)
	}

	b, ok := new(big.Int).SetString(s[idx+1:], 16)
	if !ok {
		return Elt2{}, fmt.Errorf("field: malformed Fp2 hex %q: bad imaginary part", s)
	}

	f.Base.Mod(a)
	f.Base.Mod(b)

	return Elt2{A: a, B: b}, nil
}

// CondSwap conditionally swaps x and y when bit is 1, leaves them untouched
// when bit is 0. The swap itself runs the same number of byte operations
// regardless of bit, matching the data-oblivious cswap used around the
// degree-4 special case in the strategy evaluator.
func CondSwap(x, y *Elt2, bit uint) {
	condSwapInt(x.A, y.A, bit)
	condSwapInt(x.B, y.B, bit)
}

func condSwapInt(x, y *big.Int, bit uint) {
	mask := -byte(bit & 1)

	xb := x.Bytes()
	yb := y.Bytes()

	n := len(xb)
	if len(yb) > n {
		n = len(yb)
	}

	xp := make([]byte, n)
	yp := make([]byte, n)
	copy(xp[n-len(xb):], xb)
	copy(yp[n-len(yb):], yb)

	for i := range xp {
		d := (xp[i] ^ yp[i]) & mask
		xp[i] ^= d
		yp[i] ^= d
	}

	x.SetBytes(xp)
	y.SetBytes(yp)
}
