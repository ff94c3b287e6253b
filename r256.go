package r256

import (
	"fmt"
	"math/big"
)

// R256 is a signed Q128.128 fixed-point number: a 256-bit two's-complement
// integer N interpreted as the value N * 2^-128. lo holds the fractional
// half (bits 0-127), hi holds the integer half plus the sign bit (bit 255,
// i.e. bit 127 of hi). See spec.md 3.
type R256 struct {
	lo, hi u128
}

// FromRaw builds an R256 from its four 64-bit quarters, most significant
// first: hi is the top 64 bits of the integer+sign half, lo is the bottom
// 64 bits of the fractional half. Grounded on go-num's quarter-ordered
// U256 constructor.
func FromRaw(hi, hm, lm, lo uint64) R256 {
	return R256{hi: u128{hi: hi, lo: hm}, lo: u128{hi: lm, lo: lo}}
}

// Raw returns the four 64-bit quarters of r, most significant first.
func (r R256) Raw() (hi, hm, lm, lo uint64) {
	return r.hi.hi, r.hi.lo, r.lo.hi, r.lo.lo
}

func (r R256) IsZero() bool { return r.hi.isZero() && r.lo.isZero() }

// IsNeg reports whether r's sign bit (bit 255) is set.
func (r R256) IsNeg() bool { return r.hi.hi&0x8000000000000000 != 0 }

// Sign returns -1, 0 or 1 according to the sign of r.
func (r R256) Sign() int {
	if r.IsZero() {
		return 0
	} else if r.IsNeg() {
		return -1
	}
	return 1
}

// unsigned256 is the raw 256-bit two's-complement bit pattern of r, with no
// sign interpretation -- used by the additive and bitwise layers, which
// operate identically on the bit pattern regardless of sign (spec.md 9).
func (r R256) unsigned256() (hi, lo u128) { return r.hi, r.lo }

func from256(hi, lo u128) R256 { return R256{hi: hi, lo: lo} }

// Add returns r+n, wrapping on overflow (two's-complement modular
// arithmetic, spec.md 7).
func (r R256) Add(n R256) R256 {
	lo, carry := r.lo.addc(n.lo)
	hi, _ := r.hi.addc(n.hi)
	if carry != 0 {
		hi = hi.inc()
	}
	return from256(hi, lo)
}

// Sub returns r-n, wrapping on overflow.
func (r R256) Sub(n R256) R256 { return r.Add(n.Neg()) }

// Neg returns the two's-complement negation of r. Negating Min wraps back
// to Min (spec.md 3, 8, 9).
func (r R256) Neg() R256 {
	lo := r.lo.not().inc()
	hi := r.hi.not()
	if lo.isZero() {
		hi = hi.inc()
	}
	return from256(hi, lo)
}

// Abs returns the absolute value of r. Abs(Min) == Min (it cannot be
// represented positively).
func (r R256) Abs() R256 {
	if r.IsNeg() {
		return r.Neg()
	}
	return r
}

// Nabs returns -|r|: always non-positive.
func (r R256) Nabs() R256 {
	if r.IsNeg() {
		return r
	}
	return r.Neg()
}

// Cmp returns the sign of r-n: -1, 0 or 1. hi is compared as signed, lo as
// unsigned (spec.md 3).
func (r R256) Cmp(n R256) int {
	rHiSigned, nHiSigned := int64(r.hi.hi), int64(n.hi.hi)
	if rHiSigned != nHiSigned {
		if rHiSigned < nHiSigned {
			return -1
		}
		return 1
	}
	if r.hi.lo != n.hi.lo {
		if r.hi.lo < n.hi.lo {
			return -1
		}
		return 1
	}
	if r.lo.hi != n.lo.hi {
		if r.lo.hi < n.lo.hi {
			return -1
		}
		return 1
	}
	if r.lo.lo != n.lo.lo {
		if r.lo.lo < n.lo.lo {
			return -1
		}
		return 1
	}
	return 0
}

func (r R256) Equal(n R256) bool            { return r.Cmp(n) == 0 }
func (r R256) GreaterThan(n R256) bool      { return r.Cmp(n) > 0 }
func (r R256) GreaterOrEqualTo(n R256) bool { return r.Cmp(n) >= 0 }
func (r R256) LessThan(n R256) bool         { return r.Cmp(n) < 0 }
func (r R256) LessOrEqualTo(n R256) bool    { return r.Cmp(n) <= 0 }

// MinOf returns the lesser of a and b. Ties resolve to a, so MinOf(a, a) is
// stable -- the Open Question in spec.md 9 is decided in favour of a
// strict "<" comparison, matching go-num's SmallerU128.
func MinOf(a, b R256) R256 {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

// MaxOf returns the greater of a and b, stable on ties (see MinOf).
func MaxOf(a, b R256) R256 {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// Difference returns |a-b|, grounded on go-num's DifferenceU128.
func Difference(a, b R256) R256 {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func (r R256) String() string { return r.ToStringFormatted(Format{Precision: -1}) }

// Format implements fmt.Formatter, supporting %v, %s (decimal) and %x, %X
// (raw 256-bit two's-complement hex, supplementing the parser's hex
// acceptance with a symmetric formatter verb -- see SPEC_FULL.md 7).
func (r R256) Format(s fmt.State, c rune) {
	switch c {
	case 'x', 'X':
		hi, hm, lm, lo := r.Raw()
		str := fmt.Sprintf("%016x%016x%016x%016x", hi, hm, lm, lo)
		if c == 'X' {
			str = fmt.Sprintf("%016X%016X%016X%016X", hi, hm, lm, lo)
		}
		fmt.Fprint(s, str)
	default:
		f := Format{Precision: -1}
		if w, ok := s.Width(); ok {
			f.Width = w
		}
		if p, ok := s.Precision(); ok {
			f.Precision = p
		}
		if s.Flag('+') {
			f.Sign = SignPlus
		} else if s.Flag(' ') {
			f.Sign = SignSpace
		}
		if s.Flag('0') {
			f.ZeroPad = true
		}
		if s.Flag('-') {
			f.LeftAlign = true
		}
		if s.Flag('#') {
			f.AlwaysDecimal = true
		}
		fmt.Fprint(s, r.ToStringFormatted(f))
	}
}

func (r R256) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *R256) UnmarshalText(bts []byte) error {
	v, _, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r R256) MarshalJSON() ([]byte, error) { return []byte(`"` + r.String() + `"`), nil }

func (r *R256) UnmarshalJSON(bts []byte) error {
	if len(bts) >= 2 && bts[0] == '"' && bts[len(bts)-1] == '"' {
		bts = bts[1 : len(bts)-1]
	}
	v, _, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// AsBigFloat renders r as an exact *big.Float, used by the test suite as
// an oracle rather than by the library itself.
func (r R256) AsBigFloat() *big.Float {
	hi, hm, lm, lo := r.Raw()
	neg := r.IsNeg()
	u := r
	if neg {
		u = u.Neg()
	}
	hi, hm, lm, lo = u.Raw()

	v := new(big.Float).SetPrec(256)
	v.SetInt(new(big.Int).SetUint64(hi))
	v.Mul(v, new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), 64)))
	v.Add(v, new(big.Float).SetUint64(hm))
	v.Mul(v, new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), 64)))
	v.Add(v, new(big.Float).SetUint64(lm))
	v.Mul(v, new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), 64)))
	v.Add(v, new(big.Float).SetUint64(lo))

	scale := new(big.Float).SetPrec(256)
	scale.SetInt(new(big.Int).Lsh(big.NewInt(1), 128))
	v.Quo(v, scale)
	if neg {
		v.Neg(v)
	}
	return v
}
