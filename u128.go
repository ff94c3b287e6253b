package r256

import "math/bits"

// u128 is an internal unsigned 128-bit helper used to build the two halves
// of R256. It is not part of the public surface: spec.md's external
// interface exposes R256's two halves as raw uint64 quarters (see Raw),
// not as a standalone 128-bit type.
type u128 struct {
	hi, lo uint64
}

func u128From64(v uint64) u128 { return u128{lo: v} }

func (u u128) isZero() bool { return u.hi == 0 && u.lo == 0 }

func (u u128) cmp(n u128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u u128) add(n u128) (v u128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

// addc is add with the outgoing carry bit exposed, needed to chain a
// 128-bit add into the next 128-bit limb of a wider value (see R256.Add).
func (u u128) addc(n u128) (v u128, carryOut uint64) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.hi, carryOut = bits.Add64(u.hi, n.hi, c)
	return v, carryOut
}

func (u u128) sub(n u128) (v u128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

// subb is sub with an incoming/outgoing borrow bit, needed to chain a
// 128-bit subtract across wider multi-limb values (see quoDigit128).
func (u u128) subb(n u128, borrowIn uint64) (v u128, borrowOut uint64) {
	var b0 uint64
	v.lo, b0 = bits.Sub64(u.lo, n.lo, borrowIn)
	v.hi, borrowOut = bits.Sub64(u.hi, n.hi, b0)
	return v, borrowOut
}

func (u u128) inc() u128 { return u.add(u128{lo: 1}) }

func (u u128) not() u128 { return u128{hi: ^u.hi, lo: ^u.lo} }
func (u u128) and(n u128) u128 { return u128{hi: u.hi & n.hi, lo: u.lo & n.lo} }
func (u u128) or(n u128) u128  { return u128{hi: u.hi | n.hi, lo: u.lo | n.lo} }
func (u u128) xor(n u128) u128 { return u128{hi: u.hi ^ n.hi, lo: u.lo ^ n.lo} }

// lsh shifts left by n bits, 0 <= n <= 128.
func (u u128) lsh(n uint) (v u128) {
	switch {
	case n == 0:
		return u
	case n < 64:
		return u128{hi: (u.hi << n) | (u.lo >> (64 - n)), lo: u.lo << n}
	case n == 64:
		return u128{hi: u.lo}
	case n < 128:
		return u128{hi: u.lo << (n - 64)}
	default:
		return u128{}
	}
}

// rsh shifts right (logical) by n bits, 0 <= n <= 128.
func (u u128) rsh(n uint) (v u128) {
	switch {
	case n == 0:
		return u
	case n < 64:
		return u128{hi: u.hi >> n, lo: (u.lo >> n) | (u.hi << (64 - n))}
	case n == 64:
		return u128{lo: u.hi}
	case n < 128:
		return u128{lo: u.hi >> (n - 64)}
	default:
		return u128{}
	}
}

// leadingZeros returns clz128(u): the count of leading zero bits, 128 for
// zero input.
func (u u128) leadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	}
	return uint(bits.LeadingZeros64(u.lo)) + 64
}

// mulWide computes the exact 128x128->256 unsigned product of u and n,
// returning the high and low 128-bit halves. Adapted from the schoolbook
// four-partial-product decomposition in go-num's mul128to256 (itself
// Hacker's Delight-derived), rewritten in terms of math/bits.Mul64/Add64
// rather than go-num's hand-split 32-bit halves -- see spec.md 4.1.
func (u u128) mulWide(n u128) (hi, lo u128) {
	lHi, lLo := bits.Mul64(u.lo, n.lo) // p0 = aL*bL
	cHi, cLo := bits.Mul64(u.lo, n.hi) // p1 = aL*bH
	dHi, dLo := bits.Mul64(u.hi, n.lo) // p2 = aH*bL
	hHi, hLo := bits.Mul64(u.hi, n.hi) // p3 = aH*bH

	// mid = p1.lo + p2.lo + p0.hi, tracked with carry
	mid, c1 := bits.Add64(cLo, dLo, 0)
	mid, c2 := bits.Add64(mid, lHi, 0)

	// top = p3 + p1.hi + p2.hi + carry-out of mid
	top, c3 := bits.Add64(hLo, cHi, 0)
	top, c4 := bits.Add64(top, dHi, 0)
	top, c5 := bits.Add64(top, c1, 0)
	top, c6 := bits.Add64(top, c2, 0)
	hHi += c3 + c4 + c5 + c6

	return u128{hi: hHi, lo: top}, u128{hi: mid, lo: lLo}
}

// quoDigit computes q = floor((u2,u1,u0)/(d1,d0)), a single 64-bit
// quotient digit from a 3-digit (192-bit) numerator window divided by a
// normalized 2-digit (128-bit) divisor, along with the 128-bit remainder
// (r1,r0). Precondition (matching Knuth TAOCP 4.3.1 Algorithm D / Warren,
// Hacker's Delight ch.9): (u2,u1) < (d1,d0) as a 128-bit value, and d1's
// top bit is set (the divisor has been normalized).
//
// This is the same "estimate, then refine" shape as go-num's
// quorem128by64/quorem128by128 (see u128.go in the teacher), generalized
// one digit wider and expressed with math/bits.Mul64/Sub64/Div64 rather
// than go-num's Hacker's Delight 32-bit-halved divlu.
func quoDigit(u2, u1, u0, d1, d0 uint64) (q, r1, r0 uint64) {
	var qhat uint64
	if u2 == d1 {
		qhat = ^uint64(0)
	} else {
		qhat, _ = bits.Div64(u2, u1, d1)
	}

	for {
		// product = qhat * (d1,d0), a 3-digit (top,mid,lo) value.
		top, midFromD1 := bits.Mul64(qhat, d1)
		midFromD0, lo := bits.Mul64(qhat, d0)
		mid, carry := bits.Add64(midFromD1, midFromD0, 0)
		top += carry

		lo2, b0 := bits.Sub64(u0, lo, 0)
		mid2, b1 := bits.Sub64(u1, mid, b0)
		_, b2 := bits.Sub64(u2, top, b1)

		if b2 != 0 {
			// trial quotient too large; Knuth's theorem bounds this to at
			// most two decrements.
			qhat--
			continue
		}
		return qhat, mid2, lo2
	}
}

// quoRem256by128 computes q = floor(N/d), r = N mod d, where N is the
// 256-bit value (nHi,nLo) and d is a nonzero 128-bit divisor, under the
// precondition nHi < d (the caller is responsible for detecting and
// saturating the overflow case -- see spec.md 4.2/4.4).
func quoRem256by128(nHi, nLo, d u128) (q, r u128) {
	if d.hi == 0 {
		return quoRem256by64(nHi, nLo, d.lo)
	}

	s := uint(bits.LeadingZeros64(d.hi))

	var nd1, nd0 uint64
	if s == 0 {
		nd1, nd0 = d.hi, d.lo
	} else {
		nd1 = (d.hi << s) | (d.lo >> (64 - s))
		nd0 = d.lo << s
	}

	var carry, n3, n2, n1, n0 uint64
	if s == 0 {
		n3, n2, n1, n0 = nHi.hi, nHi.lo, nLo.hi, nLo.lo
	} else {
		carry = nHi.hi >> (64 - s)
		n3 = (nHi.hi << s) | (nHi.lo >> (64 - s))
		n2 = (nHi.lo << s) | (nLo.hi >> (64 - s))
		n1 = (nLo.hi << s) | (nLo.lo >> (64 - s))
		n0 = nLo.lo << s
	}

	// Three sliding-window digit steps over the 5-digit normalized
	// numerator (carry,n3,n2,n1,n0); the leading digit is forced to zero
	// by the nHi < d precondition.
	q2, r1, r0 := quoDigit(carry, n3, n2, nd1, nd0)
	q1, r1, r0 := quoDigit(r1, r0, n1, nd1, nd0)
	q0, r1, r0 := quoDigit(r1, r0, n0, nd1, nd0)
	_ = q2 // always zero: proven by the nHi < d precondition

	q = u128{hi: q1, lo: q0}
	r = u128{hi: r1, lo: r0}.rsh(s)

	// Defensive fixup mirroring go-num's quorem128by128, which also
	// verifies the remainder against the divisor after its estimate.
	for r.cmp(d) >= 0 {
		q = q.inc()
		r = r.sub(d)
	}
	return q, r
}

// quoRem256by64 divides the 256-bit value (nHi,nLo) by a divisor that
// fits in 64 bits: a single-digit long division needing no Knuth
// normalization, processing the four numerator digits most-significant
// first.
func quoRem256by64(nHi, nLo u128, d0 uint64) (q, r u128) {
	q3, rem := bits.Div64(0, nHi.hi, d0)
	q2, rem := bits.Div64(rem, nHi.lo, d0)
	q1, rem := bits.Div64(rem, nLo.hi, d0)
	q0, rem := bits.Div64(rem, nLo.lo, d0)
	_, _ = q3, q2 // always zero under the nHi < d precondition
	return u128{hi: q1, lo: q0}, u128{lo: rem}
}

// quoDigit128 is quoDigit (spec.md 4.2) one digit wider: the "digit" is a
// u128 rather than a uint64, used to build the fixed-point divide's
// 384-bit-numerator over 256-bit-divisor kernel (spec.md 4.4) out of the
// same two's-complement-free long-division shape. The trial-quotient
// estimate reuses quoRem256by128 itself as its division primitive -- the
// refinement loop is structurally identical at both digit sizes.
//
// Precondition (mirrors quoDigit): (u2,u1) < (d1,d0) as a 256-bit value,
// and d1's top bit is set (the divisor has been normalized).
func quoDigit128(u2, u1, u0, d1, d0 u128) (q, r1, r0 u128) {
	var qhat u128
	if u2.cmp(d1) == 0 {
		qhat = u128{hi: ^uint64(0), lo: ^uint64(0)}
	} else {
		qhat, _ = quoRem256by128(u2, u1, d1)
	}

	for {
		// product = qhat * (d1,d0), a 3-digit (top,mid,lo) 384-bit value.
		hi1, lo1 := qhat.mulWide(d1) // qhat*d1, weight 2^128
		hi0, lo0 := qhat.mulWide(d0) // qhat*d0, weight 2^0

		mid, c1 := lo1.addc(hi0)
		top := hi1.add(u128From64(c1))

		lo2, b0 := u0.subb(lo0, 0)
		mid2, b1 := u1.subb(mid, b0)
		_, b2 := u2.subb(top, b1)

		if b2 != 0 {
			// trial quotient too large; Knuth's theorem bounds this to at
			// most two decrements.
			qhat = qhat.sub(u128From64(1))
			continue
		}
		return qhat, mid2, lo2
	}
}

// quoRem384by256 computes q = floor(N/D), the 256-bit quotient of a
// 384-bit numerator N given as three 128-bit limbs (n2 most significant,
// n0 least) divided by a nonzero 256-bit divisor D=(dHi,dLo), under the
// precondition that the quotient fits in 256 bits -- the caller (R256.Quo)
// detects and saturates the overflow case per spec.md 4.4 before calling
// this. No remainder is returned: spec.md 4.5's Mod is built from Quo and
// Mul rather than from a division remainder directly.
func quoRem384by256(n2, n1, n0, dHi, dLo u128) (qHi, qLo u128) {
	if dHi.isZero() {
		// D fits in a single 128-bit digit: two single-digit long-division
		// steps, mirroring quoRem256by64's fast path one level up.
		q1, r := quoRem256by128(n2, n1, dLo)
		q0, _ := quoRem256by128(r, n0, dLo)
		return q1, q0
	}

	s := dHi.leadingZeros()

	var nd1, nd0 u128
	if s == 0 {
		nd1, nd0 = dHi, dLo
	} else {
		nd1 = shlCrossHalf(dHi, dLo, s)
		nd0 = dLo.lsh(s)
	}

	var carry, s2, s1, s0 u128
	if s == 0 {
		s2, s1, s0 = n2, n1, n0
	} else {
		carry = n2.rsh(128 - s)
		s2 = shlCrossHalf(n2, n1, s)
		s1 = shlCrossHalf(n1, n0, s)
		s0 = n0.lsh(s)
	}

	q1, r1, r0 := quoDigit128(carry, s2, s1, nd1, nd0)
	q0, _, _ := quoDigit128(r1, r0, s0, nd1, nd0)
	return q1, q0
}
