package r256

// Mul returns r*n, rounding the 256-bit shift-down to nearest and
// wrapping on overflow. The 512-bit product is never
// materialised in full: it is built as the sum of four 128x128->256
// partials (u128.mulWide playing the role go-num's mul64to128 plays one
// level down) and the high 256 bits recovered incrementally, discarding
// the top 128-bit digit of the AH*BH partial entirely -- that digit's
// weight is 2^384, which always wraps off a 256-bit result.
func (r R256) Mul(n R256) R256 {
	sign := r.IsNeg() != n.IsNeg()
	a := r.Abs()
	b := n.Abs()

	// Partial products of the conceptual 512-bit product
	// a*b = aLo*bLo + (aHi*bLo + aLo*bHi)*2^128 + aHi*bHi*2^256.
	p0Hi, p0Lo := a.lo.mulWide(b.lo) // weight 2^0
	p1Hi, p1Lo := a.hi.mulWide(b.lo) // weight 2^128
	p2Hi, p2Lo := a.lo.mulWide(b.hi) // weight 2^128
	_, p3Lo := a.hi.mulWide(b.hi)    // weight 2^256; only its low digit survives the shift

	// digit1 (becomes the result's fractional half after the >>128 shift).
	mid, c1 := p0Hi.addc(p1Lo)
	mid, c2 := mid.addc(p2Lo)

	// digit2 (becomes the result's integer half); digit3 (p3's high half)
	// carries weight 2^256 post-shift and wraps off entirely, as do the
	// carries out of digit2.
	top, _ := p1Hi.addc(p2Hi)
	top, _ = top.addc(p3Lo)
	top = top.add(u128From64(c1 + c2))

	// Round to nearest: inject bit 127 of the pre-shift value (the top bit
	// of p0Lo) before truncating the low 128 bits away.
	resultLo, resultHi := mid, top
	if p0Lo.hi&0x8000000000000000 != 0 {
		var carry uint64
		resultLo, carry = resultLo.addc(u128From64(1))
		if carry != 0 {
			resultHi = resultHi.inc()
		}
	}

	out := from256(resultHi, resultLo)
	if sign {
		out = out.Neg()
	}
	return out
}

// Quo returns r/n, truncating toward zero and saturating on overflow or
// division by zero.
func (r R256) Quo(n R256) R256 {
	if n.IsZero() {
		if r.IsNeg() {
			return Min
		}
		return Max
	}

	sign := r.IsNeg() != n.IsNeg()
	a := r.Abs()
	b := n.Abs()

	// |a| shifted left 128 bits, interpreted as a 384-bit numerator
	// (a.hi, a.lo, 0) divided by the 256-bit |b|. Overflow
	// (the shifted numerator's high half >= |b|) is only reachable when
	// b.hi is zero, since otherwise |b| alone exceeds any possible a.hi.
	if b.hi.isZero() && a.hi.cmp(b.lo) >= 0 {
		if sign {
			return Min
		}
		return Max
	}

	qHi, qLo := quoRem384by256(a.hi, a.lo, u128{}, b.hi, b.lo)
	out := R256{hi: qHi, lo: qLo}
	if out.IsNeg() {
		// The quotient is at least 2^127, beyond Max.
		if sign {
			return Min
		}
		return Max
	}
	if sign {
		out = out.Neg()
	}
	return out
}

// Mod returns r - Trunc(r/n)*n (truncated modulo). Division
// by zero saturates the same way Quo does.
func (r R256) Mod(n R256) R256 {
	if n.IsZero() {
		if r.IsNeg() {
			return Min
		}
		return Max
	}
	q := r.Quo(n).Trunc()
	return r.Sub(q.Mul(n))
}

// Trunc returns r with its fractional half discarded, rounding toward
// zero -- the integer part of the fixed-point division used by Mod.
func (r R256) Trunc() R256 {
	if r.IsNeg() && !r.lo.isZero() {
		return r.Floor().Add(One)
	}
	return r.Floor()
}
