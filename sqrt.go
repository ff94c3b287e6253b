package r256

// sqrtIterations bounds the Newton-Raphson loop in Sqrt and Rsqrt
// (spec.md 4.8, 4.9). The loop still exits early on a fixed point, so
// this only matters for inputs that never quite converge bit-for-bit.
const sqrtIterations = 7

// Sqrt returns the square root of r, saturating to Min for negative
// inputs (spec.md 4.8). The initial estimate is picked by halving the
// bit position of r's highest set bit, then refined by Newton-Raphson
// on f(e) = e^2 - x.
func (r R256) Sqrt() R256 {
	if r.IsNeg() {
		return Min
	}
	if r.IsZero() {
		return Zero
	}

	var est R256
	if !r.hi.isZero() {
		shift := (127 - clz128(r.hi)) >> 1
		est = r.Shr(shift)
	} else {
		shift := (1 + clz128(r.lo)) >> 1
		est = r.Shl(shift)
	}

	for i := 0; i < sqrtIterations; i++ {
		newEst := est.Add(r.Quo(est)).Shr(1)
		if newEst == est {
			break
		}
		est = newEst
	}
	return est
}

// Rsqrt returns the reciprocal square root of r, saturating to Min for
// negative or zero inputs (spec.md 4.9). The initial estimate and
// update rule (Newton-Raphson on f(e) = 1/e^2 - x) avoid the division
// Sqrt needs, at the cost of two extra multiplies per iteration.
func (r R256) Rsqrt() R256 {
	if r.IsNeg() || r.IsZero() {
		return Min
	}

	// The estimate bit lands in different halves depending on which half
	// of r is nonzero: a nonzero integer half seeds a fractional-half bit
	// (Smallest, raw bit 0), a purely-fractional r seeds an integer-half
	// bit (One, raw bit 128) -- see original_source/r256.h's r256Rsqrt.
	var est R256
	if !r.hi.isZero() {
		shift := (128 + clz128(r.hi)) >> 1
		est = Smallest.Shl(shift)
	} else {
		shift := clz128(r.lo) >> 1
		est = One.Shl(shift)
	}

	x := r.Shr(1)

	for i := 0; i < sqrtIterations; i++ {
		temp := est.Mul(est)
		temp = temp.Mul(x)
		temp = threeHalves.Sub(temp)
		newEst := est.Mul(temp)
		if newEst == est {
			break
		}
		est = newEst
	}
	return est
}
