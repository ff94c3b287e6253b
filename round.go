package r256

// Floor returns the greatest integer value <= r (spec.md 4.7).
func (r R256) Floor() R256 { return from256(r.hi, u128{}) }

// Ceil returns the smallest integer value >= r (spec.md 4.7).
func (r R256) Ceil() R256 {
	if r.lo.isZero() {
		return from256(r.hi, u128{})
	}
	return from256(r.hi.inc(), u128{})
}

// Round returns r rounded to the nearest integer, ties rounding away from
// zero (spec.md 4.7).
func (r R256) Round() R256 {
	threshold := u128{hi: 0x8000000000000000}
	if r.IsNeg() {
		threshold = threshold.inc()
	}
	if r.lo.cmp(threshold) >= 0 {
		return from256(r.hi.inc(), u128{})
	}
	return from256(r.hi, u128{})
}
