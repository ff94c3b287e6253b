package r256

// clz128 counts the leading zero bits of a 128-bit unsigned value,
// returning 128 for zero input (spec.md glossary).
func clz128(u u128) uint { return u.leadingZeros() }

// Not returns the bitwise complement of r's 256-bit pattern.
func (r R256) Not() R256 { return from256(r.hi.not(), r.lo.not()) }

// And returns the bitwise AND of r and n's 256-bit patterns.
func (r R256) And(n R256) R256 { return from256(r.hi.and(n.hi), r.lo.and(n.lo)) }

// Or returns the bitwise OR of r and n's 256-bit patterns.
func (r R256) Or(n R256) R256 { return from256(r.hi.or(n.hi), r.lo.or(n.lo)) }

// Xor returns the bitwise XOR of r and n's 256-bit patterns.
func (r R256) Xor(n R256) R256 { return from256(r.hi.xor(n.hi), r.lo.xor(n.lo)) }

// Shl returns r shifted left by n bits, modulo 256 (spec.md 4.6).
func (r R256) Shl(n uint) R256 {
	n %= 256
	if n == 0 {
		return r
	}
	if n >= 128 {
		return from256(r.lo.lsh(n-128), u128{})
	}
	hi := shlCrossHalf(r.hi, r.lo, n)
	lo := r.lo.lsh(n)
	return from256(hi, lo)
}

// shlCrossHalf computes the new high half when shifting the 256-bit value
// (hi,lo) left by n bits, 0 < n < 128: new hi = (hi<<n) | (lo >> (128-n)).
func shlCrossHalf(hi, lo u128, n uint) u128 {
	shifted := hi.lsh(n)
	carryIn := lo.rsh(128 - n)
	return shifted.or(carryIn)
}

// Shr returns r shifted right (logical, zero-filled) by n bits, modulo
// 256.
func (r R256) Shr(n uint) R256 {
	n %= 256
	if n == 0 {
		return r
	}
	if n >= 128 {
		return from256(u128{}, r.hi.rsh(n-128))
	}
	lo := shrCrossHalf(r.hi, r.lo, n)
	hi := r.hi.rsh(n)
	return from256(hi, lo)
}

// shrCrossHalf computes the new low half when shifting (hi,lo) right by n
// bits, 0 < n < 128: new lo = (lo>>n) | (hi << (128-n)).
func shrCrossHalf(hi, lo u128, n uint) u128 {
	shifted := lo.rsh(n)
	carryIn := hi.lsh(128 - n)
	return shifted.or(carryIn)
}

// Sar returns r shifted right (arithmetic, sign-filled) by n bits, modulo
// 256 (spec.md 4.6).
func (r R256) Sar(n uint) R256 {
	n %= 256
	if n == 0 {
		return r
	}

	var signFill u128
	if r.IsNeg() {
		signFill = u128{hi: ^uint64(0), lo: ^uint64(0)}
	}

	if n >= 128 {
		hiShift := n - 128
		lo := signFill
		if hiShift < 128 {
			lo = r.hi.rsh(hiShift).or(signFill.lsh(128 - hiShift))
		}
		return from256(signFill, lo)
	}

	lo := shrCrossHalf(r.hi, r.lo, n)
	hi := r.hi.rsh(n).or(signFill.lsh(128 - n))
	return from256(hi, lo)
}
