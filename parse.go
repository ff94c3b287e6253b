package r256

import "fmt"

// FromString parses s as a decimal (or, with a "0x"/"0X" prefix)
// hexadecimal Q128.128 literal (spec.md 4.11). end is the index of the
// first unparsed byte in s. The fractional part is recovered digit by
// digit, right to left, via the 256-by-64 divide kernel, with the last
// step rounded to nearest -- the inverse of ToStringFormatted's
// multiply-by-base digit production, so a value printed with 39
// fractional digits parses back to itself.
func FromString(s string) (out R256, end int, err error) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base := uint64(10)
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		base = 16
		i += 2
	}

	digitsSeen := 0
	integer := u128{}
	for i < len(s) {
		d, ok := digitValue(s[i], base)
		if !ok {
			break
		}
		hi, lo := integer.mulWide(u128From64(base))
		_ = hi // overflow beyond 128 bits wraps, matching the library's saturation-free arithmetic
		integer = lo.add(u128From64(uint64(d)))
		digitsSeen++
		i++
	}

	if digitsSeen == 0 {
		return Zero, i, fmt.Errorf("r256: invalid syntax")
	}

	frac := u128{}
	if i < len(s) && s[i] == DecimalPoint {
		j := i + 1
		for j < len(s) {
			if _, ok := digitValue(s[j], base); !ok {
				break
			}
			j++
		}
		var rem u128
		for k := j - 1; k >= i+1; k-- {
			d, _ := digitValue(s[k], base)
			frac, rem = quoRem256by64(u128From64(uint64(d)), frac, base)
		}
		// Round the last division to nearest (ties up).
		if rem.lo*2 >= base {
			frac = frac.inc()
			if frac.isZero() {
				integer = integer.inc()
			}
		}
		i = j
	}

	out = R256{hi: integer, lo: frac}
	if neg {
		out = out.Neg()
	}
	return out, i, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v':
		return true
	}
	return false
}

func digitValue(c byte, base uint64) (uint64, bool) {
	var v uint64
	switch {
	case c >= '0' && c <= '9':
		v = uint64(c - '0')
	case base == 16 && c >= 'a' && c <= 'f':
		v = uint64(c-'a') + 10
	case base == 16 && c >= 'A' && c <= 'F':
		v = uint64(c-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}
