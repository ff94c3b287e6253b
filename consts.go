package r256

// DecimalPoint is the process-wide decimal-point character used by
// ToStringFormatted, ToStringPrintfLike and FromString. It defaults to '.'
// and is read-mostly: a program that mutates it must externally
// synchronize the mutation against concurrent formatter/parser calls
// (spec.md 5, 9).
var DecimalPoint byte = '.'

var (
	// Zero is the additive identity.
	Zero = R256{}

	// One is the multiplicative identity.
	One = R256{hi: u128{lo: 1}}

	// Smallest is the smallest representable positive value, 2^-128.
	Smallest = R256{lo: u128{lo: 1}}

	// Min is the smallest (most negative) representable value, -2^127.
	Min = R256{hi: u128{hi: 0x8000000000000000}}

	// Max is the largest representable value, 2^127 - 2^-128.
	Max = R256{
		hi: u128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF},
		lo: u128{hi: 0xFFFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF},
	}
)

// threeHalves is the fixed-point constant 3/2 = {low: 2^127, high: 1},
// used by the rsqrt Newton-Raphson update (spec.md 4.9).
var threeHalves = R256{hi: u128{lo: 1}, lo: u128{hi: 0x8000000000000000}}
