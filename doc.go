/*
Package r256 provides R256, a signed fixed-point number in Q128.128 format:
128 integer bits and 128 fractional bits, packed into a 256-bit two's
complement value.

R256 is a value type; all operations return new values.

Simple example:

	a := r256.FromInt64(10)
	b := r256.FromInt64(3)
	fmt.Println(a.Quo(b))
	// Output: 3.333333333333333333333333333333333333333

R256 can be created from a variety of sources:

	FromRaw(hi, hm, lm, lo uint64) R256
	FromInt64(v int64) R256
	FromFloat64(f float64) (out R256, inRange bool)
	FromString(s string) (out R256, end int, err error)

R256 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Out-of-range and undefined results (division by zero, sqrt of a negative
value, conversion overflow) saturate to Min or Max rather than panicking or
returning an error; see the package-level Min, Max, Smallest and One
constants and the doc comments on Quo, Mod, Sqrt and Rsqrt.
*/
package r256
