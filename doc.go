/*
Package decnum provides Int, an arbitrary-precision signed integer stored as a
sequence of decimal digits.

Int is a value type; all operations return new values and no Int is ever
modified after it is created. The zero value is zero.

Simple example:

	a := IntFrom64(12345)
	b := IntFrom64(6789)
	fmt.Println(a.Mul(b))
	// Output: 83810205

Int can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFromU64(v uint64) Int
	IntFromInt(v int) Int
	IntFromDigits(digits []int, neg bool) (Int, error)
	IntFromString(s string) (Int, error)
	IntFromBigInt(v *big.Int) Int

Multiplication uses Karatsuba's method, so an n digit product costs roughly
n^1.585 digit operations. Division is not supported.

Construction errors wrap ErrInvalidDigit or ErrInvalidState; conversion back
to an int64 may fail with ErrOverflow. Use errors.Is to test for them.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

*/
package decnum
