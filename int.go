package decnum

import (
	"fmt"
	"math/big"

	"fortio.org/safecast"
	"github.com/cespare/xxhash/v2"
)

// Sign is the sign class of an Int.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	case Positive:
		return "positive"
	}
	return fmt.Sprintf("Sign(%d)", int8(s))
}

// Int is an arbitrary-precision signed integer stored as decimal digits,
// least significant first. The zero value is zero.
//
// Int is a value type; all operations return new values. The digits of an Int
// are never modified once it has been constructed, so an Int may be shared
// freely between goroutines.
type Int struct {
	sign   Sign
	digits []uint8
}

// MulStep describes a single recursive level of a Karatsuba multiplication.
// See Int.MulTrace.
type MulStep struct {
	Depth int
	Mid   int

	A, B       Int
	Z0, Z1, Z2 Int
	Result     Int
}

func intFromMag(d []uint8) Int {
	d = normDigits(d)
	if isZeroDigits(d) {
		return zeroInt
	}
	return Int{sign: Positive, digits: d}
}

func intFromMagSign(d []uint8, neg bool) Int {
	i := intFromMag(d)
	if neg && i.sign != Zero {
		i.sign = Negative
	}
	return i
}

// IntFromDigits creates an Int from a sequence of decimal digits, least
// significant first. High-order zero digits are discarded and an empty
// sequence is zero.
//
// An error wrapping ErrInvalidDigit is returned if any digit is outside
// [0, 9]. An error wrapping ErrInvalidState is returned if neg is set and the
// digits represent zero.
func IntFromDigits(digits []int, neg bool) (out Int, err error) {
	buf := make([]uint8, len(digits))
	for idx, d := range digits {
		v, err := safecast.Conv[uint8](d)
		if err != nil || v > 9 {
			return out, fmt.Errorf("decnum: digit %d at index %d: %w", d, idx, ErrInvalidDigit)
		}
		buf[idx] = v
	}

	buf = normDigits(buf)
	if neg && isZeroDigits(buf) {
		return out, fmt.Errorf("decnum: digits %v: %w", digits, ErrInvalidState)
	}
	return intFromMagSign(buf, neg), nil
}

// IntFromString creates an Int from a string containing an optional sign
// followed by one or more decimal digits. Leading zeros are permitted.
//
// Negative zero ("-0", "-000") is rejected with an error wrapping
// ErrInvalidState.
func IntFromString(s string) (out Int, err error) {
	str := s
	neg := false
	if len(str) > 0 && (str[0] == '-' || str[0] == '+') {
		neg = str[0] == '-'
		str = str[1:]
	}
	if len(str) == 0 {
		return out, fmt.Errorf("decnum: string %q has no digits: %w", s, ErrInvalidDigit)
	}

	buf := make([]uint8, len(str))
	for idx := 0; idx < len(str); idx++ {
		c := str[idx]
		if c < '0' || c > '9' {
			return out, fmt.Errorf("decnum: string %q invalid at offset %d: %w", s, idx, ErrInvalidDigit)
		}
		buf[len(str)-1-idx] = c - '0'
	}

	buf = normDigits(buf)
	if neg && isZeroDigits(buf) {
		return out, fmt.Errorf("decnum: string %q: %w", s, ErrInvalidState)
	}
	return intFromMagSign(buf, neg), nil
}

// IntFromU64 creates an Int from a uint64.
func IntFromU64(v uint64) Int {
	if v == 0 {
		return zeroInt
	}
	var buf [20]uint8
	n := 0
	for v > 0 {
		buf[n] = uint8(v % 10)
		v /= 10
		n++
	}
	return Int{sign: Positive, digits: append([]uint8(nil), buf[:n]...)}
}

// IntFrom64 creates an Int from an int64. math.MinInt64 is supported.
func IntFrom64(v int64) Int {
	if v >= 0 {
		return IntFromU64(uint64(v))
	}
	out := IntFromU64(^uint64(v) + 1)
	out.sign = Negative
	return out
}

func IntFrom32(v int32) Int   { return IntFrom64(int64(v)) }
func IntFrom16(v int16) Int   { return IntFrom64(int64(v)) }
func IntFrom8(v int8) Int     { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }
func IntFromU32(v uint32) Int { return IntFromU64(uint64(v)) }

// IntFromBigInt creates an Int from a big.Int.
func IntFromBigInt(v *big.Int) Int {
	if v.Sign() == 0 {
		return zeroInt
	}
	str := v.Text(10)
	neg := str[0] == '-'
	if neg {
		str = str[1:]
	}
	buf := make([]uint8, len(str))
	for idx := 0; idx < len(str); idx++ {
		buf[len(str)-1-idx] = str[idx] - '0'
	}
	return intFromMagSign(buf, neg)
}

// mag returns the canonical digits of i. The zero value of Int has no digit
// slice, so it is substituted here.
func (i Int) mag() []uint8 {
	if len(i.digits) == 0 {
		return zeroDigits
	}
	return i.digits
}

func (i Int) IsZero() bool { return i.sign == Zero }

func (i Int) Sign() Sign { return i.sign }

// Len returns the number of decimal digits in the magnitude of i. Zero has a
// length of 1.
func (i Int) Len() int { return len(i.mag()) }

// Digits returns a copy of the magnitude's digits, least significant first.
func (i Int) Digits() []int {
	d := i.mag()
	out := make([]int, len(d))
	for idx, v := range d {
		out[idx] = int(v)
	}
	return out
}

func (i Int) String() string {
	d := i.mag()
	n := len(d)
	off := 0
	if i.sign == Negative {
		off = 1
	}
	buf := make([]byte, n+off)
	if off > 0 {
		buf[0] = '-'
	}
	for idx := 0; idx < n; idx++ {
		buf[off+idx] = '0' + d[n-1-idx]
	}
	return string(buf)
}

func (i Int) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	if _, ok := b.SetString(i.String(), 10); !ok {
		panic(fmt.Errorf("decnum: unexpected string %q", i.String()))
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	_, err := i.Int64()
	return err == nil
}

// Int64 converts i to an int64. If i does not fit, an error wrapping
// ErrOverflow is returned.
func (i Int) Int64() (int64, error) {
	d := i.mag()

	// Accumulate towards negative so MinInt64 does not overflow on the way.
	var v int64
	for k := len(d) - 1; k >= 0; k-- {
		if v < minInt64/10 {
			return 0, fmt.Errorf("decnum: %s does not fit in int64: %w", i.String(), ErrOverflow)
		}
		v *= 10
		if v < minInt64+int64(d[k]) {
			return 0, fmt.Errorf("decnum: %s does not fit in int64: %w", i.String(), ErrOverflow)
		}
		v -= int64(d[k])
	}

	if i.sign != Negative {
		if v == minInt64 {
			return 0, fmt.Errorf("decnum: %s does not fit in int64: %w", i.String(), ErrOverflow)
		}
		v = -v
	}
	return v, nil
}

// Hash returns a hash of i. Equal values always produce the same hash.
func (i Int) Hash() uint64 {
	d := i.mag()
	buf := make([]byte, len(d)+1)
	buf[0] = byte(i.sign + 1)
	copy(buf[1:], d)
	return xxhash.Sum64(buf)
}

func (i Int) Neg() Int {
	switch i.sign {
	case Zero:
		return zeroInt
	case Negative:
		return Int{sign: Positive, digits: i.digits}
	}
	return Int{sign: Negative, digits: i.digits}
}

func (i Int) Abs() Int {
	if i.sign == Negative {
		return Int{sign: Positive, digits: i.digits}
	}
	return i
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
func (i Int) Cmp(n Int) int {
	if i.sign != n.sign {
		if i.sign < n.sign {
			return -1
		}
		return 1
	}
	if i.sign == Zero {
		return 0
	}
	return int(i.sign) * cmpDigits(i.mag(), n.mag())
}

func (i Int) Equal(n Int) bool            { return i.Cmp(n) == 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }

// Add returns the sum i+n.
func (i Int) Add(n Int) Int {
	if i.sign == Zero {
		return n
	} else if n.sign == Zero {
		return i
	}

	if i.sign == n.sign {
		return intFromMagSign(addDigits(i.mag(), n.mag()), i.sign == Negative)
	}

	// Mixed signs are handled by Sub so the borrow logic lives in one place.
	if i.sign == Positive {
		return i.Sub(n.Abs())
	}
	return n.Sub(i.Abs())
}

// Sub returns the difference i-n.
func (i Int) Sub(n Int) Int {
	if n.sign == Zero {
		return i
	} else if i.sign == Zero {
		return n.Neg()
	}

	if i.sign != n.sign {
		return intFromMagSign(addDigits(i.mag(), n.mag()), i.sign == Negative)
	}

	cmp := cmpDigits(i.mag(), n.mag())
	if cmp == 0 {
		return zeroInt
	}

	if i.sign == Negative {
		return n.Abs().Sub(i.Abs())
	}

	if cmp > 0 {
		return intFromMag(subDigits(i.mag(), n.mag()))
	}
	return intFromMagSign(subDigits(n.mag(), i.mag()), true)
}

func (i Int) Inc() Int { return i.Add(oneInt) }
func (i Int) Dec() Int { return i.Sub(oneInt) }

// Mul returns the product i*n, computed using Karatsuba multiplication.
func (i Int) Mul(n Int) Int {
	return i.MulTrace(n, nil)
}

// MulTrace returns the product i*n. If trace is not nil, it is called once
// for every recursive level of the multiplication, innermost levels first.
// Single digit products are not reported.
func (i Int) MulTrace(n Int, trace func(MulStep)) Int {
	if i.sign == Zero || n.sign == Zero {
		return zeroInt
	}
	d := mulDigits(i.mag(), n.mag(), 0, trace)
	return intFromMagSign(d, i.sign != n.sign)
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 {
		return fmt.Errorf("decnum: empty JSON: %w", ErrInvalidDigit)
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("decnum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
