package decnum

// normDigits trims high-order zero digits. The result aliases d; an empty or
// all-zero input yields zeroDigits.
func normDigits(d []uint8) []uint8 {
	n := len(d)
	for n > 0 && d[n-1] == 0 {
		n--
	}
	if n == 0 {
		return zeroDigits
	}
	return d[:n]
}

func isZeroDigits(d []uint8) bool {
	return len(d) == 0 || (len(d) == 1 && d[0] == 0)
}

// cmpDigits compares two normalised magnitudes.
func cmpDigits(a, b []uint8) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for k := len(a) - 1; k >= 0; k-- {
		if a[k] != b[k] {
			if a[k] < b[k] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// combineDigits walks a and b from the least significant digit with a signed
// carry in [-1, 1]. If negB is set, the digits of b are subtracted instead of
// added; the caller must then guarantee that a >= b so no borrow survives.
//
// The result is normalised.
func combineDigits(a, b []uint8, negB bool) []uint8 {
	ln := len(a)
	if len(b) > ln {
		ln = len(b)
	}

	out := make([]uint8, ln, ln+1)
	carry := 0
	for k := 0; k < ln; k++ {
		sum := carry
		if k < len(a) {
			sum += int(a[k])
		}
		if k < len(b) {
			if negB {
				sum -= int(b[k])
			} else {
				sum += int(b[k])
			}
		}

		switch {
		case sum > 9:
			out[k], carry = uint8(sum-10), 1
		case sum < 0:
			out[k], carry = uint8(sum+10), -1
		default:
			out[k], carry = uint8(sum), 0
		}
	}
	if carry != 0 {
		out = append(out, 1)
	}
	return normDigits(out)
}

func addDigits(a, b []uint8) []uint8 { return combineDigits(a, b, false) }

// subDigits returns a - b. a must not be smaller than b.
func subDigits(a, b []uint8) []uint8 { return combineDigits(a, b, true) }

// shiftDigits multiplies d by 10^n by prepending n zero digits.
func shiftDigits(d []uint8, n int) []uint8 {
	if isZeroDigits(d) {
		return zeroDigits
	}
	out := make([]uint8, n+len(d))
	copy(out[n:], d)
	return out
}

// splitDigits splits d around mid into a high part (index >= mid) and a low
// part (index < mid). Both parts are normalised and alias d.
func splitDigits(d []uint8, mid int) (hi, lo []uint8) {
	if len(d) <= mid {
		return zeroDigits, normDigits(d)
	}
	return normDigits(d[mid:]), normDigits(d[:mid])
}

// mulDigits multiplies two magnitudes using Karatsuba's method. If trace is
// not nil, it is called once for every recursive level.
func mulDigits(a, b []uint8, depth int, trace func(MulStep)) []uint8 {
	if isZeroDigits(a) || isZeroDigits(b) {
		return zeroDigits
	}

	m := len(a)
	if len(b) > m {
		m = len(b)
	}
	if m == 1 {
		p := a[0] * b[0] // at most 81
		if p < 10 {
			return []uint8{p}
		}
		return []uint8{p % 10, p / 10}
	}

	mid := (m + 1) / 2
	ahi, alo := splitDigits(a, mid)
	bhi, blo := splitDigits(b, mid)

	z2 := mulDigits(ahi, bhi, depth+1, trace)
	z0 := mulDigits(alo, blo, depth+1, trace)
	z1 := mulDigits(addDigits(alo, ahi), addDigits(blo, bhi), depth+1, trace)
	z1 = subDigits(z1, addDigits(z2, z0))

	out := addDigits(z0, shiftDigits(z1, mid))
	out = addDigits(out, shiftDigits(z2, 2*mid))

	if trace != nil {
		trace(MulStep{
			Depth:  depth,
			Mid:    mid,
			A:      intFromMag(a),
			B:      intFromMag(b),
			Z0:     intFromMag(z0),
			Z1:     intFromMag(z1),
			Z2:     intFromMag(z2),
			Result: intFromMag(out),
		})
	}
	return out
}
