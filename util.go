package decnum

type RandSource interface {
	Intn(n int) int
}

// DifferenceInt returns the absolute difference between a and b.
func DifferenceInt(a, b Int) Int {
	if a.GreaterOrEqualTo(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerInt(a, b Int) Int {
	if a.LessThan(b) {
		return b
	}
	return a
}

func SmallerInt(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}

// RandInt generates a non-negative Int of at most maxDigits digits from an
// external source. The number of digits is itself uniformly distributed so
// short values are not vanishingly rare.
func RandInt(source RandSource, maxDigits int) Int {
	if maxDigits <= 0 {
		return zeroInt
	}
	n := source.Intn(maxDigits) + 1
	buf := make([]uint8, n)
	for idx := range buf {
		buf[idx] = uint8(source.Intn(10))
	}
	return intFromMag(buf)
}
