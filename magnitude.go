package bigint

// Base is the radix of the internal digit representation.
// It is the largest power of 10 such that (Base-1) * (Base-1) still fits
// in an int64 together with a carry, so single-digit multiplication never
// overflows an int64 accumulator.
const Base = 1_000_000

// digitWidth is the number of decimal characters per digit.
const digitWidth = 6

// pow2 is the descending list of trial multipliers used by restoring
// division. 2^20 is the smallest power of two exceeding Base, so subset
// sums of pow2 cover every quotient digit in [0, Base).
var pow2 = [...]int64{
	1 << 20,
	1 << 19,
	1 << 18,
	1 << 17,
	1 << 16,
	1 << 15,
	1 << 14,
	1 << 13,
	1 << 12,
	1 << 11,
	1 << 10,
	1 << 9,
	1 << 8,
	1 << 7,
	1 << 6,
	1 << 5,
	1 << 4,
	1 << 3,
	1 << 2,
	1 << 1,
	1 << 0,
}

// mag is a digit sequence in base [Base], least significant digit first.
// A magnitude is normalized if every digit is in [0, Base) and there is
// no trailing zero at the most significant end. The normalized
// representation of 0 is the empty or nil slice. Raw sequences built
// mid-computation may contain negative or overflowing digits and are
// always passed through norm before the final result is assembled.
type mag []int64

// norm restores canonical form of a raw digit sequence.
// Carries and borrows are resolved with floor division, the residual
// carry is appended at the most significant end (split into digits when
// positive, kept as a single negative digit otherwise), and high zero
// digits are trimmed. The second return value reports whether the value
// turned out negative relative to the supplied sign: when the top digit
// resolves below zero, every digit is negated and another pass is run.
//
// norm modifies z in place, so it must only be called on freshly built
// raw sequences.
func (z mag) norm() (mag, bool) {
	neg := false
	for {
		var carry int64
		for i, d := range z {
			d += carry
			m := d % Base
			if m < 0 {
				m += Base
			}
			carry = (d - m) / Base
			z[i] = m
		}
		for carry > 0 {
			z = append(z, carry%Base)
			carry /= Base
		}
		if carry < 0 {
			z = append(z, carry)
		}
		z = z.trim()
		if len(z) == 0 || z[len(z)-1] > 0 {
			return z, neg
		}
		for i := range z {
			z[i] = -z[i]
		}
		neg = !neg
	}
}

// trim drops zero digits from the most significant end.
func (x mag) trim() mag {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// cmp compares normalized magnitudes x and y.
func (x mag) cmp(y mag) int {
	return x.cmpShift(y, 0)
}

// cmpShift compares x with y * Base^shift.
// Both magnitudes must be normalized.
func (x mag) cmpShift(y mag, shift int) int {
	yl := len(y) + shift
	if len(y) == 0 {
		yl = 0
	}
	switch {
	case len(x) < yl:
		return -1
	case len(x) > yl:
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		var yd int64
		if i >= shift {
			yd = y[i-shift]
		}
		switch {
		case x[i] < yd:
			return -1
		case x[i] > yd:
			return 1
		}
	}
	return 0
}

// addShift calculates x + y * Base^shift.
func (x mag) addShift(y mag, shift int) mag {
	if len(y) == 0 {
		return x
	}
	n := len(y) + shift
	if len(x) > n {
		n = len(x)
	}
	raw := make(mag, n)
	copy(raw, x)
	for i, d := range y {
		raw[i+shift] += d
	}
	z, _ := raw.norm()
	return z
}

// subShift calculates x - y * Base^shift.
// Requires x >= y * Base^shift, so the result never flips sign.
func (x mag) subShift(y mag, shift int) mag {
	raw := make(mag, len(x))
	copy(raw, x)
	for i, d := range y {
		raw[i+shift] -= d
	}
	z, _ := raw.norm()
	return z
}

// mulDigit calculates x * d for a non-negative multiplier d.
// d must be small enough that d * (Base-1) fits in an int64; both the
// digits of a normalized magnitude and the pow2 trial multipliers
// qualify.
func (x mag) mulDigit(d int64) mag {
	if d == 0 || len(x) == 0 {
		return nil
	}
	raw := make(mag, len(x))
	for i, xd := range x {
		raw[i] = xd * d
	}
	z, _ := raw.norm()
	return z
}

// mul calculates x * y using schoolbook multiplication: one single-digit
// partial product per digit of y, shifted by the digit's position and
// accumulated with addShift.
func (x mag) mul(y mag) mag {
	var z mag
	for i, d := range y {
		z = z.addShift(x.mulDigit(d), i)
	}
	return z
}

// divRem calculates q and r such that x = q*y + r and 0 <= r < y.
// Requires y to be non-zero.
//
// Division is restoring: for every base-Base position of the quotient,
// from the most significant candidate position down, the divisor scaled
// by descending powers of two is subtracted greedily from the running
// remainder. The subset of pow2 multipliers that fit reconstructs the
// binary representation of the quotient digit at that position. This
// takes O(positions * log Base) trial subtractions instead of estimating
// digits directly, a deliberate simplicity-over-speed trade.
func (x mag) divRem(y mag) (q, r mag) {
	r = make(mag, len(x))
	copy(r, x)

	// Scaled divisors y * 2^k, computed once per call.
	divs := make([]mag, len(pow2))
	for k, p := range pow2 {
		divs[k] = y.mulDigit(p)
	}

	n := len(x) - len(y) + 1
	if n < 0 {
		n = 0
	}
	q = make(mag, n+1)
	for pos := n; pos >= 0; pos-- {
		var qd int64
		for k, d := range divs {
			if r.cmpShift(d, pos) >= 0 {
				r = r.subShift(d, pos)
				qd += pow2[k]
			}
		}
		q[pos] = qd
	}
	return q.trim(), r
}
