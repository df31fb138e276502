package bigint

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Int is an immutable arbitrary-precision signed integer.
// The zero value of the type is the numeric value of 0 and ready to use.
// It is designed to be safe for concurrent use by multiple goroutines:
// no operation mutates its operands.
//
// An Int is a struct with two parameters:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Magnitude: a sequence of base-1,000,000 digits holding the absolute
//     value, least significant digit first.
//
// Every value produced by this package is canonical: all digits are in
// [0, [Base]), the magnitude carries no zero digit at its most significant
// end, and zero has exactly one representation (positive sign, empty
// magnitude). Two canonical integers are therefore equal if and only if
// their fields are structurally equal.
//
// Int contains a slice, so values must be compared with [Int.Equal] or
// [Int.Cmp], not with ==.
type Int struct {
	neg bool // indicates whether the integer is negative
	mag mag  // base-1e6 digits of the absolute value, least significant first
}

var (
	errInvalidInteger = errors.New("invalid integer")
	errDivisionByZero = errors.New("division by zero")
)

// Commonly used values.
var (
	NegOne = New(-1) // -1
	Zero   = New(0)  // 0
	One    = New(1)  // 1
)

// newInt assembles an integer from a normalized magnitude and a sign,
// keeping zero positive.
func newInt(neg bool, m mag) Int {
	if len(m) == 0 {
		neg = false
	}
	return Int{neg: neg, mag: m}
}

// New returns an integer equal to i.
func New(i int64) Int {
	neg := i < 0
	u := uint64(i)
	if neg {
		u = -u
	}
	var m mag
	for u > 0 {
		m = append(m, int64(u%Base))
		u /= Base
	}
	return newInt(neg, m)
}

// Parse converts a string to an integer.
// The input string must be formatted according to the following formal
// EBNF grammar:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// Leading zeros are accepted and ignored.
//
// Parse returns an error if the string contains any other character or
// no digits at all.
func Parse(s string) (Int, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Digits
	if pos == width {
		return Int{}, fmt.Errorf("no digits: %w", errInvalidInteger)
	}
	for i := pos; i < width; i++ {
		if s[i] < '0' || s[i] > '9' {
			return Int{}, fmt.Errorf("invalid character %q: %w", s[i], errInvalidInteger)
		}
	}

	// Group digits by 6 from the least significant end.
	// Each group is below Base, so no carry resolution is needed.
	m := make(mag, 0, (width-pos+digitWidth-1)/digitWidth)
	for end := width; end > pos; end -= digitWidth {
		start := end - digitWidth
		if start < pos {
			start = pos
		}
		var d int64
		for i := start; i < end; i++ {
			d = d*10 + int64(s[i]-'0')
		}
		m = append(m, d)
	}
	return newInt(neg, m.trim()), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of an integer value: an optional '-' followed
// by decimal digits with no leading zeros and no grouping separators.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	if len(x.mag) == 0 {
		return "0"
	}
	buf := make([]byte, 0, len(x.mag)*digitWidth+1)
	if x.neg {
		buf = append(buf, '-')
	}
	top := len(x.mag) - 1
	buf = strconv.AppendInt(buf, x.mag[top], 10)
	for i := top - 1; i >= 0; i-- {
		d := x.mag[i]
		for p := int64(Base / 10); p >= 1; p /= 10 {
			buf = append(buf, byte('0'+d/p%10))
		}
	}
	return string(buf)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -123456
//	%q:        "-123456"
//
// The '+' and ' ' flags print a sign for non-negative values.
// Width is supported, together with the '-' (left justify) and
// '0' (zero padding) flags.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {
	switch verb {
	case 'd', 'D', 's', 'S', 'v', 'V', 'q', 'Q':
		// continue
	default:
		fmt.Fprintf(state, "%%!%c(bigint.Int=%s)", verb, x.String())
		return
	}

	digits := x.Abs().String()

	// Arithmetic sign
	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Quotes
	quote := 0
	if verb == 'q' || verb == 'Q' {
		quote = 1
	}

	// Padding
	width := len(sign) + len(digits) + 2*quote
	lspaces, lzeroes, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && quote == 0:
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if quote > 0 {
		buf = append(buf, '"')
	}
	buf = append(buf, sign...)
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digits...)
	if quote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}
	state.Write(buf)
}

// Scan implements the [sql.Scanner] interface.
// See also method [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *Int) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*x, err = Parse(value)
	case []byte:
		*x, err = Parse(string(value))
	case int64:
		*x = New(value)
	default:
		err = fmt.Errorf("failed to convert from %T to %T", value, Int{})
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// See also method [Int.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (x Int) Value() (driver.Value, error) {
	return x.String(), nil
}

// Int64 returns the int64 value of x and whether x fits in an int64.
func (x Int) Int64() (int64, bool) {
	if len(x.mag) > 4 {
		return 0, false
	}
	var u uint64
	for i := len(x.mag) - 1; i >= 0; i-- {
		d := uint64(x.mag[i])
		if u > (math.MaxUint64-d)/Base {
			return 0, false
		}
		u = u*Base + d
	}
	lim := uint64(math.MaxInt64)
	if x.neg {
		lim++
	}
	if u > lim {
		return 0, false
	}
	if x.neg {
		return int64(-u), true
	}
	return int64(u), true
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case len(x.mag) == 0:
		return 0
	}
	return 1
}

// IsPos returns:
//
//	true  if x > 0
//	false otherwise
func (x Int) IsPos() bool {
	return !x.neg && len(x.mag) != 0
}

// IsNeg returns:
//
//	true  if x < 0
//	false otherwise
func (x Int) IsNeg() bool {
	return x.neg
}

// IsZero returns:
//
//	true  if x == 0
//	false otherwise
func (x Int) IsZero() bool {
	return len(x.mag) == 0
}

// Neg returns an integer with the opposite sign.
func (x Int) Neg() Int {
	return newInt(!x.neg, x.mag)
}

// Abs returns the absolute value of x.
// The magnitude is already canonical, so only the sign changes.
func (x Int) Abs() Int {
	return Int{mag: x.mag}
}

// Add calculates x + y.
// Both operands are merged into a single raw digit sequence, a negative
// operand contributing negated digits, and the sum is normalized with a
// positive sign. The sign flip reported by the normalization is what
// turns opposite-sign addition into subtraction.
func (x Int) Add(y Int) Int {
	n := len(x.mag)
	if len(y.mag) > n {
		n = len(y.mag)
	}
	raw := make(mag, n)
	copy(raw, x.mag)
	if x.neg {
		for i := range x.mag {
			raw[i] = -raw[i]
		}
	}
	for i, d := range y.mag {
		if y.neg {
			raw[i] -= d
		} else {
			raw[i] += d
		}
	}
	m, flip := raw.norm()
	return newInt(flip, m)
}

// Sub calculates x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul calculates x * y.
// The product is negative if and only if the operands' signs differ.
func (x Int) Mul(y Int) Int {
	return newInt(x.neg != y.neg, x.mag.mul(y.mag))
}

// QuoRem returns the quotient q and remainder r of x divided by y,
// such that x = q*y + r. The division truncates towards zero: the
// quotient is negative if and only if the operands' signs differ, and
// the remainder takes the sign of x.
//
// QuoRem returns an error if y is zero.
// Also see method [Int.MustQuoRem].
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, errDivisionByZero
	}
	qm, rm := x.mag.divRem(y.mag)
	return newInt(x.neg != y.neg, qm), newInt(x.neg, rm), nil
}

// Quo returns the quotient of x divided by y truncated towards zero.
//
// Quo returns an error if y is zero.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x divided by y.
// The remainder takes the sign of x.
//
// Rem returns an error if y is zero.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Cmp numerically compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	}
	c := x.mag.cmp(y.mag)
	if x.neg {
		return -c
	}
	return c
}

// Equal compares x and y and returns:
//
//	true  if x == y
//	false otherwise
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Less compares x and y and returns:
//
//	true  if x < y
//	false otherwise
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// Greater compares x and y and returns:
//
//	true  if x > y
//	false otherwise
func (x Int) Greater(y Int) bool {
	return x.Cmp(y) > 0
}

// Max returns the larger integer.
func (x Int) Max(y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns the smaller integer.
func (x Int) Min(y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}
