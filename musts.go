package bigint

import "fmt"

// MustQuoRem is like [Int.QuoRem] but panics if y is zero.
// It is intended for call sites that have already excluded a zero
// divisor and prefer not to handle the impossible error.
func (x Int) MustQuoRem(y Int) (Int, Int) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", y, err))
	}
	return q, r
}

// MustQuo is like [Int.Quo] but panics if y is zero.
func (x Int) MustQuo(y Int) Int {
	q, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return q
}

// MustRem is like [Int.Rem] but panics if y is zero.
func (x Int) MustRem(y Int) Int {
	r, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return r
}
