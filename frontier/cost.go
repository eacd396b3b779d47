package frontier

import "golang.org/x/exp/constraints"

// Infinity returns the largest value representable by C.
// The searches use it as the "unreached" sentinel.
func Infinity[C constraints.Integer]() C {
	// Grow a run of one-bits until it stops increasing: that is the maximum
	// for both signed and unsigned C.
	m := C(1)
	for {
		n := m<<1 | 1
		if n <= m {
			return m
		}
		m = n
	}
}

// Add returns a+b and true, or Infinity and false if the sum would overflow C.
// Both operands must be non-negative.
func Add[C constraints.Integer](a, b C) (C, bool) {
	inf := Infinity[C]()
	if a > inf-b {
		return inf, false
	}

	return a + b, true
}
