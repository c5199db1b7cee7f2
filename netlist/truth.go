package netlist

import "strings"

// MaxTruthInputs bounds the width of a truth table; 2^30 rows is already a
// 128 MiB bit vector, far past any practical LUT width.
const MaxTruthInputs = 30

// Truth is the truth table of an n-input single-output function, stored as a
// bit vector of 2^n rows. Row index r = Σ value(input i) << i: input 0 is
// the least significant position, matching the Func row convention.
type Truth struct {
	inputs int
	bits   []uint64
}

// NewTruth returns an all-zero truth table over the given input count.
// Panics when inputs is negative or absurdly wide; both are programmer
// errors, not runtime conditions.
func NewTruth(inputs int) Truth {
	if inputs < 0 || inputs > MaxTruthInputs {
		panic("netlist: NewTruth input count out of range")
	}
	words := 1
	if inputs > 6 {
		words = 1 << (inputs - 6)
	}
	return Truth{inputs: inputs, bits: make([]uint64, words)}
}

// Inputs returns the input count n.
func (t Truth) Inputs() int { return t.inputs }

// Rows returns 2^n, the number of rows.
func (t Truth) Rows() int { return 1 << t.inputs }

// Get reports the output bit of row r. r must be in [0, Rows).
func (t Truth) Get(r int) bool {
	return t.bits[r>>6]&(1<<(uint(r)&63)) != 0
}

// Set assigns the output bit of row r. r must be in [0, Rows).
func (t Truth) Set(r int, v bool) {
	if v {
		t.bits[r>>6] |= 1 << (uint(r) & 63)
	} else {
		t.bits[r>>6] &^= 1 << (uint(r) & 63)
	}
}

// Ones returns the number of rows with output 1.
func (t Truth) Ones() int {
	count := 0
	for r := 0; r < t.Rows(); r++ {
		if t.Get(r) {
			count++
		}
	}
	return count
}

// Equal reports whether two tables have the same width and rows.
func (t Truth) Equal(o Truth) bool {
	if t.inputs != o.inputs {
		return false
	}
	for i := range t.bits {
		if t.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (t Truth) Clone() Truth {
	c := Truth{inputs: t.inputs, bits: make([]uint64, len(t.bits))}
	copy(c.bits, t.bits)
	return c
}

// String renders the rows highest-index first, so a 2-input AND reads
// "1000" exactly like Func.String.
func (t Truth) String() string {
	var b strings.Builder
	b.Grow(t.Rows())
	for r := t.Rows() - 1; r >= 0; r-- {
		if t.Get(r) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
