package hopfield

import "math"

// State is one network state: a real-valued vector with one scalar per unit.
//
// Updates follow an ownership-transfer convention: methods that evolve a
// state consume the slice they are given and return the slice to keep using.
// Callers must not retain aliases to a state after passing it in.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Sum returns the total of all unit values, handy for eyeballing how a
// bipolar state is balanced.
func (s State) Sum() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum
}

// Equal reports whether both states have the same length and identical
// component values.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
