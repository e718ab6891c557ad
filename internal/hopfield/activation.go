package hopfield

// ActivationFunc maps a raw state onto its domain. The mapping is applied
// component-wise: each output value depends only on the sign of the same
// input component. Implementations take ownership of the slice, map it in
// place and return it, so the unmapped vector cannot be used again.
type ActivationFunc func(State) State

// BinaryActivation maps each component to {0, 1}: x <= 0 becomes 0, else 1.
func BinaryActivation(s State) State {
	for i, v := range s {
		if v <= 0 {
			s[i] = 0.0
		} else {
			s[i] = 1.0
		}
	}
	return s
}

// BipolarActivation maps each component to {-1, 1}: x <= 0 becomes -1, else 1.
func BipolarActivation(s State) State {
	for i, v := range s {
		if v <= 0 {
			s[i] = -1.0
		} else {
			s[i] = 1.0
		}
	}
	return s
}

// IdentityActivation passes values through unmodified. Under the continuous
// domain relaxation degenerates to raw weighted-sum propagation.
func IdentityActivation(s State) State {
	return s
}
