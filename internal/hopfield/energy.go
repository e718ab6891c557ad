package hopfield

// Energy functions over a weight matrix and a domain-consistent state.
//
// There is deliberately no normalizing 1/2 factor anywhere here: every
// stability comparison in the engine is relative, so the convention only
// has to be applied consistently.

// StateEnergy returns the total energy of a state,
// -sum_i sum_j W[i][j] * V[i] * V[j].
func StateEnergy(m *Matrix, v State) float64 {
	sum := 0.0
	for i := 0; i < m.Dim(); i++ {
		sum += m.RowDot(i, v) * v[i]
	}
	return -sum
}

// UnitEnergy returns the energy contribution attributable to unit i alone,
// -(sum_j W[i][j] * V[j]) * V[i]. A unit is unstable iff its energy is
// strictly greater than zero.
func UnitEnergy(m *Matrix, v State, i int) float64 {
	return -m.RowDot(i, v) * v[i]
}

// AllUnitEnergies returns the energy of every unit, computed in one
// matrix-vector multiply rather than Dim separate dot products.
func AllUnitEnergies(m *Matrix, v State) State {
	energies := make(State, m.Dim())
	m.MulVec(v, energies)
	for i := range energies {
		energies[i] = -energies[i] * v[i]
	}
	return energies
}

// CountUnstable returns the number of units with energy strictly greater
// than zero.
func CountUnstable(energies State) int {
	count := 0
	for _, e := range energies {
		if e > 0 {
			count++
		}
	}
	return count
}
