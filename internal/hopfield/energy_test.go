package hopfield

import (
	"math"
	"math/rand"
	"testing"
)

func TestStateEnergyZeroMatrix(t *testing.T) {
	m := NewMatrix(4)
	states := []State{
		{1, 1, 1, 1},
		{-1, 1, -1, 1},
		{0.5, -2.3, 7.0, 0},
	}
	for _, s := range states {
		if e := StateEnergy(m, s); e != 0 {
			t.Errorf("state %v: expected energy 0, got %f", s, e)
		}
	}
}

func TestStateEnergyTwoUnit(t *testing.T) {
	// W = [[0,1],[1,0]], V = [1,1]: E = -(W01 + W10) = -2.
	m := NewMatrix(2)
	m.Set(0, 1, 1)
	m.Set(1, 0, 1)

	if e := StateEnergy(m, State{1, 1}); e != -2 {
		t.Errorf("expected energy -2, got %f", e)
	}
	if e := StateEnergy(m, State{1, -1}); e != 2 {
		t.Errorf("expected energy 2, got %f", e)
	}
}

func TestUnitEnergyMatchesAllUnitEnergies(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 5; trial++ {
		dim := 3 + trial*2
		m := NewRandomMatrix(dim, rng)

		v := make(State, dim)
		for i := range v {
			v[i] = rng.Float64()*2 - 1
		}

		all := AllUnitEnergies(m, v)
		if len(all) != dim {
			t.Fatalf("expected %d energies, got %d", dim, len(all))
		}
		for i := 0; i < dim; i++ {
			single := UnitEnergy(m, v, i)
			if math.Abs(all[i]-single) > 1e-12 {
				t.Errorf("unit %d: AllUnitEnergies=%f, UnitEnergy=%f", i, all[i], single)
			}
		}
	}
}

func TestStateEnergyIsSumOfUnitEnergies(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	m := NewRandomMatrix(7, rng)
	v := make(State, 7)
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	sum := 0.0
	for _, e := range AllUnitEnergies(m, v) {
		sum += e
	}
	if total := StateEnergy(m, v); math.Abs(total-sum) > 1e-9 {
		t.Errorf("state energy %f != sum of unit energies %f", total, sum)
	}
}

func TestCountUnstable(t *testing.T) {
	tests := []struct {
		name     string
		energies State
		want     int
	}{
		{"all stable", State{0, -1, -0.001}, 0},
		{"some unstable", State{0.001, -1, 2, 0}, 2},
		{"empty", State{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountUnstable(tt.energies); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
