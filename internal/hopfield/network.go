package hopfield

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// DefaultMaxIterations bounds worst-case relaxation cost. Typically
	// large enough for states to settle.
	DefaultMaxIterations = 100

	// DefaultMaxUnstableUnits requires perfect stability for early
	// termination. Values around 1-10% of the dimension loosen this.
	DefaultMaxUnstableUnits = 0
)

// Config holds the validated construction parameters for a Network.
//
// The zero value is not usable: Dimension and Domain must be set
// explicitly. Start from DefaultConfig for the conventional clean flags
// and relaxation limits.
type Config struct {
	Dimension         int
	Domain            Domain
	RandomWeights     bool
	ForceSymmetric    bool
	ForceZeroDiagonal bool
	MaxIterations     int
	MaxUnstableUnits  int
	Seed              int64
}

// DefaultConfig returns a Config with the conventional defaults: symmetric
// zero-diagonal cleaning enabled, a zero weight matrix, and the standard
// relaxation limits. Dimension and Domain still have to be set.
func DefaultConfig() Config {
	return Config{
		ForceSymmetric:    true,
		ForceZeroDiagonal: true,
		MaxIterations:     DefaultMaxIterations,
		MaxUnstableUnits:  DefaultMaxUnstableUnits,
	}
}

// Network is a fully-connected Hopfield network: a weight matrix, the
// domain restricting unit values, and the relaxation limits. The matrix is
// owned exclusively by the network for its lifetime.
//
// A Network is not safe for concurrent use; ConcurrentRelaxStateCollection
// manages its own per-worker copies internally.
type Network struct {
	matrix            *Matrix
	rng               *rand.Rand
	dimension         int
	domain            Domain
	activation        ActivationFunc
	forceSymmetric    bool
	forceZeroDiagonal bool
	maxIterations     int
	maxUnstableUnits  int
	seed              int64
}

// New builds a Network from cfg, failing fast on invalid parameters.
// A zero MaxIterations falls back to DefaultMaxIterations; a zero Seed
// picks a fresh seed which Seed() reports for reproducibility.
func New(cfg Config) (*Network, error) {
	if cfg.Dimension <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidDimension, cfg.Dimension)
	}
	if cfg.Domain == DomainUnspecified {
		return nil, ErrUnspecifiedDomain
	}
	if cfg.MaxIterations < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidIterations, cfg.MaxIterations)
	}
	if cfg.MaxUnstableUnits < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidTolerance, cfg.MaxUnstableUnits)
	}

	maxIterations := cfg.MaxIterations
	if maxIterations == 0 {
		maxIterations = DefaultMaxIterations
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var matrix *Matrix
	if cfg.RandomWeights {
		matrix = NewRandomMatrix(cfg.Dimension, rng)
	} else {
		matrix = NewMatrix(cfg.Dimension)
	}

	return &Network{
		matrix:            matrix,
		rng:               rng,
		dimension:         cfg.Dimension,
		domain:            cfg.Domain,
		activation:        ActivationFor(cfg.Domain),
		forceSymmetric:    cfg.ForceSymmetric,
		forceZeroDiagonal: cfg.ForceZeroDiagonal,
		maxIterations:     maxIterations,
		maxUnstableUnits:  cfg.MaxUnstableUnits,
		seed:              seed,
	}, nil
}

func (n *Network) Dimension() int { return n.dimension }

func (n *Network) Domain() Domain { return n.domain }

// Seed returns the seed driving the engine RNG stream, for repetition.
func (n *Network) Seed() int64 { return n.seed }

func (n *Network) MaxIterations() int { return n.maxIterations }

func (n *Network) MaxUnstableUnits() int { return n.maxUnstableUnits }

// WeightAt returns the coupling strength from unit j to unit i.
func (n *Network) WeightAt(i, j int) float64 { return n.matrix.At(i, j) }

// SetWeight installs a coupling strength from unit j to unit i. There is
// no training pass, so this is how callers shape the energy landscape.
func (n *Network) SetWeight(i, j int, w float64) { n.matrix.Set(i, j, w) }

// CleanMatrix applies the configured matrix invariants: if
// ForceZeroDiagonal is set the main diagonal is zeroed, and if
// ForceSymmetric is set the upper triangle is copied into the lower.
// The engine assumes neither property unless this has been invoked.
func (n *Network) CleanMatrix() {
	if n.forceZeroDiagonal {
		n.matrix.ZeroDiagonal()
	}
	if n.forceSymmetric {
		n.matrix.Symmetrize()
	}
}

// StateEnergy returns the overall energy of state in this network.
func (n *Network) StateEnergy(state State) float64 {
	return StateEnergy(n.matrix, state)
}

// UnitEnergy returns the energy of the single unit at unitIndex in state.
func (n *Network) UnitEnergy(state State, unitIndex int) float64 {
	return UnitEnergy(n.matrix, state, unitIndex)
}

// AllUnitEnergies returns the energy of every unit in state.
func (n *Network) AllUnitEnergies(state State) State {
	return AllUnitEnergies(n.matrix, state)
}

// IsStable reports whether state already satisfies the relaxation stop
// rule: strictly fewer unstable units than MaxUnstableUnits. A zero
// tolerance can never satisfy the strict comparison, so stability then
// means no unstable units at all.
func (n *Network) IsStable(state State) bool {
	unstable := CountUnstable(AllUnitEnergies(n.matrix, state))
	if n.maxUnstableUnits == 0 {
		return unstable == 0
	}
	return unstable < n.maxUnstableUnits
}

// UpdateState performs one asynchronous sweep: every unit is visited
// exactly once in a uniformly random order, and each visit recomputes the
// candidate next state activation(W * state) and overwrites only that
// unit's component. Updates are immediately visible to later visits in the
// same sweep.
//
// The state is consumed and returned; the sweep consumes exactly one
// permutation from the engine RNG stream.
func (n *Network) UpdateState(state State) State {
	scratch := make(State, n.dimension)
	return updateStateWith(n.matrix, n.activation, n.rng, state, scratch)
}

// RelaxState repeats UpdateState until the unstable-unit count drops
// strictly below MaxUnstableUnits or the iteration budget is exhausted.
//
// Non-convergence is not an error: the last computed state is returned
// either way. Callers that care should re-check with AllUnitEnergies.
func (n *Network) RelaxState(state State) State {
	scratch := make(State, n.dimension)
	return relaxStateWith(n.matrix, n.activation, n.rng, n.maxIterations, n.maxUnstableUnits, state, scratch)
}

func (n *Network) String() string {
	return fmt.Sprintf(`HopfieldNetwork
	Dimension: %d
	Domain: %s
	Force Symmetric: %t
	Force Zero Diagonal: %t
	Maximum Relaxation Iterations: %d
	Maximum Relaxation Unstable Units: %d`,
		n.dimension,
		n.domain,
		n.forceSymmetric,
		n.forceZeroDiagonal,
		n.maxIterations,
		n.maxUnstableUnits,
	)
}

// updateStateWith is the sweep shared by the sequential and concurrent
// paths. scratch must have length matrix.Dim and is clobbered.
func updateStateWith(matrix *Matrix, activation ActivationFunc, rng *rand.Rand, state State, scratch State) State {
	for _, unitIndex := range rng.Perm(matrix.Dim()) {
		matrix.MulVec(state, scratch)
		candidate := activation(scratch)
		state[unitIndex] = candidate[unitIndex]
	}
	return state
}

// relaxStateWith is the relaxation loop shared by the sequential and
// concurrent paths.
func relaxStateWith(matrix *Matrix, activation ActivationFunc, rng *rand.Rand, maxIterations, maxUnstableUnits int, state State, scratch State) State {
	for iteration := 0; iteration < maxIterations; iteration++ {
		state = updateStateWith(matrix, activation, rng, state, scratch)
		if CountUnstable(AllUnitEnergies(matrix, state)) < maxUnstableUnits {
			break
		}
	}
	return state
}
