// Package hopfield implements a Hopfield associative-memory network: a
// fully-connected network of binary, bipolar or continuous units whose
// pairwise weight matrix defines an energy landscape.
//
// The package centers on the relaxation engine:
//
//   - [Matrix]: square weight matrix with explicit clean operations
//   - [StateEnergy], [UnitEnergy], [AllUnitEnergies]: energy computations
//   - [Network.UpdateState]: one asynchronous sweep in random unit order
//   - [Network.RelaxState]: iterate sweeps to an energy-based stability
//     criterion under an iteration budget
//   - [Network.ConcurrentRelaxStateCollection]: relax a batch of states
//     across worker goroutines, preserving input order and, for a fixed
//     engine seed and worker count, exact reproducibility
//   - [StateGenerator]: random domain-valid initial states
//
// # Example
//
//	net, _ := hopfield.New(hopfield.Config{Dimension: 64, Domain: hopfield.DomainBipolar, Seed: 1})
//	gen, _ := hopfield.NewStateGenerator(hopfield.GeneratorConfig{Dimension: 64, Domain: hopfield.DomainBipolar, Seed: 1})
//	relaxed := net.RelaxState(gen.NextState())
//
// # Thread Safety
//
// Network instances are NOT thread-safe. ConcurrentRelaxStateCollection
// gives each worker a private matrix clone and RNG, so the batch path is
// safe without locking.
package hopfield
