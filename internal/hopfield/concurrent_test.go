package hopfield

import (
	"math/rand"
	"testing"
)

// installTestWeights fills the network with a deterministic symmetric
// zero-diagonal coupling pattern.
func installTestWeights(net *Network, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	dim := net.Dimension()
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			w := rng.NormFloat64()
			net.SetWeight(i, j, w)
			net.SetWeight(j, i, w)
		}
	}
}

func testBatch(t *testing.T, dim, count int) []State {
	t.Helper()
	gen, err := NewStateGenerator(GeneratorConfig{Dimension: dim, Domain: DomainBipolar, Seed: 61})
	if err != nil {
		t.Fatalf("generator build failed: %v", err)
	}
	return gen.CreateStateCollection(count)
}

func cloneBatch(states []State) []State {
	clones := make([]State, len(states))
	for i, s := range states {
		clones[i] = s.Clone()
	}
	return clones
}

// The batch result must line up with a hand-run simulation of the
// documented algorithm: round-robin shares, per-worker seeds drawn from
// the engine stream in worker-index order, each share relaxed
// sequentially, results placed back at their original indices.
func TestConcurrentRelaxReturnsAllStatesInOrder(t *testing.T) {
	const dim, count, workers, seed = 10, 17, 4, 53

	net, err := New(bipolarTestConfig(dim, seed))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	installTestWeights(net, seed)

	batch := testBatch(t, dim, count)
	relaxed := net.ConcurrentRelaxStateCollection(cloneBatch(batch), workers)
	if len(relaxed) != count {
		t.Fatalf("expected %d results, got %d", count, len(relaxed))
	}

	seedStream := rand.New(rand.NewSource(seed))
	want := make([]State, count)
	for worker := 0; worker < workers; worker++ {
		replica, err := New(bipolarTestConfig(dim, int64(seedStream.Uint64())))
		if err != nil {
			t.Fatalf("build failed: %v", err)
		}
		installTestWeights(replica, seed)
		for index := worker; index < count; index += workers {
			want[index] = replica.RelaxState(batch[index].Clone())
		}
	}

	for i := range want {
		if !relaxed[i].Equal(want[i]) {
			t.Errorf("state %d out of order or numerically off:\n got %v\nwant %v", i, relaxed[i], want[i])
		}
	}
}

func TestConcurrentRelaxDeterministicForSeedAndWorkers(t *testing.T) {
	const dim, count, workers = 12, 9, 3

	run := func() []State {
		cfg := bipolarTestConfig(dim, 67)
		net, err := New(cfg)
		if err != nil {
			t.Fatalf("build failed: %v", err)
		}
		installTestWeights(net, 67)
		return net.ConcurrentRelaxStateCollection(testBatch(t, dim, count), workers)
	}

	first := run()
	second := run()

	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("state %d differs between identical runs:\n%v\n%v", i, first[i], second[i])
		}
	}
}

// With one worker the batch path must match relaxing each state
// sequentially on an engine seeded with the single derived worker seed.
func TestConcurrentRelaxSingleWorkerMatchesSequential(t *testing.T) {
	const dim, count, seed = 10, 6, 71

	concurrent, err := New(bipolarTestConfig(dim, seed))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	installTestWeights(concurrent, seed)

	derivedSeed := int64(rand.New(rand.NewSource(seed)).Uint64())
	sequential, err := New(bipolarTestConfig(dim, derivedSeed))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	installTestWeights(sequential, seed)

	batch := testBatch(t, dim, count)

	got := concurrent.ConcurrentRelaxStateCollection(cloneBatch(batch), 1)

	want := make([]State, count)
	for i, s := range cloneBatch(batch) {
		want[i] = sequential.RelaxState(s)
	}

	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("state %d: concurrent %v != sequential %v", i, got[i], want[i])
		}
	}
}

func TestConcurrentRelaxMoreWorkersThanStates(t *testing.T) {
	net, err := New(bipolarTestConfig(6, 73))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	relaxed := net.ConcurrentRelaxStateCollection(testBatch(t, 6, 2), 8)
	if len(relaxed) != 2 {
		t.Fatalf("expected 2 results, got %d", len(relaxed))
	}
}

// A worker hitting a malformed state must abort the whole batch with a
// panic after all workers are joined, never return partial results.
func TestConcurrentRelaxWorkerPanicPropagates(t *testing.T) {
	net, err := New(bipolarTestConfig(6, 83))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	batch := testBatch(t, 6, 3)
	batch[1] = State{1, -1} // wrong dimension, blows up inside one worker

	defer func() {
		if recover() == nil {
			t.Fatal("expected batch relaxation to panic on a worker failure")
		}
	}()
	net.ConcurrentRelaxStateCollection(batch, 2)
}

func TestConcurrentRelaxEmptyBatch(t *testing.T) {
	net, err := New(bipolarTestConfig(4, 79))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	relaxed := net.ConcurrentRelaxStateCollection(nil, 3)
	if len(relaxed) != 0 {
		t.Fatalf("expected empty result, got %d states", len(relaxed))
	}
}
