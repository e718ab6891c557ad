package hopfield

import (
	"math/rand"
	"sort"
	"sync"
)

type indexedState struct {
	index int
	state State
}

// ConcurrentRelaxStateCollection relaxes an ordered batch of states across
// workerCount workers and returns the results in input order.
//
// States are partitioned round-robin (input index k goes to worker
// k mod workerCount) tagged with their original index. Each worker gets a
// private clone of the weight matrix and a private RNG seeded from the
// engine stream; seeds are drawn in worker-index order before any worker
// starts, so a run is reproducible for a fixed engine seed and worker
// count. Changing the worker count changes both partitioning and seed
// assignment, and with them the numeric results.
//
// All workers are joined before the call returns. A panic inside a worker
// aborts the whole batch and is re-raised in the caller; there is no
// partial-result path.
func (n *Network) ConcurrentRelaxStateCollection(states []State, workerCount int) []State {
	if workerCount < 1 {
		workerCount = 1
	}

	shares := make([][]indexedState, workerCount)
	for index, state := range states {
		worker := index % workerCount
		shares[worker] = append(shares[worker], indexedState{index: index, state: state})
	}

	// Seeds must come off the engine stream in worker-index order, before
	// spawning, to keep batch runs reproducible.
	seeds := make([]int64, workerCount)
	for worker := range seeds {
		seeds[worker] = int64(n.rng.Uint64())
	}

	results := make(chan indexedState, len(states))
	panics := make(chan any, workerCount)

	var wg sync.WaitGroup
	for worker := 0; worker < workerCount; worker++ {
		wg.Add(1)
		go func(share []indexedState, seed int64) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panics <- r
				}
			}()
			relaxShare(n.matrix.Clone(), n.activation, seed, n.maxIterations, n.maxUnstableUnits, share, results)
		}(shares[worker], seeds[worker])
	}
	wg.Wait()
	close(results)

	select {
	case r := <-panics:
		panic(r)
	default:
	}

	collected := make([]indexedState, 0, len(states))
	for result := range results {
		collected = append(collected, result)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].index < collected[j].index })

	relaxed := make([]State, len(collected))
	for i, result := range collected {
		relaxed[i] = result.state
	}
	return relaxed
}

// relaxShare is the worker body: it relaxes every state in its share with
// the sequential algorithm and sends each finished (index, state) pair as
// soon as it is ready. The matrix is private to the worker and read-only
// for the duration.
func relaxShare(matrix *Matrix, activation ActivationFunc, seed int64, maxIterations, maxUnstableUnits int, share []indexedState, results chan<- indexedState) {
	rng := rand.New(rand.NewSource(seed))
	scratch := make(State, matrix.Dim())
	for _, item := range share {
		state := relaxStateWith(matrix, activation, rng, maxIterations, maxUnstableUnits, item.state, scratch)
		results <- indexedState{index: item.index, state: state}
	}
}
