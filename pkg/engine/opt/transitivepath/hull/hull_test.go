// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package hull

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparqlcore/engine/pkg/engine/colmem"
	"github.com/sparqlcore/engine/pkg/engine/idtable"
	"github.com/sparqlcore/engine/pkg/engine/mon"
	"github.com/sparqlcore/engine/pkg/engine/opt/transitivepath/edgestore"
	"github.com/sparqlcore/engine/pkg/util/cancelchecker"
)

func id(v uint64) idtable.Id { return idtable.Id(v) }

func ids(vs ...uint64) []idtable.Id {
	out := make([]idtable.Id, len(vs))
	for i, v := range vs {
		out[i] = idtable.Id(v)
	}
	return out
}

type mapStore map[idtable.Id][]idtable.Id

func (m mapStore) Successors(source idtable.Id) []idtable.Id { return m[source] }

func newAllocator(t *testing.T, limit int64) *colmem.Allocator {
	t.Helper()
	ctx := context.Background()
	monitor := mon.NewMonitor("hull-test", limit)
	acc, err := monitor.MakeBoundAccount(ctx, 0)
	require.NoError(t, err)
	return colmem.NewAllocator(ctx, &acc)
}

// pairs flattens a Hull into its (start, target) pairs for an
// order-insensitive require.ElementsMatch comparison.
func pairs(h *Hull) [][2]idtable.Id {
	var out [][2]idtable.Id
	for _, s := range h.Starts() {
		for _, tgt := range h.Targets(s) {
			out = append(out, [2]idtable.Id{s, tgt})
		}
	}
	return out
}

func TestWalkLinearChain(t *testing.T) {
	// S1: child = {(1,2),(2,3),(3,4)}, minDist=1, maxDist=2.
	store := mapStore{1: ids(2), 2: ids(3), 3: ids(4)}
	h, err := Walk(store, ids(1, 2, 3, 4), 1, 2, nil, newAllocator(t, 0), cancelchecker.New(context.Background()))
	require.NoError(t, err)
	want := [][2]idtable.Id{{1, 2}, {2, 3}, {3, 4}, {1, 3}, {2, 4}}
	require.ElementsMatch(t, want, pairs(h))
}

func TestWalkFixedSourceFullClosure(t *testing.T) {
	// S2: child = same as S1, start = {1}, minDist=1, maxDist=unbounded.
	store := mapStore{1: ids(2), 2: ids(3), 3: ids(4)}
	const unbounded = ^uint64(0)
	h, err := Walk(store, ids(1), 1, unbounded, nil, newAllocator(t, 0), cancelchecker.New(context.Background()))
	require.NoError(t, err)
	want := [][2]idtable.Id{{1, 2}, {1, 3}, {1, 4}}
	require.ElementsMatch(t, want, pairs(h))
}

func TestWalkCycle(t *testing.T) {
	// S4: child = {(1,2),(2,3),(3,1)}, minDist=2, maxDist=3, both unbound.
	store := mapStore{1: ids(2), 2: ids(3), 3: ids(1)}
	h, err := Walk(store, ids(1, 2, 3), 2, 3, nil, newAllocator(t, 0), cancelchecker.New(context.Background()))
	require.NoError(t, err)
	want := [][2]idtable.Id{
		{1, 3}, {2, 1}, {3, 2},
		{1, 1}, {2, 2}, {3, 3},
	}
	require.ElementsMatch(t, want, pairs(h))
}

func TestWalkIdentityZeroOne(t *testing.T) {
	// S5: child = {(1,2),(2,3)}, bound start list = [1,2,3], minDist=0, maxDist=1.
	store := mapStore{1: ids(2), 2: ids(3)}
	h, err := Walk(store, ids(1, 2, 3), 0, 1, nil, newAllocator(t, 0), cancelchecker.New(context.Background()))
	require.NoError(t, err)
	want := [][2]idtable.Id{{1, 1}, {1, 2}, {2, 2}, {2, 3}, {3, 3}}
	require.ElementsMatch(t, want, pairs(h))
}

func TestWalkSingleTargetFilter(t *testing.T) {
	// S6: child = {(1,2)}, start = {99} (fixed id absent from the relation).
	store := mapStore{1: ids(2)}
	tgt := id(2)
	h, err := Walk(store, ids(99), 1, ^uint64(0), &tgt, newAllocator(t, 0), cancelchecker.New(context.Background()))
	require.NoError(t, err)
	require.Empty(t, pairs(h))
	require.True(t, h.Has(id(99)), "expected start 99 to be registered in the hull even with no reachable targets")
}

func TestWalkDuplicateStartsMemoized(t *testing.T) {
	store := mapStore{1: ids(2)}
	h, err := Walk(store, ids(1, 1, 1), 0, 5, nil, newAllocator(t, 0), cancelchecker.New(context.Background()))
	require.NoError(t, err)
	want := [][2]idtable.Id{{1, 1}, {1, 2}}
	require.ElementsMatch(t, want, pairs(h))
}

func TestWalkSelfLoop(t *testing.T) {
	store := mapStore{1: ids(1)}
	h, err := Walk(store, ids(1), 1, 3, nil, newAllocator(t, 0), cancelchecker.New(context.Background()))
	require.NoError(t, err)
	want := [][2]idtable.Id{{1, 1}}
	require.ElementsMatch(t, want, pairs(h))
}

func TestWalkEmptyChild(t *testing.T) {
	store := mapStore{}
	h, err := Walk(store, ids(1, 2), 1, 5, nil, newAllocator(t, 0), cancelchecker.New(context.Background()))
	require.NoError(t, err)
	require.Empty(t, pairs(h))
}

func TestWalkRespectsMemoryLimit(t *testing.T) {
	store := mapStore{1: ids(2), 2: ids(3), 3: ids(4)}
	alloc := newAllocator(t, 8) // one Id's worth of budget
	_, err := Walk(store, ids(1), 1, 10, nil, alloc, cancelchecker.New(context.Background()))
	require.Error(t, err, "expected memory budget error")
}

func TestWalkRespectsCancellation(t *testing.T) {
	store := mapStore{1: ids(2), 2: ids(3)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Walk(store, ids(1), 0, 5, nil, newAllocator(t, 0), cancelchecker.New(ctx))
	require.Error(t, err, "expected cancellation error")
}

func TestWalkFullyConnectedThreeNodes(t *testing.T) {
	store := mapStore{
		1: ids(2, 3), 2: ids(1, 3), 3: ids(1, 2),
	}
	h, err := Walk(store, ids(1, 2, 3), 1, ^uint64(0), nil, newAllocator(t, 0), cancelchecker.New(context.Background()))
	require.NoError(t, err)
	var want [][2]idtable.Id
	for _, s := range []idtable.Id{1, 2, 3} {
		for _, tt := range []idtable.Id{1, 2, 3} {
			want = append(want, [2]idtable.Id{s, tt})
		}
	}
	require.ElementsMatch(t, want, pairs(h))
}

// TestWalkHashAndSortedStoresAgree is the randomized equivalence check
// called for in the design notes: the hash and binary-search edge
// store variants must drive Walk to multiset-equal hulls over the same
// randomly generated small graphs.
func TestWalkHashAndSortedStoresAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const numNodes = 8
	for trial := 0; trial < 50; trial++ {
		numEdges := rng.Intn(20)
		source := make([]idtable.Id, numEdges)
		target := make([]idtable.Id, numEdges)
		for i := 0; i < numEdges; i++ {
			source[i] = idtable.Id(rng.Intn(numNodes) + 1)
			target[i] = idtable.Id(rng.Intn(numNodes) + 1)
		}
		sorted := sortEdges(append([]idtable.Id(nil), source...), append([]idtable.Id(nil), target...))

		hashStore, err := edgestore.BuildHashStore(source, target, newAllocator(t, 0), cancelchecker.New(context.Background()))
		require.NoErrorf(t, err, "trial %d: BuildHashStore", trial)
		sortedStore, err := edgestore.NewSortedStore(sorted.source, sorted.target)
		require.NoErrorf(t, err, "trial %d: NewSortedStore", trial)

		starts := make([]idtable.Id, numNodes)
		for i := range starts {
			starts[i] = idtable.Id(i + 1)
		}
		minDist := uint64(rng.Intn(3))
		maxDist := minDist + uint64(rng.Intn(4))

		hashHull, err := Walk(hashStore, starts, minDist, maxDist, nil, newAllocator(t, 0), cancelchecker.New(context.Background()))
		require.NoErrorf(t, err, "trial %d: Walk(hash)", trial)
		sortedHull, err := Walk(sortedStore, starts, minDist, maxDist, nil, newAllocator(t, 0), cancelchecker.New(context.Background()))
		require.NoErrorf(t, err, "trial %d: Walk(sorted)", trial)

		require.ElementsMatchf(t, pairs(sortedHull), pairs(hashHull),
			"trial %d (minDist=%d, maxDist=%d, edges src=%v tgt=%v)", trial, minDist, maxDist, source, target)
	}
}

type edgeColumns struct {
	source, target []idtable.Id
}

func sortEdges(source, target []idtable.Id) edgeColumns {
	idx := make([]int, len(source))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		if source[idx[i]] != source[idx[j]] {
			return source[idx[i]] < source[idx[j]]
		}
		return target[idx[i]] < target[idx[j]]
	})
	out := edgeColumns{source: make([]idtable.Id, len(source)), target: make([]idtable.Id, len(target))}
	for i, j := range idx {
		out.source[i] = source[j]
		out.target[i] = target[j]
	}
	return out
}
