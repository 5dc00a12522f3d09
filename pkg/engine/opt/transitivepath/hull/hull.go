// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package hull implements the depth-first traversal shared by both edge
// store variants (package edgestore): an iterative DFS from each
// distinct start node, memoized per-start via a marks map and globally
// across starts via the returned Hull, honoring a length interval
// [minDist, maxDist] and an optional single target filter.
//
// The traversal is expressed over the minimal edgestore.Successors
// contract rather than a concrete store type, the same way the teacher
// shares one probing loop across many colexecop.Operator
// implementations instead of switching on a type tag inside the loop.
package hull

import (
	"github.com/cockroachdb/errors"
	"github.com/sparqlcore/engine/pkg/engine/colmem"
	"github.com/sparqlcore/engine/pkg/engine/idtable"
	"github.com/sparqlcore/engine/pkg/util/cancelchecker"
)

// successorStore is the minimal contract Walk depends on. Both
// edgestore.HashStore and edgestore.SortedStore satisfy it; Walk
// imports neither so hull has no dependency on package edgestore.
type successorStore interface {
	Successors(source idtable.Id) []idtable.Id
}

// Hull maps a start node to its set of reachable targets within the
// configured length interval. Zero value is not usable; construct via
// Walk.
type Hull struct {
	reachable map[idtable.Id]map[idtable.Id]struct{}
}

// Has reports whether start has already been computed into the hull.
func (h *Hull) Has(start idtable.Id) bool {
	_, ok := h.reachable[start]
	return ok
}

// Targets returns the reachable-target set for start as a slice, or
// nil if start was never recorded. Order is unspecified.
func (h *Hull) Targets(start idtable.Id) []idtable.Id {
	set, ok := h.reachable[start]
	if !ok {
		return nil
	}
	out := make([]idtable.Id, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	return out
}

// Starts returns every distinct start node recorded in the hull, in
// unspecified order.
func (h *Hull) Starts() []idtable.Id {
	out := make([]idtable.Id, 0, len(h.reachable))
	for s := range h.reachable {
		out = append(out, s)
	}
	return out
}

func (h *Hull) add(start, target idtable.Id) {
	set, ok := h.reachable[start]
	if !ok {
		set = make(map[idtable.Id]struct{})
		h.reachable[start] = set
	}
	set[target] = struct{}{}
}

// frame is one entry of the explicit DFS stack: node at depth, to be
// visited (and, if not pruned, descended from).
type frame struct {
	node  idtable.Id
	depth uint64
}

// Walk computes the hull reachable from starts over store, honoring
// [minDist, maxDist] and an optional single target filter. It is
// generic over any store satisfying the Successors contract, so the
// hash and binary-search edge store variants share this one
// implementation.
//
// Duplicate entries in starts are harmless: a start already present in
// the returned Hull is skipped without recomputation (memoization
// across starts), matching the bound case's need to preserve duplicate
// start rows for downstream row-index-based carry-over without paying
// for duplicate traversals.
func Walk(
	store successorStore,
	starts []idtable.Id,
	minDist, maxDist uint64,
	target *idtable.Id,
	alloc *colmem.Allocator,
	cancel *cancelchecker.CancelChecker,
) (*Hull, error) {
	if minDist > maxDist {
		return nil, errors.AssertionFailedf("minDist %d exceeds maxDist %d", minDist, maxDist)
	}

	h := &Hull{reachable: make(map[idtable.Id]map[idtable.Id]struct{})}
	var stack []frame

	for _, start := range starts {
		if h.Has(start) {
			continue
		}
		// Registering the start (even with an empty reachable set) is
		// what makes the skip-if-already-present check above work for
		// later duplicates, and what makes an exhausted-but-empty
		// traversal still show up in Starts().
		if err := alloc.Grow(colmem.SizeOfIds(1)); err != nil {
			return nil, err
		}
		h.reachable[start] = make(map[idtable.Id]struct{})

		// marks maps a node to the smallest depth (>= minDist) it has been
		// visited at from this start. A revisit is pruned only when it is
		// not shallower than that depth, so a deeper first visit never
		// hides targets a shallower later visit can still reach.
		marks := make(map[idtable.Id]uint64)
		stack = append(stack[:0], frame{node: start, depth: 0})

		for len(stack) > 0 {
			if err := cancel.Check(); err != nil {
				return nil, err
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if minDist <= top.depth && top.depth <= maxDist && (target == nil || top.node == *target) {
				if err := alloc.Grow(colmem.SizeOfIds(1)); err != nil {
					return nil, err
				}
				h.add(start, top.node)
			}

			markedDepth, alreadyMarked := marks[top.node]
			prune := top.depth >= maxDist || (alreadyMarked && markedDepth <= top.depth)
			if top.depth >= minDist {
				if !alreadyMarked {
					if err := alloc.Grow(colmem.SizeOfIds(1)); err != nil {
						return nil, err
					}
				}
				if !alreadyMarked || top.depth < markedDepth {
					marks[top.node] = top.depth
				}
			}
			if prune {
				continue
			}

			for _, succ := range store.Successors(top.node) {
				if err := alloc.Grow(colmem.SizeOfIds(1)); err != nil {
					return nil, err
				}
				stack = append(stack, frame{node: succ, depth: top.depth + 1})
			}
		}
	}

	return h, nil
}
