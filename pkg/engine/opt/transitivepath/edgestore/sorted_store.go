// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package edgestore

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/sparqlcore/engine/pkg/engine/idtable"
)

// SortedStore is the binary-search Store variant. It requires the
// child relation sorted primary-by-source, secondary-by-target, and
// holds only two non-owning Id slices — no per-node allocation, very
// cache-friendly, the columnar-zero-copy idiom the teacher's colexec
// package favors over per-row heap allocation. The planner is
// responsible for having applied the createSortedTree rewrite (an
// external collaborator, spec.md §6) before constructing a
// SortedStore; this type neither checks nor enforces the sort order
// (NewSortedStore only checks that the two columns have equal length).
type SortedStore struct {
	source, target []idtable.Id
}

// NewSortedStore wraps source and target, which must already be sorted
// primary-by-source, secondary-by-target, and of equal length.
func NewSortedStore(source, target []idtable.Id) (*SortedStore, error) {
	if len(source) != len(target) {
		return nil, errors.AssertionFailedf(
			"source and target columns must have equal length, got %d and %d", len(source), len(target))
	}
	return &SortedStore{source: source, target: target}, nil
}

// Successors implements Store by binary-searching the half-open index
// range [lo, hi) where source equals the query id, then returning the
// corresponding slice of target as a non-owning view.
func (s *SortedStore) Successors(source idtable.Id) []idtable.Id {
	lo := sort.Search(len(s.source), func(i int) bool { return s.source[i] >= source })
	hi := sort.Search(len(s.source), func(i int) bool { return s.source[i] > source })
	if lo >= hi {
		return nil
	}
	return s.target[lo:hi]
}
