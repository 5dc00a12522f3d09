// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package edgestore

import (
	"github.com/cockroachdb/errors"
	"github.com/sparqlcore/engine/pkg/engine/colmem"
	"github.com/sparqlcore/engine/pkg/engine/idtable"
	"github.com/sparqlcore/engine/pkg/util/cancelchecker"
)

// HashStore is the fallback Store: a map from source id to the slice of
// target ids reachable by one edge, built by a single scan of the
// child's source and target columns. Duplicate (source, target) pairs
// are kept rather than deduplicated — the hull engine's own marks set
// makes duplicates harmless, and skipping dedup keeps construction a
// single linear pass, matching the teacher's preference in
// colexec.hashTable for dense, append-only slices over nested sets.
type HashStore struct {
	adj map[idtable.Id][]idtable.Id
}

// BuildHashStore scans source and target (equal length; source[i] ->
// target[i] is one edge) into a HashStore, charging every appended
// target id against alloc and polling cancel on every iteration, per
// spec.md §4.3/§5.
func BuildHashStore(
	source, target []idtable.Id, alloc *colmem.Allocator, cancel *cancelchecker.CancelChecker,
) (*HashStore, error) {
	if len(source) != len(target) {
		return nil, errors.AssertionFailedf(
			"source and target columns must have equal length, got %d and %d", len(source), len(target))
	}
	adj := make(map[idtable.Id][]idtable.Id, len(source))
	for i := range source {
		if err := cancel.Check(); err != nil {
			return nil, err
		}
		if err := alloc.Grow(colmem.SizeOfIds(1)); err != nil {
			return nil, err
		}
		s := source[i]
		adj[s] = append(adj[s], target[i])
	}
	return &HashStore{adj: adj}, nil
}

// Successors implements Store.
func (h *HashStore) Successors(source idtable.Id) []idtable.Id {
	return h.adj[source]
}
