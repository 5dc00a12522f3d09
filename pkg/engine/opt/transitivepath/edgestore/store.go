// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package edgestore provides the two interchangeable adjacency views
// the hull engine traverses: a hash adjacency map built by scanning the
// child relation once, and a binary-search view over two sorted
// parallel columns. Both satisfy Store so the hull engine (package
// hull) depends on nothing more than Successors — the idiomatic
// equivalent of spec.md §9's "tagged variant or static generic
// parameter" note, expressed here as a Go interface the way the
// teacher shares one traversal loop across many concrete
// colexecop.Operator implementations rather than switching on a type
// tag inside the loop.
package edgestore

import "github.com/sparqlcore/engine/pkg/engine/idtable"

// Store answers adjacency queries over a base relation's edges.
// Iteration order of Successors is unspecified; callers must treat
// results as set semantics.
type Store interface {
	// Successors returns the (possibly empty, possibly non-owning)
	// slice of ids reachable from source via a single edge.
	Successors(source idtable.Id) []idtable.Id
}
