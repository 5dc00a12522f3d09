// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package transitivepath implements the Transitive Path operator of a
// SPARQL query engine: evaluation of property paths of the form
// ?s <p>{m,n} ?o over a two-column child relation of base edges.
//
// The package is the local restriction of the engine's planner-facing
// Operation contract (computeResult, getResultWidth, resultSortedOn,
// getSizeEstimate, getCostEstimate, getMultiplicity, getCacheKey,
// getChildren) to what this operator and its children need; the
// planner, storage engine, parser, result cache, and HTTP/CLI surfaces
// are external collaborators consumed only through this interface, the
// way recursiveCTENode only ever touches its child through the
// planNode interface rather than reaching into the rest of the SQL
// engine.
package transitivepath

import (
	"context"

	"github.com/sparqlcore/engine/pkg/engine/idtable"
)

// Variable is a symbolic SPARQL variable name, e.g. "?x".
type Variable string

// ResultTable is what every Operation's ComputeResult returns: the
// materialized relation, its declared sort order, and the local
// vocabulary side-channel for literal ids not present in the
// persistent vocabulary.
type ResultTable struct {
	Table      idtable.Table
	SortedOn   []int
	LocalVocab map[idtable.Id]string
}

// Operation is the algebraic contract every node of the operator tree
// implements, restricted to the members the transitive-path operator
// and its children exercise. A TransitivePathOp's child sub-tree, and
// any bound side's sub-result, are themselves Operations — this
// package never cares whether a given Operation is a scan, a join, or
// another transitive-path, matching the teacher's planNode /
// exec.Node segregation by interface rather than by concrete type.
type Operation interface {
	// ComputeResult evaluates this operator, returning its result
	// table. Implementations may assume they are called at most once
	// per distinct GetCacheKey(); the host engine's result cache
	// (external to this package) is responsible for enforcing that.
	ComputeResult(ctx context.Context) (*ResultTable, error)

	// GetResultWidth returns the number of columns ComputeResult's
	// table will have.
	GetResultWidth() int

	// ResultSortedOn returns the column indices ComputeResult's table
	// is sorted on, primary key first; empty if unsorted.
	ResultSortedOn() []int

	// GetSizeEstimate returns the planner's estimated row count.
	GetSizeEstimate() int64

	// GetCostEstimate returns the planner's estimated evaluation cost,
	// including the cost of evaluating children.
	GetCostEstimate() float64

	// GetMultiplicity estimates how many rows of the result share the
	// same value in the given column; 1 means "no information."
	GetMultiplicity(col int) float64

	// GetVariableColumns maps the variables appearing in this
	// operator's result to their output columns.
	GetVariableColumns() map[Variable]int

	// GetRootOperation returns the operator ultimately responsible for
	// this result (e.g. unwraps cache/wrapper nodes); used to check
	// declared sortedness of a bound side's root.
	GetRootOperation() Operation

	// GetCacheKey returns this operator's deterministic cache-key
	// contribution.
	GetCacheKey() string

	// GetChildren lists this operator's children in a deterministic
	// order.
	GetChildren() []Operation

	// KnownEmptyResult reports whether the planner can already prove
	// this operator's result is empty without evaluating it.
	KnownEmptyResult() bool
}
