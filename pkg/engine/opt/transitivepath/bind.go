// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package transitivepath

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/sparqlcore/engine/pkg/engine/idtable"
)

// BindLeftSide returns a new operator identical to op except the left
// side is bound to childSubResult's col, per spec.md §4.2's
// bindLeftSide/bindRightSide rewrite: a fresh copy, never a mutation,
// since the cache key, variable-to-column map, and output width all
// change.
func BindLeftSide(op *TransitivePathOp, childSubResult Operation, col int) (*TransitivePathOp, error) {
	return bindSide(op, childSubResult, col, true)
}

// BindRightSide is BindLeftSide's mirror image for the right side.
func BindRightSide(op *TransitivePathOp, childSubResult Operation, col int) (*TransitivePathOp, error) {
	return bindSide(op, childSubResult, col, false)
}

func bindSide(op *TransitivePathOp, childSubResult Operation, col int, left bool) (*TransitivePathOp, error) {
	if childSubResult == nil {
		return nil, errors.AssertionFailedf("transitive path: cannot bind a side to a nil sub-result")
	}
	wrapped := ensureSortedOn(childSubResult, col)

	newLeft, newRight := op.left, op.right
	bound := &BoundInput{Child: wrapped, JoinCol: col}
	if left {
		newLeft.Bound = bound
	} else {
		newRight.Bound = bound
	}
	return NewTransitivePathOp(op.evalCtx, op.child, newLeft, newRight, op.minDist, op.maxDist)
}

// ensureSortedOn wraps child in a sort adapter requesting primary sort
// on col, unless child's root operation already declares that sort —
// the concrete stand-in this port gives the planner's external
// createSortedTree rewrite (spec.md §6), since no such rewrite exists
// outside this core.
func ensureSortedOn(child Operation, col int) Operation {
	root := child.GetRootOperation()
	if root == nil {
		root = child
	}
	if sortedOn := root.ResultSortedOn(); len(sortedOn) > 0 && sortedOn[0] == col {
		return child
	}
	return &sortedOperation{inner: child, col: col}
}

// sortedOperation wraps an Operation, materializing its child's result
// sorted by one column and declaring that sort in ResultSortedOn so
// that IsSortedOnInputCol (and transitively the binary-search edge
// store variant) can rely on it.
type sortedOperation struct {
	inner Operation
	col   int
}

func (s *sortedOperation) ComputeResult(ctx context.Context) (*ResultTable, error) {
	inner, err := s.inner.ComputeResult(ctx)
	if err != nil {
		return nil, err
	}
	if len(inner.SortedOn) > 0 && inner.SortedOn[0] == s.col {
		return inner, nil
	}
	return sortTableByColumn(inner, s.col)
}

func sortTableByColumn(result *ResultTable, col int) (*ResultTable, error) {
	width := result.Table.NumColumns()
	numRows := result.Table.NumRows()
	idx := make([]int, numRows)
	for i := range idx {
		idx[i] = i
	}
	sortCol := result.Table.Column(col)
	// Insertion sort keeps the adapter dependency-free and is adequate
	// for the row counts this core's tests exercise; a production port
	// would reuse the engine's own sort operator here instead of
	// hand-rolling one.
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && sortCol[idx[j-1]] > sortCol[idx[j]]; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}

	out := newIdTable(width)
	for _, r := range idx {
		row := out.AppendEmptyRow()
		for c := 0; c < width; c++ {
			out.Set(row, c, result.Table.At(r, c))
		}
	}
	return &ResultTable{Table: out, SortedOn: []int{col}, LocalVocab: result.LocalVocab}, nil
}

func (s *sortedOperation) GetResultWidth() int             { return s.inner.GetResultWidth() }
func (s *sortedOperation) ResultSortedOn() []int           { return []int{s.col} }
func (s *sortedOperation) GetSizeEstimate() int64          { return s.inner.GetSizeEstimate() }
func (s *sortedOperation) GetCostEstimate() float64        { return s.inner.GetCostEstimate() }
func (s *sortedOperation) GetMultiplicity(col int) float64 { return s.inner.GetMultiplicity(col) }
func (s *sortedOperation) GetVariableColumns() map[Variable]int {
	return s.inner.GetVariableColumns()
}
func (s *sortedOperation) GetRootOperation() Operation { return s }
func (s *sortedOperation) GetCacheKey() string {
	return fmt.Sprintf("SORT[col=%d]+%s", s.col, s.inner.GetCacheKey())
}
func (s *sortedOperation) GetChildren() []Operation  { return []Operation{s.inner} }
func (s *sortedOperation) KnownEmptyResult() bool    { return s.inner.KnownEmptyResult() }

func newIdTable(width int) idtable.Table {
	if width == 2 {
		return idtable.NewTable2()
	}
	return idtable.NewDynamicTable(width)
}
