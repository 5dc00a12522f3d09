// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package rowcontainer provides IdRowContainer, a memory-accounted
// builder over an idtable.Table, adapted from recursiveCTENode's use of
// rowcontainer.NewRowContainer(params.EvalContext().Mon.MakeBoundAccount(), ...)
// to accumulate a working table under a query's memory budget one
// AddRow call at a time. The transitive-path result materializer (and
// the hash edge store) build their output the same way: every row (or
// edge) is charged against the shared colmem.Allocator before it is
// appended, so an over-budget traversal fails with
// colmem.ErrBudgetExceeded instead of growing without bound.
package rowcontainer

import (
	"github.com/cockroachdb/errors"
	"github.com/sparqlcore/engine/pkg/engine/colmem"
	"github.com/sparqlcore/engine/pkg/engine/idtable"
)

// IdRowContainer accumulates rows of Id into an idtable.Table, charging
// each row against an Allocator.
type IdRowContainer struct {
	table     idtable.Table
	alloc     *colmem.Allocator
	numCols   int
	bytesPerRow int64
}

// NewIdRowContainer constructs an empty container of the given width.
// The 2-column fast path (idtable.Table2) is selected automatically when
// numCols == 2, matching the column-width dispatch the teacher's
// execgen templates perform at compile time; any other width falls back
// to idtable.DynamicTable.
func NewIdRowContainer(alloc *colmem.Allocator, numCols int) *IdRowContainer {
	var table idtable.Table
	if numCols == 2 {
		table = idtable.NewTable2()
	} else {
		table = idtable.NewDynamicTable(numCols)
	}
	return &IdRowContainer{
		table:       table,
		alloc:       alloc,
		numCols:     numCols,
		bytesPerRow: colmem.SizeOfIds(numCols),
	}
}

// AddRow charges one row's worth of Ids against the allocator, then
// appends vals. len(vals) must equal the container's width.
func (c *IdRowContainer) AddRow(vals ...idtable.Id) (int, error) {
	if len(vals) != c.numCols {
		return 0, errors.AssertionFailedf("AddRow: got %d values, container has %d columns", len(vals), c.numCols)
	}
	if err := c.alloc.Grow(c.bytesPerRow); err != nil {
		return 0, err
	}
	row := c.table.AppendEmptyRow()
	for col, v := range vals {
		c.table.Set(row, col, v)
	}
	return row, nil
}

// Table returns the underlying idtable.Table built so far.
func (c *IdRowContainer) Table() idtable.Table {
	return c.table
}

// Len returns the number of rows appended so far.
func (c *IdRowContainer) Len() int {
	return c.table.NumRows()
}
