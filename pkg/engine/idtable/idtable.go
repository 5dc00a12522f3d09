// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package idtable

import "github.com/cockroachdb/errors"

// Table is a logically column-major relation of Id. Implementations may
// specialize on a static width for inner-loop throughput (Table2) or
// operate on a dynamic width (DynamicTable); callers must not rely on
// which concrete implementation they hold — the contract below is the
// full surface the transitive-path core uses.
type Table interface {
	// NumColumns returns the relation's width.
	NumColumns() int
	// NumRows returns the relation's height.
	NumRows() int
	// Column returns a contiguous, non-owning view of column c. Mutating
	// the returned slice's contents is undefined; only appends via
	// AppendEmptyRow/Set are supported.
	Column(c int) []Id
	// At returns the value at row r, column c.
	At(r, c int) Id
	// AppendEmptyRow grows the table by one row (zero-valued in every
	// column) and returns its index.
	AppendEmptyRow() int
	// Set writes id into row r, column c. r must be < NumRows().
	Set(r, c int, id Id)
}

// DynamicTable is a Table implementation that accepts any column count,
// the simplest-to-port representation called out as an acceptable first
// cut by the column-width-dispatch design note; it is this package's
// default.
type DynamicTable struct {
	cols [][]Id
}

// NewDynamicTable constructs an empty table with the given width.
func NewDynamicTable(numCols int) *DynamicTable {
	return &DynamicTable{cols: make([][]Id, numCols)}
}

// NumColumns implements Table.
func (t *DynamicTable) NumColumns() int { return len(t.cols) }

// NumRows implements Table.
func (t *DynamicTable) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

// Column implements Table.
func (t *DynamicTable) Column(c int) []Id { return t.cols[c] }

// At implements Table.
func (t *DynamicTable) At(r, c int) Id { return t.cols[c][r] }

// AppendEmptyRow implements Table.
func (t *DynamicTable) AppendEmptyRow() int {
	row := t.NumRows()
	for c := range t.cols {
		t.cols[c] = append(t.cols[c], 0)
	}
	return row
}

// Set implements Table.
func (t *DynamicTable) Set(r, c int, id Id) {
	t.cols[c][r] = id
}

// Table2 is the statically-dispatched 2-column specialization used for
// the common unbound-side result (start, target), avoiding the
// slice-of-slices indirection DynamicTable pays per column access — the
// hand-written analogue of the teacher's execgen-generated per-width
// columnar kernels (colexec/rowstovec_tmpl.go and friends), scoped here
// to the one width this operator always produces before any carry-over
// columns from a bound side are appended.
type Table2 struct {
	col0, col1 []Id
}

// NewTable2 constructs an empty 2-column table.
func NewTable2() *Table2 {
	return &Table2{}
}

// NumColumns implements Table.
func (t *Table2) NumColumns() int { return 2 }

// NumRows implements Table.
func (t *Table2) NumRows() int { return len(t.col0) }

// Column implements Table.
func (t *Table2) Column(c int) []Id {
	switch c {
	case 0:
		return t.col0
	case 1:
		return t.col1
	default:
		panic(errors.AssertionFailedf("Table2 has 2 columns, got index %d", c))
	}
}

// At implements Table.
func (t *Table2) At(r, c int) Id {
	switch c {
	case 0:
		return t.col0[r]
	case 1:
		return t.col1[r]
	default:
		panic(errors.AssertionFailedf("Table2 has 2 columns, got index %d", c))
	}
}

// AppendEmptyRow implements Table.
func (t *Table2) AppendEmptyRow() int {
	row := len(t.col0)
	t.col0 = append(t.col0, 0)
	t.col1 = append(t.col1, 0)
	return row
}

// Set implements Table.
func (t *Table2) Set(r, c int, id Id) {
	switch c {
	case 0:
		t.col0[r] = id
	case 1:
		t.col1[r] = id
	default:
		panic(errors.AssertionFailedf("Table2 has 2 columns, got index %d", c))
	}
}
