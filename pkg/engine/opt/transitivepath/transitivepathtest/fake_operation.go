// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package transitivepathtest provides FakeOperation, an in-memory
// Operation implementation standing in for the planner-supplied child
// or bound sub-result in transitivepath's own tests — the role the
// teacher's colexec opTestInput/opTestOutput harness and memo's
// hand-built RelExpr test fixtures play for their respective packages.
package transitivepathtest

import (
	"context"

	"github.com/sparqlcore/engine/pkg/engine/idtable"
	"github.com/sparqlcore/engine/pkg/engine/opt/transitivepath"
)

// FakeOperation is a fully-populated, immutable Operation: every
// accessor returns the field set on construction, except that
// GetSizeEstimate reports Result's row count whenever Result is set
// (Size only otherwise) and GetMultiplicity reports 1 for columns
// missing from Multiplicities. Tests build one per
// child/bound-input they need, set only the fields their scenario
// exercises, and leave the rest at their zero values.
type FakeOperation struct {
	Result          *transitivepath.ResultTable
	Width           int
	SortedOn        []int
	Size            int64
	Cost            float64
	Multiplicities  map[int]float64
	VariableColumns map[transitivepath.Variable]int
	Key             string
	Children        []transitivepath.Operation
	Empty           bool
	Err             error
}

var _ transitivepath.Operation = (*FakeOperation)(nil)

// NewEdgeRelation builds a FakeOperation whose result is a two-column
// (source, target) edge table, the shape every transitive-path child
// must present.
func NewEdgeRelation(pairs [][2]uint64) *FakeOperation {
	table := idtable.NewTable2()
	for _, p := range pairs {
		row := table.AppendEmptyRow()
		table.Set(row, 0, idtable.Id(p[0]))
		table.Set(row, 1, idtable.Id(p[1]))
	}
	return &FakeOperation{
		Result: &transitivepath.ResultTable{Table: table},
		Width:  2,
	}
}

// NewSingleColumn builds a FakeOperation whose result is a one-column
// table of ids, the shape a bound side's join column is drawn from in
// the simplest case (no carry-over columns beyond the join column).
func NewSingleColumn(vals []uint64) *FakeOperation {
	table := idtable.NewDynamicTable(1)
	for _, v := range vals {
		row := table.AppendEmptyRow()
		table.Set(row, 0, idtable.Id(v))
	}
	return &FakeOperation{
		Result: &transitivepath.ResultTable{Table: table},
		Width:  1,
	}
}

// NewTable builds a FakeOperation from column-major uint64 data, one
// slice per column, all of equal length — used for bound sides that
// carry extra columns alongside the join column.
func NewTable(cols ...[]uint64) *FakeOperation {
	width := len(cols)
	table := idtable.NewDynamicTable(width)
	if width > 0 {
		for r := range cols[0] {
			row := table.AppendEmptyRow()
			for c, col := range cols {
				table.Set(row, c, idtable.Id(col[r]))
			}
		}
	}
	return &FakeOperation{
		Result: &transitivepath.ResultTable{Table: table},
		Width:  width,
	}
}

func (f *FakeOperation) ComputeResult(ctx context.Context) (*transitivepath.ResultTable, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Result, nil
}

func (f *FakeOperation) GetResultWidth() int   { return f.Width }
func (f *FakeOperation) ResultSortedOn() []int { return f.SortedOn }
func (f *FakeOperation) GetSizeEstimate() int64 {
	if f.Result != nil {
		return int64(f.Result.Table.NumRows())
	}
	return f.Size
}
func (f *FakeOperation) GetCostEstimate() float64 { return f.Cost }
func (f *FakeOperation) GetMultiplicity(col int) float64 {
	if v, ok := f.Multiplicities[col]; ok {
		return v
	}
	return 1
}
func (f *FakeOperation) GetVariableColumns() map[transitivepath.Variable]int {
	return f.VariableColumns
}
func (f *FakeOperation) GetRootOperation() transitivepath.Operation { return f }
func (f *FakeOperation) GetCacheKey() string                       { return f.Key }
func (f *FakeOperation) GetChildren() []transitivepath.Operation   { return f.Children }
func (f *FakeOperation) KnownEmptyResult() bool                    { return f.Empty }
