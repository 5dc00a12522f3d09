// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package transitivepath

import (
	"github.com/sparqlcore/engine/pkg/engine/idtable"
	"github.com/sparqlcore/engine/pkg/engine/opt/transitivepath/hull"
	"github.com/sparqlcore/engine/pkg/engine/rowcontainer"
)

// fillResult assembles the output table from the computed hull, per
// spec.md §4.6: unbound case iterates (start, targets) pairs directly;
// bound case iterates the start-node list in order, preserving row
// index i so carry-over columns can be copied from row i of the bound
// input. leftBoundResult/rightBoundResult are nil when the
// corresponding side isn't bound.
func (op *TransitivePathOp) fillResult(
	start, target Side,
	h *hull.Hull,
	starts []idtable.Id,
	leftBoundResult, rightBoundResult *ResultTable,
) (*ResultTable, error) {
	container := rowcontainer.NewIdRowContainer(op.evalCtx.Alloc, op.resultWidth)

	isLeftStart := start.OutputCol == op.left.OutputCol
	var startBoundResult, otherBoundResult *ResultTable
	if isLeftStart {
		startBoundResult, otherBoundResult = leftBoundResult, rightBoundResult
	} else {
		startBoundResult, otherBoundResult = rightBoundResult, leftBoundResult
	}

	var otherIndex map[idtable.Id][]int
	if target.Bound != nil {
		otherIndex = indexByJoinColumn(otherBoundResult, target.Bound.JoinCol)
	}

	writeRow := func(s, t idtable.Id, startRow, otherRow int) error {
		vals := make([]idtable.Id, op.resultWidth)
		vals[start.OutputCol] = s
		vals[target.OutputCol] = t
		for _, cc := range op.carryCols {
			if cc.fromLeft == isLeftStart {
				vals[cc.outputCol] = startBoundResult.Table.At(startRow, cc.sourceCol)
			} else {
				vals[cc.outputCol] = otherBoundResult.Table.At(otherRow, cc.sourceCol)
			}
		}
		_, err := container.AddRow(vals...)
		return err
	}

	emit := func(s, t idtable.Id, startRow int) error {
		if target.Bound == nil {
			return writeRow(s, t, startRow, -1)
		}
		// Neither the start-side carry columns nor the target-side
		// filter restrict which reachable targets are considered here
		// (spec.md §4.5 notes multi-target filtering from a bound side
		// is expressed by the planner as a downstream join, not by this
		// operator); rows whose target value is absent from the bound
		// side's join column contribute no carry-over values and are
		// skipped.
		for _, otherRow := range otherIndex[t] {
			if err := writeRow(s, t, startRow, otherRow); err != nil {
				return err
			}
		}
		return nil
	}

	if start.IsBoundVariable() {
		for i, node := range starts {
			for _, t := range h.Targets(node) {
				if err := emit(node, t, i); err != nil {
					return nil, err
				}
			}
		}
	} else {
		for _, node := range h.Starts() {
			for _, t := range h.Targets(node) {
				if err := emit(node, t, -1); err != nil {
					return nil, err
				}
			}
		}
	}

	return &ResultTable{Table: container.Table()}, nil
}

func indexByJoinColumn(result *ResultTable, joinCol int) map[idtable.Id][]int {
	if result == nil {
		return nil
	}
	col := result.Table.Column(joinCol)
	index := make(map[idtable.Id][]int, len(col))
	for i, v := range col {
		index[v] = append(index[v], i)
	}
	return index
}
