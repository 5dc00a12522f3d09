// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package transitivepath

import (
	"github.com/sparqlcore/engine/pkg/engine/idtable"
	"github.com/sparqlcore/engine/pkg/engine/opt/transitivepath/edgestore"
)

// buildEdgeStore selects and constructs the edge-store variant for
// childResult, keyed on the start side's column: child.Column(start.SubCol)
// is always treated as the adjacency source and the other column as the
// target, regardless of which of left/right is logically the start —
// this is what lets direction selection (spec.md §4.2) pick either side
// as the DFS start without the edge store caring which query variable
// it corresponds to.
//
// The binary-search variant is chosen when the child declares itself
// sorted with the start column as primary key (the planner's
// responsibility, per spec.md §6, to have applied createSortedTree
// beforehand); otherwise the hash variant is built.
func (op *TransitivePathOp) buildEdgeStore(childResult *ResultTable, start Side) (edgestore.Store, error) {
	sourceCol := start.SubCol
	targetCol := 1 - start.SubCol
	source := childResult.Table.Column(sourceCol)
	target := childResult.Table.Column(targetCol)

	if len(childResult.SortedOn) > 0 && childResult.SortedOn[0] == sourceCol {
		return edgestore.NewSortedStore(source, target)
	}
	return edgestore.BuildHashStore(source, target, op.evalCtx.Alloc, op.evalCtx.Cancel)
}

// buildStartNodes constructs the start-node list for the start side,
// per spec.md §4.4:
//   - bound: the list equals the bound input's join column, in order,
//     duplicates preserved;
//   - fixed id: the single-element list [id];
//   - unbound variable: the child's start-side column, plus (only when
//     minDist == 0) the child's other column, so length-0 identity
//     paths are considered for every node the relation touches.
func buildStartNodes(
	start Side, startBoundResult *ResultTable, child idtable.Table, minDist uint64,
) []idtable.Id {
	switch {
	case start.IsBoundVariable():
		col := startBoundResult.Table.Column(start.Bound.JoinCol)
		out := make([]idtable.Id, len(col))
		copy(out, col)
		return out
	case start.IsFixedId():
		return []idtable.Id{start.FixedId()}
	default:
		startCol := child.Column(start.SubCol)
		out := make([]idtable.Id, len(startCol))
		copy(out, startCol)
		if minDist == 0 {
			otherCol := child.Column(1 - start.SubCol)
			out = append(out, otherCol...)
		}
		return out
	}
}
