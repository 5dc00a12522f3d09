// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package transitivepath

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sparqlcore/engine/pkg/engine/colmem"
	"github.com/sparqlcore/engine/pkg/engine/idtable"
	"github.com/sparqlcore/engine/pkg/engine/opt/transitivepath/hull"
	"github.com/sparqlcore/engine/pkg/util/cancelchecker"
	"github.com/sparqlcore/engine/pkg/util/log"
)

// EvalContext bundles the per-query resources a single computeResult
// invocation shares with its siblings: the memory budget and the
// cancellation handle. It stands in for the planner's exec_ctx
// (spec.md §6), trimmed to what this operator's evaluation needs — the
// host engine's execution context carries a great deal more (session
// settings, the transaction, tracing) none of which this core touches.
type EvalContext struct {
	Alloc  *colmem.Allocator
	Cancel *cancelchecker.CancelChecker
}

// Stats reports the three phase timings spec.md §4.2 calls for:
// edge-store/start-list construction, hull traversal, and result
// materialization. Observable for debugging and tests; not part of
// the Operation contract, the same way the teacher keeps
// execinfrapb.ComponentStats out of planNode itself.
type Stats struct {
	Init time.Duration
	Hull time.Duration
	Fill time.Duration
}

// carryColumn describes one column of a bound side's sub-result that
// is copied verbatim into the transitive-path operator's output, in
// input order, skipping the join column (spec.md §4.6).
type carryColumn struct {
	fromLeft  bool // true if copied from op.left.Bound's result, false for op.right.Bound
	sourceCol int
	outputCol int
	variable  Variable
}

// TransitivePathOp implements Operation, evaluating a SPARQL property
// path ?s <p>{m,n} ?o over its child's base-edge relation.
type TransitivePathOp struct {
	evalCtx *EvalContext
	child   Operation
	left    Side
	right   Side
	minDist uint64
	maxDist uint64

	resultWidth int
	carryCols   []carryColumn
	varCols     map[Variable]int

	stats Stats
}

// Unbounded is the largest representable distance, encoding an
// unbounded maxDist (spec.md §3).
const Unbounded = ^uint64(0)

// NewTransitivePathOp validates and constructs a transitive-path
// operator over child with the given sides and length interval.
// Mirrors the constructor signature of spec.md §6
// (exec_ctx, child_subtree, left_side, right_side, min_dist, max_dist).
func NewTransitivePathOp(
	evalCtx *EvalContext, child Operation, left, right Side, minDist, maxDist uint64,
) (*TransitivePathOp, error) {
	if child == nil {
		return nil, errors.AssertionFailedf("transitive path: child sub-tree must not be nil")
	}
	if err := left.validate(); err != nil {
		return nil, err
	}
	if err := right.validate(); err != nil {
		return nil, err
	}
	if left.OutputCol == right.OutputCol {
		return nil, errors.AssertionFailedf(
			"transitive path: left and right sides must have distinct output columns, both have %d", left.OutputCol)
	}
	if left.IsVariable() && right.IsVariable() && left.VariableName() == right.VariableName() {
		return nil, errors.AssertionFailedf(
			"transitive path: both sides are variable %q, variables of distinct sides must be distinct", left.VariableName())
	}
	if minDist > maxDist {
		return nil, errors.AssertionFailedf("transitive path: minDist %d exceeds maxDist %d", minDist, maxDist)
	}

	op := &TransitivePathOp{
		evalCtx: evalCtx,
		child:   child,
		left:    left,
		right:   right,
		minDist: minDist,
		maxDist: maxDist,
	}
	if err := op.buildSchema(); err != nil {
		return nil, err
	}
	return op, nil
}

// buildSchema computes the output width, the carry-over column layout,
// and the variable-to-column map, per spec.md §4.2's getResultWidth
// and the bindLeftSide/bindRightSide schema-growth rule.
func (op *TransitivePathOp) buildSchema() error {
	op.varCols = make(map[Variable]int, 2)
	if op.left.IsVariable() {
		op.varCols[op.left.VariableName()] = op.left.OutputCol
	}
	if op.right.IsVariable() {
		op.varCols[op.right.VariableName()] = op.right.OutputCol
	}

	width := 2
	sides := []struct {
		side     Side
		fromLeft bool
	}{{op.left, true}, {op.right, false}}
	for _, s := range sides {
		if s.side.Bound == nil {
			continue
		}
		bound := s.side.Bound
		childWidth := bound.Child.GetResultWidth()
		if bound.JoinCol < 0 || bound.JoinCol >= childWidth {
			return errors.AssertionFailedf(
				"transitive path: bound join column %d out of range for width %d", bound.JoinCol, childWidth)
		}
		reverse := invertVariableColumns(bound.Child.GetVariableColumns())
		for c := 0; c < childWidth; c++ {
			if c == bound.JoinCol {
				continue
			}
			cc := carryColumn{fromLeft: s.fromLeft, sourceCol: c, outputCol: width}
			if v, ok := reverse[c]; ok {
				cc.variable = v
				op.varCols[v] = width
			}
			op.carryCols = append(op.carryCols, cc)
			width++
		}
	}
	op.resultWidth = width
	return nil
}

func invertVariableColumns(m map[Variable]int) map[int]Variable {
	out := make(map[int]Variable, len(m))
	for v, c := range m {
		out[c] = v
	}
	return out
}

// GetResultWidth implements Operation.
func (op *TransitivePathOp) GetResultWidth() int { return op.resultWidth }

// GetVariableColumns implements Operation.
func (op *TransitivePathOp) GetVariableColumns() map[Variable]int {
	out := make(map[Variable]int, len(op.varCols))
	for v, c := range op.varCols {
		out[v] = c
	}
	return out
}

// GetRootOperation implements Operation: this operator is never itself
// a wrapper, so it is its own root.
func (op *TransitivePathOp) GetRootOperation() Operation { return op }

// ResultSortedOn implements Operation: the start side's output column
// is reported as the primary sort key when the start side is a fixed
// id (trivially sorted, one distinct value) or a bound variable whose
// input declares itself sorted on the join column; otherwise the
// result's row order is unspecified.
func (op *TransitivePathOp) ResultSortedOn() []int {
	start, _ := op.startAndTargetSides()
	if start.IsFixedId() {
		return []int{start.OutputCol}
	}
	if start.IsBoundVariable() && start.IsSortedOnInputCol() {
		return []int{start.OutputCol}
	}
	return nil
}

// startAndTargetSides implements the direction-selection policy of
// spec.md §4.2: a fixed-id or bound-variable side becomes the start of
// the DFS (a smaller, explicit start set is strictly preferable);
// otherwise left is the start.
func (op *TransitivePathOp) startAndTargetSides() (start, target Side) {
	leftCandidate := op.left.IsFixedId() || op.left.IsBoundVariable()
	rightCandidate := op.right.IsFixedId() || op.right.IsBoundVariable()
	if rightCandidate && !leftCandidate {
		return op.right, op.left
	}
	return op.left, op.right
}

// Stats returns the phase timings recorded by the most recent
// ComputeResult invocation.
func (op *TransitivePathOp) Stats() Stats { return op.stats }

// ComputeResult implements Operation, following the five-step
// algorithm of spec.md §4.2.
func (op *TransitivePathOp) ComputeResult(ctx context.Context) (*ResultTable, error) {
	start, target := op.startAndTargetSides()

	// Step 1: reject the unsupported empty-path configuration.
	if op.minDist == 0 &&
		op.left.IsVariable() && !op.left.IsBoundVariable() &&
		op.right.IsVariable() && !op.right.IsBoundVariable() {
		return nil, ErrUnsupportedEmptyPath
	}

	initStart := time.Now()

	// Step 2: fetch the child's result and construct the edge store.
	childResult, err := op.child.ComputeResult(ctx)
	if err != nil {
		return nil, err
	}
	if childResult.Table.NumColumns() != 2 {
		return nil, errors.AssertionFailedf(
			"transitive path: child must be a two-column edge relation, got %d columns", childResult.Table.NumColumns())
	}

	var leftBoundResult, rightBoundResult *ResultTable
	if op.left.IsBoundVariable() {
		if leftBoundResult, err = op.left.Bound.Child.ComputeResult(ctx); err != nil {
			return nil, err
		}
	}
	if op.right.IsBoundVariable() {
		if rightBoundResult, err = op.right.Bound.Child.ComputeResult(ctx); err != nil {
			return nil, err
		}
	}
	var startBoundResult, targetBoundResult *ResultTable
	if start.OutputCol == op.left.OutputCol {
		startBoundResult, targetBoundResult = leftBoundResult, rightBoundResult
	} else {
		startBoundResult, targetBoundResult = rightBoundResult, leftBoundResult
	}
	_ = targetBoundResult

	store, err := op.buildEdgeStore(childResult, start)
	if err != nil {
		return nil, err
	}

	// Step 3: compute the start node list and the hull.
	starts := buildStartNodes(start, startBoundResult, childResult.Table, op.minDist)

	var targetFilter *idtable.Id
	if target.IsFixedId() {
		id := target.FixedId()
		targetFilter = &id
	}

	op.stats.Init = time.Since(initStart)

	hullStart := time.Now()
	h, err := hull.Walk(store, starts, op.minDist, op.maxDist, targetFilter, op.evalCtx.Alloc, op.evalCtx.Cancel)
	if err != nil {
		return nil, err
	}
	op.stats.Hull = time.Since(hullStart)

	// Step 4: materialize the result.
	fillStart := time.Now()
	result, err := op.fillResult(start, target, h, starts, leftBoundResult, rightBoundResult)
	if err != nil {
		return nil, err
	}
	op.stats.Fill = time.Since(fillStart)

	// Step 5: propagate sort metadata and the merged local vocabulary.
	result.SortedOn = op.ResultSortedOn()
	result.LocalVocab = mergeVocab(childResult.LocalVocab, leftBoundResult, rightBoundResult)

	log.VEventf(ctx, 2, "transitive path: init=%s hull=%s fill=%s rows=%d",
		op.stats.Init, op.stats.Hull, op.stats.Fill, result.Table.NumRows())

	return result, nil
}

func mergeVocab(child map[idtable.Id]string, others ...*ResultTable) map[idtable.Id]string {
	out := make(map[idtable.Id]string, len(child))
	for k, v := range child {
		out[k] = v
	}
	for _, r := range others {
		if r == nil {
			continue
		}
		for k, v := range r.LocalVocab {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
