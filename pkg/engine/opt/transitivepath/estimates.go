// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package transitivepath

// DefaultFixedIDSizeEstimate is the row count the planner assumes when
// either side of the path is a fixed identifier: deliberately small but
// non-trivial, to avoid penalizing selective paths relative to an
// unbound traversal. It is a package-level var, not a const, so a host
// engine can retune it without forking this package — the same role
// the teacher's statisticsBuilder gives unknownRowCount (also 1000),
// except the teacher's coster owns that tunable internally; this
// package has no surrounding coster, so the knob is exported instead.
var DefaultFixedIDSizeEstimate int64 = 1000

// unboundBlowupFactor is applied to the child's size estimate when
// both sides are unbound variables, reflecting the worst-case fan-out
// a full transitive closure can exhibit on a large, densely connected
// graph.
const unboundBlowupFactor = 10000

// GetSizeEstimate implements Operation. The cascade below mirrors
// spec.md §4.2 verbatim; rules (d) and (e) are retained for fidelity
// even though, given the Side invariants in §3 (every side is exactly
// one of fixed-id / unbound-variable / bound-variable), rules (a)-(c)
// already cover every reachable configuration.
func (op *TransitivePathOp) GetSizeEstimate() int64 {
	left, right := op.left, op.right

	// (a) either side is a fixed id.
	if left.IsFixedId() || right.IsFixedId() {
		return DefaultFixedIDSizeEstimate
	}

	// (b) a side is bound.
	if left.IsBoundVariable() {
		return left.Bound.Child.GetSizeEstimate()
	}
	if right.IsBoundVariable() {
		return right.Bound.Child.GetSizeEstimate()
	}

	childSize := op.child.GetSizeEstimate()

	// (c) both sides are unbound variables.
	if left.IsVariable() && right.IsVariable() {
		return childSize * unboundBlowupFactor
	}

	// (d) only the left side is a variable.
	if left.IsVariable() {
		mult := op.child.GetMultiplicity(left.SubCol)
		if mult <= 0 {
			mult = 1
		}
		return int64(float64(childSize) / mult)
	}

	// (e) otherwise.
	return childSize
}

// GetCostEstimate implements Operation: this operator's own size
// estimate plus the summed cost of every child (the subtree plus each
// bound side's subtree).
func (op *TransitivePathOp) GetCostEstimate() float64 {
	cost := float64(op.GetSizeEstimate())
	for _, child := range op.GetChildren() {
		cost += child.GetCostEstimate()
	}
	return cost
}

// GetMultiplicity implements Operation. The operator has no statistics
// of its own to report beyond "unknown."
func (op *TransitivePathOp) GetMultiplicity(col int) float64 {
	return 1
}

// KnownEmptyResult implements Operation by delegating to the child.
func (op *TransitivePathOp) KnownEmptyResult() bool {
	return op.child.KnownEmptyResult()
}

// GetChildren implements Operation, listing the child sub-tree first
// and then each bound side's sub-tree, left before right.
func (op *TransitivePathOp) GetChildren() []Operation {
	children := make([]Operation, 0, 3)
	children = append(children, op.child)
	if op.left.Bound != nil {
		children = append(children, op.left.Bound.Child)
	}
	if op.right.Bound != nil {
		children = append(children, op.right.Bound.Child)
	}
	return children
}
