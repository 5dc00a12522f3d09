// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package transitivepath

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/sparqlcore/engine/pkg/engine/idtable"
)

// BoundInput describes the external sub-result a side has been fused
// with via BindLeftSide/BindRightSide: a child operation and the
// column of its result that supplies this side's values.
type BoundInput struct {
	Child   Operation
	JoinCol int
}

// Side describes one endpoint (left or right) of the transitive path:
// whether it is a fixed identifier or a variable, which column of the
// child table carries it, which column of the result table it is
// written to, and whether it has been bound to an external sub-result.
//
// Exactly one of {fixed-id, unbound-variable, bound-variable} applies
// at any time: a Side is either fixed (IsFixedId) or holds a Variable,
// and a variable Side may additionally carry a BoundInput.
type Side struct {
	fixed    bool
	fixedID  idtable.Id
	variable Variable

	SubCol    int
	OutputCol int
	Bound     *BoundInput
}

// NewFixedSide constructs a Side bound to a literal identifier.
func NewFixedSide(id idtable.Id, subCol, outputCol int) Side {
	return Side{fixed: true, fixedID: id, SubCol: subCol, OutputCol: outputCol}
}

// NewVariableSide constructs an unbound-variable Side.
func NewVariableSide(v Variable, subCol, outputCol int) Side {
	return Side{variable: v, SubCol: subCol, OutputCol: outputCol}
}

// IsFixedId reports whether this side is a literal identifier.
func (s Side) IsFixedId() bool { return s.fixed }

// IsVariable reports whether this side is a SPARQL variable (bound or
// unbound).
func (s Side) IsVariable() bool { return !s.fixed }

// IsBoundVariable reports whether this side is a variable that has been
// fused with an external sub-result via BindLeftSide/BindRightSide.
func (s Side) IsBoundVariable() bool { return s.IsVariable() && s.Bound != nil }

// FixedId returns the literal identifier; only meaningful when
// IsFixedId() is true.
func (s Side) FixedId() idtable.Id { return s.fixedID }

// VariableName returns the SPARQL variable name; only meaningful when
// IsVariable() is true.
func (s Side) VariableName() Variable { return s.variable }

// IsSortedOnInputCol reports whether this side is bound and the bound
// input's root operation declares its result sorted with the bound
// join column as primary key.
func (s Side) IsSortedOnInputCol() bool {
	if s.Bound == nil {
		return false
	}
	root := s.Bound.Child.GetRootOperation()
	if root == nil {
		root = s.Bound.Child
	}
	sortedOn := root.ResultSortedOn()
	return len(sortedOn) > 0 && sortedOn[0] == s.Bound.JoinCol
}

// CacheKeyContribution returns a stable textual encoding of this side's
// identity for composition into the operator's overall cache key: the
// value (fixed id or variable name), the subtree column, the output
// column, and — when bound — the bound child's own cache key and join
// column.
func (s Side) CacheKeyContribution() string {
	var value string
	if s.fixed {
		value = fmt.Sprintf("fixed(%d)", uint64(s.fixedID))
	} else {
		value = fmt.Sprintf("var(%s)", s.variable)
	}
	if s.Bound == nil {
		return fmt.Sprintf("side{%s,subCol=%d,outCol=%d}", value, s.SubCol, s.OutputCol)
	}
	return fmt.Sprintf(
		"side{%s,subCol=%d,outCol=%d,bound=[%s,joinCol=%d]}",
		value, s.SubCol, s.OutputCol, s.Bound.Child.GetCacheKey(), s.Bound.JoinCol,
	)
}

// validate checks the invariants spec.md §3 places on a Side in
// isolation (the pairwise invariants — distinct output columns,
// distinct variables when both sides are variables — are checked by
// the operator constructor, which sees both sides at once).
func (s Side) validate() error {
	if s.OutputCol != 0 && s.OutputCol != 1 {
		return errors.AssertionFailedf("side output column must be 0 or 1, got %d", s.OutputCol)
	}
	return nil
}
