// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package transitivepath

import (
	"github.com/cockroachdb/errors"
	"github.com/sparqlcore/engine/pkg/engine/colmem"
	"github.com/sparqlcore/engine/pkg/util/cancelchecker"
)

// ErrUnsupportedEmptyPath is returned by ComputeResult when minDist == 0
// and both sides are unbound variables with no fixed id on either side:
// evaluating the empty path between two fully unbound endpoints would
// require enumerating every node touched by the relation, which
// spec.md explicitly rejects as an unsupported configuration rather
// than a slow-but-legal query.
var ErrUnsupportedEmptyPath = errors.New(
	"transitive path: evaluating the empty path with both endpoints unbound is not supported")

// ErrBudgetExceeded is returned when a hull, edge store, or result
// table would grow past the per-query memory limit threaded through
// via colmem.Allocator. Re-exported here so callers of this package
// don't need to import colmem just to compare errors.
var ErrBudgetExceeded = colmem.ErrBudgetExceeded

// ErrQueryCanceled is returned when the cancellation handle passed to
// ComputeResult fires mid-traversal. Re-exported from cancelchecker for
// the same reason as ErrBudgetExceeded.
var ErrQueryCanceled = cancelchecker.ErrQueryCanceled
