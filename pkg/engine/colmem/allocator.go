// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package colmem provides the memory-accounting wrapper that every
// growable container in the transitive-path core is built through:
// edge stores, hulls, and the result IdTable all grow under one
// Allocator so a single query-wide budget bounds the whole evaluation,
// adapted from colexec.Allocator's role of wrapping a mon.BoundAccount
// for every columnar batch colexec operators build.
package colmem

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/sparqlcore/engine/pkg/engine/mon"
)

// ErrBudgetExceeded is surfaced (possibly wrapped) whenever a Grow call
// would push an Allocator past its configured memory limit.
var ErrBudgetExceeded = mon.ErrBudgetExceeded

// Allocator charges every growing container of a computeResult
// invocation against one mon.BoundAccount. It is not safe for concurrent
// use; the transitive-path operator is evaluated on a single worker
// thread per spec. The operator holds its Allocator in its EvalContext
// and hands it down into the edge store, the hull, and the result
// materializer on every ComputeResult call made with that context.
type Allocator struct {
	ctx context.Context
	acc *mon.BoundAccount
}

// NewAllocator wraps acc; every Grow on the result is charged to acc.
func NewAllocator(ctx context.Context, acc *mon.BoundAccount) *Allocator {
	return &Allocator{ctx: ctx, acc: acc}
}

// Grow charges delta bytes against the underlying budget. Callers use
// this before appending to any map, slice, or IdTable backing store so
// that an over-budget query fails with ErrBudgetExceeded instead of
// exhausting process memory.
func (a *Allocator) Grow(delta int64) error {
	if delta <= 0 {
		return nil
	}
	if err := a.acc.Grow(a.ctx, delta); err != nil {
		return errors.Wrapf(err, "growing allocator by %d bytes", delta)
	}
	return nil
}

// Used returns the number of bytes currently charged to this allocator.
func (a *Allocator) Used() int64 {
	return a.acc.Used()
}

// Close releases every byte this Allocator has charged back to the
// underlying monitor. The caller that constructed the BoundAccount this
// Allocator wraps owns its lifecycle and is responsible for closing it
// once the invocation it was created for is done, the same pairing the
// teacher's row containers give their own bound accounts.
func (a *Allocator) Close(ctx context.Context) {
	a.acc.Close(ctx)
}

// SizeOfIds estimates the bytes occupied by n Ids, used to charge
// allocations before growing a slice or map keyed/valued by Id.
func SizeOfIds(n int) int64 {
	const idSize = 8 // bytes per Id (uint64)
	return int64(n) * idSize
}
