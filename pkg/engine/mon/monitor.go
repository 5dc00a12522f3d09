// Copyright 2024 The Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package mon provides a small memory-budget monitor that per-query
// allocators (pkg/engine/colmem) use to enforce a hard ceiling on the
// containers a single transitive-path evaluation may build.
package mon

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrBudgetExceeded is returned when an allocation would push a monitor
// past its configured limit.
var ErrBudgetExceeded = errors.New("memory budget exceeded")

// MemoryAccount tracks the bytes a single component has reserved against
// its MemoryMonitor.
type MemoryAccount struct {
	curAllocated int64
	mon          *MemoryMonitor
}

// Used returns the number of bytes currently reserved by this account.
func (a *MemoryAccount) Used() int64 {
	return a.curAllocated
}

// MemoryMonitor tracks all MemoryAccounts opened against a single budget.
// A zero-value limit means unlimited.
type MemoryMonitor struct {
	mu struct {
		sync.Mutex
		reserved int64
	}
	limit int64
	name  string
}

// NewMonitor constructs a MemoryMonitor with the given byte limit. A limit
// of 0 means no limit is enforced (used by tests that don't exercise the
// memory-limit error path).
func NewMonitor(name string, limit int64) *MemoryMonitor {
	return &MemoryMonitor{name: name, limit: limit}
}

// MakeBoundAccount opens a new BoundAccount against this monitor, reserving
// initialAllocation bytes up front.
func (mm *MemoryMonitor) MakeBoundAccount(ctx context.Context, initialAllocation int64) (BoundAccount, error) {
	acc := BoundAccount{MemoryAccount: MemoryAccount{mon: mm}}
	if initialAllocation == 0 {
		return acc, nil
	}
	if err := mm.reserve(initialAllocation); err != nil {
		return BoundAccount{}, err
	}
	acc.curAllocated = initialAllocation
	return acc, nil
}

func (mm *MemoryMonitor) reserve(delta int64) error {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	if mm.limit > 0 && mm.mu.reserved+delta > mm.limit {
		return errors.Wrapf(ErrBudgetExceeded, "monitor %q: %d + %d > limit %d", mm.name, mm.mu.reserved, delta, mm.limit)
	}
	mm.mu.reserved += delta
	return nil
}

func (mm *MemoryMonitor) release(delta int64) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.mu.reserved -= delta
}

// Grow requests delta additional bytes for acc, failing with
// ErrBudgetExceeded if the monitor's limit would be breached.
func (mm *MemoryMonitor) Grow(ctx context.Context, acc *MemoryAccount, delta int64) error {
	if delta < 0 {
		return errors.AssertionFailedf("negative growth %d", delta)
	}
	if err := mm.reserve(delta); err != nil {
		return err
	}
	acc.curAllocated += delta
	return nil
}

// CloseAccount releases every byte still reserved by acc.
func (mm *MemoryMonitor) CloseAccount(ctx context.Context, acc *MemoryAccount) {
	if acc.curAllocated != 0 {
		mm.release(acc.curAllocated)
		acc.curAllocated = 0
	}
}
