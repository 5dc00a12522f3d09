// Copyright 2016 The Cockroach Authors.
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
//
// Author: Raphael 'kena' Poss (knz@cockroachlabs.com)

package mon

import (
	"context"
)

// BoundAccount implements a MemoryAccount attached to a specific
// monitor. It is the unit of currency threaded through every growable
// container in the transitive-path core (colmem.Allocator wraps one).
type BoundAccount struct {
	MemoryAccount
}

// MakeStandaloneBudget creates a BoundAccount not tied to any monitor,
// useful for tests that don't want to exercise the limit-exceeded path.
func MakeStandaloneBudget(capacity int64) BoundAccount {
	return BoundAccount{MemoryAccount{curAllocated: capacity}}
}

// Grow requests delta additional bytes, consulting the owning monitor's
// budget. When the account isn't bound to a monitor (the
// MakeStandaloneBudget case) it always succeeds and only adds delta to
// the account's Used total.
func (b *BoundAccount) Grow(ctx context.Context, delta int64) error {
	if b.mon == nil {
		b.curAllocated += delta
		return nil
	}
	return b.mon.Grow(ctx, &b.MemoryAccount, delta)
}

// Close releases every byte still reserved by this account.
func (b *BoundAccount) Close(ctx context.Context) {
	if b.mon != nil {
		b.mon.CloseAccount(ctx, &b.MemoryAccount)
	}
}
