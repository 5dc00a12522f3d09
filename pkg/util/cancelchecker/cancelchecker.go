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

// Package cancelchecker provides the cooperative cancellation poll used
// throughout the transitive-path core, adapted from the inline
// params.p.cancelChecker.Check() calls recursiveCTENode.Next makes on
// every iteration before doing more work.
package cancelchecker

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrQueryCanceled is returned by Check once the wrapped context has been
// cancelled or has exceeded its deadline.
var ErrQueryCanceled = errors.New("query execution canceled")

// CancelChecker polls a context.Context for cancellation at well-defined
// points in the hull traversal and edge-store build (every DFS stack pop,
// every edge-map build iteration, per spec). It carries no goroutines or
// timers of its own; it is a plain, synchronous poll, matching the
// single-worker-thread evaluation model transitive-path operators run
// under.
type CancelChecker struct {
	ctx context.Context
}

// New wraps ctx for cancellation polling.
func New(ctx context.Context) *CancelChecker {
	return &CancelChecker{ctx: ctx}
}

// Check returns ErrQueryCanceled if the wrapped context has been
// cancelled or its deadline has passed, nil otherwise.
func (c *CancelChecker) Check() error {
	if c == nil || c.ctx == nil {
		return nil
	}
	select {
	case <-c.ctx.Done():
		return ErrQueryCanceled
	default:
		return nil
	}
}
