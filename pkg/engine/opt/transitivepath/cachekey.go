// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package transitivepath

import "fmt"

// cacheKeyTag identifies this operator kind in the composed cache key,
// per spec.md §6.
const cacheKeyTag = "TRANSITIVE_PATH"

// GetCacheKey implements Operation: a deterministic string composed of
// the operator tag, the length interval, both sides' contributions,
// and the child's own cache key. Two operator instances with equal
// cache keys MUST produce equivalent results — this is the identity
// the host engine's result cache keys on.
func (op *TransitivePathOp) GetCacheKey() string {
	return fmt.Sprintf(
		"%s[min=%d,max=%d,left=%s,right=%s,child=%s]",
		cacheKeyTag, op.minDist, op.maxDist,
		op.left.CacheKeyContribution(), op.right.CacheKeyContribution(),
		op.child.GetCacheKey(),
	)
}
