// Copyright 2024 The Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package idtable defines the columnar relation type the transitive-path
// operator reads its child edges from and writes its result into,
// generalizing the teacher's fixed-width coldata.Batch columnar vectors
// to the narrow two-or-more-column Id relation this engine's operators
// exchange rather than a full SQL row format.
package idtable

// Id is an opaque identifier for an RDF term. Equality and hashing are
// defined purely on its bit pattern; there is no ordering beyond the
// bitwise ordering a sorted index over it happens to use. Zero is an
// ordinary value, not a sentinel — callers needing an optional Id (e.g.
// an unset target filter) use *Id, never a reserved bit pattern.
type Id uint64
