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

// Package log is a narrow port of the teacher's util/log API surface
// (Infof/Warningf/VEventf/Safe) used by this module. The full teacher
// package additionally owns log sinks, file rotation, OTLP export, and
// structured event schemas (eventpb) — none of which this core needs,
// since the transitive-path operator only ever logs its own runtime
// stats (through VEventf); those concerns were left behind rather than
// vendored wholesale.
package log

import (
	"context"
	"log"
)

// Safe marks a value as free of user data, mirroring the teacher's
// log.Safe wrapper used to annotate values embedded in
// errors.AssertionFailedf messages.
func Safe(v interface{}) interface{} {
	return v
}

// Infof logs an informational message, ignoring ctx beyond using it as a
// future extension point for trace correlation (the teacher's Infof
// attaches the active span; this port has none).
func Infof(ctx context.Context, format string, args ...interface{}) {
	log.Printf("I "+format, args...)
}

// Warningf logs a warning-level message.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	log.Printf("W "+format, args...)
}

// VEventf logs a verbose trace-style event. level is accepted for
// signature compatibility with call sites ported from the teacher; this
// slim port does not gate output on verbosity.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	log.Printf("V%d "+format, append([]interface{}{level}, args...)...)
}
