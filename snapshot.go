/*
   Copyright 2026 The Apifault Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package faults

import (
	"fmt"
	"runtime"
	"strings"
)

// maxSnapshotFrames caps the number of stack frames recorded in a
// diagnostic snapshot. Deep handler chains rarely add signal past this
// depth, and the snapshot must stay cheap to capture and log.
const maxSnapshotFrames = 32

// captureSnapshot records the call stack at the failure site as a
// newline-separated list of "function\n\tfile:line" entries, the format
// the runtime itself uses for tracebacks.
//
// skip counts frames above the caller of captureSnapshot to omit (the
// constructor plumbing). The function never fails: when no frames are
// available it returns a trivial non-empty marker, so Technical faults
// always carry a snapshot even without meaningful context.
func captureSnapshot(skip int) string {
	pcs := make([]uintptr, maxSnapshotFrames)
	// +2 skips runtime.Callers and captureSnapshot itself.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return "(no stack)"
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	if b.Len() == 0 {
		return "(no stack)"
	}
	return strings.TrimSuffix(b.String(), "\n")
}
