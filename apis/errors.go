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

package apis

// CodedError represents an error classified into a well-defined,
// machine-readable wire *code*.
//
// Codes are stable and enumerable — "DATA_NOT_FOUND", "MISSING_TOKEN",
// "VALIDATION_ERROR" — and are the primary value that clients dispatch on.
//
// Implementations are expected to return a canonicalized code — normalized
// to the format enforced by the faults/code package (uppercase, underscores,
// length limits). Adapters should treat unknown or empty codes as internal
// server errors.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable wire code.
	//
	// The returned value MUST be non-empty and MUST already be normalized
	// according to the rules of the faults subsystem. Callers should not try
	// to "fix" or "guess" the value here — if it's invalid, it should be
	// handled as an internal error at the boundary.
	ErrorCode() string
}

// CategorizedError represents an error that exposes its category tag —
// "technical", "functional", or "generic".
//
// The category answers "which construction policy produced this fault":
// whether diagnostics were captured and how message exposure defaults. It is
// meant for logging and metrics, not for client dispatch (clients use the
// code).
type CategorizedError interface {
	error

	// ErrorCategory returns the category label. The set is closed; callers
	// should be prepared for the three registered values only.
	ErrorCategory() string
}

// StatusedError represents an error that already knows the HTTP status it
// must produce. The status is resolved once at construction time from the
// code registry (or an explicit override), so boundaries read it rather
// than re-deriving it.
type StatusedError interface {
	error

	// HTTPStatus returns the resolved HTTP status. Always a valid status;
	// never zero.
	HTTPStatus() int
}

// ExactMessager represents an error that controls whether its message may
// cross the boundary verbatim.
//
// When ExactMessage reports false, the transport layer MUST substitute its
// own generic, client-safe text and MUST withhold any structured fields the
// error carries. The rule exists so that internal reasoning never leaks to
// end users by accident.
type ExactMessager interface {
	error

	// ExactMessage reports whether the error's own message is safe to show
	// to the external caller as-is.
	ExactMessage() bool
}

// FieldedError represents an error that exposes structured key/value
// payload. This is especially useful for validation scenarios where several
// fields fail at once and the caller needs to see all of them.
//
// Implementations SHOULD return a copy that is safe to iterate over and
// that will not be modified by the callee. Returning nil is allowed and
// simply means "no extra fields".
type FieldedError interface {
	error

	// ErrorFields returns the structured payload of the error. May return nil.
	ErrorFields() map[string]any
}
