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

	"apifault.dev/faults/apis"
	"apifault.dev/faults/category"
	"apifault.dev/faults/code"
)

// Error is the canonical fault value raised at a failure site and consumed
// once by the transport boundary.
//
// It carries:
//   - Code: the stable wire identifier (required, from the closed registry);
//   - Category: the discriminator tag that fixed the construction policy;
//   - Message: human-oriented description of what went wrong;
//   - Status: the HTTP status resolved once at construction — either the
//     registry mapping for Code, or an explicit override (Generic only);
//   - Snapshot: a capture of the failure site, present exactly when the
//     category policy says so (Technical). Server-side logging only; the
//     boundary must never serialize it;
//   - Exact: whether Message may be shown to the caller verbatim. When
//     false, the boundary substitutes its own generic fallback, and any
//     attached Fields are withheld by the same rule;
//   - Fields: structured key/value payload for logging and, when Exact,
//     for the response body;
//   - Cause: wrapped underlying error for errors.Is / errors.As.
//
// A fault is a terminal, one-shot value: constructed at the failure site,
// immutable afterwards, discarded after the boundary renders it. All
// mutation helpers (WithX) return a shallow copy.
type Error struct {
	Code     code.Code
	Category category.Category
	Message  string
	Status   int
	Snapshot string
	Exact    bool
	Fields   map[string]any
	Cause    error
}

// Compile-time guarantees that *Error satisfies the public contracts
// consumed by transport adapters.
var (
	_ error                 = (*Error)(nil)
	_ apis.CodedError       = (*Error)(nil)
	_ apis.CategorizedError = (*Error)(nil)
	_ apis.StatusedError    = (*Error)(nil)
	_ apis.ExactMessager    = (*Error)(nil)
	_ apis.FieldedError     = (*Error)(nil)
)

// Technical constructs a fault for an infrastructure or internal failure.
//
// The category policy is applied unconditionally: a diagnostic snapshot of
// the call site is captured, and the message is marked exposable. WithExact
// and WithStatus are ignored for this category.
func Technical(c code.Code, msg string, opts ...Option) *Error {
	return construct(category.Technical, c, msg, opts)
}

// Functional constructs a fault for a business-rule failure. No snapshot is
// captured; the exposure flag defaults to true and may be flipped per kind
// with WithExact. WithStatus is ignored.
func Functional(c code.Code, msg string, opts ...Option) *Error {
	return construct(category.Functional, c, msg, opts)
}

// Generic constructs a catch-all fault. No snapshot is captured, the message
// is hidden behind the boundary fallback unless WithExact(true) is given,
// and WithStatus may override the registry mapping.
func Generic(c code.Code, msg string, opts ...Option) *Error {
	return construct(category.Generic, c, msg, opts)
}

// construct applies the category policy and resolves the status exactly
// once. Options run first; the policy then wins over anything an option set
// that the category does not permit.
func construct(cat category.Category, c code.Code, msg string, opts []Option) *Error {
	e := &Error{
		Code:     c,
		Category: cat,
		Message:  msg,
		Exact:    cat.DefaultExact(),
	}
	for _, opt := range opts {
		e = opt(e)
	}
	if !cat.AllowsOverride() {
		e.Status = 0
	}
	if e.Status == 0 {
		e.Status = code.StatusFor(c)
	}
	if cat.CapturesSnapshot() {
		e.Exact = true
		// skip construct and the exported constructor above it
		e.Snapshot = captureSnapshot(2)
	} else {
		e.Snapshot = ""
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code> [<category>] (<status>): <message>
//
// This makes the fault both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s [%s] (%d): %s", e.Code, e.Category, e.Status, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string { return string(e.Code) }

// ErrorCategory implements apis.CategorizedError.
func (e *Error) ErrorCategory() string { return string(e.Category) }

// HTTPStatus implements apis.StatusedError.
func (e *Error) HTTPStatus() int { return e.Status }

// ExactMessage implements apis.ExactMessager.
func (e *Error) ExactMessage() bool { return e.Exact }

// ErrorFields implements apis.FieldedError. The returned map is a copy;
// mutating it does not affect the fault.
func (e *Error) ErrorFields() map[string]any {
	if len(e.Fields) == 0 {
		return nil
	}
	m := make(map[string]any, len(e.Fields))
	for k, v := range e.Fields {
		m[k] = v
	}
	return m
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when you want to keep the code and category but present the message
// in a different context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithField returns a shallow copy of e with one extra key/value in Fields.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared fault values.
func (e *Error) WithField(k string, v any) *Error {
	cp := *e
	// No fields yet — create a new single-entry map.
	if len(cp.Fields) == 0 {
		cp.Fields = map[string]any{k: v}
		return &cp
	}
	// Copy existing fields and add one more.
	m := make(map[string]any, len(cp.Fields)+1)
	for k0, v0 := range cp.Fields {
		m[k0] = v0
	}
	m[k] = v
	cp.Fields = m
	return &cp
}

// WithFields returns a shallow copy of e with all provided kv merged into
// Fields.
//
// If the fault already has fields, both maps are copied and merged, with kv
// taking precedence on key conflicts.
func (e *Error) WithFields(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Fields)+len(kv))
	for k0, v0 := range cp.Fields {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Fields = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original fault is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
