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

// Option is a functional option for constructing a fault. It always takes
// an *Error and returns a (possibly new) *Error.
//
// Options run before the category policy is enforced, so a policy the
// category fixes (snapshot capture, Technical exactness, override
// permission) cannot be undone by an option.
type Option func(*Error) *Error

// WithExact sets the exposure flag on the fault being constructed.
// Honored for Functional and Generic faults; Technical faults keep the flag
// fixed to true.
func WithExact(exact bool) Option {
	return func(e *Error) *Error {
		cp := *e
		cp.Exact = exact
		return &cp
	}
}

// WithStatus sets an explicit HTTP status override. Honored only for
// Generic faults; other categories always resolve the status from the code
// registry.
func WithStatus(status int) Option {
	return func(e *Error) *Error {
		cp := *e
		cp.Status = status
		return &cp
	}
}

// WithFieldOption adds a single structured key/value on construction.
func WithFieldOption(k string, v any) Option {
	return func(e *Error) *Error {
		return e.WithField(k, v)
	}
}

// WithFieldsOption merges multiple structured key/values on construction.
func WithFieldsOption(kv map[string]any) Option {
	return func(e *Error) *Error {
		return e.WithFields(kv)
	}
}

// WithCauseOption attaches an underlying cause on construction.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
