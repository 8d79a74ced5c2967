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

// ErrorView is the serializable shape a fault takes in an error response
// body.
//
// This is *not* the internal fault type — it is the subset we are
// comfortable exposing over the wire. Keeping it here (in apis) allows HTTP
// and gRPC adapters to share the same struct. The diagnostic snapshot has no
// field in this struct on purpose: it must never be serialized toward a
// client.
type ErrorView struct {
	// Code is the stable wire identifier, e.g. "DATA_NOT_FOUND",
	// "MISSING_TOKEN". Always present so clients can dispatch on it.
	Code string `json:"code"`

	// Message is the text shown to the caller: the fault's own message when
	// it is marked exact, or the boundary's generic fallback otherwise.
	Message string `json:"message"`

	// Fields carries the fault's structured payload, present only when the
	// fault's message is exact — withheld fields follow the same exposure
	// rule as the message text.
	Fields map[string]any `json:"fields,omitempty"`
}
