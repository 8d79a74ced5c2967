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

package httpx

import (
	"encoding/json"
	"net/http"

	"apifault.dev/faults/adapter"
)

// Writer is a thin adapter that knows how to turn a fault into an HTTP
// response.
//
// The HTTP status comes from the fault itself (resolved once at its
// construction); the body is the apis.ErrorView produced by adapter.ToView,
// which applies the exposure rule: non-exact messages are replaced with
// Fallback, withheld fields are dropped, and the diagnostic snapshot is
// never serialized.
type Writer struct {
	// Fallback is the generic client-safe message substituted when the
	// fault's own message must not be shown. Empty means
	// adapter.DefaultFallback.
	Fallback string
}

// Write serializes the error as a JSON body and writes it with the fault's
// status. A nil error writes nothing. Errors that are not faults are
// rendered as a 500 UNEXPECTED_ERROR with the fallback text.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	view := adapter.ToView(err, w.Fallback)

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(adapter.StatusOf(err))

	b, _ := json.Marshal(view)
	_, _ = rw.Write(b)
}
