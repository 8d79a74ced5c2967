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

package adapter

import (
	"errors"
	"net/http"

	"apifault.dev/faults"
	"apifault.dev/faults/apis"
	"apifault.dev/faults/code"
)

// DefaultFallback is the generic client-safe text substituted for messages
// that are not marked exact. Boundaries may supply their own.
const DefaultFallback = "an unexpected error occurred"

// ToView converts an error into the public ErrorView, applying the exposure
// rule in one place for every transport:
//
//   - the fault's message appears verbatim only when the fault marks it
//     exact; otherwise fallback is used (DefaultFallback when empty);
//   - structured fields are forwarded only when the message is exact — they
//     are withheld by the same rule;
//   - the diagnostic snapshot is never part of the view.
//
// A non-fault error converts to the catch-all UNEXPECTED_ERROR view with the
// fallback text, so nothing internal leaks from errors that never went
// through a fault constructor.
func ToView(err error, fallback string) apis.ErrorView {
	if fallback == "" {
		fallback = DefaultFallback
	}

	var fe *faults.Error
	if !errors.As(err, &fe) {
		return apis.ErrorView{
			Code:    string(code.UnexpectedError),
			Message: fallback,
		}
	}

	v := apis.ErrorView{
		Code:    string(fe.Code),
		Message: fallback,
	}
	if fe.Exact {
		v.Message = fe.Message
		v.Fields = fe.ErrorFields()
	}
	return v
}

// StatusOf resolves the HTTP status an error must produce: the fault's
// construction-time status, or 500 for errors that are not faults.
func StatusOf(err error) int {
	var fe *faults.Error
	if errors.As(err, &fe) {
		return fe.Status
	}
	return http.StatusInternalServerError
}
