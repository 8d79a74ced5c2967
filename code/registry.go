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

package code

import (
	"net/http"
	"sort"
)

// statusByCode is the wire registry: one HTTP status per registered code.
//
// The table is built once at definition time and never mutated afterwards,
// which makes it safe for unsynchronized concurrent reads. Registration is
// closed: adding a code means adding a constant in codes.go and a row here,
// and registry_test.go holds the two in sync.
var statusByCode = map[Code]int{
	// 5xx — infrastructure / internal.
	InternalError:       http.StatusInternalServerError,
	InitializationError: http.StatusInternalServerError,
	ExecutionError:      http.StatusInternalServerError,
	DatabaseError:       http.StatusInternalServerError,
	ConfigurationError:  http.StatusInternalServerError,
	CacheError:          http.StatusInternalServerError,
	SerializationError:  http.StatusInternalServerError,
	UnexpectedError:     http.StatusInternalServerError,
	UnknownEntity:       http.StatusInternalServerError,

	// 502 — upstream / transport.
	UpstreamAPIError:       http.StatusBadGateway,
	ThirdPartyServiceError: http.StatusBadGateway,
	NetworkError:           http.StatusBadGateway,

	// 400 — request validation.
	ValidationError:  http.StatusBadRequest,
	MissingParameter: http.StatusBadRequest,
	InvalidParameter: http.StatusBadRequest,
	InvalidFormat:    http.StatusBadRequest,

	// 401 / 403 — authentication and authorization.
	AuthenticationFailed: http.StatusUnauthorized,
	MissingToken:         http.StatusUnauthorized,
	InvalidToken:         http.StatusUnauthorized,
	TokenExpired:         http.StatusUnauthorized,
	NoResourceAccess:     http.StatusForbidden,
	OperationNotAllowed:  http.StatusForbidden,

	// 404 — lookups that missed.
	DataNotFound:     http.StatusNotFound,
	TemplateNotFound: http.StatusNotFound,
	EndpointNotFound: http.StatusNotFound,
	AnswerNotFound:   http.StatusNotFound,
	NoDataAvailable:  http.StatusNotFound,

	// 409 / 413 / 422 — state and payload.
	DuplicateData:     http.StatusConflict,
	DataConflict:      http.StatusConflict,
	PayloadTooLarge:   http.StatusRequestEntityTooLarge,
	UnprocessableData: http.StatusUnprocessableEntity,
}

// StatusFor resolves the HTTP status for a code.
//
// The function is total: a code missing from the registry resolves to 500
// rather than failing. An unknown code at this point is a programming error,
// but the boundary must still be able to answer, so the registry degrades to
// the most conservative status instead of panicking.
func StatusFor(c Code) int {
	if st, ok := statusByCode[c]; ok {
		return st
	}
	return http.StatusInternalServerError
}

// Registered reports whether the code is part of the closed registry.
func Registered(c Code) bool {
	_, ok := statusByCode[c]
	return ok
}

// All returns the registered codes in deterministic (lexicographic) order.
// The result is a fresh slice; mutating it does not affect the registry.
func All() []Code {
	out := make([]Code, 0, len(statusByCode))
	for c := range statusByCode {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
