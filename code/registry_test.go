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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// allowedStatuses is the closed set of statuses the registry may produce.
var allowedStatuses = map[int]bool{
	http.StatusBadRequest:            true, // 400
	http.StatusUnauthorized:          true, // 401
	http.StatusForbidden:             true, // 403
	http.StatusNotFound:              true, // 404
	http.StatusNotAcceptable:         true, // 406
	http.StatusConflict:              true, // 409
	http.StatusRequestEntityTooLarge: true, // 413
	http.StatusUnprocessableEntity:   true, // 422
	http.StatusInternalServerError:   true, // 500
	http.StatusBadGateway:            true, // 502
}

func TestStatusFor_TotalOverRegistry(t *testing.T) {
	for _, c := range All() {
		st := StatusFor(c)
		if !allowedStatuses[st] {
			t.Fatalf("StatusFor(%q) = %d, outside the allowed status set", c, st)
		}
		if err := Validate(c); err != nil {
			t.Fatalf("registered code %q is not canonical: %v", c, err)
		}
	}
}

func TestStatusFor_StableAcrossCalls(t *testing.T) {
	for _, c := range All() {
		first := StatusFor(c)
		for i := 0; i < 3; i++ {
			if got := StatusFor(c); got != first {
				t.Fatalf("StatusFor(%q) changed between calls: %d then %d", c, first, got)
			}
		}
	}
}

func TestStatusFor_UnknownFallsBackTo500(t *testing.T) {
	if got := StatusFor(Code("NEVER_REGISTERED")); got != http.StatusInternalServerError {
		t.Fatalf("StatusFor(unknown) = %d, want 500", got)
	}
	if Registered(Code("NEVER_REGISTERED")) {
		t.Fatalf("Registered(unknown) = true, want false")
	}
}

func TestStatusFor_KnownMappings(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{DataNotFound, http.StatusNotFound},
		{MissingToken, http.StatusUnauthorized},
		{ValidationError, http.StatusBadRequest},
		{NoResourceAccess, http.StatusForbidden},
		{DuplicateData, http.StatusConflict},
		{PayloadTooLarge, http.StatusRequestEntityTooLarge},
		{UnprocessableData, http.StatusUnprocessableEntity},
		{UpstreamAPIError, http.StatusBadGateway},
		{InternalError, http.StatusInternalServerError},
		{UnknownEntity, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := StatusFor(tt.code); got != tt.want {
				t.Fatalf("StatusFor(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestAll_DeterministicAndDetached(t *testing.T) {
	first := All()
	second := All()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("All() is not deterministic (-first +second):\n%s", diff)
	}

	// Mutating the returned slice must not affect the registry view.
	first[0] = Code("MUTATED")
	third := All()
	if diff := cmp.Diff(second, third); diff != "" {
		t.Fatalf("All() shares state with callers (-second +third):\n%s", diff)
	}
}
