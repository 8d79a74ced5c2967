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
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"apifault.dev/faults"
	"apifault.dev/faults/apis"
	"apifault.dev/faults/code"
	"apifault.dev/faults/detail"
)

func TestToView_ExactFault(t *testing.T) {
	err := faults.DataNotFound(detail.Text("employee 42")).WithField("id", 42)

	got := ToView(err, "")
	want := apis.ErrorView{
		Code:    "DATA_NOT_FOUND",
		Message: "data not found: employee 42",
		Fields:  map[string]any{"id": 42},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestToView_HiddenFault(t *testing.T) {
	err := faults.AnswerNotFound().WithField("raw_response", "secret internals")

	got := ToView(err, "")
	if got.Message != DefaultFallback {
		t.Fatalf("message = %q, want fallback", got.Message)
	}
	if got.Fields != nil {
		t.Fatal("fields must be withheld when the message is not exact")
	}
	if got.Code != "ANSWER_NOT_FOUND" {
		t.Fatalf("code = %q, the code is always public", got.Code)
	}
}

func TestToView_CustomFallback(t *testing.T) {
	got := ToView(faults.UnexpectedError(nil), "something broke")
	if got.Message != "something broke" {
		t.Fatalf("message = %q, want custom fallback", got.Message)
	}
}

func TestToView_NonFault(t *testing.T) {
	got := ToView(errors.New("pq: connection refused"), "")
	want := apis.ErrorView{
		Code:    string(code.UnexpectedError),
		Message: DefaultFallback,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestToView_WrappedFault(t *testing.T) {
	inner := faults.MissingToken()
	err := fmt.Errorf("auth middleware: %w", inner)

	got := ToView(err, "")
	if got.Code != "MISSING_TOKEN" || got.Message != "missing access token" {
		t.Fatalf("wrapped fault not unwrapped: %+v", got)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"fault", faults.MissingToken(), http.StatusUnauthorized},
		{"overridden fault", faults.UnknownEntity(nil), http.StatusNotAcceptable},
		{"wrapped fault", fmt.Errorf("wrap: %w", faults.DataNotFound(nil)), http.StatusNotFound},
		{"non-fault", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.err); got != tt.want {
				t.Fatalf("StatusOf = %d, want %d", got, tt.want)
			}
		})
	}
}
