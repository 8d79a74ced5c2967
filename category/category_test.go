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

package category

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Category
		wantErr bool
	}{
		{"technical", "technical", Technical, false},
		{"functional upper", "FUNCTIONAL", Functional, false},
		{"generic padded", "  generic  ", Generic, false},
		{"unknown", "fatal", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
				}
				if !errors.Is(err, ErrCategoryInvalid) {
					t.Fatalf("Parse(%q) error = %v, want ErrCategoryInvalid", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPolicies(t *testing.T) {
	tests := []struct {
		cat      Category
		snapshot bool
		exact    bool
		override bool
	}{
		{Technical, true, true, false},
		{Functional, false, true, false},
		{Generic, false, false, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.cat), func(t *testing.T) {
			if got := tt.cat.CapturesSnapshot(); got != tt.snapshot {
				t.Fatalf("CapturesSnapshot() = %v, want %v", got, tt.snapshot)
			}
			if got := tt.cat.DefaultExact(); got != tt.exact {
				t.Fatalf("DefaultExact() = %v, want %v", got, tt.exact)
			}
			if got := tt.cat.AllowsOverride(); got != tt.override {
				t.Fatalf("AllowsOverride() = %v, want %v", got, tt.override)
			}
		})
	}
}

func TestPolicies_UnknownCategoryIsInert(t *testing.T) {
	c := Category("mystery")
	if c.CapturesSnapshot() || c.DefaultExact() || c.AllowsOverride() {
		t.Fatalf("unknown category must carry the zero policy")
	}
	if err := Validate(c); err == nil {
		t.Fatalf("Validate(unknown) expected error")
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 3 {
		t.Fatalf("All() returned %d categories, want 3", len(all))
	}
	for _, c := range all {
		if err := Validate(c); err != nil {
			t.Fatalf("All() contains invalid category %q", c)
		}
	}
}
