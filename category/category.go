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
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Category is the discriminator tag that selects a fault's construction
// policy. There are exactly three categories; the set is closed.
//
// The category decides two things at construction time:
//
//   - whether a diagnostic snapshot of the failure site is captured;
//   - whether the fault's message is exposable to the caller verbatim by
//     default, or must be replaced with a generic fallback at the boundary.
//
// It also decides whether the HTTP status derived from the wire code may be
// overridden explicitly (Generic only).
type Category string

const (
	// Technical marks infrastructure and internal faults: initialization,
	// execution, storage, upstream APIs, network. A diagnostic snapshot is
	// always captured, and the message is treated as operational text that is
	// safe to show (the snapshot itself never crosses the boundary).
	Technical Category = "technical"

	// Functional marks business-rule faults: validation, missing data,
	// denied access. No snapshot is captured; whether the message is shown
	// verbatim is decided per fault kind.
	Functional Category = "functional"

	// Generic marks catch-all and entity-less faults. No snapshot is
	// captured, the message is hidden behind the fallback by default, and
	// the derived HTTP status may be explicitly overridden.
	Generic Category = "generic"
)

// policy bundles the construction rules attached to one category.
//
// Policies are resolved by table lookup on the tag, not by dispatch on
// distinct types: there is one fault type, and the category field selects
// the row.
type policy struct {
	// snapshot: capture a diagnostic snapshot of the failure site.
	snapshot bool
	// exact: default value of the exposure flag — may the internal message
	// be shown to the caller verbatim.
	exact bool
	// override: an explicit HTTP status override is honored at construction.
	override bool
}

// policies is the closed policy table. Built at definition time, read-only
// afterwards.
var policies = map[Category]policy{
	Technical:  {snapshot: true, exact: true, override: false},
	Functional: {snapshot: false, exact: true, override: false},
	Generic:    {snapshot: false, exact: false, override: true},
}

// ErrCategoryInvalid is returned when a value is not one of the three
// registered categories.
var ErrCategoryInvalid = errors.New("faults: invalid category")

// Ensure Category implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// Parse normalizes and validates a category label.
func Parse(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if err := Validate(c); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks that the category is one of the three registered values.
func Validate(c Category) error {
	if _, ok := policies[c]; !ok {
		return ErrCategoryInvalid
	}
	return nil
}

// All returns the registered categories in a fixed order.
func All() []Category {
	return []Category{Technical, Functional, Generic}
}

// CapturesSnapshot reports whether faults of this category capture a
// diagnostic snapshot at construction. Unknown categories capture nothing.
func (c Category) CapturesSnapshot() bool {
	return policies[c].snapshot
}

// DefaultExact reports the default value of the exposure flag for this
// category. Individual fault kinds may still choose the other value where
// the category allows it.
func (c Category) DefaultExact() bool {
	return policies[c].exact
}

// AllowsOverride reports whether an explicit HTTP status override is honored
// for this category. Only Generic faults may override the registry mapping.
func (c Category) AllowsOverride() bool {
	return policies[c].override
}

// String returns the canonical lowercase label.
func (c Category) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
