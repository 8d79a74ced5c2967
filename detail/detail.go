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

package detail

import (
	"fmt"
	"sort"
	"strings"
)

// Detail is the closed input shape for fault message formatting.
//
// Exactly three forms exist:
//
//   - Text: a single value, rendered verbatim;
//   - Fields: a key/value mapping, rendered as "key : value" pairs joined
//     by ", " with keys in sorted order, so the output is deterministic;
//   - List: a sequence of Text or Fields elements, each rendered by its own
//     rule and joined by " | ".
//
// The render method is unexported, which seals the sum: no shape outside
// this package can satisfy the interface. Render is therefore total — there
// is no "unsupported shape" branch at formatting time. Shape errors exist
// only in From, where loosely-typed input enters.
type Detail interface {
	render() string
}

const (
	// pairSep joins "key : value" pairs inside a Fields rendering.
	pairSep = ", "
	// listSep joins the elements of a List rendering.
	listSep = " | "
)

// Text is a single value embedded into the message verbatim.
type Text string

func (t Text) render() string { return string(t) }

// Fields is a key/value mapping. Key order in the map is irrelevant for
// semantics; rendering always sorts keys so the same mapping produces the
// same string.
type Fields map[string]any

func (f Fields) render() string {
	if len(f) == 0 {
		return ""
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s : %v", k, f[k]))
	}
	return strings.Join(parts, pairSep)
}

// List is a sequence of details. Nil elements render as empty segments and
// are skipped.
type List []Detail

func (l List) render() string {
	parts := make([]string, 0, len(l))
	for _, d := range l {
		if d == nil {
			continue
		}
		parts = append(parts, d.render())
	}
	return strings.Join(parts, listSep)
}

// Render formats a detail deterministically. A nil detail renders as the
// empty string; everything else follows the per-shape rules above.
func Render(d Detail) string {
	if d == nil {
		return ""
	}
	return d.render()
}

// ErrUnsupportedShape is returned by From when a value is neither a text,
// a mapping, nor a list of those. It signals a programming error at the
// construction site, distinguishable from the domain fault being built —
// callers must not coerce it into one.
var ErrUnsupportedShape = fmt.Errorf("faults: unsupported detail shape")

// From converts loosely-typed input into a Detail.
//
// Accepted shapes:
//
//   - string                -> Text
//   - map[string]any        -> Fields
//   - map[string]string     -> Fields
//   - []any of the above    -> List
//   - Detail                -> returned as-is
//
// Anything else (including nil) fails with ErrUnsupportedShape wrapped with
// the offending type.
func From(v any) (Detail, error) {
	switch x := v.(type) {
	case Detail:
		return x, nil
	case string:
		return Text(x), nil
	case map[string]any:
		return Fields(x), nil
	case map[string]string:
		f := make(Fields, len(x))
		for k, val := range x {
			f[k] = val
		}
		return f, nil
	case []any:
		l := make(List, 0, len(x))
		for i, el := range x {
			d, err := From(el)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			if _, nested := d.(List); nested {
				return nil, fmt.Errorf("element %d: nested list: %w", i, ErrUnsupportedShape)
			}
			l = append(l, d)
		}
		return l, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, v)
	}
}
