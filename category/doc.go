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

// Package category defines the three fault categories — technical,
// functional, generic — and the construction policies attached to them.
//
// A category is a tag on the fault value, not a distinct type: the policies
// (diagnostic-snapshot capture, default message exposure, status-override
// permission) are resolved by a table lookup keyed on the tag. The table is
// closed and read-only after definition.
package category
