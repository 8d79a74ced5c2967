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

// Package code defines the closed set of fault wire codes and their HTTP
// status registry.
//
// A "code" is the stable, machine-readable identifier of a fault kind, such
// as "DATA_NOT_FOUND", "MISSING_TOKEN" or "VALIDATION_ERROR". Codes are meant
// to be:
//
//   - short and stable;
//   - uppercased, underscore-separated;
//   - suitable for use in JSON payloads and for client-side dispatch.
//
// Two concerns live side by side and are deliberately kept in two tables:
// codes.go holds the business identity (the names), registry.go holds the
// wire mapping (code to HTTP status). The registry is total, built at
// definition time, and read-only afterwards — safe for concurrent reads
// without locking.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every fault MUST carry a
// non-empty code.
package code
