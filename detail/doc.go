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

// Package detail defines the sealed input shapes for fault messages and
// their deterministic rendering.
//
// Fault constructors accept a Detail rather than an untyped value, so the
// formatter is a total function over three explicit shapes (Text, Fields,
// List) instead of runtime type inspection. From exists for boundaries that
// still receive loosely-typed input; it is the only place a shape error can
// occur.
package detail
