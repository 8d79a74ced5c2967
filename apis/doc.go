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

// Package apis defines the public Go-level contracts for fault handling.
//
// The goal of this package is to provide *small, composable* interfaces that
// transport layers can depend on without importing the concrete fault
// implementation. HTTP frameworks, gRPC interceptors, and middleware target
// these interfaces; the concrete fault type in the root package implements
// them.
//
// This package must remain lightweight and should not introduce heavy
// dependencies, so it only contains interfaces and one small view type.
package apis
