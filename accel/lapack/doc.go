// Copyright 2025 go-accelerate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lapack exposes the LAPACK routines of Apple's Accelerate
// framework with runtime selection between the macOS 13.3+ $NEWLAPACK
// symbols and the legacy pre-13.3 symbols.
//
// Every function forwards its arguments unchanged to exactly one of the two
// native entry points and returns the LAPACK info status untranslated:
// zero on success, -i when argument i is invalid, positive for routine
// specific failures (singular factor, non-convergence). No validation is
// performed here; buffer sizes, workspace sizes (including lwork=-1
// workspace queries) and dimension constraints follow the LAPACK reference
// documentation for each routine.
//
// Matrices are column-major with an explicit leading dimension, as in
// Fortran. Factorization routines overwrite their input buffers in place.
//
// The native entry points are registered by z_accelerate_darwin.go when
// built with cgo on darwin. On other platforms the routine tables are empty
// and calls panic unless the embedding program registers its own backend.
package lapack

//go:generate go run ../../cmd/accelgen -pkg lapack -output z_accelerate_darwin.go
