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

package accel

// Int is the integer of the Accelerate Fortran ABI. Both the legacy and
// the (non-ILP64) $NEWLAPACK interfaces use 32-bit integers for dimensions,
// strides, pivots and the info status.
type Int = int32

// Routine pairs the two entry points of one BLAS/LAPACK symbol. F is the
// Go-level signature shared by both; Fn resolves which one a call should
// use based on the current generation.
//
// A Routine holds no state beyond the two function values: resolution is
// re-entrant and allocation free, and concurrent calls are safe once
// registration (normally done from init) has completed.
type Routine[F any] struct {
	// Name is the base symbol name, e.g. "dgesv". Used in panics only.
	Name string

	modern, legacy       F
	hasModern, hasLegacy bool
}

// Register installs both entry points at once.
func (r *Routine[F]) Register(modern, legacy F) {
	r.RegisterModern(modern)
	r.RegisterLegacy(legacy)
}

// RegisterModern installs the $NEWLAPACK entry point.
func (r *Routine[F]) RegisterModern(fn F) {
	r.modern = fn
	r.hasModern = true
}

// RegisterLegacy installs the classic entry point.
func (r *Routine[F]) RegisterLegacy(fn F) {
	r.legacy = fn
	r.hasLegacy = true
}

// Fn returns the entry point for the current generation. When the preferred
// branch is unregistered the other branch is used, so a backend that only
// provides one symbol set still serves every call. Fn panics if nothing is
// registered, which on darwin means the package was built without cgo.
func (r *Routine[F]) Fn() F {
	if CurrentGeneration() == GenerationNew {
		if r.hasModern {
			return r.modern
		}
		if r.hasLegacy {
			return r.legacy
		}
	} else {
		if r.hasLegacy {
			return r.legacy
		}
		if r.hasModern {
			return r.modern
		}
	}
	panic("accel: " + r.Name + ": no entry point registered (Accelerate requires cgo on darwin)")
}
