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

// Package accel selects between the two BLAS/LAPACK symbol sets exported by
// Apple's Accelerate framework.
//
// macOS 13.3 introduced a new LAPACK interface whose symbols carry the
// $NEWLAPACK suffix, while the pre-13.3 symbols (LAPACK 3.2.1 era) remain
// available under their classic names. Both sets implement the same
// mathematical contract. This package holds the process-wide capability
// state ("is the new interface available on this host?") and the generic
// dispatch primitive used by the accel/blas and accel/lapack packages to
// route each call to exactly one of the two entry points.
//
// The capability is detected once at init from the kern.osproductversion
// sysctl and never changes for the lifetime of the process. On non-darwin
// platforms, and whenever the version cannot be determined, dispatch
// defaults to the legacy symbol set.
//
// Setting ACCEL_NO_NEWLAPACK=1 forces the legacy symbols regardless of the
// host version.
package accel
