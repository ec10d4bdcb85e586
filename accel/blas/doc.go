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

// Package blas exposes the BLAS routines of Apple's Accelerate framework
// with runtime selection between the macOS 13.3+ $NEWLAPACK symbols and
// the legacy pre-13.3 symbols.
//
// The Fortran BLAS calling conventions apply: vectors carry an increment
// stride (incx, incy), matrices are column-major with a leading dimension,
// and transpose flags are the characters 'N', 'T' or 'C'. Arguments are
// forwarded unchanged to the selected native entry point; nothing is
// validated or copied here.
//
// The native entry points are registered by z_accelerate_darwin.go when
// built with cgo on darwin.
package blas

//go:generate go run ../../cmd/accelgen -pkg blas -output z_accelerate_darwin.go
