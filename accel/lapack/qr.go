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

package lapack

import "github.com/ajroetker/go-accelerate/accel"

var (
	dgeqrf accel.Routine[func(m, n int32, a []float64, lda int32, tau, work []float64, lwork int32) int32]
	zgeqrf accel.Routine[func(m, n int32, a []complex128, lda int32, tau, work []complex128, lwork int32) int32]
	dorgqr accel.Routine[func(m, n, k int32, a []float64, lda int32, tau, work []float64, lwork int32) int32]
	zungqr accel.Routine[func(m, n, k int32, a []complex128, lda int32, tau, work []complex128, lwork int32) int32]
)

func init() {
	dgeqrf.Name = "dgeqrf"
	zgeqrf.Name = "zgeqrf"
	dorgqr.Name = "dorgqr"
	zungqr.Name = "zungqr"
}

// Dgeqrf computes the QR factorization of an m×n real matrix. On return the
// upper triangle of a contains R and the lower triangle, together with tau,
// encodes the elementary reflectors of Q. lwork=-1 queries the workspace.
func Dgeqrf(m, n int32, a []float64, lda int32, tau, work []float64, lwork int32) int32 {
	return dgeqrf.Fn()(m, n, a, lda, tau, work, lwork)
}

// Zgeqrf is the complex128 variant of Dgeqrf.
func Zgeqrf(m, n int32, a []complex128, lda int32, tau, work []complex128, lwork int32) int32 {
	return zgeqrf.Fn()(m, n, a, lda, tau, work, lwork)
}

// Dorgqr expands the first k elementary reflectors produced by Dgeqrf into
// the explicit m×n orthogonal factor Q, overwriting a.
func Dorgqr(m, n, k int32, a []float64, lda int32, tau, work []float64, lwork int32) int32 {
	return dorgqr.Fn()(m, n, k, a, lda, tau, work, lwork)
}

// Zungqr is the complex128 (unitary) variant of Dorgqr.
func Zungqr(m, n, k int32, a []complex128, lda int32, tau, work []complex128, lwork int32) int32 {
	return zungqr.Fn()(m, n, k, a, lda, tau, work, lwork)
}
