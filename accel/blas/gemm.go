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

package blas

import "github.com/ajroetker/go-accelerate/accel"

var (
	sgemm accel.Routine[func(transa, transb byte, m, n, k int32, alpha float32, a []float32, lda int32, b []float32, ldb int32, beta float32, c []float32, ldc int32)]
	dgemm accel.Routine[func(transa, transb byte, m, n, k int32, alpha float64, a []float64, lda int32, b []float64, ldb int32, beta float64, c []float64, ldc int32)]
	cgemm accel.Routine[func(transa, transb byte, m, n, k int32, alpha complex64, a []complex64, lda int32, b []complex64, ldb int32, beta complex64, c []complex64, ldc int32)]
	zgemm accel.Routine[func(transa, transb byte, m, n, k int32, alpha complex128, a []complex128, lda int32, b []complex128, ldb int32, beta complex128, c []complex128, ldc int32)]
)

func init() {
	sgemm.Name = "sgemm"
	dgemm.Name = "dgemm"
	cgemm.Name = "cgemm"
	zgemm.Name = "zgemm"
}

// Sgemm computes c = alpha·op(a)·op(b) + beta·c, where op is identity,
// transpose or conjugate transpose per the 'N'/'T'/'C' flags transa and
// transb. Matrices are column-major; op(a) is m×k, op(b) is k×n, c is m×n.
func Sgemm(transa, transb byte, m, n, k int32, alpha float32, a []float32, lda int32, b []float32, ldb int32, beta float32, c []float32, ldc int32) {
	sgemm.Fn()(transa, transb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// Dgemm is the float64 variant of Sgemm.
func Dgemm(transa, transb byte, m, n, k int32, alpha float64, a []float64, lda int32, b []float64, ldb int32, beta float64, c []float64, ldc int32) {
	dgemm.Fn()(transa, transb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// Cgemm is the complex64 variant of Sgemm.
func Cgemm(transa, transb byte, m, n, k int32, alpha complex64, a []complex64, lda int32, b []complex64, ldb int32, beta complex64, c []complex64, ldc int32) {
	cgemm.Fn()(transa, transb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// Zgemm is the complex128 variant of Sgemm.
func Zgemm(transa, transb byte, m, n, k int32, alpha complex128, a []complex128, lda int32, b []complex128, ldb int32, beta complex128, c []complex128, ldc int32) {
	zgemm.Fn()(transa, transb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}
