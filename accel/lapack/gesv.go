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
	sgesv accel.Routine[func(n, nrhs int32, a []float32, lda int32, ipiv []int32, b []float32, ldb int32) int32]
	dgesv accel.Routine[func(n, nrhs int32, a []float64, lda int32, ipiv []int32, b []float64, ldb int32) int32]
	cgesv accel.Routine[func(n, nrhs int32, a []complex64, lda int32, ipiv []int32, b []complex64, ldb int32) int32]
	zgesv accel.Routine[func(n, nrhs int32, a []complex128, lda int32, ipiv []int32, b []complex128, ldb int32) int32]
)

func init() {
	sgesv.Name = "sgesv"
	dgesv.Name = "dgesv"
	cgesv.Name = "cgesv"
	zgesv.Name = "zgesv"
}

// Sgesv solves the n×n real system a·x = b with nrhs right-hand sides via
// LU factorization with partial pivoting. On return a holds the L and U
// factors, ipiv the pivot indices, and b is overwritten with the solution.
// A positive info i means U(i,i) is exactly zero and no solution exists.
func Sgesv(n, nrhs int32, a []float32, lda int32, ipiv []int32, b []float32, ldb int32) int32 {
	return sgesv.Fn()(n, nrhs, a, lda, ipiv, b, ldb)
}

// Dgesv is the float64 variant of Sgesv.
func Dgesv(n, nrhs int32, a []float64, lda int32, ipiv []int32, b []float64, ldb int32) int32 {
	return dgesv.Fn()(n, nrhs, a, lda, ipiv, b, ldb)
}

// Cgesv is the complex64 variant of Sgesv.
func Cgesv(n, nrhs int32, a []complex64, lda int32, ipiv []int32, b []complex64, ldb int32) int32 {
	return cgesv.Fn()(n, nrhs, a, lda, ipiv, b, ldb)
}

// Zgesv is the complex128 variant of Sgesv.
func Zgesv(n, nrhs int32, a []complex128, lda int32, ipiv []int32, b []complex128, ldb int32) int32 {
	return zgesv.Fn()(n, nrhs, a, lda, ipiv, b, ldb)
}
