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
	sgetrf accel.Routine[func(m, n int32, a []float32, lda int32, ipiv []int32) int32]
	dgetrf accel.Routine[func(m, n int32, a []float64, lda int32, ipiv []int32) int32]
	cgetrf accel.Routine[func(m, n int32, a []complex64, lda int32, ipiv []int32) int32]
	zgetrf accel.Routine[func(m, n int32, a []complex128, lda int32, ipiv []int32) int32]
)

func init() {
	sgetrf.Name = "sgetrf"
	dgetrf.Name = "dgetrf"
	cgetrf.Name = "cgetrf"
	zgetrf.Name = "zgetrf"
}

// Sgetrf computes the LU factorization of an m×n real matrix with partial
// pivoting, overwriting a with the factors. A positive info i flags an
// exactly singular U(i,i); the factorization still completes.
func Sgetrf(m, n int32, a []float32, lda int32, ipiv []int32) int32 {
	return sgetrf.Fn()(m, n, a, lda, ipiv)
}

// Dgetrf is the float64 variant of Sgetrf.
func Dgetrf(m, n int32, a []float64, lda int32, ipiv []int32) int32 {
	return dgetrf.Fn()(m, n, a, lda, ipiv)
}

// Cgetrf is the complex64 variant of Sgetrf.
func Cgetrf(m, n int32, a []complex64, lda int32, ipiv []int32) int32 {
	return cgetrf.Fn()(m, n, a, lda, ipiv)
}

// Zgetrf is the complex128 variant of Sgetrf.
func Zgetrf(m, n int32, a []complex128, lda int32, ipiv []int32) int32 {
	return zgetrf.Fn()(m, n, a, lda, ipiv)
}
