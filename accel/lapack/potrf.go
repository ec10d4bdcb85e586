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
	spotrf accel.Routine[func(uplo byte, n int32, a []float32, lda int32) int32]
	dpotrf accel.Routine[func(uplo byte, n int32, a []float64, lda int32) int32]
	cpotrf accel.Routine[func(uplo byte, n int32, a []complex64, lda int32) int32]
	zpotrf accel.Routine[func(uplo byte, n int32, a []complex128, lda int32) int32]

	spotrs accel.Routine[func(uplo byte, n, nrhs int32, a []float32, lda int32, b []float32, ldb int32) int32]
	dpotrs accel.Routine[func(uplo byte, n, nrhs int32, a []float64, lda int32, b []float64, ldb int32) int32]
	cpotrs accel.Routine[func(uplo byte, n, nrhs int32, a []complex64, lda int32, b []complex64, ldb int32) int32]
	zpotrs accel.Routine[func(uplo byte, n, nrhs int32, a []complex128, lda int32, b []complex128, ldb int32) int32]

	spotri accel.Routine[func(uplo byte, n int32, a []float32, lda int32) int32]
	dpotri accel.Routine[func(uplo byte, n int32, a []float64, lda int32) int32]
	cpotri accel.Routine[func(uplo byte, n int32, a []complex64, lda int32) int32]
	zpotri accel.Routine[func(uplo byte, n int32, a []complex128, lda int32) int32]
)

func init() {
	spotrf.Name = "spotrf"
	dpotrf.Name = "dpotrf"
	cpotrf.Name = "cpotrf"
	zpotrf.Name = "zpotrf"
	spotrs.Name = "spotrs"
	dpotrs.Name = "dpotrs"
	cpotrs.Name = "cpotrs"
	zpotrs.Name = "zpotrs"
	spotri.Name = "spotri"
	dpotri.Name = "dpotri"
	cpotri.Name = "cpotri"
	zpotri.Name = "zpotri"
}

// Spotrf computes the Cholesky factorization of a symmetric positive
// definite matrix, overwriting the uplo triangle of a with the factor.
// A positive info i means the leading minor of order i is not positive
// definite.
func Spotrf(uplo byte, n int32, a []float32, lda int32) int32 {
	return spotrf.Fn()(uplo, n, a, lda)
}

// Dpotrf is the float64 variant of Spotrf.
func Dpotrf(uplo byte, n int32, a []float64, lda int32) int32 {
	return dpotrf.Fn()(uplo, n, a, lda)
}

// Cpotrf is the complex64 (Hermitian) variant of Spotrf.
func Cpotrf(uplo byte, n int32, a []complex64, lda int32) int32 {
	return cpotrf.Fn()(uplo, n, a, lda)
}

// Zpotrf is the complex128 (Hermitian) variant of Spotrf.
func Zpotrf(uplo byte, n int32, a []complex128, lda int32) int32 {
	return zpotrf.Fn()(uplo, n, a, lda)
}

// Spotrs solves a·x = b given the Cholesky factor computed by Spotrf,
// overwriting b with the solution.
func Spotrs(uplo byte, n, nrhs int32, a []float32, lda int32, b []float32, ldb int32) int32 {
	return spotrs.Fn()(uplo, n, nrhs, a, lda, b, ldb)
}

// Dpotrs is the float64 variant of Spotrs.
func Dpotrs(uplo byte, n, nrhs int32, a []float64, lda int32, b []float64, ldb int32) int32 {
	return dpotrs.Fn()(uplo, n, nrhs, a, lda, b, ldb)
}

// Cpotrs is the complex64 variant of Spotrs.
func Cpotrs(uplo byte, n, nrhs int32, a []complex64, lda int32, b []complex64, ldb int32) int32 {
	return cpotrs.Fn()(uplo, n, nrhs, a, lda, b, ldb)
}

// Zpotrs is the complex128 variant of Spotrs.
func Zpotrs(uplo byte, n, nrhs int32, a []complex128, lda int32, b []complex128, ldb int32) int32 {
	return zpotrs.Fn()(uplo, n, nrhs, a, lda, b, ldb)
}

// Spotri computes the inverse of a matrix from its Cholesky factor,
// overwriting the uplo triangle of a.
func Spotri(uplo byte, n int32, a []float32, lda int32) int32 {
	return spotri.Fn()(uplo, n, a, lda)
}

// Dpotri is the float64 variant of Spotri.
func Dpotri(uplo byte, n int32, a []float64, lda int32) int32 {
	return dpotri.Fn()(uplo, n, a, lda)
}

// Cpotri is the complex64 variant of Spotri.
func Cpotri(uplo byte, n int32, a []complex64, lda int32) int32 {
	return cpotri.Fn()(uplo, n, a, lda)
}

// Zpotri is the complex128 variant of Spotri.
func Zpotri(uplo byte, n int32, a []complex128, lda int32) int32 {
	return zpotri.Fn()(uplo, n, a, lda)
}
