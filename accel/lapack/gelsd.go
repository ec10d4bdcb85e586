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
	sgelsd accel.Routine[func(m, n, nrhs int32, a []float32, lda int32, b []float32, ldb int32, s []float32, rcond float32, rank *int32, work []float32, lwork int32, iwork []int32) int32]
	dgelsd accel.Routine[func(m, n, nrhs int32, a []float64, lda int32, b []float64, ldb int32, s []float64, rcond float64, rank *int32, work []float64, lwork int32, iwork []int32) int32]
	cgelsd accel.Routine[func(m, n, nrhs int32, a []complex64, lda int32, b []complex64, ldb int32, s []float32, rcond float32, rank *int32, work []complex64, lwork int32, rwork []float32, iwork []int32) int32]
	zgelsd accel.Routine[func(m, n, nrhs int32, a []complex128, lda int32, b []complex128, ldb int32, s []float64, rcond float64, rank *int32, work []complex128, lwork int32, rwork []float64, iwork []int32) int32]
)

func init() {
	sgelsd.Name = "sgelsd"
	dgelsd.Name = "dgelsd"
	cgelsd.Name = "cgelsd"
	zgelsd.Name = "zgelsd"
}

// Sgelsd computes the minimum-norm least-squares solution of an
// overdetermined or underdetermined real system using the SVD
// (divide-and-conquer). On return b is overwritten with the solution, s
// holds the singular values of a, and *rank the effective rank of a with
// respect to rcond. lwork=-1 performs a workspace query.
func Sgelsd(m, n, nrhs int32, a []float32, lda int32, b []float32, ldb int32, s []float32, rcond float32, rank *int32, work []float32, lwork int32, iwork []int32) int32 {
	return sgelsd.Fn()(m, n, nrhs, a, lda, b, ldb, s, rcond, rank, work, lwork, iwork)
}

// Dgelsd is the float64 variant of Sgelsd.
func Dgelsd(m, n, nrhs int32, a []float64, lda int32, b []float64, ldb int32, s []float64, rcond float64, rank *int32, work []float64, lwork int32, iwork []int32) int32 {
	return dgelsd.Fn()(m, n, nrhs, a, lda, b, ldb, s, rcond, rank, work, lwork, iwork)
}

// Cgelsd is the complex64 variant; singular values are real (s, rwork).
func Cgelsd(m, n, nrhs int32, a []complex64, lda int32, b []complex64, ldb int32, s []float32, rcond float32, rank *int32, work []complex64, lwork int32, rwork []float32, iwork []int32) int32 {
	return cgelsd.Fn()(m, n, nrhs, a, lda, b, ldb, s, rcond, rank, work, lwork, rwork, iwork)
}

// Zgelsd is the complex128 variant of Cgelsd.
func Zgelsd(m, n, nrhs int32, a []complex128, lda int32, b []complex128, ldb int32, s []float64, rcond float64, rank *int32, work []complex128, lwork int32, rwork []float64, iwork []int32) int32 {
	return zgelsd.Fn()(m, n, nrhs, a, lda, b, ldb, s, rcond, rank, work, lwork, rwork, iwork)
}
