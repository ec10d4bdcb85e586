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
	sgesdd accel.Routine[func(jobz byte, m, n int32, a []float32, lda int32, s, u []float32, ldu int32, vt []float32, ldvt int32, work []float32, lwork int32, iwork []int32) int32]
	dgesdd accel.Routine[func(jobz byte, m, n int32, a []float64, lda int32, s, u []float64, ldu int32, vt []float64, ldvt int32, work []float64, lwork int32, iwork []int32) int32]
	cgesdd accel.Routine[func(jobz byte, m, n int32, a []complex64, lda int32, s []float32, u []complex64, ldu int32, vt []complex64, ldvt int32, work []complex64, lwork int32, rwork []float32, iwork []int32) int32]
	zgesdd accel.Routine[func(jobz byte, m, n int32, a []complex128, lda int32, s []float64, u []complex128, ldu int32, vt []complex128, ldvt int32, work []complex128, lwork int32, rwork []float64, iwork []int32) int32]
)

func init() {
	sgesdd.Name = "sgesdd"
	dgesdd.Name = "dgesdd"
	cgesdd.Name = "cgesdd"
	zgesdd.Name = "zgesdd"
}

// Sgesdd computes the singular value decomposition of an m×n real matrix
// using the divide-and-conquer algorithm. jobz controls which singular
// vectors are formed ('A', 'S', 'O' or 'N'). Singular values land in s in
// descending order; u and vt receive the left and right singular vectors
// per jobz. A positive info means the algorithm did not converge.
func Sgesdd(jobz byte, m, n int32, a []float32, lda int32, s, u []float32, ldu int32, vt []float32, ldvt int32, work []float32, lwork int32, iwork []int32) int32 {
	return sgesdd.Fn()(jobz, m, n, a, lda, s, u, ldu, vt, ldvt, work, lwork, iwork)
}

// Dgesdd is the float64 variant of Sgesdd.
func Dgesdd(jobz byte, m, n int32, a []float64, lda int32, s, u []float64, ldu int32, vt []float64, ldvt int32, work []float64, lwork int32, iwork []int32) int32 {
	return dgesdd.Fn()(jobz, m, n, a, lda, s, u, ldu, vt, ldvt, work, lwork, iwork)
}

// Cgesdd is the complex64 variant; singular values remain real.
func Cgesdd(jobz byte, m, n int32, a []complex64, lda int32, s []float32, u []complex64, ldu int32, vt []complex64, ldvt int32, work []complex64, lwork int32, rwork []float32, iwork []int32) int32 {
	return cgesdd.Fn()(jobz, m, n, a, lda, s, u, ldu, vt, ldvt, work, lwork, rwork, iwork)
}

// Zgesdd is the complex128 variant of Cgesdd.
func Zgesdd(jobz byte, m, n int32, a []complex128, lda int32, s []float64, u []complex128, ldu int32, vt []complex128, ldvt int32, work []complex128, lwork int32, rwork []float64, iwork []int32) int32 {
	return zgesdd.Fn()(jobz, m, n, a, lda, s, u, ldu, vt, ldvt, work, lwork, rwork, iwork)
}
