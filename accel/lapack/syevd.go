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
	ssyevd accel.Routine[func(jobz, uplo byte, n int32, a []float32, lda int32, w, work []float32, lwork int32, iwork []int32, liwork int32) int32]
	dsyevd accel.Routine[func(jobz, uplo byte, n int32, a []float64, lda int32, w, work []float64, lwork int32, iwork []int32, liwork int32) int32]
	cheevd accel.Routine[func(jobz, uplo byte, n int32, a []complex64, lda int32, w []float32, work []complex64, lwork int32, rwork []float32, lrwork int32, iwork []int32, liwork int32) int32]
	zheevd accel.Routine[func(jobz, uplo byte, n int32, a []complex128, lda int32, w []float64, work []complex128, lwork int32, rwork []float64, lrwork int32, iwork []int32, liwork int32) int32]
)

func init() {
	ssyevd.Name = "ssyevd"
	dsyevd.Name = "dsyevd"
	cheevd.Name = "cheevd"
	zheevd.Name = "zheevd"
}

// Ssyevd computes all eigenvalues and, if jobz='V', eigenvectors of a real
// symmetric n×n matrix using the divide-and-conquer algorithm. uplo selects
// which triangle of a is referenced ('U' or 'L'). Eigenvalues land in w in
// ascending order; with jobz='V', a is overwritten with the orthonormal
// eigenvectors. lwork=-1 and liwork=-1 perform a workspace query.
func Ssyevd(jobz, uplo byte, n int32, a []float32, lda int32, w, work []float32, lwork int32, iwork []int32, liwork int32) int32 {
	return ssyevd.Fn()(jobz, uplo, n, a, lda, w, work, lwork, iwork, liwork)
}

// Dsyevd is the float64 variant of Ssyevd.
func Dsyevd(jobz, uplo byte, n int32, a []float64, lda int32, w, work []float64, lwork int32, iwork []int32, liwork int32) int32 {
	return dsyevd.Fn()(jobz, uplo, n, a, lda, w, work, lwork, iwork, liwork)
}

// Cheevd computes eigenvalues and optionally eigenvectors of a complex64
// Hermitian matrix (divide-and-conquer). Eigenvalues are real, returned in w.
func Cheevd(jobz, uplo byte, n int32, a []complex64, lda int32, w []float32, work []complex64, lwork int32, rwork []float32, lrwork int32, iwork []int32, liwork int32) int32 {
	return cheevd.Fn()(jobz, uplo, n, a, lda, w, work, lwork, rwork, lrwork, iwork, liwork)
}

// Zheevd is the complex128 variant of Cheevd.
func Zheevd(jobz, uplo byte, n int32, a []complex128, lda int32, w []float64, work []complex128, lwork int32, rwork []float64, lrwork int32, iwork []int32, liwork int32) int32 {
	return zheevd.Fn()(jobz, uplo, n, a, lda, w, work, lwork, rwork, lrwork, iwork, liwork)
}
