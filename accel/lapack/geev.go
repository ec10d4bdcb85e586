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
	sgeev accel.Routine[func(jobvl, jobvr byte, n int32, a []float32, lda int32, wr, wi, vl []float32, ldvl int32, vr []float32, ldvr int32, work []float32, lwork int32) int32]
	dgeev accel.Routine[func(jobvl, jobvr byte, n int32, a []float64, lda int32, wr, wi, vl []float64, ldvl int32, vr []float64, ldvr int32, work []float64, lwork int32) int32]
	cgeev accel.Routine[func(jobvl, jobvr byte, n int32, a []complex64, lda int32, w, vl []complex64, ldvl int32, vr []complex64, ldvr int32, work []complex64, lwork int32, rwork []float32) int32]
	zgeev accel.Routine[func(jobvl, jobvr byte, n int32, a []complex128, lda int32, w, vl []complex128, ldvl int32, vr []complex128, ldvr int32, work []complex128, lwork int32, rwork []float64) int32]
)

func init() {
	sgeev.Name = "sgeev"
	dgeev.Name = "dgeev"
	cgeev.Name = "cgeev"
	zgeev.Name = "zgeev"
}

// Sgeev computes the eigenvalues and, optionally, the left and/or right
// eigenvectors of a general n×n real matrix. jobvl and jobvr are 'V' to
// compute the corresponding eigenvectors or 'N' to skip them. On return
// wr and wi hold the real and imaginary parts of the eigenvalues, and a is
// overwritten. Pass lwork=-1 for a workspace size query into work[0].
func Sgeev(jobvl, jobvr byte, n int32, a []float32, lda int32, wr, wi, vl []float32, ldvl int32, vr []float32, ldvr int32, work []float32, lwork int32) int32 {
	return sgeev.Fn()(jobvl, jobvr, n, a, lda, wr, wi, vl, ldvl, vr, ldvr, work, lwork)
}

// Dgeev is the float64 variant of Sgeev.
func Dgeev(jobvl, jobvr byte, n int32, a []float64, lda int32, wr, wi, vl []float64, ldvl int32, vr []float64, ldvr int32, work []float64, lwork int32) int32 {
	return dgeev.Fn()(jobvl, jobvr, n, a, lda, wr, wi, vl, ldvl, vr, ldvr, work, lwork)
}

// Cgeev computes the eigen-decomposition of a general n×n complex64 matrix.
// Eigenvalues are returned in w; rwork must hold at least 2n elements.
func Cgeev(jobvl, jobvr byte, n int32, a []complex64, lda int32, w, vl []complex64, ldvl int32, vr []complex64, ldvr int32, work []complex64, lwork int32, rwork []float32) int32 {
	return cgeev.Fn()(jobvl, jobvr, n, a, lda, w, vl, ldvl, vr, ldvr, work, lwork, rwork)
}

// Zgeev is the complex128 variant of Cgeev.
func Zgeev(jobvl, jobvr byte, n int32, a []complex128, lda int32, w, vl []complex128, ldvl int32, vr []complex128, ldvr int32, work []complex128, lwork int32, rwork []float64) int32 {
	return zgeev.Fn()(jobvl, jobvr, n, a, lda, w, vl, ldvl, vr, ldvr, work, lwork, rwork)
}
