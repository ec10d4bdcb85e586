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

import (
	"testing"

	"github.com/ajroetker/go-accelerate/accel"
)

// The tests below swap the package routine registrations for counting
// stand-ins, so they exercise the dispatch path on any platform, with or
// without the Accelerate registrations present.

func TestDgesvDispatchesPerGeneration(t *testing.T) {
	saved := dgesv
	defer func() { dgesv = saved }()

	var modernCalls, legacyCalls int
	dgesv.Register(
		func(n, nrhs int32, a []float64, lda int32, ipiv []int32, b []float64, ldb int32) int32 {
			modernCalls++
			b[0] = 1.5
			return 0
		},
		func(n, nrhs int32, a []float64, lda int32, ipiv []int32, b []float64, ldb int32) int32 {
			legacyCalls++
			b[0] = -2.5
			return 7
		},
	)

	b := make([]float64, 2)
	ipiv := make([]int32, 2)

	restore := accel.ForceGeneration(accel.GenerationNew)
	info := Dgesv(2, 1, []float64{1, 0, 0, 1}, 2, ipiv, b, 2)
	restore()
	if info != 0 || b[0] != 1.5 {
		t.Errorf("modern Dgesv: info=%d b[0]=%v, want 0 and 1.5", info, b[0])
	}
	if modernCalls != 1 || legacyCalls != 0 {
		t.Errorf("modern Dgesv: calls=(%d,%d), want (1,0)", modernCalls, legacyCalls)
	}

	restore = accel.ForceGeneration(accel.GenerationLegacy)
	info = Dgesv(2, 1, []float64{1, 0, 0, 1}, 2, ipiv, b, 2)
	restore()
	if info != 7 || b[0] != -2.5 {
		t.Errorf("legacy Dgesv: info=%d b[0]=%v, want 7 and -2.5", info, b[0])
	}
	if modernCalls != 1 || legacyCalls != 1 {
		t.Errorf("legacy Dgesv: calls=(%d,%d), want (1,1)", modernCalls, legacyCalls)
	}
}

func TestSgeevPassesArgumentsUnchanged(t *testing.T) {
	saved := sgeev
	defer func() { sgeev = saved }()

	var got struct {
		jobvl, jobvr byte
		n, lda       int32
		lwork        int32
		a            []float32
	}
	sgeev.Register(
		func(jobvl, jobvr byte, n int32, a []float32, lda int32, wr, wi, vl []float32, ldvl int32, vr []float32, ldvr int32, work []float32, lwork int32) int32 {
			got.jobvl, got.jobvr = jobvl, jobvr
			got.n, got.lda, got.lwork = n, lda, lwork
			got.a = a
			return 0
		},
		func(jobvl, jobvr byte, n int32, a []float32, lda int32, wr, wi, vl []float32, ldvl int32, vr []float32, ldvr int32, work []float32, lwork int32) int32 {
			t.Error("legacy branch invoked")
			return -1
		},
	)

	restore := accel.ForceGeneration(accel.GenerationNew)
	defer restore()

	a := []float32{4, 1, 2, 3}
	wr := make([]float32, 2)
	wi := make([]float32, 2)
	work := make([]float32, 8)
	if info := Sgeev('N', 'V', 2, a, 2, wr, wi, nil, 1, make([]float32, 4), 2, work, 8); info != 0 {
		t.Fatalf("Sgeev info = %d, want 0", info)
	}
	if got.jobvl != 'N' || got.jobvr != 'V' {
		t.Errorf("flags = %c,%c, want N,V", got.jobvl, got.jobvr)
	}
	if got.n != 2 || got.lda != 2 || got.lwork != 8 {
		t.Errorf("dims = (%d,%d,%d), want (2,2,8)", got.n, got.lda, got.lwork)
	}
	if len(got.a) != 4 || &got.a[0] != &a[0] {
		t.Error("matrix slice was not passed through unchanged")
	}
}

func TestSgelsdRankOutParam(t *testing.T) {
	saved := sgelsd
	defer func() { sgelsd = saved }()

	sgelsd.Register(
		func(m, n, nrhs int32, a []float32, lda int32, b []float32, ldb int32, s []float32, rcond float32, rank *int32, work []float32, lwork int32, iwork []int32) int32 {
			*rank = 2
			return 0
		},
		func(m, n, nrhs int32, a []float32, lda int32, b []float32, ldb int32, s []float32, rcond float32, rank *int32, work []float32, lwork int32, iwork []int32) int32 {
			*rank = 2
			return 0
		},
	)

	var rank int32
	info := Sgelsd(3, 2, 1,
		make([]float32, 6), 3,
		make([]float32, 3), 3,
		make([]float32, 2), 1e-6, &rank,
		make([]float32, 32), 32, make([]int32, 16))
	if info != 0 {
		t.Fatalf("Sgelsd info = %d, want 0", info)
	}
	if rank != 2 {
		t.Errorf("rank = %d, want 2", rank)
	}
}

func TestZgeevFallsBackToLegacy(t *testing.T) {
	saved := zgeev
	defer func() { zgeev = saved }()

	zgeev = accel.Routine[func(jobvl, jobvr byte, n int32, a []complex128, lda int32, w, vl []complex128, ldvl int32, vr []complex128, ldvr int32, work []complex128, lwork int32, rwork []float64) int32]{Name: "zgeev"}

	var legacyCalls int
	zgeev.RegisterLegacy(func(jobvl, jobvr byte, n int32, a []complex128, lda int32, w, vl []complex128, ldvl int32, vr []complex128, ldvr int32, work []complex128, lwork int32, rwork []float64) int32 {
		legacyCalls++
		return 0
	})

	// The preferred modern branch is unregistered; dispatch must fall
	// back rather than fail.
	restore := accel.ForceGeneration(accel.GenerationNew)
	defer restore()

	if info := Zgeev('N', 'N', 1, make([]complex128, 1), 1, make([]complex128, 1), nil, 1, nil, 1, make([]complex128, 2), 2, make([]float64, 2)); info != 0 {
		t.Fatalf("Zgeev info = %d, want 0", info)
	}
	if legacyCalls != 1 {
		t.Errorf("legacy calls = %d, want 1", legacyCalls)
	}
}

func TestDpotrfDeterministicAcrossCalls(t *testing.T) {
	saved := dpotrf
	defer func() { dpotrf = saved }()

	dpotrf.Register(
		func(uplo byte, n int32, a []float64, lda int32) int32 { return 1 },
		func(uplo byte, n int32, a []float64, lda int32) int32 { return 2 },
	)

	restore := accel.ForceGeneration(accel.GenerationLegacy)
	defer restore()

	for i := 0; i < 50; i++ {
		if info := Dpotrf('U', 1, make([]float64, 1), 1); info != 2 {
			t.Fatalf("call %d: info = %d, want 2", i, info)
		}
	}
}
