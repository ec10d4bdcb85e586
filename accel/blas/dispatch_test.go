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

import (
	"testing"

	"github.com/ajroetker/go-accelerate/accel"
)

func TestDdotDispatchesPerGeneration(t *testing.T) {
	saved := ddot
	defer func() { ddot = saved }()

	var modernCalls, legacyCalls int
	ddot.Register(
		func(n int32, x []float64, incx int32, y []float64, incy int32) float64 {
			modernCalls++
			return 10
		},
		func(n int32, x []float64, incx int32, y []float64, incy int32) float64 {
			legacyCalls++
			return 20
		},
	)

	x := []float64{1, 2}

	restore := accel.ForceGeneration(accel.GenerationNew)
	got := Ddot(2, x, 1, x, 1)
	restore()
	if got != 10 {
		t.Errorf("modern Ddot = %v, want 10", got)
	}

	restore = accel.ForceGeneration(accel.GenerationLegacy)
	got = Ddot(2, x, 1, x, 1)
	restore()
	if got != 20 {
		t.Errorf("legacy Ddot = %v, want 20", got)
	}

	if modernCalls != 1 || legacyCalls != 1 {
		t.Errorf("calls = (%d,%d), want (1,1)", modernCalls, legacyCalls)
	}
}

func TestZdotcReturnsComplexValue(t *testing.T) {
	saved := zdotc
	defer func() { zdotc = saved }()

	want := complex(3.0, -4.0)
	zdotc.Register(
		func(n int32, x []complex128, incx int32, y []complex128, incy int32) complex128 {
			return want
		},
		func(n int32, x []complex128, incx int32, y []complex128, incy int32) complex128 {
			return want
		},
	)

	x := []complex128{1 + 1i}
	if got := Zdotc(1, x, 1, x, 1); got != want {
		t.Errorf("Zdotc = %v, want %v", got, want)
	}
}

func TestSgemmPassesArgumentsUnchanged(t *testing.T) {
	saved := sgemm
	defer func() { sgemm = saved }()

	var got struct {
		transa, transb byte
		m, n, k        int32
		alpha, beta    float32
		c              []float32
	}
	var calls int
	sgemm.Register(
		func(transa, transb byte, m, n, k int32, alpha float32, a []float32, lda int32, b []float32, ldb int32, beta float32, c []float32, ldc int32) {
			calls++
			got.transa, got.transb = transa, transb
			got.m, got.n, got.k = m, n, k
			got.alpha, got.beta = alpha, beta
			got.c = c
			c[0] = 42
		},
		func(transa, transb byte, m, n, k int32, alpha float32, a []float32, lda int32, b []float32, ldb int32, beta float32, c []float32, ldc int32) {
			t.Error("legacy branch invoked")
		},
	)

	restore := accel.ForceGeneration(accel.GenerationNew)
	defer restore()

	c := make([]float32, 4)
	Sgemm('N', 'T', 2, 2, 2, 1.25, []float32{1, 2, 3, 4}, 2, []float32{5, 6, 7, 8}, 2, 0.5, c, 2)

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if got.transa != 'N' || got.transb != 'T' {
		t.Errorf("trans flags = %c,%c, want N,T", got.transa, got.transb)
	}
	if got.m != 2 || got.n != 2 || got.k != 2 {
		t.Errorf("dims = (%d,%d,%d), want (2,2,2)", got.m, got.n, got.k)
	}
	if got.alpha != 1.25 || got.beta != 0.5 {
		t.Errorf("scalars = (%v,%v), want (1.25,0.5)", got.alpha, got.beta)
	}
	if &got.c[0] != &c[0] || c[0] != 42 {
		t.Error("output buffer was not passed through unchanged")
	}
}

func TestScopyFallsBackToModern(t *testing.T) {
	saved := scopy
	defer func() { scopy = saved }()

	scopy = accel.Routine[func(n int32, x []float32, incx int32, y []float32, incy int32)]{Name: "scopy"}

	var modernCalls int
	scopy.RegisterModern(func(n int32, x []float32, incx int32, y []float32, incy int32) {
		modernCalls++
		copy(y, x)
	})

	// Only the modern branch exists; a legacy-generation process must
	// still reach it.
	restore := accel.ForceGeneration(accel.GenerationLegacy)
	defer restore()

	x := []float32{1, 2, 3}
	y := make([]float32, 3)
	Scopy(3, x, 1, y, 1)
	if modernCalls != 1 {
		t.Errorf("modern calls = %d, want 1", modernCalls)
	}
	if y[2] != 3 {
		t.Errorf("y = %v, want copy of %v", y, x)
	}
}
