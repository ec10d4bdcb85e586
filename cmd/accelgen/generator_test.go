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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGoParamsGrouping(t *testing.T) {
	tests := []struct {
		name   string
		params []param
		want   string
	}{
		{
			name: "consecutive same types grouped",
			params: []param{
				{"jobvl", kindFlag}, {"jobvr", kindFlag}, {"n", kindInt},
				{"a", kindFloatSlice}, {"lda", kindInt},
				{"wr", kindFloatSlice}, {"wi", kindFloatSlice}, {"vl", kindFloatSlice},
				{"ldvl", kindInt},
			},
			want: "jobvl, jobvr byte, n int32, a []float32, lda int32, wr, wi, vl []float32, ldvl int32",
		},
		{
			name: "scalar and slice of same precision not grouped",
			params: []param{
				{"s", kindFloatSlice}, {"rcond", kindFloat}, {"rank", kindIntOut},
			},
			want: "s []float32, rcond float32, rank *int32",
		},
	}
	for _, tt := range tests {
		if got := goParams(tt.params); got != tt.want {
			t.Errorf("%s: goParams() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestExternDecls(t *testing.T) {
	r := routine{name: "cdotu", ret: retComplexF, params: []param{
		{"n", kindInt},
		{"x", kindComplexFSlice}, {"incx", kindInt},
		{"y", kindComplexFSlice}, {"incy", kindInt},
	}}
	want := `extern void accel_cdotu_new(lp_complexf *ret, lp_int *n, lp_complexf *x, lp_int *incx, lp_complexf *y, lp_int *incy) __asm__("_cdotu$NEWLAPACK");
extern void accel_cdotu_legacy(lp_complexf *ret, lp_int *n, lp_complexf *x, lp_int *incx, lp_complexf *y, lp_int *incy) __asm__("_cdotu_");
`
	if got := r.externDecls(); got != want {
		t.Errorf("externDecls() = %q, want %q", got, want)
	}
}

func TestRegisterStanzaInfoReturn(t *testing.T) {
	r := routine{name: "spotrf", ret: retInfo, params: []param{
		{"uplo", kindFlag}, {"n", kindInt},
		{"a", kindFloatSlice}, {"lda", kindInt},
	}}
	got := r.registerStanza()
	for _, want := range []string{
		"\tspotrf.Register(\n",
		"func(uplo byte, n int32, a []float32, lda int32) (info int32) {",
		"C.accel_spotrf_new(cc(&uplo), ci(&n), fp32(a), ci(&lda), ci(&info))",
		"C.accel_spotrf_legacy(cc(&uplo), ci(&n), fp32(a), ci(&lda), ci(&info))",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("registerStanza() missing %q in:\n%s", want, got)
		}
	}
}

func TestHelperSelection(t *testing.T) {
	lapack := renderFile("lapack", lapackRoutines)
	blas := renderFile("blas", blasRoutines)

	// The LAPACK set has no complex scalar arguments; the BLAS set has no
	// integer arrays.
	if strings.Contains(lapack, "func ccf(") {
		t.Error("lapack output should not define ccf")
	}
	if !strings.Contains(lapack, "func ip32(") {
		t.Error("lapack output should define ip32")
	}
	if strings.Contains(blas, "func ip32(") {
		t.Error("blas output should not define ip32")
	}
	if !strings.Contains(blas, "func ccf(") {
		t.Error("blas output should define ccf")
	}
}

func TestRoutineInventory(t *testing.T) {
	count := func(groups [][]routine) int {
		n := 0
		for _, g := range groups {
			n += len(g)
		}
		return n
	}
	if got := count(lapackRoutines); got != 36 {
		t.Errorf("lapack routine count = %d, want 36", got)
	}
	if got := count(blasRoutines); got != 14 {
		t.Errorf("blas routine count = %d, want 14", got)
	}

	seen := make(map[string]bool)
	for _, groups := range [][][]routine{lapackRoutines, blasRoutines} {
		for _, g := range groups {
			for _, r := range g {
				if seen[r.name] {
					t.Errorf("duplicate routine %q", r.name)
				}
				seen[r.name] = true
			}
		}
	}
}

// TestGeneratedFilesCurrent fails when the checked-in registration files
// drift from the descriptor tables. Re-run go generate in the affected
// package to fix.
func TestGeneratedFilesCurrent(t *testing.T) {
	tests := []struct {
		pkg    string
		groups [][]routine
	}{
		{"blas", blasRoutines},
		{"lapack", lapackRoutines},
	}
	for _, tt := range tests {
		path := filepath.Join("..", "..", "accel", tt.pkg, "z_accelerate_darwin.go")
		disk, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading %s: %v", path, err)
		}
		if got := renderFile(tt.pkg, tt.groups); got != string(disk) {
			t.Errorf("%s is stale; re-run go generate ./accel/%s", path, tt.pkg)
		}
	}
}
