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

package accel

import (
	"strings"
	"testing"
)

func TestRoutineSelectsModern(t *testing.T) {
	defer ForceGeneration(GenerationNew)()

	var modernCalls, legacyCalls int
	var r Routine[func(n Int) Int]
	r.Name = "fake"
	r.Register(
		func(n Int) Int { modernCalls++; return n + 1 },
		func(n Int) Int { legacyCalls++; return n + 2 },
	)

	if got := r.Fn()(40); got != 41 {
		t.Errorf("modern branch returned %d, want 41", got)
	}
	if modernCalls != 1 || legacyCalls != 0 {
		t.Errorf("calls = (modern %d, legacy %d), want (1, 0)", modernCalls, legacyCalls)
	}
}

func TestRoutineSelectsLegacy(t *testing.T) {
	defer ForceGeneration(GenerationLegacy)()

	var modernCalls, legacyCalls int
	var r Routine[func(n Int) Int]
	r.Name = "fake"
	r.Register(
		func(n Int) Int { modernCalls++; return n + 1 },
		func(n Int) Int { legacyCalls++; return n + 2 },
	)

	if got := r.Fn()(40); got != 42 {
		t.Errorf("legacy branch returned %d, want 42", got)
	}
	if modernCalls != 0 || legacyCalls != 1 {
		t.Errorf("calls = (modern %d, legacy %d), want (0, 1)", modernCalls, legacyCalls)
	}
}

func TestRoutineFallsBackWhenPreferredMissing(t *testing.T) {
	var r Routine[func() string]
	r.Name = "fake"
	r.RegisterLegacy(func() string { return "legacy" })

	defer ForceGeneration(GenerationNew)()
	if got := r.Fn()(); got != "legacy" {
		t.Errorf("with only legacy registered, Fn() = %q, want %q", got, "legacy")
	}

	var m Routine[func() string]
	m.Name = "fake"
	m.RegisterModern(func() string { return "modern" })

	defer ForceGeneration(GenerationLegacy)()
	if got := m.Fn()(); got != "modern" {
		t.Errorf("with only modern registered, Fn() = %q, want %q", got, "modern")
	}
}

func TestRoutineDeterministic(t *testing.T) {
	defer ForceGeneration(GenerationNew)()

	var r Routine[func() Generation]
	r.Name = "fake"
	r.Register(
		func() Generation { return GenerationNew },
		func() Generation { return GenerationLegacy },
	)

	// Same capability state must select the same branch on every call.
	for i := 0; i < 100; i++ {
		if got := r.Fn()(); got != GenerationNew {
			t.Fatalf("call %d resolved to %v, want %v", i, got, GenerationNew)
		}
	}
}

func TestRoutineToggleSwitchesBranch(t *testing.T) {
	// Two stand-ins with distinct status codes and output patterns;
	// flipping the generation must deterministically switch which one the
	// caller observes.
	var r Routine[func(out []float64) Int]
	r.Name = "fake"
	r.Register(
		func(out []float64) Int {
			for i := range out {
				out[i] = 1.5
			}
			return 0
		},
		func(out []float64) Int {
			for i := range out {
				out[i] = -2.5
			}
			return 7
		},
	)

	out := make([]float64, 4)

	restore := ForceGeneration(GenerationNew)
	if info := r.Fn()(out); info != 0 {
		t.Errorf("modern stand-in info = %d, want 0", info)
	}
	for i, v := range out {
		if v != 1.5 {
			t.Errorf("modern stand-in out[%d] = %v, want 1.5", i, v)
		}
	}
	restore()

	restore = ForceGeneration(GenerationLegacy)
	if info := r.Fn()(out); info != 7 {
		t.Errorf("legacy stand-in info = %d, want 7", info)
	}
	for i, v := range out {
		if v != -2.5 {
			t.Errorf("legacy stand-in out[%d] = %v, want -2.5", i, v)
		}
	}
	restore()
}

func TestRoutineUnregisteredPanics(t *testing.T) {
	var r Routine[func()]
	r.Name = "dgesv"

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("Fn() on an unregistered routine did not panic")
		}
		msg, ok := rec.(string)
		if !ok || !strings.Contains(msg, "dgesv") {
			t.Errorf("panic message %v does not name the routine", rec)
		}
	}()
	r.Fn()
}
