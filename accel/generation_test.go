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

import "testing"

func TestParseProductVersion(t *testing.T) {
	tests := []struct {
		in           string
		major, minor int
		ok           bool
	}{
		{"13.3", 13, 3, true},
		{"13.3.1", 13, 3, true},
		{"14.0", 14, 0, true},
		{"12.6.8", 12, 6, true},
		{"13", 13, 0, true},
		{"26.0", 26, 0, true},
		{" 13.3\n", 13, 3, true},
		{"", 0, 0, false},
		{"garbage", 0, 0, false},
		{"13.x", 0, 0, false},
		{"-1.2", 0, 0, false},
	}

	for _, tt := range tests {
		major, minor, ok := parseProductVersion(tt.in)
		if ok != tt.ok || major != tt.major || minor != tt.minor {
			t.Errorf("parseProductVersion(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.in, major, minor, ok, tt.major, tt.minor, tt.ok)
		}
	}
}

func TestVersionAtLeast(t *testing.T) {
	tests := []struct {
		major, minor int
		want         bool
	}{
		{13, 3, true},
		{13, 4, true},
		{14, 0, true},
		{26, 0, true},
		{13, 2, false},
		{13, 0, false},
		{12, 6, false},
		{11, 7, false},
	}

	for _, tt := range tests {
		if got := versionAtLeast(tt.major, tt.minor); got != tt.want {
			t.Errorf("versionAtLeast(%d, %d) = %v, want %v", tt.major, tt.minor, got, tt.want)
		}
	}
}

func TestGenerationString(t *testing.T) {
	if got := GenerationLegacy.String(); got != "legacy" {
		t.Errorf("GenerationLegacy.String() = %q, want %q", got, "legacy")
	}
	if got := GenerationNew.String(); got != "newlapack" {
		t.Errorf("GenerationNew.String() = %q, want %q", got, "newlapack")
	}
}

func TestForceGenerationRestores(t *testing.T) {
	orig := CurrentGeneration()

	restore := ForceGeneration(GenerationNew)
	if CurrentGeneration() != GenerationNew {
		t.Errorf("after ForceGeneration(GenerationNew): CurrentGeneration() = %v", CurrentGeneration())
	}
	restore()
	if CurrentGeneration() != orig {
		t.Errorf("after restore: CurrentGeneration() = %v, want %v", CurrentGeneration(), orig)
	}

	restore = ForceGeneration(GenerationLegacy)
	if CurrentGeneration() != GenerationLegacy {
		t.Errorf("after ForceGeneration(GenerationLegacy): CurrentGeneration() = %v", CurrentGeneration())
	}
	restore()
	if CurrentGeneration() != orig {
		t.Errorf("after restore: CurrentGeneration() = %v, want %v", CurrentGeneration(), orig)
	}
}

func TestNoNewLapackEnv(t *testing.T) {
	t.Setenv("ACCEL_NO_NEWLAPACK", "")
	if NoNewLapackEnv() {
		t.Error("NoNewLapackEnv() = true with unset variable")
	}
	t.Setenv("ACCEL_NO_NEWLAPACK", "0")
	if NoNewLapackEnv() {
		t.Error("NoNewLapackEnv() = true with ACCEL_NO_NEWLAPACK=0")
	}
	t.Setenv("ACCEL_NO_NEWLAPACK", "1")
	if !NoNewLapackEnv() {
		t.Error("NoNewLapackEnv() = false with ACCEL_NO_NEWLAPACK=1")
	}
}
