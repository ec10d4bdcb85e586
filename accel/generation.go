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
	"os"
	"strconv"
	"strings"
)

// Generation identifies which Accelerate symbol set dispatch resolves to.
type Generation int

const (
	// GenerationLegacy selects the classic symbol names (_sgemm_ etc.),
	// present on every macOS release. This is the conservative default.
	GenerationLegacy Generation = iota

	// GenerationNew selects the $NEWLAPACK symbol names introduced with
	// the macOS 13.3 ABI transition.
	GenerationNew
)

// String returns the short name used in diagnostics ("legacy", "newlapack").
func (g Generation) String() string {
	if g == GenerationNew {
		return "newlapack"
	}
	return "legacy"
}

// newLapackVersion is the first macOS release shipping the $NEWLAPACK
// symbol set. All routines gate on this single threshold; the ABI
// transition was framework-wide, not per routine.
const (
	newLapackMajor = 13
	newLapackMinor = 3
)

// Capability state. Written once by the platform init in
// dispatch_darwin.go / dispatch_other.go, read on every dispatch.
// ForceGeneration may rewrite it for tests and diagnostics.
var (
	currentGeneration Generation
	currentVersion    string // kern.osproductversion, "" if unavailable
)

// CurrentGeneration reports which symbol set dispatch is resolving to.
func CurrentGeneration() Generation { return currentGeneration }

// CurrentName returns the short name of the active symbol set.
func CurrentName() string { return currentGeneration.String() }

// OSProductVersion returns the macOS product version the capability check
// observed (e.g. "13.3.1"), or "" when it was unavailable.
func OSProductVersion() string { return currentVersion }

// ForceGeneration overrides the detected generation and returns a function
// restoring the previous value. Intended for tests and diagnostics; not
// safe to call concurrently with in-flight routine calls.
func ForceGeneration(g Generation) (restore func()) {
	prev := currentGeneration
	currentGeneration = g
	return func() { currentGeneration = prev }
}

// NoNewLapackEnv reports whether ACCEL_NO_NEWLAPACK is set, forcing the
// legacy symbol set. Mirrors the detection kill switches used elsewhere in
// the module's tooling.
func NoNewLapackEnv() bool {
	v := os.Getenv("ACCEL_NO_NEWLAPACK")
	return v != "" && v != "0"
}

// parseProductVersion extracts major.minor from a kern.osproductversion
// string such as "13.3.1" or "14.0". Trailing components are ignored.
func parseProductVersion(s string) (major, minor int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) == 0 || parts[0] == "" {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return 0, 0, false
	}
	if len(parts) > 1 {
		minor, err = strconv.Atoi(parts[1])
		if err != nil || minor < 0 {
			return 0, 0, false
		}
	}
	return major, minor, true
}

// versionAtLeast reports whether major.minor meets the $NEWLAPACK threshold.
func versionAtLeast(major, minor int) bool {
	if major != newLapackMajor {
		return major > newLapackMajor
	}
	return minor >= newLapackMinor
}
