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

//go:build darwin

package accel

import "golang.org/x/sys/unix"

func init() {
	// Kill switch first: ACCEL_NO_NEWLAPACK pins the legacy symbols even
	// on hosts that ship $NEWLAPACK.
	if NoNewLapackEnv() {
		currentGeneration = GenerationLegacy
		return
	}

	detectOSVersion()
}

func detectOSVersion() {
	v, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		// Cannot prove the new symbols are present: stay on legacy.
		currentGeneration = GenerationLegacy
		return
	}
	currentVersion = v

	major, minor, ok := parseProductVersion(v)
	if ok && versionAtLeast(major, minor) {
		currentGeneration = GenerationNew
		return
	}
	currentGeneration = GenerationLegacy
}
