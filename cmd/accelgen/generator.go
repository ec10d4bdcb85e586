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
	"fmt"
	"strings"
)

func (k kind) goType() string {
	switch k {
	case kindFlag:
		return "byte"
	case kindInt:
		return "int32"
	case kindIntOut:
		return "*int32"
	case kindIntSlice:
		return "[]int32"
	case kindFloat:
		return "float32"
	case kindDouble:
		return "float64"
	case kindComplexF:
		return "complex64"
	case kindComplexD:
		return "complex128"
	case kindFloatSlice:
		return "[]float32"
	case kindDoubleSlice:
		return "[]float64"
	case kindComplexFSlice:
		return "[]complex64"
	case kindComplexDSlice:
		return "[]complex128"
	}
	panic(fmt.Sprintf("accelgen: unknown kind %d", k))
}

func (k kind) cType() string {
	switch k {
	case kindFlag:
		return "char *"
	case kindInt, kindIntOut, kindIntSlice:
		return "lp_int *"
	case kindFloat, kindFloatSlice:
		return "float *"
	case kindDouble, kindDoubleSlice:
		return "double *"
	case kindComplexF, kindComplexFSlice:
		return "lp_complexf *"
	case kindComplexD, kindComplexDSlice:
		return "lp_complexd *"
	}
	panic(fmt.Sprintf("accelgen: unknown kind %d", k))
}

// helper returns the pointer-cast helper that bridges the Go argument
// into the C parameter.
func (k kind) helper() string {
	switch k {
	case kindFlag:
		return "cc"
	case kindInt, kindIntOut:
		return "ci"
	case kindIntSlice:
		return "ip32"
	case kindFloat:
		return "cf"
	case kindDouble:
		return "cd"
	case kindComplexF:
		return "ccf"
	case kindComplexD:
		return "ccd"
	case kindFloatSlice:
		return "fp32"
	case kindDoubleSlice:
		return "fp64"
	case kindComplexFSlice:
		return "cp64"
	case kindComplexDSlice:
		return "cp128"
	}
	panic(fmt.Sprintf("accelgen: unknown kind %d", k))
}

// convExpr is the argument expression passed to the C entry point.
// Scalars are passed by address (Fortran calling convention); slices and
// out-params are already addresses.
func (p param) convExpr() string {
	switch p.kind {
	case kindIntOut:
		return fmt.Sprintf("%s(%s)", p.kind.helper(), p.name)
	case kindFlag, kindInt, kindFloat, kindDouble, kindComplexF, kindComplexD:
		return fmt.Sprintf("%s(&%s)", p.kind.helper(), p.name)
	default:
		return fmt.Sprintf("%s(%s)", p.kind.helper(), p.name)
	}
}

// goParams renders the Go parameter list, grouping consecutive parameters
// of the same type ("jobvl, jobvr byte").
func goParams(params []param) string {
	var parts []string
	for i := 0; i < len(params); {
		j := i + 1
		for j < len(params) && params[j].kind.goType() == params[i].kind.goType() {
			j++
		}
		names := make([]string, 0, j-i)
		for _, p := range params[i:j] {
			names = append(names, p.name)
		}
		parts = append(parts, strings.Join(names, ", ")+" "+params[i].kind.goType())
		i = j
	}
	return strings.Join(parts, ", ")
}

func (r ret) cRetType() string {
	switch r {
	case retFloat:
		return "float"
	case retDouble:
		return "double"
	default:
		return "void"
	}
}

// cParams renders the C parameter list, including the hidden result
// pointer for complex-valued routines and the trailing info out-param.
func (r routine) cParams() string {
	var parts []string
	switch r.ret {
	case retComplexF:
		parts = append(parts, "lp_complexf *ret")
	case retComplexD:
		parts = append(parts, "lp_complexd *ret")
	}
	for _, p := range r.params {
		parts = append(parts, p.kind.cType()+p.name)
	}
	if r.ret == retInfo {
		parts = append(parts, "lp_int *info")
	}
	return strings.Join(parts, ", ")
}

// externDecls renders both prototype declarations for one routine. The
// modern declaration is aliased to the _<name>$NEWLAPACK symbol and the
// legacy one to _<name>_.
func (r routine) externDecls() string {
	var b strings.Builder
	for _, br := range []struct{ suffix, sym string }{
		{"new", "_" + r.name + "$NEWLAPACK"},
		{"legacy", "_" + r.name + "_"},
	} {
		fmt.Fprintf(&b, "extern %s accel_%s_%s(%s) __asm__(%q);\n",
			r.ret.cRetType(), r.name, br.suffix, r.cParams(), br.sym)
	}
	return b.String()
}

// closure renders one registered Go closure calling the given C entry
// point.
func (r routine) closure(entry string) string {
	var args []string
	switch r.ret {
	case retComplexF:
		args = append(args, "ccf(&ret)")
	case retComplexD:
		args = append(args, "ccd(&ret)")
	}
	for _, p := range r.params {
		args = append(args, p.convExpr())
	}
	if r.ret == retInfo {
		args = append(args, "ci(&info)")
	}
	call := fmt.Sprintf("C.%s(%s)", entry, strings.Join(args, ", "))

	var b strings.Builder
	switch r.ret {
	case retVoid:
		fmt.Fprintf(&b, "\t\tfunc(%s) {\n", goParams(r.params))
		fmt.Fprintf(&b, "\t\t\t%s\n", call)
	case retInfo:
		fmt.Fprintf(&b, "\t\tfunc(%s) (info int32) {\n", goParams(r.params))
		fmt.Fprintf(&b, "\t\t\t%s\n\t\t\treturn\n", call)
	case retFloat:
		fmt.Fprintf(&b, "\t\tfunc(%s) float32 {\n", goParams(r.params))
		fmt.Fprintf(&b, "\t\t\treturn float32(%s)\n", call)
	case retDouble:
		fmt.Fprintf(&b, "\t\tfunc(%s) float64 {\n", goParams(r.params))
		fmt.Fprintf(&b, "\t\t\treturn float64(%s)\n", call)
	case retComplexF:
		fmt.Fprintf(&b, "\t\tfunc(%s) (ret complex64) {\n", goParams(r.params))
		fmt.Fprintf(&b, "\t\t\t%s\n\t\t\treturn\n", call)
	case retComplexD:
		fmt.Fprintf(&b, "\t\tfunc(%s) (ret complex128) {\n", goParams(r.params))
		fmt.Fprintf(&b, "\t\t\t%s\n\t\t\treturn\n", call)
	}
	b.WriteString("\t\t},\n")
	return b.String()
}

// registerStanza renders the Register call wiring both branches of one
// routine.
func (r routine) registerStanza() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\t%s.Register(\n", r.name)
	b.WriteString(r.closure("accel_" + r.name + "_new"))
	b.WriteString(r.closure("accel_" + r.name + "_legacy"))
	b.WriteString("\t)\n")
	return b.String()
}

// scalarHelpers and sliceHelpers fix the emission order of the cast
// helpers; only helpers the routine set actually uses are emitted.
var scalarHelpers = []struct{ name, decl string }{
	{"cc", "func cc(p *byte) *C.char { return (*C.char)(unsafe.Pointer(p)) }"},
	{"ci", "func ci(p *int32) *C.lp_int { return (*C.lp_int)(unsafe.Pointer(p)) }"},
	{"cf", "func cf(p *float32) *C.float { return (*C.float)(unsafe.Pointer(p)) }"},
	{"cd", "func cd(p *float64) *C.double { return (*C.double)(unsafe.Pointer(p)) }"},
	{"ccf", "func ccf(p *complex64) *C.lp_complexf { return (*C.lp_complexf)(unsafe.Pointer(p)) }"},
	{"ccd", "func ccd(p *complex128) *C.lp_complexd { return (*C.lp_complexd)(unsafe.Pointer(p)) }"},
}

var sliceHelpers = []struct{ name, goElem, cElem string }{
	{"fp32", "float32", "C.float"},
	{"fp64", "float64", "C.double"},
	{"ip32", "int32", "C.lp_int"},
	{"cp64", "complex64", "C.lp_complexf"},
	{"cp128", "complex128", "C.lp_complexd"},
}

func usedHelpers(groups [][]routine) map[string]bool {
	used := make(map[string]bool)
	for _, g := range groups {
		for _, r := range g {
			for _, p := range r.params {
				used[p.kind.helper()] = true
			}
			switch r.ret {
			case retInfo:
				used["ci"] = true
			case retComplexF:
				used["ccf"] = true
			case retComplexD:
				used["ccd"] = true
			}
		}
	}
	return used
}

const fileHeader = `// Code generated by accelgen. DO NOT EDIT.

// Copyright 2025 The go-accelerate Authors. SPDX-License-Identifier: Apache-2.0

//go:build cgo && darwin

// NOTE: This file is named "z_accelerate_darwin.go" (starting with 'z')
// to ensure its init() runs AFTER the routine declarations in this package.
// Go executes init() functions in lexicographic filename order within a package.
//
// Each routine is declared twice against the Accelerate framework: once
// against the macOS 13.3+ symbol (_<name>$NEWLAPACK) and once against the
// legacy symbol (_<name>_), via __asm__ aliases. Both are registered; the
// accel dispatch state picks one per call.

`

// renderFile emits the full z_accelerate_darwin.go source for one
// package.
func renderFile(pkg string, groups [][]routine) string {
	var b strings.Builder
	b.WriteString(fileHeader)
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	b.WriteString("/*\n#cgo LDFLAGS: -framework Accelerate\n\n#include <stdint.h>\n\n")
	b.WriteString("typedef int32_t lp_int;\n")
	b.WriteString("typedef struct { float re, im; } lp_complexf;\n")
	b.WriteString("typedef struct { double re, im; } lp_complexd;\n")
	for _, g := range groups {
		b.WriteString("\n")
		for _, r := range g {
			b.WriteString(r.externDecls())
		}
	}
	b.WriteString("*/\nimport \"C\"\n\nimport \"unsafe\"\n")

	used := usedHelpers(groups)
	for _, h := range scalarHelpers {
		if used[h.name] {
			b.WriteString("\n" + h.decl + "\n")
		}
	}
	for _, h := range sliceHelpers {
		if !used[h.name] {
			continue
		}
		fmt.Fprintf(&b, "\nfunc %s(s []%s) *%s {\n", h.name, h.goElem, h.cElem)
		b.WriteString("\tif len(s) == 0 {\n\t\treturn nil\n\t}\n")
		fmt.Fprintf(&b, "\treturn (*%s)(unsafe.Pointer(&s[0]))\n}\n", h.cElem)
	}

	b.WriteString("\nfunc init() {\n")
	for _, g := range groups {
		for _, r := range g {
			b.WriteString(r.registerStanza())
		}
	}
	b.WriteString("}\n")
	return b.String()
}
