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

// Package main implements accelgen, the generator for the cgo Accelerate
// registration files. It renders the dual $NEWLAPACK/legacy prototypes and
// registered closures for every routine in the descriptor tables and is
// invoked via go generate from the blas and lapack packages:
//
//	accelgen -pkg lapack -output z_accelerate_darwin.go
//
// With -list it prints the routine inventory instead of generating code.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("accelgen: ")

	pkg := flag.String("pkg", "", "target package: blas or lapack")
	output := flag.String("output", "", "output file path (defaults to stdout)")
	list := flag.Bool("list", false, "print the routine inventory and exit")
	flag.Parse()

	if *list {
		printInventory()
		return
	}

	var groups [][]routine
	switch *pkg {
	case "blas":
		groups = blasRoutines
	case "lapack":
		groups = lapackRoutines
	default:
		log.Fatalf("unknown -pkg %q (want blas or lapack)", *pkg)
	}

	src := renderFile(*pkg, groups)

	// imports.Process re-runs gofmt and verifies the import block; the
	// cgo preamble comment stays attached to import "C".
	formatted, err := imports.Process(*output, []byte(src), nil)
	if err != nil {
		log.Fatalf("formatting generated source: %v", err)
	}

	if *output == "" {
		os.Stdout.Write(formatted)
		return
	}
	if err := os.WriteFile(*output, formatted, 0o644); err != nil {
		log.Fatalf("writing %s: %v", *output, err)
	}
}

// printInventory lists every routine with its exported wrapper name and
// the symbol pair it binds.
func printInventory() {
	title := cases.Title(language.English)
	for _, tbl := range []struct {
		pkg    string
		groups [][]routine
	}{
		{"blas", blasRoutines},
		{"lapack", lapackRoutines},
	} {
		for _, g := range tbl.groups {
			for _, r := range g {
				fmt.Printf("%s.%s\t_%s$NEWLAPACK\t_%s_\n",
					tbl.pkg, title.String(r.name), r.name, r.name)
			}
		}
	}
}
