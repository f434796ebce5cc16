// Copyright 2025 go-lanes Authors
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

// Command lanegen generates the accelerated kernel table of package lanes.
//
// Usage:
//
//	lanegen -output ../../lanes/z_kernels_amd64.go
//
// Or via go:generate from package lanes:
//
//	//go:generate go run ../cmd/lanegen -output z_kernels_amd64.go
//
// For every (operation, shape) pair that has an archsimd instruction, the
// generator emits one kernel function and registers it in init() with the
// capability the instruction needs. Pairs without an instruction get no
// entry and always take the fallback path.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "z_kernels_amd64.go", "Output Go file")
	pkgName    = flag.String("pkg", "lanes", "Package name of the generated file")
	list       = flag.Bool("list", false, "Print the requirement table instead of generating code")
)

func main() {
	flag.Parse()

	specs := kernelSpecs()
	if *list {
		for _, s := range specs {
			fmt.Printf("%-6s %-8s %s\n", s.Op, s.Shape, s.Requires)
		}
		return
	}

	src, err := emitKernels(specs, *pkgName, *outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d kernels in %s\n", len(specs), *outputFile)
}
