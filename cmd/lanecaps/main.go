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

// Command lanecaps reports how package lanes dispatches on this machine.
//
// Usage:
//
//	lanecaps caps                          # detected capabilities and dispatch level
//	lanecaps routes --op min --kind i8     # resolved dispatch table
//	lanecaps eval max i8x16 1 2            # run one operation on both paths
//
// LANES_NO_SIMD and LANES_DISABLE are honored exactly as in any program
// linking the package, so the commands show their effect directly.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/lanes"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "lanecaps",
		Short:        "Inspect capability-gated dispatch of packed-vector operations",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				lanes.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log dispatch table resolution to stderr")
	root.AddCommand(newCapsCmd(), newRoutesCmd(), newEvalCmd())
	return root
}
