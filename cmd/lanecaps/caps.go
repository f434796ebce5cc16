package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/lanes"
)

func newCapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "Show detected CPU capabilities and the dispatch level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printCaps(cmd.OutOrStdout())
			return nil
		},
	}
}

func printCaps(w io.Writer) {
	fmt.Fprintf(w, "Dispatch level: %s, width: %d bytes\n", lanes.CurrentName(), lanes.CurrentWidth())
	for _, env := range []string{"LANES_NO_SIMD", "LANES_DISABLE"} {
		if v, ok := os.LookupEnv(env); ok {
			fmt.Fprintf(w, "%s=%s\n", env, v)
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Capability", "Detected", "Available"})
	table.AppendBulk(lo.Map(lanes.Capabilities(), func(c lanes.Capability, _ int) []string {
		return []string{c.String(), yesNo(lanes.Detected(c)), yesNo(lanes.Has(c))}
	}))
	table.Render()
}

func yesNo(b bool) string {
	return lo.Ternary(b, "yes", "no")
}
