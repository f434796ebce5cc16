package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/lanes"
)

type routesOptions struct {
	op          string
	kind        string
	accelerated bool
}

func newRoutesCmd() *cobra.Command {
	var opts routesOptions
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the resolved (operation, shape) dispatch table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			routes, err := filterRoutes(lanes.Routes(), opts)
			if err != nil {
				return err
			}
			printRoutes(cmd.OutOrStdout(), routes)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.op, "op", "", "only show this operation (min, max, eq, rsqrt)")
	cmd.Flags().StringVar(&opts.kind, "kind", "", "only show this element kind (i8, u32, f64, ...)")
	cmd.Flags().BoolVar(&opts.accelerated, "accelerated", false, "only show accelerated routes")
	return cmd
}

func filterRoutes(routes []lanes.Route, opts routesOptions) ([]lanes.Route, error) {
	if opts.op != "" {
		op, err := lanes.ParseOp(opts.op)
		if err != nil {
			return nil, err
		}
		routes = lo.Filter(routes, func(r lanes.Route, _ int) bool { return r.Op == op })
	}
	if opts.kind != "" {
		kind, ok := lanes.ParseKind(opts.kind)
		if !ok {
			return nil, fmt.Errorf("unknown element kind %q", opts.kind)
		}
		routes = lo.Filter(routes, func(r lanes.Route, _ int) bool { return r.Shape.Kind == kind })
	}
	if opts.accelerated {
		routes = lo.Filter(routes, func(r lanes.Route, _ int) bool { return r.Accelerated })
	}
	return routes, nil
}

func printRoutes(w io.Writer, routes []lanes.Route) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Op", "Shape", "Path", "Requires", "Kernel", "Registered"})
	table.AppendBulk(lo.Map(routes, func(r lanes.Route, _ int) []string {
		if !r.Accelerated {
			return []string{r.Op.String(), r.Shape.String(), "fallback", "-", "-", strconv.Itoa(r.Registered)}
		}
		path := lo.Ternary(r.Partial, "partial", "accelerated")
		return []string{r.Op.String(), r.Shape.String(), path, r.Requires.String(), r.Kernel, strconv.Itoa(r.Registered)}
	}))
	table.Render()

	accelerated := lo.CountBy(routes, func(r lanes.Route) bool { return r.Accelerated })
	fmt.Fprintf(w, "%d of %d routes accelerated\n", accelerated, len(routes))
}
