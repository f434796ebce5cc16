package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/lanes"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <op> <shape> <lanes-a> [<lanes-b>]",
		Short: "Evaluate one operation on comma-separated lane values",
		Long: `Evaluate one operation through the dispatcher and through the fallback.

Lane values are comma separated. A single value is splatted across every
lane. Integers accept Go literal syntax (0xff, -0b101). Eq masks are printed
as hexadecimal bit patterns.`,
		Example: "  lanecaps eval max i8x16 1,1,1,1,1,1,1,1,0,0,0,0,0,0,0,0 2,2,2,2,2,2,2,2,-1,-1,-1,-1,-1,-1,-1,-1\n" +
			"  lanecaps eval rsqrt f32x4 9",
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := lanes.ParseOp(args[0])
			if err != nil {
				return err
			}
			shape, err := lanes.ParseShape(args[1])
			if err != nil {
				return err
			}
			return runEval(cmd.OutOrStdout(), op, shape, args[2:])
		},
	}
}

func runEval(w io.Writer, op lanes.Op, shape lanes.Shape, operands []string) error {
	if !op.Supports(shape.Kind) {
		return &lanes.UnsupportedError{Op: op, Kind: shape.Kind}
	}
	if len(operands) != op.Arity() {
		return &lanes.ArityError{Op: op, Expected: op.Arity(), Actual: len(operands)}
	}
	switch shape.Kind {
	case lanes.KindInt8:
		return evalKind(w, op, shape, operands, parseSigned[int8])
	case lanes.KindInt16:
		return evalKind(w, op, shape, operands, parseSigned[int16])
	case lanes.KindInt32:
		return evalKind(w, op, shape, operands, parseSigned[int32])
	case lanes.KindInt64:
		return evalKind(w, op, shape, operands, parseSigned[int64])
	case lanes.KindUint8:
		return evalKind(w, op, shape, operands, parseUnsigned[uint8])
	case lanes.KindUint16:
		return evalKind(w, op, shape, operands, parseUnsigned[uint16])
	case lanes.KindUint32:
		return evalKind(w, op, shape, operands, parseUnsigned[uint32])
	case lanes.KindUint64:
		return evalKind(w, op, shape, operands, parseUnsigned[uint64])
	case lanes.KindFloat32:
		return evalKind(w, op, shape, operands, parseFloat[float32])
	case lanes.KindFloat64:
		return evalKind(w, op, shape, operands, parseFloat[float64])
	}
	return fmt.Errorf("unsupported shape %s", shape)
}

func evalKind[T lanes.Lanes](w io.Writer, op lanes.Op, shape lanes.Shape, args []string, parse func(string) (T, error)) error {
	operands := make([]lanes.Vec[T], len(args))
	for i, arg := range args {
		v, err := parseVec(arg, shape.Lanes, parse)
		if err != nil {
			return fmt.Errorf("operand %d: %w", i, err)
		}
		operands[i] = v
	}

	route := lanes.RouteOf(op, shape)
	result, err := lanes.Apply(op, operands...)
	if err != nil {
		return err
	}
	if route.Accelerated {
		fmt.Fprintf(w, "route:    %s %s -> %s (%s)\n", op, shape, route.Kernel, route.Requires)
	} else {
		fmt.Fprintf(w, "route:    %s %s -> fallback\n", op, shape)
	}
	fmt.Fprintf(w, "result:   %s\n", formatLanes(result, op == lanes.OpEq))
	if route.Accelerated {
		fallback, err := lanes.Fallback(op, operands...)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "fallback: %s\n", formatLanes(fallback, op == lanes.OpEq))
	}
	return nil
}

// parseVec parses comma-separated lanes; one value is splatted.
func parseVec[T lanes.Lanes](arg string, n int, parse func(string) (T, error)) (lanes.Vec[T], error) {
	fields := lo.Map(strings.Split(arg, ","), func(s string, _ int) string { return strings.TrimSpace(s) })
	values := make([]T, len(fields))
	for i, f := range fields {
		v, err := parse(f)
		if err != nil {
			return lanes.Vec[T]{}, err
		}
		values[i] = v
	}
	if len(values) == 1 && n > 1 {
		return lanes.Splat(n, values[0]), nil
	}
	if len(values) != n {
		return lanes.Vec[T]{}, fmt.Errorf("got %d lane values, want %d", len(values), n)
	}
	return lanes.Load(values)
}

func parseSigned[T lanes.SignedInts](s string) (T, error) {
	v, err := strconv.ParseInt(s, 0, lanes.KindOf[T]().Bits())
	return T(v), err
}

func parseUnsigned[T lanes.UnsignedInts](s string) (T, error) {
	v, err := strconv.ParseUint(s, 0, lanes.KindOf[T]().Bits())
	return T(v), err
}

func parseFloat[T lanes.Floats](s string) (T, error) {
	v, err := strconv.ParseFloat(s, lanes.KindOf[T]().Bits())
	return T(v), err
}

// formatLanes prints lanes as values, or as zero-padded hex bit patterns
// when the vector is a mask.
func formatLanes[T lanes.Lanes](v lanes.Vec[T], mask bool) string {
	if !mask {
		return fmt.Sprint(v.Data())
	}
	digits := v.Shape().Kind.Size() * 2
	hex := lo.Map(lo.Range(v.NumLanes()), func(i, _ int) string {
		return fmt.Sprintf("0x%0*x", digits, v.Bits(i))
	})
	return "[" + strings.Join(hex, " ") + "]"
}
