package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-lanes/lanes"
)

// goType maps a lane kind to its Go element type.
var goType = map[lanes.Kind]string{
	lanes.KindInt8:    "int8",
	lanes.KindInt16:   "int16",
	lanes.KindInt32:   "int32",
	lanes.KindInt64:   "int64",
	lanes.KindUint8:   "uint8",
	lanes.KindUint16:  "uint16",
	lanes.KindUint32:  "uint32",
	lanes.KindUint64:  "uint64",
	lanes.KindFloat32: "float32",
	lanes.KindFloat64: "float64",
}

var opIdent = map[lanes.Op]string{
	lanes.OpMin:   "OpMin",
	lanes.OpMax:   "OpMax",
	lanes.OpEq:    "OpEq",
	lanes.OpRSqrt: "OpRSqrt",
}

var capIdent = map[lanes.Capability]string{
	lanes.CapAVX:    "CapAVX",
	lanes.CapAVX2:   "CapAVX2",
	lanes.CapAVX512: "CapAVX512",
}

// vecType returns the archsimd type name for a shape, e.g. "Int8x16".
func vecType(s lanes.Shape) string {
	t := goType[s.Kind]
	return strings.ToUpper(t[:1]) + t[1:] + "x" + strconv.Itoa(s.Lanes)
}

// maskVecType returns the signed integer vector used to materialize an
// equality mask for s, e.g. "Int32x4" for Float32x4.
func maskVecType(s lanes.Shape) string {
	if s.Kind.IsFloat() {
		return "Int" + strconv.Itoa(s.Kind.Bits()) + "x" + strconv.Itoa(s.Lanes)
	}
	return vecType(s)
}

func funcName(spec KernelSpec) string {
	return spec.Op.String() + vecType(spec.Shape)
}

// emitKernels renders the generated file. filename is only used by
// imports.Process for error messages.
func emitKernels(specs []KernelSpec, pkg, filename string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by lanegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "//go:build amd64 && goexperiment.simd\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"simd/archsimd\"\n\n")

	fmt.Fprintf(&buf, "func init() {\n")
	for _, spec := range specs {
		fn := "Binary"
		if spec.Op.Arity() == 1 {
			fn = "Unary"
		}
		fmt.Fprintf(&buf, "\tmustRegister(Kernel[%s]{Op: %s, Lanes: %d, Requires: %s, Priority: %d, %s: %s})\n",
			goType[spec.Shape.Kind], opIdent[spec.Op], spec.Shape.Lanes,
			capIdent[spec.Requires], priorities[spec.Requires], fn, funcName(spec))
	}
	fmt.Fprintf(&buf, "}\n")

	for _, spec := range specs {
		fmt.Fprintf(&buf, "\n")
		emitKernel(&buf, spec)
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}

func emitKernel(buf *bytes.Buffer, spec KernelSpec) {
	s := spec.Shape
	vt := vecType(s)
	et := goType[s.Kind]
	load := "archsimd.Load" + vt + "Slice"
	name := funcName(spec)

	switch spec.Op {
	case lanes.OpMin, lanes.OpMax:
		fmt.Fprintf(buf, "func %s(dst, a, b []%s) {\n", name, et)
		if s.Kind.IsFloat() {
			// Compare and blend keeps the MINPS/MAXPS operand rule on NaN
			// and signed zero regardless of how the instruction is emitted.
			cmpMethod := "Less"
			if spec.Op == lanes.OpMax {
				cmpMethod = "Greater"
			}
			fmt.Fprintf(buf, "\tx, y := %s(a), %s(b)\n", load, load)
			fmt.Fprintf(buf, "\tx.Merge(y, x.%s(y)).StoreSlice(dst)\n", cmpMethod)
		} else {
			method := "Min"
			if spec.Op == lanes.OpMax {
				method = "Max"
			}
			fmt.Fprintf(buf, "\t%s(a).%s(%s(b)).StoreSlice(dst)\n", load, method, load)
		}
		fmt.Fprintf(buf, "}\n")

	case lanes.OpEq:
		mt := maskVecType(s)
		ones := "ones" + strings.TrimSuffix(mt, "x"+strconv.Itoa(s.Lanes))
		fmt.Fprintf(buf, "func %s(dst, a, b []%s) {\n", name, et)
		fmt.Fprintf(buf, "\tm := %s(a).Equal(%s(b))\n", load, load)
		fmt.Fprintf(buf, "\tvar zero archsimd.%s\n", mt)
		if s.Kind.IsFloat() {
			fmt.Fprintf(buf, "\tarchsimd.Load%sSlice(%s[:%d]).Merge(zero, m).As%s().StoreSlice(dst)\n",
				mt, ones, s.Lanes, vt)
		} else {
			fmt.Fprintf(buf, "\tarchsimd.Load%sSlice(%s[:%d]).Merge(zero, m).StoreSlice(dst)\n",
				mt, ones, s.Lanes)
		}
		fmt.Fprintf(buf, "}\n")

	case lanes.OpRSqrt:
		fmt.Fprintf(buf, "func %s(dst, a []%s) {\n", name, et)
		fmt.Fprintf(buf, "\t%s(a).ReciprocalSqrt().StoreSlice(dst)\n", load)
		fmt.Fprintf(buf, "}\n")
	}
}
