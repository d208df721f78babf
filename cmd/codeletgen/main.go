//go:build ignore

//go:generate go run . -out ../../codelet_twiddles_generated.go

// codeletgen emits the same twiddle-constant tables that the small-N
// codelet layer (codelet.go) computes with math.Sincos at package init, as
// literal Go source; codelet.go does not read the generated file. This is the generator
// spec.md S9 asks a complete implementation to keep alongside the
// hand-written recursive composition in codelet.go: a real codeletgen
// run would go further and emit each codelet body fully unrolled with
// these constants inlined (see DESIGN.md for why that last step isn't
// checked in as generated source here). Modeled on the go:generate/
// standalone-generator-program split used by
// wireguard-go's tun-generate and thesyncim-gopus/tools/gen_math_utils_tables.go.
package main

import (
	"flag"
	"fmt"
	"go/format"
	"log"
	"math"
	"os"
	"strings"
)

var codeletSizes = []int{8, 16, 32, 64, 128}

func twiddleHalf(n int) []complex128 {
	half := n / 2
	w := make([]complex128, half)
	for k := 0; k < half; k++ {
		s, c := math.Sincos(-2.0 * math.Pi * float64(k) / float64(n))
		w[k] = complex(c, s)
	}
	return w
}

func main() {
	out := flag.String("out", "", "output file path (required)")
	flag.Parse()
	if *out == "" {
		log.Fatal("codeletgen: -out is required")
	}

	var b strings.Builder
	fmt.Fprintln(&b, "package simdfft")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "// Code generated by cmd/codeletgen. DO NOT EDIT.")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "var generatedCodeletTwiddles64 = map[int][]complex128{")
	for _, n := range codeletSizes {
		w := twiddleHalf(n)
		fmt.Fprintf(&b, "\t%d: {\n", n)
		for _, v := range w {
			fmt.Fprintf(&b, "\t\tcomplex(%v, %v),\n", real(v), imag(v))
		}
		fmt.Fprintln(&b, "\t},")
	}
	fmt.Fprintln(&b, "}")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		log.Fatalf("codeletgen: formatting generated source: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("codeletgen: writing %s: %v", *out, err)
	}
}
