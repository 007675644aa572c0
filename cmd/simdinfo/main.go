// Command simdinfo prints the compiled SIMD backend and the features
// the host CPU actually offers, so a mismatch (for example a purego
// build on SIMD-capable hardware) is easy to spot.
//
// Usage:
//
//	simdinfo
//	simdinfo -check
//
// With -check the command exits nonzero when the host lacks the
// instruction set the backend was compiled for.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	simd128 "github.com/cwbudde/algo-simd128"
	"github.com/cwbudde/algo-simd128/cpu"
)

func main() {
	check := flag.Bool("check", false, "exit nonzero if the host cannot run the compiled backend")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: simdinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the compiled SIMD backend and host CPU features.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	backend := simd128.CurrentBackend()
	feats := cpu.DetectFeatures()

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "backend\t%s\n", backend)
	fmt.Fprintf(w, "goarch\t%s\n", runtime.GOARCH)
	fmt.Fprintf(w, "sse2\t%v\n", feats.HasSSE2)
	fmt.Fprintf(w, "avx\t%v\n", feats.HasAVX)
	fmt.Fprintf(w, "avx2\t%v\n", feats.HasAVX2)
	fmt.Fprintf(w, "avx512\t%v\n", feats.HasAVX512)
	fmt.Fprintf(w, "neon\t%v\n", feats.HasNEON)
	w.Flush()

	if !*check {
		return
	}
	var need cpu.SIMDLevel
	switch backend {
	case simd128.BackendSSE2:
		need = cpu.SIMDSSE2
	case simd128.BackendNEON:
		need = cpu.SIMDNEON
	default:
		need = cpu.SIMDNone
	}
	if !cpu.Supports(feats, need) {
		fmt.Fprintf(os.Stderr, "simdinfo: backend %s needs %s, which this CPU does not report\n", backend, need)
		os.Exit(1)
	}
}
