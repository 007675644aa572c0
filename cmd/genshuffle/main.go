// Command genshuffle generates the constant-selector dispatch tables
// that the SIMD backends need for operations whose hardware form wants
// a compile-time immediate: the 256-entry 4-lane shuffles and the SSE2
// 64-bit arithmetic right shift.
//
// Usage:
//
//	genshuffle -target neon       > internal/arch/neon/shuffle.go
//	genshuffle -target sse2       > internal/arch/sse2/shuffle.go
//	genshuffle -target sse2-sra64 > internal/arch/sse2/shift.go
//
// The NEON table is found by breadth-first search over the lane
// permutation primitives (dup, rev64, ext, zip, uzp, trn, lane insert),
// so every selector gets a minimal-length instruction sequence; the
// search is exhaustively verified before anything is emitted. The SSE2
// tables are mechanical.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
)

// lanes is a permutation state: entry i names the source lane of v
// that occupies lane i.
type lanes [4]int

var identity = lanes{0, 1, 2, 3}

func dup(a lanes, k int) lanes { return lanes{a[k], a[k], a[k], a[k]} }

func rev64(a lanes) lanes { return lanes{a[1], a[0], a[3], a[2]} }

func ext(a, b lanes, n int) lanes {
	var r lanes
	for i := 0; i < 4; i++ {
		if i+n < 4 {
			r[i] = a[i+n]
		} else {
			r[i] = b[i+n-4]
		}
	}
	return r
}

func zip1(a, b lanes) lanes { return lanes{a[0], b[0], a[1], b[1]} }
func zip2(a, b lanes) lanes { return lanes{a[2], b[2], a[3], b[3]} }
func uzp1(a, b lanes) lanes { return lanes{a[0], a[2], b[0], b[2]} }
func uzp2(a, b lanes) lanes { return lanes{a[1], a[3], b[1], b[3]} }
func trn1(a, b lanes) lanes { return lanes{a[0], b[0], a[2], b[2]} }
func trn2(a, b lanes) lanes { return lanes{a[1], b[1], a[3], b[3]} }

func ins(a lanes, i int, b lanes, j int) lanes {
	a[i] = b[j]
	return a
}

// call is one emitted primitive invocation; args are already rendered
// ("v", "t", or a lane index).
type call struct {
	fn   string
	args []string
}

func (c call) String() string {
	s := c.fn + "("
	for i, a := range c.args {
		if i > 0 {
			s += ", "
		}
		s += a
	}
	return s + ")"
}

type candidate struct {
	result lanes
	op     call
}

type binop struct {
	name string
	fn   func(a, b lanes) lanes
}

var binops = []binop{
	{"zip1", zip1}, {"zip2", zip2},
	{"uzp1", uzp1}, {"uzp2", uzp2},
	{"trn1", trn1}, {"trn2", trn2},
}

// opsFrom enumerates every one-step successor of the current temp t
// (nil at depth one, when only v is in scope). The enumeration order is
// fixed so the search, and therefore the emitted table, is
// deterministic.
func opsFrom(t *lanes) []candidate {
	type src struct {
		name string
		val  lanes
	}
	var srcs []src
	if t == nil {
		srcs = []src{{"v", identity}}
	} else {
		srcs = []src{{"t", *t}, {"v", identity}}
	}

	var out []candidate
	for _, s := range srcs {
		for k := 0; k < 4; k++ {
			out = append(out, candidate{dup(s.val, k), call{"dupLane", []string{s.name, fmt.Sprint(k)}}})
		}
		out = append(out, candidate{rev64(s.val), call{"rev64", []string{s.name}}})
	}
	for _, a := range srcs {
		for _, b := range srcs {
			for n := 1; n <= 3; n++ {
				out = append(out, candidate{ext(a.val, b.val, n), call{"extract", []string{a.name, b.name, fmt.Sprint(n)}}})
			}
			for _, op := range binops {
				out = append(out, candidate{op.fn(a.val, b.val), call{op.name, []string{a.name, b.name}}})
			}
		}
	}
	// Lane insert reads its source lane from v only, matching how the
	// hardware sequence keeps the original register live.
	for _, a := range srcs {
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				out = append(out, candidate{ins(a.val, i, identity, j), call{"insLane", []string{a.name, fmt.Sprint(i), "v", fmt.Sprint(j)}}})
			}
		}
	}
	return out
}

// search runs the breadth-first search until all 256 permutations have
// a minimal sequence.
func search() map[lanes][]call {
	best := map[lanes][]call{identity: nil}
	frontier := []lanes{identity}
	for depth := 1; len(best) < 256 && depth <= 4; depth++ {
		var next []lanes
		var cands []lanes
		if depth == 1 {
			cands = []lanes{identity}
		} else {
			cands = frontier
		}
		for _, t := range cands {
			seq := best[t]
			var tp *lanes
			if depth > 1 {
				tt := t
				tp = &tt
			}
			for _, c := range opsFrom(tp) {
				if _, ok := best[c.result]; !ok {
					ns := make([]call, len(seq), len(seq)+1)
					copy(ns, seq)
					best[c.result] = append(ns, c.op)
					next = append(next, c.result)
				}
			}
		}
		frontier = next
	}
	return best
}

// verify replays every sequence against the primitive semantics and
// confirms it reproduces its permutation.
func verify(best map[lanes][]call) error {
	for want, seq := range best {
		cur := identity
		atoi := func(s string) int { return int(s[0] - '0') }
		pick := func(name string) lanes {
			if name == "v" {
				return identity
			}
			return cur
		}
		for _, c := range seq {
			switch c.fn {
			case "dupLane":
				cur = dup(pick(c.args[0]), atoi(c.args[1]))
			case "rev64":
				cur = rev64(pick(c.args[0]))
			case "extract":
				cur = ext(pick(c.args[0]), pick(c.args[1]), atoi(c.args[2]))
			case "insLane":
				cur = ins(pick(c.args[0]), atoi(c.args[1]), pick(c.args[2]), atoi(c.args[3]))
			default:
				for _, op := range binops {
					if op.name == c.fn {
						cur = op.fn(pick(c.args[0]), pick(c.args[1]))
						break
					}
				}
			}
		}
		if cur != want {
			return fmt.Errorf("sequence for %v computes %v", want, cur)
		}
	}
	return nil
}

func lanesOf(imm int) lanes {
	return lanes{imm & 3, imm >> 2 & 3, imm >> 4 & 3, imm >> 6 & 3}
}

func emitNEON(w *bufio.Writer) error {
	best := search()
	if len(best) != 256 {
		return fmt.Errorf("search covered %d of 256 permutations", len(best))
	}
	if err := verify(best); err != nil {
		return err
	}
	hist := map[int]int{}
	for _, seq := range best {
		hist[len(seq)]++
	}
	var depths []int
	for d := range hist {
		depths = append(depths, d)
	}
	sort.Ints(depths)
	fmt.Fprintf(os.Stderr, "genshuffle: neon sequence length histogram:")
	for _, d := range depths {
		fmt.Fprintf(os.Stderr, " %d:%d", d, hist[d])
	}
	fmt.Fprintln(os.Stderr)

	fmt.Fprint(w, `// Code generated by cmd/genshuffle -target neon. DO NOT EDIT.

package neon

import "github.com/cwbudde/algo-simd128/internal/arch"

// ShuffleLanes32 permutes the four lanes of v: lane i of the result is
// lane (sel >> (2*i)) & 3 of the input. AArch64 NEON has no
// single-instruction arbitrary permutation of one 128-bit register, so
// every selector dispatches to a precomputed sequence of one to three
// permutation primitives (dup, ext, zip, uzp, trn, rev64, lane insert).
// The sequences come from a breadth-first search over those primitives
// that minimizes instruction count (see cmd/genshuffle). The identity
// selector 0xE4 returns the input unchanged. With a constant selector
// the switch collapses to the straight-line sequence of one case.
func ShuffleLanes32[E arch.Lane32](v [4]E, sel uint8) [4]E {
	switch sel {
`)
	for imm := 0; imm < 256; imm++ {
		t := lanesOf(imm)
		seq := best[t]
		fmt.Fprintf(w, "\tcase 0x%02X: // lanes %d,%d,%d,%d\n", imm, t[0], t[1], t[2], t[3])
		if len(seq) == 0 {
			fmt.Fprint(w, "\t\treturn v\n")
			continue
		}
		for i, c := range seq {
			switch {
			case i == len(seq)-1:
				fmt.Fprintf(w, "\t\treturn %s\n", c)
			case i == 0:
				fmt.Fprintf(w, "\t\tt := %s\n", c)
			default:
				fmt.Fprintf(w, "\t\tt = %s\n", c)
			}
		}
	}
	fmt.Fprint(w, "\t}\n\tpanic(\"unreachable\")\n}\n")
	return nil
}

func emitSSE2(w *bufio.Writer) error {
	fmt.Fprint(w, `// Code generated by cmd/genshuffle -target sse2. DO NOT EDIT.

package sse2

import "github.com/cwbudde/algo-simd128/internal/arch"

// ShuffleLanes32 permutes the four lanes of v exactly as the pshufd
// instruction would with sel as its 8-bit immediate: lane i of the
// result is lane (sel >> (2*i)) & 3 of the input. The selector must be
// a compile-time constant at the hardware level, so the entry point is
// a 256-way switch whose cases are the constant-index permutes; with a
// constant selector the compiler collapses it to a single case.
func ShuffleLanes32[E arch.Lane32](v [4]E, sel uint8) [4]E {
	switch sel {
`)
	for imm := 0; imm < 256; imm++ {
		t := lanesOf(imm)
		fmt.Fprintf(w, "\tcase 0x%02X:\n\t\treturn [4]E{v[%d], v[%d], v[%d], v[%d]}\n",
			imm, t[0], t[1], t[2], t[3])
	}
	fmt.Fprint(w, "\t}\n\tpanic(\"unreachable\")\n}\n")
	return nil
}

func emitSRA64(w *bufio.Writer) error {
	fmt.Fprint(w, `// Code generated by cmd/genshuffle -target sse2-sra64. DO NOT EDIT.

package sse2

// ShiftRightArithInt64 emulates the 64-bit arithmetic right shift that
// SSE2 lacks: a logical right shift (psrlq) combined with an OR of the
// sign bits taken from a mask whose set-bit width equals the shift
// amount. One case per amount, since psrlq wants an immediate. Amounts
// of 64 or more produce the sign fill.
func ShiftRightArithInt64(v [2]int64, n uint) [2]int64 {
	var s0, s1 uint64
	if v[0] < 0 {
		s0 = ^uint64(0)
	}
	if v[1] < 0 {
		s1 = ^uint64(0)
	}
	if n > 63 {
		n = 63
	}
	switch n {
	case 0:
		return v
`)
	for n := 1; n <= 63; n++ {
		mask := ^uint64(0) << (64 - uint(n))
		fmt.Fprintf(w, "\tcase %d:\n\t\treturn [2]int64{int64(uint64(v[0])>>%d | s0&0x%016X), int64(uint64(v[1])>>%d | s1&0x%016X)}\n",
			n, n, mask, n, mask)
	}
	fmt.Fprint(w, "\t}\n\tpanic(\"unreachable\")\n}\n")
	return nil
}

func main() {
	target := flag.String("target", "", "table to generate: neon, sse2, or sse2-sra64")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: genshuffle -target {neon|sse2|sse2-sra64}\n\n")
		fmt.Fprintf(os.Stderr, "Writes the generated Go source to stdout.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	w := bufio.NewWriter(os.Stdout)
	var err error
	switch *target {
	case "neon":
		err = emitNEON(w)
	case "sse2":
		err = emitSSE2(w)
	case "sse2-sra64":
		err = emitSRA64(w)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "genshuffle: %v\n", err)
		os.Exit(1)
	}
}
