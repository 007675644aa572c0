package neon

import "github.com/cwbudde/algo-simd128/internal/arch"

// Lane-permutation primitives of the AArch64 Advanced SIMD set, over
// the four 32-bit lanes of a 128-bit register. Each function mirrors
// one instruction; the generated shuffle table composes them.

// dupLane broadcasts lane k (dup Vd.4s, Vn.s[k]).
func dupLane[E arch.Lane32](a [4]E, k int) [4]E {
	return [4]E{a[k], a[k], a[k], a[k]}
}

// rev64 reverses the 32-bit lanes within each 64-bit half (rev64 Vd.4s).
func rev64[E arch.Lane32](a [4]E) [4]E {
	return [4]E{a[1], a[0], a[3], a[2]}
}

// extract concatenates a and b and takes four lanes starting at n
// (ext Vd.16b, Vn.16b, Vm.16b, #4n).
func extract[E arch.Lane32](a, b [4]E, n int) [4]E {
	var r [4]E
	for i := 0; i < 4; i++ {
		if i+n < 4 {
			r[i] = a[i+n]
		} else {
			r[i] = b[i+n-4]
		}
	}
	return r
}

// zip1 interleaves the low halves (zip1 Vd.4s, Vn.4s, Vm.4s).
func zip1[E arch.Lane32](a, b [4]E) [4]E {
	return [4]E{a[0], b[0], a[1], b[1]}
}

// zip2 interleaves the high halves.
func zip2[E arch.Lane32](a, b [4]E) [4]E {
	return [4]E{a[2], b[2], a[3], b[3]}
}

// uzp1 concatenates the even lanes of a and b.
func uzp1[E arch.Lane32](a, b [4]E) [4]E {
	return [4]E{a[0], a[2], b[0], b[2]}
}

// uzp2 concatenates the odd lanes of a and b.
func uzp2[E arch.Lane32](a, b [4]E) [4]E {
	return [4]E{a[1], a[3], b[1], b[3]}
}

// trn1 transposes the even lanes (trn1 Vd.4s, Vn.4s, Vm.4s).
func trn1[E arch.Lane32](a, b [4]E) [4]E {
	return [4]E{a[0], b[0], a[2], b[2]}
}

// trn2 transposes the odd lanes.
func trn2[E arch.Lane32](a, b [4]E) [4]E {
	return [4]E{a[1], b[1], a[3], b[3]}
}

// insLane copies lane j of b into lane i of a (ins Vd.s[i], Vn.s[j]).
func insLane[E arch.Lane32](a [4]E, i int, b [4]E, j int) [4]E {
	a[i] = b[j]
	return a
}
