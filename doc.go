// Package simd128 provides a portable abstraction over 128-bit packed
// SIMD operations: four 32-bit integers, two 64-bit integers, four
// float32 or two float64 lanes per register, plus per-lane comparison
// masks of matching width.
//
// Every operation is a pure function on register-sized values with a
// defined bit-for-bit result. Three backends implement the divergent
// operations (lane shuffle, integer multiply, 64-bit compares, 64-bit
// arithmetic right shift, fast float min/max, float-to-integer
// conversion):
//
//   - generic: portable reference semantics (any architecture)
//   - SSE2-shaped: the x86-64 instruction strategies (amd64 builds)
//   - NEON-shaped: the AArch64 instruction strategies (arm64 builds)
//
// The backend is bound at compile time through build tags, never at
// runtime, so operations inline. Building with the purego tag forces
// the generic backend on every architecture. Wherever the contract
// defines a result, all three backends produce identical bit patterns;
// the conformance tests verify this on every host, since all strategy
// packages are pure Go.
//
// Lane ordering follows memory order: lane 0 is the least significant
// lane and occupies the lowest address when stored. Array indices and
// composite literal order match lane numbers, so Int32x4{10, 20, 30, 40}
// places 10 in lane 0.
//
// There are no recoverable errors: operations are total over the bit
// patterns of their operands. The only panics are programmer errors
// (short slices passed to Load or Store, integer division by zero in
// Div; use SafeDiv when a divisor may be zero).
package simd128
