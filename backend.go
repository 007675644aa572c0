package simd128

// Backend identifies the strategy set an operation family was compiled
// against. The binding is fixed at build time by GOARCH and the purego
// build tag; there is no runtime dispatch, so every call in a binary
// uses the same backend.
type Backend int

const (
	// BackendGeneric is the portable per-lane reference backend. It is
	// selected on architectures without a dedicated strategy set and
	// whenever the purego build tag is present.
	BackendGeneric Backend = iota

	// BackendSSE2 is the x86-64 strategy set, shaped after the SSE2
	// instruction sequences (pshufd, pmuludq, minps and friends).
	BackendSSE2

	// BackendNEON is the AArch64 strategy set, shaped after the NEON
	// permute primitives and fused multiply-add.
	BackendNEON
)

// String returns the backend name as used in build and test output.
func (b Backend) String() string {
	switch b {
	case BackendGeneric:
		return "generic"
	case BackendSSE2:
		return "sse2"
	case BackendNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// CurrentBackend reports the backend this binary was compiled with.
func CurrentBackend() Backend { return currentBackend }
