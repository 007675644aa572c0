package simd128

import (
	"runtime"
	"testing"
)

func TestBackendString(t *testing.T) {
	cases := []struct {
		b    Backend
		want string
	}{
		{BackendGeneric, "generic"},
		{BackendSSE2, "sse2"},
		{BackendNEON, "neon"},
		{Backend(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.b.String(); got != c.want {
			t.Errorf("String(%d): got %q, want %q", int(c.b), got, c.want)
		}
	}
}

func TestCurrentBackendMatchesArch(t *testing.T) {
	got := CurrentBackend()
	switch runtime.GOARCH {
	case "amd64":
		if got != BackendSSE2 && got != BackendGeneric {
			t.Errorf("amd64: got %v", got)
		}
	case "arm64":
		if got != BackendNEON && got != BackendGeneric {
			t.Errorf("arm64: got %v", got)
		}
	default:
		if got != BackendGeneric {
			t.Errorf("%s: got %v, want generic", runtime.GOARCH, got)
		}
	}
}
