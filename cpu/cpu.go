// Package cpu provides CPU feature detection for SIMD backend
// introspection and kernel selection.
//
// The library's backend is fixed at compile time (see the root package
// and the purego build tag); this package reports what the hardware
// actually offers, so callers can verify that the compiled backend
// matches the machine and so test suites can force a feature set.
//
// Detection runs lazily on the first call to DetectFeatures and the
// result is cached.
package cpu

import "sync"

// SIMDLevel represents a SIMD instruction set extension level.
// Levels are not strictly comparable across architectures.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD support (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX.
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512.
	SIMDAVX512

	// SIMDNEON indicates ARM Advanced SIMD (NEON).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to backend selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX    bool // Advanced Vector Extensions
	HasAVX2   bool // Advanced Vector Extensions 2
	HasAVX512 bool // Advanced Vector Extensions 512

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// ForceGeneric disables all SIMD levels (for testing and debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g. "amd64", "arm64").
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once

	// forcedFeatures overrides hardware detection for tests.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current
// system. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	return detectedFeatures
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return DetectFeatures().HasAVX2
}

// HasNEON returns true if the CPU supports ARM NEON instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides CPU feature detection with the specified
// features. Intended for testing only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features. Intended for testing.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()
}

// Supports returns true if the given features include the specified
// SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
