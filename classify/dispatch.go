package classify

import (
	"os"

	"golang.org/x/sys/cpu"
)

// Tier names the classifier implementation strategy in use. Mirrors
// spec.md §6.4's "none, 128-bit, 256-bit" SIMD extension levels; since no
// platform assembly exists in this retrieval pack's dependency surface (see
// swar.go's package doc), Wide and Narrow both run in pure Go — Wide adds
// the SWAR lane-skip, Narrow is the plain scalar loop — but the tier names
// and the dispatch mechanism are kept faithful to what a real assembly
// backend would plug into.
type Tier uint8

const (
	TierNone  Tier = iota // no SIMD-style acceleration; plain scalar scan
	TierSSE               // 128-bit-equivalent: SWAR lane-skip enabled
	TierAVX2              // 256-bit-equivalent: SWAR lane-skip enabled
)

func (t Tier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierSSE:
		return "sse"
	case TierAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// overrideEnv is the advisory override spec.md §6.4 describes: "the caller
// is responsible for its correctness". Mirrors the teacher's
// `simd.hasAVX2`-style package-level capability variable
// (`_examples/coregx-coregex/simd/memchr_amd64.go`), generalized to a
// three-way tier instead of a single boolean.
const overrideEnv = "COREJP_SIMD_OVERRIDE"

// detectTier probes CPU capabilities exactly as the teacher's
// simd.hasAVX2 does (golang.org/x/sys/cpu), then applies any advisory
// override from the environment.
func detectTier() Tier {
	tier := TierNone
	if cpu.X86.HasSSE42 {
		tier = TierSSE
	}
	if cpu.X86.HasAVX2 {
		tier = TierAVX2
	}
	switch os.Getenv(overrideEnv) {
	case "none":
		return TierNone
	case "sse":
		return TierSSE
	case "avx2":
		return TierAVX2
	}
	return tier
}

// configureSIMD resolves the active tier and returns the eqMask
// implementation it selects, matching the teacher's
// `hasAVX2 && len(data) >= 32`-style dispatch-then-delegate pattern.
func configureSIMD() (Tier, func(block []byte, c byte) uint64) {
	tier := detectTier()
	if tier == TierNone {
		return tier, eqMaskScalar
	}
	return tier, eqMask
}
