package simdfft

import "golang.org/x/sys/cpu"

// simdLevel names the widest vector capability this process can use for the
// r=1/r=2 dual-group kernels (spec.md S4.4). It is detected once at package
// init, exactly the way thesyncim-gopus/celt/kissfft32_opt_amd64.go probes
// cpu.X86.HasAVX2/HasAVX before selecting an assembly butterfly. Every
// level here dispatches to the same pure-Go kernel; see DESIGN.md for why
// no hand-written assembly ships. The level is surfaced to callers via
// Instance.SIMDLevel so it is at least observable, not purely decorative.
type simdLevel int

const (
	simdScalar simdLevel = iota
	simdSSE2
	simdAVX
	simdAVX2
)

func (l simdLevel) String() string {
	switch l {
	case simdSSE2:
		return "sse2"
	case simdAVX:
		return "avx"
	case simdAVX2:
		return "avx2"
	default:
		return "scalar"
	}
}

// cpuFeatures mirrors the subset of cpu.X86 this package consults. Pulling
// the fields out into their own type lets detectSIMDLevelFrom be exercised
// with forced/mocked feature sets in tests, since cpu.X86 itself is a
// package-level var populated at process start and can't be faked.
type cpuFeatures struct {
	HasAVX2, HasAVX, HasSSE2 bool
}

// detectSIMDLevelFrom implements the selection table: widest available
// level wins. detectSIMDLevel below is the only production caller, feeding
// it the real cpu.X86 flags.
func detectSIMDLevelFrom(f cpuFeatures) simdLevel {
	switch {
	case f.HasAVX2:
		return simdAVX2
	case f.HasAVX:
		return simdAVX
	case f.HasSSE2:
		return simdSSE2
	default:
		return simdScalar
	}
}

var detectedSIMDLevel = detectSIMDLevel()

func detectSIMDLevel() simdLevel {
	return detectSIMDLevelFrom(cpuFeatures{
		HasAVX2: cpu.X86.HasAVX2,
		HasAVX:  cpu.X86.HasAVX,
		HasSSE2: cpu.X86.HasSSE2,
	})
}
