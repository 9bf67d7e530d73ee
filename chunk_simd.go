//go:build goexperiment.simd && amd64

package wordtally

import (
	"simd/archsimd"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// useAVX512 mirrors the teacher's runtime feature-detection pattern:
// archsimd itself exposes no CPU-capability check (as of Go 1.26), so
// golang.org/x/sys/cpu supplies it, and the decision is cached once at
// package init instead of re-checked per call.
var useAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL

const simdChunk = 32

// boundaryMaskAVX512 returns a bitmask with bit i set when data[i] is a
// chunk-boundary byte (space or newline), processing 32 bytes per
// instruction. It is the whitespace-search analogue of the teacher's
// generateMasksAVX512, which built the same kind of bitmask for CSV
// structural characters (quote/separator/CR/NL) instead.
func boundaryMaskAVX512(data []byte) uint32 {
	if len(data) < simdChunk {
		return boundaryMaskScalar(data)
	}
	spaceCmp := archsimd.BroadcastInt8x32(' ')
	nlCmp := archsimd.BroadcastInt8x32('\n')

	chunk := archsimd.LoadInt8x32((*[simdChunk]int8)(unsafe.Pointer(&data[0])))
	spaceMask := chunk.Equal(spaceCmp).ToBits()
	nlMask := chunk.Equal(nlCmp).ToBits()
	return uint32(spaceMask | nlMask)
}

// boundaryMaskScalar is the portable fallback used for tails shorter
// than one SIMD chunk, and whenever useAVX512 is false.
func boundaryMaskScalar(data []byte) uint32 {
	var mask uint32
	n := len(data)
	if n > simdChunk {
		n = simdChunk
	}
	for i := 0; i < n; i++ {
		if isChunkBoundary(data[i]) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// boundaryMask dispatches to the AVX-512 path when the CPU supports it
// and the tail is large enough to benefit, otherwise the scalar path.
func boundaryMask(data []byte) uint32 {
	if useAVX512 {
		return boundaryMaskAVX512(data)
	}
	return boundaryMaskScalar(data)
}
