// Package workload provides small deterministic compute kernels used by
// the demo binary and the throughput tests: a radix-2 FFT, NTT round
// trips on a negacyclic ring, and SHAKE256 hashing.
package workload

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// FFT computes the forward radix-2 Cooley–Tukey transform of a, whose
// length must be a nonzero power of two. The input slice is not modified.
func FFT(a []complex128) []complex128 {
	n := len(a)
	if n == 0 || n&(n-1) != 0 {
		panic("workload: FFT length must be a nonzero power of 2")
	}

	out := make([]complex128, n)
	copy(out, a)

	// Bit-reversal reordering, then iterative butterflies.
	logN := bits.Len(uint(n)) - 1
	for i := 0; i < n; i++ {
		j := bitReverse(i, logN)
		if i < j {
			out[i], out[j] = out[j], out[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		wn := cmplx.Exp(complex(0, -2*math.Pi/float64(size)))
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for j := 0; j < half; j++ {
				t := w * out[start+j+half]
				out[start+j+half] = out[start+j] - t
				out[start+j] += t
				w *= wn
			}
		}
	}
	return out
}

// InverseFFT inverts FFT up to floating-point error.
func InverseFFT(a []complex128) []complex128 {
	n := len(a)
	conj := make([]complex128, n)
	for i, v := range a {
		conj[i] = cmplx.Conj(v)
	}
	out := FFT(conj)
	inv := complex(1/float64(n), 0)
	for i, v := range out {
		out[i] = cmplx.Conj(v) * inv
	}
	return out
}

func bitReverse(x, width int) int {
	r := 0
	for i := 0; i < width; i++ {
		r = r<<1 | x&1
		x >>= 1
	}
	return r
}
