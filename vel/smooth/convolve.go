package smooth

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// fftThreshold is the kernel length above which the FFT path beats
// direct accumulation.
const fftThreshold = 32

// convolveClamped filters src with an odd-length kernel into dst,
// replicating the edge values so the output keeps src's length and the
// filter never sees implicit zeros.
func convolveClamped(dst, src, kernel []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("smooth: buffer length mismatch: %d vs %d", len(dst), len(src))
	}

	n := len(src)
	radius := (len(kernel) - 1) / 2

	padded := make([]float64, n+2*radius)
	for i := 0; i < radius; i++ {
		padded[i] = src[0]
		padded[radius+n+i] = src[n-1]
	}
	copy(padded[radius:], src)

	if len(kernel) >= fftThreshold && n >= fftThreshold {
		return convolveFFT(dst, padded, kernel)
	}

	convolveDirect(dst, padded, kernel)
	return nil
}

// convolveDirect accumulates the valid part of the convolution using
// vectorized scale-and-add per kernel tap.
func convolveDirect(dst, padded, kernel []float64) {
	n := len(dst)
	tmp := make([]float64, n)

	for i := range dst {
		dst[i] = 0
	}
	for k, w := range kernel {
		vecmath.ScaleBlock(tmp, padded[k:k+n], w)
		vecmath.AddBlockInPlace(dst, tmp)
	}
}

// convolveFFT computes the same valid-part convolution in the frequency
// domain for long kernels.
func convolveFFT(dst, padded, kernel []float64) error {
	n := len(dst)
	m := len(kernel)
	fullLen := len(padded) + m - 1
	fftSize := nextPowerOf2(fullLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return fmt.Errorf("smooth: failed to create FFT plan: %w", err)
	}

	sigFreq := make([]complex128, fftSize)
	kerFreq := make([]complex128, fftSize)
	sigPadded := make([]complex128, fftSize)
	kerPadded := make([]complex128, fftSize)
	for i, v := range padded {
		sigPadded[i] = complex(v, 0)
	}
	for i, v := range kernel {
		kerPadded[i] = complex(v, 0)
	}

	if err := plan.Forward(sigFreq, sigPadded); err != nil {
		return fmt.Errorf("smooth: forward FFT failed: %w", err)
	}
	if err := plan.Forward(kerFreq, kerPadded); err != nil {
		return fmt.Errorf("smooth: forward FFT failed: %w", err)
	}

	for i := range sigFreq {
		sigFreq[i] *= kerFreq[i]
	}

	if err := plan.Inverse(sigPadded, sigFreq); err != nil {
		return fmt.Errorf("smooth: inverse FFT failed: %w", err)
	}

	// The valid segment of the full convolution starts at m-1 and the
	// padding radius cancels against the kernel radius.
	for i := 0; i < n; i++ {
		dst[i] = real(sigPadded[m-1+i])
	}
	return nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
