package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-kernels/core"
	"github.com/cwbudde/algo-kernels/fft"
)

// minAutoBlockSize is the smallest block chosen when none is requested.
const minAutoBlockSize = 256

// OverlapAdd implements FFT-based convolution of float64 signals using the
// overlap-add method. It is efficient for long signals with a fixed kernel.
//
// The algorithm:
//  1. Divide the input signal into non-overlapping blocks
//  2. Zero-pad each block and the kernel to the FFT size
//  3. Multiply the spectra
//  4. Overlap-add the inverse transforms to form the output
//
// An OverlapAdd holds scratch buffers and is not safe for concurrent use.
type OverlapAdd struct {
	kernelFFT []complex128

	kernelLen int
	blockSize int
	fftSize   int // blockSize + kernelLen - 1 rounded up to a power of two

	plan *algofft.Plan[complex128]

	spectrum []complex128
	tail     []float64
}

// NewOverlapAdd creates an overlap-add convolver for kernel. A blockSize of
// 0 selects a size from the kernel length; negative sizes are rejected.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	kernelLen := len(kernel)
	if blockSize == 0 {
		blockSize = max(fft.NextPowerOfTwo(kernelLen), minAutoBlockSize)
	}
	fftSize := fft.NextPowerOfTwo(blockSize + kernelLen - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: kernelLen,
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		spectrum:  make([]complex128, fftSize),
		tail:      make([]float64, fftSize),
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}
	if err := plan.Forward(oa.kernelFFT, kernelPadded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}
	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int { return oa.blockSize }

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int { return oa.fftSize }

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int { return oa.kernelLen }

// Process convolves input with the kernel and returns the full linear
// convolution of length len(input) + KernelLen() - 1.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	output := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.process(output, input); err != nil {
		return nil, err
	}
	return output, nil
}

// ProcessTo convolves input into output, which must have length
// len(input) + KernelLen() - 1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}
	expected := len(input) + oa.kernelLen - 1
	if len(output) != expected {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, expected, len(output))
	}
	core.Zero(output)
	return oa.process(output, input)
}

func (oa *OverlapAdd) process(output, input []float64) error {
	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))
		blockLen := end - start

		core.Zero(oa.spectrum)
		for i, v := range input[start:end] {
			oa.spectrum[i] = complex(v, 0)
		}

		if err := oa.plan.Forward(oa.spectrum, oa.spectrum); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}
		for i, k := range oa.kernelFFT {
			oa.spectrum[i] *= k
		}
		if err := oa.plan.Inverse(oa.spectrum, oa.spectrum); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		n := min(blockLen+oa.kernelLen-1, len(output)-start)
		tail := core.EnsureLen(oa.tail, n)
		for i := range tail {
			tail[i] = real(oa.spectrum[i])
		}
		vecmath.AddBlockInPlace(output[start:start+n], tail)
	}
	return nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
