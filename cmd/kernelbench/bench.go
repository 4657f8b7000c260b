package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-kernels/parallel"
)

// Result is the timing of one kernel at one size.
type Result struct {
	Kernel       string  `yaml:"kernel"`
	Size         int     `yaml:"size"`
	Repeat       int     `yaml:"repeat"`
	BestNS       int64   `yaml:"best_ns"`
	MeanNS       int64   `yaml:"mean_ns"`
	NSPerElement float64 `yaml:"ns_per_element"`
}

// Report is everything kernelbench prints.
type Report struct {
	Arch    string   `yaml:"arch"`
	SIMD    []string `yaml:"simd"`
	Workers int      `yaml:"workers"`
	Results []Result `yaml:"results"`
}

func newReport(workers int) *Report {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	f := cpu.DetectFeatures()
	return &Report{
		Arch:    f.Architecture,
		SIMD:    simdNames(f),
		Workers: workers,
	}
}

func simdNames(f cpu.Features) []string {
	var names []string
	for _, feat := range []struct {
		name string
		ok   bool
	}{
		{"SSE2", f.HasSSE2},
		{"AVX", f.HasAVX},
		{"AVX2", f.HasAVX2},
		{"AVX-512", f.HasAVX512},
		{"NEON", f.HasNEON},
	} {
		if feat.ok && !f.ForceGeneric {
			names = append(names, feat.name)
		}
	}
	return names
}

// measure runs one warm-up call and then repeat timed calls.
func measure(k kernelEntry, size, repeat int, popts []parallel.Option) (Result, error) {
	body, err := k.prepare(size, popts)
	if err != nil {
		return Result{}, fmt.Errorf("%s: prepare size %d: %w", k.name, size, err)
	}
	if err := body(); err != nil {
		return Result{}, fmt.Errorf("%s: size %d: %w", k.name, size, err)
	}

	var best, total time.Duration
	for i := 0; i < repeat; i++ {
		start := time.Now()
		if err := body(); err != nil {
			return Result{}, fmt.Errorf("%s: size %d: %w", k.name, size, err)
		}
		d := time.Since(start)
		total += d
		if i == 0 || d < best {
			best = d
		}
	}

	return Result{
		Kernel:       k.name,
		Size:         size,
		Repeat:       repeat,
		BestNS:       best.Nanoseconds(),
		MeanNS:       (total / time.Duration(repeat)).Nanoseconds(),
		NSPerElement: float64(best.Nanoseconds()) / float64(size),
	}, nil
}
