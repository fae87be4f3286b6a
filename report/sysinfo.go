package report

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"
)

var vectorFeatures = []cpuid.FeatureID{
	cpuid.SSE42, cpuid.AVX, cpuid.AVX2, cpuid.AVX512F, cpuid.ASIMD,
}

// SystemInfo prints the wall clock time of the run and a description
// of the machine it ran on.
func (r *Reporter) SystemInfo(elapsed time.Duration, runID string) {
	r.printf("-----------------\nSystem Info\n")
	r.printf("\nElapsed time: %.3f seconds.\n", elapsed.Seconds())
	if runID != "" {
		r.printf("Run ID: %s\n", runID)
	}
	r.printf("Available processor cores: %d\n", runtime.NumCPU())
	r.printf("Go version: %s\n", runtime.Version())
	r.printf("OS architecture: %s\n", runtime.GOARCH)
	r.printf("Operating System: %s\n", runtime.GOOS)
	r.printf("CPU: %s\n", cpuBrand())
	if features := cpuFeatures(); features != "" {
		r.printf("Vector extensions: %s\n", features)
	}
}

func cpuBrand() string {
	brand := strings.TrimSpace(cpuid.CPU.BrandName)
	if brand == "" {
		brand = "unknown"
	}
	if cpuid.CPU.PhysicalCores > 0 {
		return fmt.Sprintf("%s (%d physical cores)", brand, cpuid.CPU.PhysicalCores)
	}
	return brand
}

func cpuFeatures() string {
	var names []string
	for _, f := range vectorFeatures {
		if cpuid.CPU.Supports(f) {
			names = append(names, f.String())
		}
	}
	return strings.Join(names, ", ")
}
