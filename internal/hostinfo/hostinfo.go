package hostinfo

import (
	"bufio"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Info identifies the CPU of the machine a run was measured on.
type Info struct {
	Brand string `json:"brand" yaml:"brand"`
	Count int    `json:"count" yaml:"count"`
}

// Detect queries the executing machine. Brand may be empty when neither
// CPUID nor /proc/cpuinfo reports one.
func Detect() Info {
	brand := strings.TrimSpace(cpuid.CPU.BrandName)
	if brand == "" {
		brand = procBrand("/proc/cpuinfo")
	}
	return Info{
		Brand: brand,
		Count: runtime.NumCPU(),
	}
}

func procBrand(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()
	return modelName(f)
}

// modelName returns the first "model name" (x86) or "Model" (arm) value
// found in cpuinfo-formatted text.
func modelName(r io.Reader) string {
	sc := bufio.NewScanner(r)
	var model string
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "model name":
			return strings.TrimSpace(value)
		case "Model":
			if model == "" {
				model = strings.TrimSpace(value)
			}
		}
	}
	return model
}
