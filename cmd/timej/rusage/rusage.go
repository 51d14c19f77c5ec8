// Package rusage reads the resource accounting the kernel keeps for
// terminated child processes.
package rusage

import (
	"errors"
	"runtime"
	"time"

	"github.com/samber/lo"
)

var ErrUnsupported = errors.New("rusage is not supported on " + runtime.GOOS)

// ResourceUsage is the accumulated usage of every waited-on child of the
// current process.
type ResourceUsage struct {
	User        time.Duration
	System      time.Duration
	MaxRSSBytes uint64
}

// Provider queries the usage of terminated children.
//
// The underlying counters are cumulative for the whole process, so the
// result is only attributable to a single child if that child is the only
// one ever reaped by this process.
type Provider interface {
	QueryChildrenUsage() (*ResourceUsage, error)
}

// Platform describes the unit the OS uses for the peak resident set size.
type Platform int

const (
	// Linux and the BSDs report ru_maxrss in kibibytes.
	PlatformKibibytes Platform = iota
	// Darwin reports ru_maxrss in bytes.
	PlatformBytes
)

func (p Platform) String() string {
	if p == PlatformBytes {
		return "bytes"
	}
	return "kibibytes"
}

// CurrentPlatform resolves the RSS unit for the running OS.
func CurrentPlatform() Platform {
	return PlatformFor(runtime.GOOS)
}

func PlatformFor(goos string) Platform {
	if lo.Contains([]string{"darwin", "ios"}, goos) {
		return PlatformBytes
	}
	return PlatformKibibytes
}

// ScaleRSS converts a raw ru_maxrss value into bytes.
func ScaleRSS(raw int64, platform Platform) uint64 {
	if raw <= 0 {
		return 0
	}
	return uint64(raw) * lo.Ternary[uint64](platform == PlatformBytes, 1, 1024)
}

// TimevalDuration converts a seconds and microseconds pair into a duration.
func TimevalDuration(sec, usec int64) time.Duration {
	return time.Duration(sec)*time.Second + time.Duration(usec)*time.Microsecond
}
