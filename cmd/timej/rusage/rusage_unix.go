//go:build unix

package rusage

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Getrusage is the Provider backed by getrusage(2) with RUSAGE_CHILDREN.
type Getrusage struct {
	Platform Platform
}

func NewGetrusage() *Getrusage {
	return &Getrusage{Platform: CurrentPlatform()}
}

func (g *Getrusage) QueryChildrenUsage() (*ResourceUsage, error) {
	var usage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_CHILDREN, &usage); err != nil {
		return nil, fmt.Errorf("getrusage(RUSAGE_CHILDREN): %w", err)
	}

	// These integer casts aren't redundant on 32-bit arches
	return &ResourceUsage{
		User:        TimevalDuration(int64(usage.Utime.Sec), int64(usage.Utime.Usec)),
		System:      TimevalDuration(int64(usage.Stime.Sec), int64(usage.Stime.Usec)),
		MaxRSSBytes: ScaleRSS(int64(usage.Maxrss), g.Platform),
	}, nil
}
