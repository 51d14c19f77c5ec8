package execute

import (
	"fmt"
	"io"
	"time"

	"github.com/darkyzhou/seele/timej/cmd/timej/rusage"
)

const bytesPerMegabyte = 1024 * 1024

var durationUnits = []struct {
	size   time.Duration
	suffix string
}{
	{time.Second, "s"},
	{time.Millisecond, "ms"},
	{time.Microsecond, "µs"},
	{time.Nanosecond, "ns"},
}

// formatDuration renders d with two decimals in the largest unit that keeps
// the integer part non-zero, rounding half up.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	unit := durationUnits[len(durationUnits)-1]
	for _, u := range durationUnits {
		if d >= u.size {
			unit = u
			break
		}
	}

	whole, rem := d/unit.size, d%unit.size
	frac := (rem*100 + unit.size/2) / unit.size
	if frac == 100 {
		whole++
		frac = 0
	}
	return fmt.Sprintf("%d.%02d%s", int64(whole), int64(frac), unit.suffix)
}

func formatMegabytes(bytes uint64) string {
	return fmt.Sprintf("%.2f", float64(bytes)/bytesPerMegabyte)
}

// writeUsage prints the report block. Errors writing to the diagnostic
// stream are ignored.
func writeUsage(w io.Writer, wallTime time.Duration, usage *rusage.ResourceUsage) {
	_, _ = fmt.Fprintf(w, "\nreal %s\ncpu  %s (%s user + %s sys)\nrss  %smb\n",
		formatDuration(wallTime),
		formatDuration(usage.User+usage.System),
		formatDuration(usage.User),
		formatDuration(usage.System),
		formatMegabytes(usage.MaxRSSBytes),
	)
}
