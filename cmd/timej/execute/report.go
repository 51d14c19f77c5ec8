package execute

import (
	"os"
	"time"

	"github.com/darkyzhou/seele/timej/cmd/timej/entities"
	"github.com/darkyzhou/seele/timej/cmd/timej/rusage"
	"github.com/darkyzhou/seele/timej/cmd/timej/utils"
	"github.com/samber/lo"
)

const (
	STATUS_NORMAL           = "NORMAL"
	STATUS_RUNTIME_ERROR    = "RUNTIME_ERROR"
	STATUS_SIGNAL_TERMINATE = "SIGNAL_TERMINATE"
)

// Outcome is how the child terminated. Code is the exit code for a normal
// exit and 128+signal for a signaled child.
type Outcome struct {
	Signaled bool
	Code     int
	Signal   string
}

func resolveOutcome(state *os.ProcessState) Outcome {
	if code := state.ExitCode(); code >= 0 {
		return Outcome{Code: code}
	}

	signal, code := signalOf(state)
	return Outcome{Signaled: true, Code: code, Signal: signal}
}

// Err maps the outcome onto the error taxonomy, nil for a clean exit.
func (o Outcome) Err() error {
	switch {
	case o.Signaled:
		return ErrSignaled
	case o.Code != 0:
		return &NonZeroExitError{Code: o.Code}
	default:
		return nil
	}
}

func (o Outcome) Status() string {
	if o.Signaled {
		return STATUS_SIGNAL_TERMINATE
	}
	return lo.Ternary(o.Code == 0, STATUS_NORMAL, STATUS_RUNTIME_ERROR)
}

func makeExecutionReport(invocation *entities.Invocation, outcome Outcome, wallTime time.Duration, usage *rusage.ResourceUsage) *entities.ExecutionReport {
	return &entities.ExecutionReport{
		Id:              utils.TimejInstanceId,
		Command:         invocation.Argv(),
		Status:          outcome.Status(),
		ExitCode:        outcome.Code,
		Signal:          outcome.Signal,
		WallTimeUs:      uint64(wallTime.Microseconds()),
		CpuUserTimeUs:   uint64(usage.User.Microseconds()),
		CpuKernelTimeUs: uint64(usage.System.Microseconds()),
		MaxRssBytes:     usage.MaxRSSBytes,
	}
}
