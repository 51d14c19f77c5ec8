package execute

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/darkyzhou/seele/timej/cmd/timej/entities"
	"github.com/darkyzhou/seele/timej/cmd/timej/rusage"
	"github.com/darkyzhou/seele/timej/cmd/timej/utils"
	"github.com/sirupsen/logrus"
)

// NewInvocation splits the command line into the program and its arguments.
func NewInvocation(args []string) (*entities.Invocation, error) {
	if len(args) == 0 {
		return nil, ErrMissingProgram
	}

	return &entities.Invocation{
		Program: args[0],
		Args:    append([]string(nil), args[1:]...),
	}, nil
}

// Execute runs the invocation with inherited stdio and environment, waits for
// it, and prints the usage report to diag.
//
// The report is returned whenever it was printed, which includes runs where
// the child exited non-zero or was signaled. In that case the returned error
// is a *NonZeroExitError or ErrSignaled.
func Execute(invocation *entities.Invocation, provider rusage.Provider, diag io.Writer) (*entities.ExecutionReport, error) {
	logger := logrus.WithFields(logrus.Fields{
		"id":      utils.TimejInstanceId,
		"program": invocation.Program,
	})

	cmd := exec.Command(invocation.Program, invocation.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	wallTimeBegin := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Program: invocation.Program, Err: err}
	}
	logger.WithField("pid", cmd.Process.Pid).Debug("Command started")

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("Error waiting for the command: %w", err)
		}
	}
	wallTime := time.Since(wallTimeBegin)

	usage, err := provider.QueryChildrenUsage()
	if err != nil {
		logger.WithError(err).Debug("Error querying the children usage")
		return nil, ErrResourceQuery
	}

	writeUsage(diag, wallTime, usage)

	outcome := resolveOutcome(cmd.ProcessState)
	logger.WithFields(logrus.Fields{
		"status":   outcome.Status(),
		"code":     outcome.Code,
		"wall":     wallTime,
		"user":     usage.User,
		"sys":      usage.System,
		"maxrss_b": usage.MaxRSSBytes,
	}).Debug("Command finished")

	return makeExecutionReport(invocation, outcome, wallTime, usage), outcome.Err()
}
