package main

import (
	"fmt"
	"io"
	"os"

	"github.com/darkyzhou/seele/timej/cmd/timej/entities"
	"github.com/darkyzhou/seele/timej/cmd/timej/execute"
	"github.com/darkyzhou/seele/timej/cmd/timej/rusage"
	"github.com/darkyzhou/seele/timej/cmd/timej/utils"
	"github.com/sirupsen/logrus"
)

// exitFailure is returned for every failure, whether timej's own or the child's.
const exitFailure = 255

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.ErrorLevel)
}

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stderr))
}

func run(args []string, environ []string, diag io.Writer) int {
	config, err := utils.LoadConfig(environ)
	if err != nil {
		logrus.WithError(err).Warn("Error loading the config, using defaults")
		config = &entities.TimejConfig{}
	}
	if config.DebugEnabled() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	invocation, err := execute.NewInvocation(args)
	if err != nil {
		return fail(diag, err)
	}

	report, err := execute.Execute(invocation, rusage.NewGetrusage(), diag)
	if report != nil && config.ReportFile != "" {
		if err := utils.WriteReport(config.ReportFile, report); err != nil {
			logrus.WithError(err).Error("Error writing the report file")
		}
	}
	if err != nil {
		return fail(diag, err)
	}
	return 0
}

func fail(diag io.Writer, err error) int {
	if execute.IsChildFailure(err) {
		_, _ = fmt.Fprintln(diag)
	}
	_, _ = fmt.Fprintln(diag, err)
	return exitFailure
}
