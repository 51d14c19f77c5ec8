package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

const reexecEnv = "TIMEJ_TEST_REEXEC"

func TestMain(m *testing.M) {
	if args, ok := os.LookupEnv(reexecEnv); ok {
		os.Args = append([]string{"timej"}, strings.Fields(args)...)
		main()
	}
	os.Exit(m.Run())
}

// runSelf re-executes the test binary as timej so the real exit status is observed.
func runSelf(t *testing.T, args ...string) (int, string) {
	t.Helper()
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), reexecEnv+"="+strings.Join(args, " "))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		t.Fatalf("running timej: %v", err)
	}
	return cmd.ProcessState.ExitCode(), stderr.String()
}

func TestExitStatus_Success(t *testing.T) {
	code, stderr := runSelf(t, "true")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\n%s", code, stderr)
	}
	for _, line := range []string{"\nreal ", "\ncpu  ", "\nrss  "} {
		if !strings.Contains(stderr, line) {
			t.Errorf("stderr = %q, want to contain %q", stderr, line)
		}
	}
}

func TestExitStatus_ChildFailure(t *testing.T) {
	code, stderr := runSelf(t, "false")
	if code != exitFailure {
		t.Fatalf("exit code = %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stderr, "\n\ncommand exited with non-zero code: 1\n") {
		t.Errorf("stderr = %q, want the non-zero code message after a blank line", stderr)
	}
}

func TestExitStatus_MissingProgram(t *testing.T) {
	code, stderr := runSelf(t)
	if code != exitFailure {
		t.Fatalf("exit code = %d, want %d", code, exitFailure)
	}
	if stderr != "missing program name\n" {
		t.Errorf("stderr = %q, want only the missing program message", stderr)
	}
}

func TestRun_SpawnFailure(t *testing.T) {
	var diag bytes.Buffer
	code := run([]string{"nonexistent-binary-xyz-123"}, nil, &diag)
	if code != exitFailure {
		t.Fatalf("exit code = %d, want %d", code, exitFailure)
	}
	out := diag.String()
	if !strings.HasPrefix(out, "failed to run command: ") {
		t.Errorf("diag = %q, want a spawn error", out)
	}
	if strings.Contains(out, "real ") || strings.Contains(out, "rss ") {
		t.Errorf("diag = %q, want no report block", out)
	}
}

func TestRun_Signaled(t *testing.T) {
	var diag bytes.Buffer
	code := run([]string{"sh", "-c", "kill -KILL $$"}, nil, &diag)
	if code != exitFailure {
		t.Fatalf("exit code = %d, want %d", code, exitFailure)
	}
	out := diag.String()
	if !strings.HasSuffix(out, "\n\ncommand was terminated by signal\n") {
		t.Errorf("diag = %q, want the signal message", out)
	}
	if strings.Contains(out, "non-zero code") {
		t.Errorf("diag = %q, want no exit code for a signaled child", out)
	}
}

func TestRun_UnusualDebugValue(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())

	var diag bytes.Buffer
	code := run([]string{"true"}, []string{"TIMEJ_DEBUG=yes"}, &diag)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\n%s", code, diag.String())
	}
	if !strings.Contains(diag.String(), "\nreal ") {
		t.Errorf("diag = %q, want the report", diag.String())
	}
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("log level = %v, want debug", logrus.GetLevel())
	}
}

func TestRun_ReportFileIsDirectory(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "ran")

	var diag bytes.Buffer
	code := run([]string{"touch", marker}, []string{"TIMEJ_REPORT_FILE=" + dir}, &diag)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\n%s", code, diag.String())
	}
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("child did not run: %v", err)
	}
	if !strings.Contains(diag.String(), "\nreal ") {
		t.Errorf("diag = %q, want the report", diag.String())
	}
}

func TestRun_ReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	var diag bytes.Buffer
	code := run([]string{"sh", "-c", "exit 3"}, []string{"TIMEJ_REPORT_FILE=" + path}, &diag)
	if code != exitFailure {
		t.Fatalf("exit code = %d, want %d", code, exitFailure)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	var report struct {
		Id       string   `json:"id"`
		Command  []string `json:"command"`
		Status   string   `json:"status"`
		ExitCode int      `json:"exit_code"`
	}
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("invalid report: %v", err)
	}
	if report.Status != "RUNTIME_ERROR" || report.ExitCode != 3 {
		t.Errorf("report = %+v, want RUNTIME_ERROR with exit code 3", report)
	}
	if report.Id == "" {
		t.Error("report id is empty")
	}
	if strings.Join(report.Command, " ") != "sh -c exit 3" {
		t.Errorf("command = %q, want the full argv", report.Command)
	}
}
