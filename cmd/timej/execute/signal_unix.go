//go:build unix

package execute

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func signalOf(state *os.ProcessState) (string, int) {
	status, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !status.Signaled() {
		return "", -1
	}

	sig := status.Signal()
	return unix.SignalName(sig), int(sig) + 128
}
