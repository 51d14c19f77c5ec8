//go:build !unix

package execute

import "os"

func signalOf(_ *os.ProcessState) (string, int) {
	return "", -1
}
