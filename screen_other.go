//go:build !unix

package boxel

import "errors"

func getTerminalSize(int) (int, int, error) {
	return 0, 0, errors.New("terminal size query not supported")
}
