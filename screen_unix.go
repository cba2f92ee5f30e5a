//go:build unix

package boxel

import "golang.org/x/sys/unix"

// getTerminalSize queries the window size with TIOCGWINSZ.
func getTerminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
