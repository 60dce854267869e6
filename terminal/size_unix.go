//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"
)

// winsize queries the kernel for the terminal size of fd
func winsize(fd int) (int, int, bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}
