//go:build unix

package device

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminalSize reads the controlling terminal's dimensions.
// Falls back to a conservative 80x24 when no tty is attached
func terminalSize() (int, int) {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
		if err == nil && ws.Col > 0 && ws.Row > 0 {
			return int(ws.Col), int(ws.Row)
		}
	}
	return 80, 24
}

// memoryHintMB returns total host memory in MB, 0 when unavailable
func memoryHintMB() int {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}
	return int(uint64(info.Totalram) * uint64(info.Unit) / (1 << 20))
}
