//go:build !unix

package device

func terminalSize() (int, int) {
	return 80, 24
}

func memoryHintMB() int {
	return 0
}
