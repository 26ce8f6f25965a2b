package device

import (
	"os"
	"strings"
)

// Reading holds one-shot raw capability observations. The terminal is the
// rendering device here, so GPU-style capabilities map onto terminal
// capabilities: truecolor support plays the role of the advanced API,
// cell count the role of max texture size, palette depth the role of the
// uniform budget
type Reading struct {
	TrueColor     bool     // Advanced API present
	Extensions    []string // Optional capability extensions (mouse, sync-output, ...)
	Cells         int      // Terminal cell budget (width * height)
	PaletteSize   int      // 256 or 16M color budget
	Vendor        string   // Terminal emulator identity
	MemoryMB      int      // Host memory hint, 0 when unknown
	Remote        bool     // SSH session; latency penalty
	SavedPerfMode bool     // A prior run forced performance mode
}

// Probe produces a capability reading. The shipped probe inspects the
// environment; tests inject fixtures
type Probe interface {
	Read() Reading
}

// EnvProbe reads capabilities from the process environment.
// No network or disk I/O beyond local syscalls
type EnvProbe struct{}

func (EnvProbe) Read() Reading {
	r := Reading{
		TrueColor:     detectTrueColor(),
		Vendor:        detectVendor(),
		Remote:        os.Getenv("SSH_CONNECTION") != "" || os.Getenv("SSH_TTY") != "",
		SavedPerfMode: os.Getenv("GALAXY_PERFORMANCE_MODE") == "1",
	}

	if r.TrueColor {
		r.PaletteSize = 1 << 24
	} else {
		r.PaletteSize = 256
	}

	w, h := terminalSize()
	r.Cells = w * h
	r.MemoryMB = memoryHintMB()
	r.Extensions = detectExtensions()
	return r
}

// detectTrueColor follows the usual emulator heuristics: COLORTERM first,
// then known emulator markers, then TERM itself
func detectTrueColor() bool {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return true
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return true
	}

	term := os.Getenv("TERM")
	return strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct")
}

func detectVendor() string {
	if v := os.Getenv("TERM_PROGRAM"); v != "" {
		return strings.ToLower(v)
	}
	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "":
		return "kitty"
	case os.Getenv("WEZTERM_PANE") != "":
		return "wezterm"
	case os.Getenv("ALACRITTY_WINDOW_ID") != "":
		return "alacritty"
	case os.Getenv("KONSOLE_VERSION") != "":
		return "konsole"
	case os.Getenv("ITERM_SESSION_ID") != "":
		return "iterm"
	}
	return os.Getenv("TERM")
}

func detectExtensions() []string {
	var ext []string
	term := os.Getenv("TERM")
	if strings.Contains(term, "256color") || detectTrueColor() {
		ext = append(ext, "extended-palette")
	}
	if os.Getenv("TERM_PROGRAM") != "" || os.Getenv("KITTY_WINDOW_ID") != "" {
		ext = append(ext, "emulator-identified")
	}
	if !strings.HasPrefix(term, "linux") && term != "" {
		ext = append(ext, "mouse")
	}
	return ext
}
