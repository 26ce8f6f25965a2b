// Package core holds process-level plumbing shared by every command:
// the crash handler that restores the terminal before a panic's stack
// trace hits the screen
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// finisher restores the terminal, typically tcell's Screen.Fini wrapped
// by the view command. Stored atomically because the crash path may run
// on any goroutine
var finisher atomic.Value // func()

// SetFinisher installs the terminal restore hook used on crash
func SetFinisher(fn func()) {
	finisher.Store(fn)
}

// HandleCrash resets the terminal and prints the panic with its stack
// trace, then exits. Called from recover sites; nil is a no-op
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn, ok := finisher.Load().(func()); ok && fn != nil {
		fn()
	} else {
		EmergencyReset(os.Stdout)
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery. Use instead of the
// go keyword anywhere a panic would otherwise leave the terminal in the
// alternate screen
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// EmergencyReset writes the raw escape sequences that leave the
// alternate screen, restore the cursor, and drop mouse reporting. Used
// when no finisher is installed
func EmergencyReset(w io.Writer) {
	// Exit alt screen, show cursor, reset attributes, disable mouse modes
	fmt.Fprint(w, "\x1b[?1049l\x1b[?25h\x1b[0m\x1b[?1000l\x1b[?1002l\x1b[?1006l")
}
