package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// CrashHandler restores the terminal and reports a recovered panic
type CrashHandler func(r any)

var crashHandler atomic.Pointer[CrashHandler]

// SetCrashHandler installs the handler used by Go for recovered panics
// Injected from main so core stays independent of the screen implementation
func SetCrashHandler(h CrashHandler) {
	if h == nil {
		crashHandler.Store(nil)
		return
	}
	crashHandler.Store(&h)
}

// HandleCrash routes a recovered panic to the installed handler, or prints and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if h := crashHandler.Load(); h != nil {
		(*h)(r)
		return
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// Go runs fn on a new goroutine whose panics reach the crash handler
// Engine loops, pollers and network pumps start through it instead of a bare go statement
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
