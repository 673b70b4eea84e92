package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	crashMu       sync.Mutex
	crashFinisher func()
)

// SetCrashFinisher registers the cleanup run before a crash report is printed
// Typically the screen's Fini, so the report lands on a sane terminal
func SetCrashFinisher(fn func()) {
	crashMu.Lock()
	crashFinisher = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fin := crashFinisher
	crashFinisher = nil
	crashMu.Unlock()

	if fin != nil {
		fin()
	}

	stack := debug.Stack()
	log.Error().Interface("panic", r).Bytes("stack", stack).Msg("Crashed")

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCHASER CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
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
