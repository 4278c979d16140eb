package logger

import (
	"fmt"
	"sync/atomic"
)

// The process-wide logger. Prefer passing a *Logger explicitly; the global
// exists for program entry points that have nowhere to thread one through.
var global atomic.Pointer[Logger]

// Init constructs and installs the process-wide logger. Returns an error
// if the configuration is invalid or a global logger is already installed.
func Init(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	if !global.CompareAndSwap(nil, l) {
		_ = l.Close()
		return fmt.Errorf("logger: already initialized")
	}
	return nil
}

// Default returns the process-wide logger, or nil before Init.
func Default() *Logger {
	return global.Load()
}

// Shutdown closes and uninstalls the process-wide logger. Safe to call
// without a prior Init.
func Shutdown() error {
	l := global.Swap(nil)
	if l == nil {
		return nil
	}
	return l.Close()
}
