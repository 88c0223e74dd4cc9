// Package fault is the contract-violation facility used by the view packages.
//
// Out-of-range indexing, access on an empty container, or writing through a
// read-only range are programmer errors, not recoverable conditions. Such
// violations are routed through a process-wide handler and never return to
// the violating call site: after the handler runs (or when no handler is
// installed) the violation panics. Accessors on a buffer that passed
// view.SizeBytesChecked never fault.
//
// A custom handler is mainly useful to add context before the process dies:
//
//	fault.SetHandler(func(msg string) {
//	    log.Printf("codec contract violation: %s", msg)
//	})
//
// Handlers may themselves panic or terminate the process; returning normally
// still panics.
package fault

import (
	"fmt"
	"sync/atomic"
)

// Handler receives the violation message before the process panics.
type Handler func(msg string)

var handler atomic.Pointer[Handler]

// SetHandler installs h as the process-wide violation handler and returns the
// previously installed handler, or nil. Passing nil removes the handler.
func SetHandler(h Handler) Handler {
	var prev *Handler
	if h == nil {
		prev = handler.Swap(nil)
	} else {
		prev = handler.Swap(&h)
	}
	if prev == nil {
		return nil
	}

	return *prev
}

// Reportf reports a contract violation. It never returns.
func Reportf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if h := handler.Load(); h != nil {
		(*h)(msg)
	}
	panic("sbekit: " + msg)
}

// Check reports a contract violation unless cond holds.
func Check(cond bool, msg string) {
	if !cond {
		Reportf("%s", msg)
	}
}
