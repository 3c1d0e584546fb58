package errors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LogHandler is an ErrorHandler that writes one line per error.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives log lines. Nil means stderr.
	Out io.Writer
	// Ops limits logging to operations starting with one of these prefixes,
	// such as "widgets." or "config.". Empty logs everything.
	Ops []string
}

func (h *LogHandler) wants(op string) bool {
	if len(h.Ops) == 0 {
		return true
	}
	for _, prefix := range h.Ops {
		if strings.HasPrefix(op, prefix) {
			return true
		}
	}
	return false
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a DevMenuError.
func (h *LogHandler) HandleError(err *DevMenuError) {
	if err == nil || !h.wants(err.Op) {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[devmenu error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
		return
	}
	fmt.Fprintf(w, "[devmenu error] %s: %v\n", err.Op, err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil || !h.wants(err.Op) {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[devmenu panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[devmenu panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
