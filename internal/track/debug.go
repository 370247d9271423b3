package track

import (
	"io"
	"log"
)

var traceLogger *log.Logger

// SetLogWriter routes per-frame trace diagnostics to w. Pass nil to mute,
// which is the default.
func SetLogWriter(w io.Writer) {
	if w == nil {
		traceLogger = nil
		return
	}
	traceLogger = log.New(w, "[track] ", log.LstdFlags|log.Lmicroseconds)
}

func tracef(format string, args ...interface{}) {
	if traceLogger == nil {
		return
	}
	traceLogger.Printf(format, args...)
}
