package core

import (
	"fmt"
	"io"
	"os"
)

// Logger interface for kernel consumers that report progress
type Logger interface {
	Printf(format string, args ...interface{})
}

// WriterLogger implements Logger by formatting onto an io.Writer
type WriterLogger struct {
	out io.Writer
}

// Printf writes the formatted message; write errors are dropped like fmt.Printf does
func (wl *WriterLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(wl.out, format, args...)
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer) Logger {
	return &WriterLogger{out: w}
}

// NewDefaultLogger creates a logger writing to stdout
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout)
}
