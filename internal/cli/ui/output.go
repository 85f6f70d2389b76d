package ui

import (
	"fmt"
	"io"
	"os"
)

// Stdout and Stderr are the CLI's output streams; tests swap them
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Output writes formatted text to stdout
func Output(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, format, args...)
}

// OutputLine writes a formatted line to stdout
func OutputLine(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, format+"\n", args...)
}

// Error writes a failure message to stderr
func Error(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, "%s %s\n", ErrorIcon, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

// Success writes a confirmation to stdout
func Success(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, "%s %s\n", SuccessIcon, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

// Info writes an informational message to stdout
func Info(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, "%s %s\n", InfoIcon, InfoStyle.Render(fmt.Sprintf(format, args...)))
}

// Warning writes a warning to stderr
func Warning(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, "%s %s\n", WarningIcon, WarningStyle.Render(fmt.Sprintf(format, args...)))
}

// Code prints a generated code on its own line
func Code(code string) {
	fmt.Fprintln(Stdout, CodeStyle.Render(code))
}
