package cli

import "fmt"

// UsageError marks mode-validation and autodetection failures. main maps it
// to exit code 2, per the tool's contract.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// fail reports a fatal configuration error on the error channel and returns
// the matching UsageError. The "[error]" prefix is part of the output
// contract.
func fail(globals *Globals, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if globals != nil {
		fmt.Fprintf(globals.Stderr, "[error] %s\n", msg)
	}
	return &UsageError{Message: msg}
}
