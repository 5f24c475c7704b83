package chatgpt

import "fmt"

// DecodeError reports a stream frame that carried a payload which failed
// JSON decoding. The frame is never retried or skipped.
type DecodeError struct {
	Line string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode frame %q: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError reports an HTTP or read failure that is not the disguised
// completion sentinel. Status is the HTTP status code when one was received,
// 0 otherwise.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport: status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
