package chatgpt

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

const (
	framePrefix  = "data:"
	doneSentinel = "data: [DONE]"
)

// Decoder reads newline-delimited conversation frames from a stream. Each
// meaningful frame is the 5-character marker "data:" followed by a JSON
// payload; empty lines are keep-alives and the line "data: [DONE]" ends the
// stream. A Decoder is single-pass: after any terminal outcome every further
// Next returns io.EOF.
type Decoder struct {
	scanner *bufio.Scanner
	done    bool
}

// NewDecoder returns a Decoder reading frames from r.
func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Decoder{scanner: scanner}
}

// Next returns the next decoded event. It returns io.EOF on clean
// termination: the explicit sentinel, exhaustion of the source, or a read
// fault whose message is exactly the sentinel (some transports surface the
// end marker as an error instead of a clean close). A malformed frame
// returns a *DecodeError, any other read fault a *TransportError.
func (d *Decoder) Next() (ConversationResponse, error) {
	if d.done {
		return nil, io.EOF
	}
	for d.scanner.Scan() {
		line := d.scanner.Text()
		if line == "" {
			continue
		}
		if strings.Contains(line, doneSentinel) {
			d.done = true
			return nil, io.EOF
		}
		payload := line
		if len(payload) >= len(framePrefix) {
			payload = payload[len(framePrefix):]
		}
		var event ConversationResponse
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			d.done = true
			return nil, &DecodeError{Line: line, Err: err}
		}
		return event, nil
	}
	d.done = true
	if err := d.scanner.Err(); err != nil {
		if err.Error() == doneSentinel {
			return nil, io.EOF
		}
		return nil, &TransportError{Err: err}
	}
	return nil, io.EOF
}

// All drains the decoder and returns the events in order. On a decode or
// transport failure it returns no events at all.
func (d *Decoder) All() ([]ConversationResponse, error) {
	var events []ConversationResponse
	for {
		event, err := d.Next()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
}
