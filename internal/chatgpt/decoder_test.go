package chatgpt

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultReader serves data once, then fails every read with err.
type faultReader struct {
	data string
	err  error
	read bool
}

func (r *faultReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, r.data), nil
	}
	return 0, r.err
}

func TestDecoderYieldsEventsAndStopsAtSentinel(t *testing.T) {
	d := NewDecoder(strings.NewReader("data: {\"a\":1}\n\ndata: [DONE]\n"))

	event, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, ConversationResponse{"a": float64(1)}, event)

	_, err = d.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderSkipsKeepAliveLines(t *testing.T) {
	d := NewDecoder(strings.NewReader("\n\ndata: {\"a\":1}\n\n"))

	events, err := d.All()
	require.NoError(t, err)
	assert.Equal(t, []ConversationResponse{{"a": float64(1)}}, events)
}

func TestDecoderTreatsExhaustionAsCompletion(t *testing.T) {
	d := NewDecoder(strings.NewReader("data: {\"a\":1}\ndata: {\"a\":2}\n"))

	events, err := d.All()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, ConversationResponse{"a": float64(1)}, events[0])
	assert.Equal(t, ConversationResponse{"a": float64(2)}, events[1])
}

func TestDecoderMalformedFrame(t *testing.T) {
	d := NewDecoder(strings.NewReader("data: not-json\ndata: [DONE]\n"))

	_, err := d.Next()
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "data: not-json", decodeErr.Line)

	// a failed decoder is done; it never yields past the malformed frame
	_, err = d.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderDisguisedSentinelFault(t *testing.T) {
	r := &faultReader{
		data: "data: {\"a\":1}\n",
		err:  errors.New("data: [DONE]"),
	}
	d := NewDecoder(r)

	event, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, ConversationResponse{"a": float64(1)}, event)

	_, err = d.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderTransportFault(t *testing.T) {
	cause := errors.New("connection reset")
	d := NewDecoder(&faultReader{data: "data: {\"a\":1}\n", err: cause})

	_, err := d.Next()
	require.NoError(t, err)

	_, err = d.Next()
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, cause)
}

func TestDecoderSinglePass(t *testing.T) {
	d := NewDecoder(strings.NewReader("data: {\"a\":1}\n"))

	_, err := d.All()
	require.NoError(t, err)

	events, err := d.All()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDecoderAllFailsWithoutPartialResult(t *testing.T) {
	d := NewDecoder(strings.NewReader("data: {\"a\":1}\ndata: not-json\n"))

	events, err := d.All()
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Nil(t, events)
}
