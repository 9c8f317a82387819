package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eugenmik/bulk-image-resizer/batch"
)

func TestBar(t *testing.T) {
	var buf bytes.Buffer
	b := NewBar(&buf)

	b.Set(50)
	assert.Contains(t, buf.String(), "\r  [====================                    ]  50%")

	b.Set(250)
	assert.Equal(t, 100, b.Percent())
	assert.True(t, strings.HasSuffix(buf.String(), "] 100%"))

	b.Set(-3)
	assert.Equal(t, 0, b.Percent())

	b.Finish()
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestNilBar(t *testing.T) {
	var b *Bar
	assert.NotPanics(t, func() {
		b.Set(10)
		b.Clear()
		b.Redraw()
		b.Finish()
	})
	assert.Zero(t, b.Percent())
}

func TestRender(t *testing.T) {
	ev := make(chan batch.Event, 8)
	ev <- batch.Event{Kind: batch.EventLog, Text: "Processed: a.jpg"}
	ev <- batch.Event{Kind: batch.EventProgress, Percent: 50}
	ev <- batch.Event{Kind: batch.EventLog, Text: "Error with b.jpg: bad"}
	ev <- batch.Event{Kind: batch.EventProgress, Percent: 100}
	ev <- batch.Event{Kind: batch.EventLog, Text: batch.MsgCompleted}
	ev <- batch.Event{Kind: batch.EventDone}
	close(ev)

	var out, status bytes.Buffer
	bar := NewBar(&status)
	require.NoError(t, Render(ev, &out, bar))

	assert.Equal(t, "Processed: a.jpg\nError with b.jpg: bad\nConversion completed.\n", out.String())
	assert.Contains(t, status.String(), " 50%")
	assert.Contains(t, status.String(), "100%")
	assert.True(t, strings.HasSuffix(status.String(), "\n"))
}

func TestRenderQuiet(t *testing.T) {
	ev := make(chan batch.Event, 2)
	ev <- batch.Event{Kind: batch.EventLog, Text: batch.MsgNoImages}
	ev <- batch.Event{Kind: batch.EventDone}
	close(ev)

	var out bytes.Buffer
	require.NoError(t, Render(ev, &out, nil))
	assert.Equal(t, batch.MsgNoImages+"\n", out.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderWriteError(t *testing.T) {
	ev := make(chan batch.Event, 1)
	ev <- batch.Event{Kind: batch.EventLog, Text: "x"}
	close(ev)
	assert.Error(t, Render(ev, failWriter{}, nil))
}
