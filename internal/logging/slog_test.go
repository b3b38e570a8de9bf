package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger() (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newBufferLogger()
	ctx := context.Background()

	log.Info(ctx, "info msg", "k", "v")
	log.Warn(ctx, "warn msg")
	log.Error(ctx, "error msg")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "info msg")
	assert.Contains(t, out, "k=v")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newBufferLogger()

	child := log.With("component", "auth")
	child.Info(context.Background(), "hello")

	lines := strings.TrimSpace(buf.String())
	assert.Contains(t, lines, "component=auth")
}
