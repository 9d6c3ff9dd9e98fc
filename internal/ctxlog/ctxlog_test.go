package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), FromContext(context.Background()), "a bare context falls back to the default logger")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	FromContext(With(ctx, "profile", "cuda")).Info("hello")
	assert.Contains(t, buf.String(), "profile=cuda")
	assert.Contains(t, buf.String(), "msg=hello")
}
