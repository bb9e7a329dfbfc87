package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitRejectsUnknownLevel(t *testing.T) {
	err := Init("loud", true)
	require.Error(t, err)
	assert.ErrorContains(t, err, "loud")
}

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &logger{zap: zap.New(core)}

	ctx := WithRequestID(context.Background(), "req-1")
	l.Info(ctx, "hello", String("k", "v"))
	l.Info(context.Background(), "no id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestRequestIDEmptyContext(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
}
