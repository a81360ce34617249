package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_TagsServiceAndEnv(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "storefront"
	cfg.Env.Env = "test"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "storefront", entry["service"])
	assert.Equal(t, "test", entry["env"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestFromContext(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, FromContext(ctx, fallback))

	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}
