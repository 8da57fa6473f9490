package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &entry))
	return entry
}

// ── constructors ──

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "shopman-server")

	l.Info().Msg("started")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "shopman-server", entry["role"])
	assert.Equal(t, "started", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	l := NewClientLogger("shopman-client", dir)

	l.Info().Msg("queued")

	data, err := os.ReadFile(filepath.Join(dir, ClientLogFile))
	require.NoError(t, err)
	entry := decodeEntry(t, data)
	assert.Equal(t, "shopman-client", entry["role"])
	assert.Equal(t, "queued", entry["message"])
}

func TestNewClientLogger_UnusableDir(t *testing.T) {
	// a regular file in place of the directory
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	l := NewClientLogger("shopman-client", file)
	require.NotNil(t, l)
	l.Info().Msg("discarded")
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("nothing")

	assert.Empty(t, buf.String())
}

// ── derived loggers ──

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	parent.WithComponent("sync").Info().Msg("drain")

	assert.Equal(t, "sync", decodeEntry(t, buf.Bytes())["component"])
}

func TestGetChildLogger_DoesNotLeakFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "r").Logger()}

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", "abc")
	})

	child.Info().Msg("child")
	childEntry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "r", childEntry["role"])
	assert.Equal(t, "abc", childEntry["request_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, buf.Bytes()), "request_id")
}

// ── context helpers ──

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).With().Str("list_id", "l1").Logger()
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("ctx")
	assert.Equal(t, "l1", decodeEntry(t, buf.Bytes())["list_id"])

	buf.Reset()
	req := httptest.NewRequest("GET", "/", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("req")
	assert.Equal(t, "l1", decodeEntry(t, buf.Bytes())["list_id"])
}

func TestFromContext_Empty(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}
