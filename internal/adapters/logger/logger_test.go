package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wojg58/Thursday/internal/core/port"
)

func TestSlogAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelInfo, IsJSON: true})

	log.WithFields(port.Fields{"component": "test"}).Error("boom", errors.New("bad"), port.Fields{"content_id": "1"})
	log.Debug("hidden", nil)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "boom", rec["msg"])
	assert.Equal(t, "test", rec["component"])
	assert.Equal(t, "1", rec["content_id"])
	assert.Equal(t, "bad", rec["error"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

type postedRecord struct {
	tag  string
	data map[string]interface{}
}

type fakeFluent struct {
	posts []postedRecord
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.posts = append(f.posts, postedRecord{tag: tag, data: message.(map[string]interface{})})
	return nil
}

func (f *fakeFluent) Close() error { return nil }

func TestFluentLoggerAdapter(t *testing.T) {
	client := &fakeFluent{}
	adapter, err := NewFluentLoggerAdapter(client, "tour-service", slog.LevelInfo)
	require.NoError(t, err)
	adapter.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }

	child := adapter.WithFields(port.Fields{"use_case": "AddBookmark"})
	child.Debug("skipped", nil)
	child.Warn("careful", port.Fields{"attempt": 2})

	require.Len(t, client.posts, 1)
	got := client.posts[0]
	assert.Equal(t, "tour-service.warn", got.tag)
	assert.Equal(t, "careful", got.data["message"])
	assert.Equal(t, "AddBookmark", got.data["use_case"])
	assert.Equal(t, 2, got.data["attempt"])
	assert.Equal(t, "2024-05-01T00:00:00Z", got.data["timestamp"])

	_, err = NewFluentLoggerAdapter(nil, "", nil)
	assert.Error(t, err)
}

func TestMultiLoggerAdapter(t *testing.T) {
	_, err := NewMultiLoggerAdapter(nil, nil)
	require.Error(t, err)

	single := NewSlogAdapter(SlogConfig{Writer: &bytes.Buffer{}})
	l, err := NewMultiLoggerAdapter(single, nil)
	require.NoError(t, err)
	assert.Same(t, single, l)

	client := &fakeFluent{}
	fluentLog, err := NewFluentLoggerAdapter(client, "", nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	multi, err := NewMultiLoggerAdapter(NewSlogAdapter(SlogConfig{Writer: &buf}), fluentLog)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"k": "v"}).Info("both", nil)
	assert.Contains(t, buf.String(), "both")
	require.Len(t, client.posts, 1)
	assert.Equal(t, "info", client.posts[0].tag)
}

func TestRabbitMQLogger_PairsBecomeFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewRabbitMQLogger(NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true}))

	log.Warn("channel closed", "exchange", "bookmarks", "attempt", 2, "dangling")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "channel closed", rec["msg"])
	assert.Equal(t, "bookmarks", rec["exchange"])
	assert.EqualValues(t, 2, rec["attempt"])
	assert.Equal(t, "dangling", rec["extra"])
}
