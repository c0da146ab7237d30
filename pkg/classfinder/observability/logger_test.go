package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a debug-level JSON logger writing into buf.
func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// decodeRecords parses each JSON log line written into buf.
func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestEnrichLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := EnrichLogger(newTestLogger(&buf), "handlers", "scan-123")
	logger.Info("scanning")

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "handlers", records[0]["registry"])
	assert.Equal(t, "scan-123", records[0]["scan_id"])
}

func TestEnrichLoggerNil(t *testing.T) {
	assert.Nil(t, EnrichLogger(nil, "handlers", "scan-123"))
}

func TestLogScanComplete(t *testing.T) {
	var buf bytes.Buffer
	LogScanComplete(newTestLogger(&buf), 2, 5, 1.5)

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "index scan completed", records[0]["msg"])
	assert.Equal(t, float64(2), records[0]["resources"])
	assert.Equal(t, float64(5), records[0]["classes"])
}

func TestLogEmptyIndexWarns(t *testing.T) {
	var buf bytes.Buffer
	LogEmptyIndex(newTestLogger(&buf), "META-INF/classfinder/missing")

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "WARN", records[0]["level"])
	assert.Equal(t, "META-INF/classfinder/missing", records[0]["path"])
}

func TestLogUnresolvedNameWarns(t *testing.T) {
	var buf bytes.Buffer
	LogUnresolvedName(newTestLogger(&buf), "root[0]/META-INF/classfinder/x", "com.example.Gone")

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "WARN", records[0]["level"])
	assert.Equal(t, "com.example.Gone", records[0]["type"])
}

func TestLogHelpersTolerateNilLogger(t *testing.T) {
	// None of these may panic with a nil logger.
	LogScanStart(nil, "p")
	LogScanComplete(nil, 0, 0, 0)
	LogScanError(nil, assert.AnError)
	LogEmptyIndex(nil, "p")
	LogUnresolvedName(nil, "o", "n")
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, done(), float64(0))
}
