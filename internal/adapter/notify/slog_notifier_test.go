package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-planner/internal/core/port"
)

func TestSlogNotifierLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n := NewSlogNotifier(logger)

	n.Notify(context.Background(), port.Notification{Level: port.NotifyWarning, Command: "create", Message: "scheduling blocked"})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "scheduling blocked", line["msg"])
	assert.Equal(t, "create", line["command"])
	assert.Equal(t, "notifier", line["component"])

	buf.Reset()
	n.Notify(context.Background(), port.Notification{Level: port.NotifyError, Command: "undo", Message: "boom"})
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
}
