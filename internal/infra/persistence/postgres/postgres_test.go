package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiffPoolStats(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: 100 * time.Millisecond}

	t.Run("no new waits", func(t *testing.T) {
		_, ok := diffPoolStats(prev, prev)
		assert.False(t, ok)
	})

	t.Run("short waits log at debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: 110 * time.Millisecond, InUse: 4}

		wait, ok := diffPoolStats(prev, cur)
		assert.True(t, ok)
		assert.Equal(t, int64(2), wait.count)
		assert.Equal(t, 10*time.Millisecond, wait.duration)
		assert.Equal(t, slog.LevelDebug, wait.level())
		assert.Equal(t, "avg_wait", wait.attrs()[2].Key)
		assert.Equal(t, 5*time.Millisecond, wait.attrs()[2].Value.Duration())
	})

	t.Run("long waits log at warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: 200 * time.Millisecond}

		wait, ok := diffPoolStats(prev, cur)
		assert.True(t, ok)
		assert.Equal(t, slog.LevelWarn, wait.level())
	})
}
