package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRedactValues(t *testing.T) {
	got := redactValues(`SELECT * FROM "session_values" WHERE key = 'user' AND value = 'a''b'`)

	assert.Equal(t, `SELECT * FROM "session_values" WHERE key = '***' AND value = '***''***'`, got)
	assert.NotContains(t, got, "user")
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1 WHERE key = 'role'", 1 }

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		wantMsg string
	}{
		{name: "record not found ignored", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "fast query quiet", begin: time.Now()},
		{name: "failure", begin: time.Now(), err: errors.New("connection reset"), wantMsg: "Session query failed"},
		{name: "slow", begin: time.Now().Add(-time.Second), wantMsg: "Slow session query"},
		{name: "debug logs everything", debug: true, begin: time.Now(), wantMsg: "Session query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			newGormSlogLogger(base, cfg).Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.wantMsg == "" {
				assert.Zero(t, buf.Len())

				return
			}

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.wantMsg, line["msg"])
			assert.Equal(t, "SELECT 1 WHERE key = '***'", line["sql"])
			assert.Equal(t, "session_store", line["component"])
		})
	}
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	l.Info(context.Background(), "hello %s", "world")

	assert.Zero(t, buf.Len())
}
