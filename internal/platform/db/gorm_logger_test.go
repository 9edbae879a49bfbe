package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogger_Trace(t *testing.T) {
	t.Parallel()

	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name      string
		level     gormlogger.LogLevel
		begin     time.Time
		err       error
		wantMsg   string
		wantLevel zapcore.Level
	}{
		{name: "error is logged", level: gormlogger.Warn, begin: time.Now(), err: errors.New("boom"), wantMsg: "query failed", wantLevel: zapcore.ErrorLevel},
		{name: "record not found is ignored", level: gormlogger.Warn, begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "wrapped record not found is only traced at info", level: gormlogger.Info, begin: time.Now(), err: errors.Join(gorm.ErrRecordNotFound), wantMsg: "query", wantLevel: zapcore.DebugLevel},
		{name: "slow query warns", level: gormlogger.Warn, begin: time.Now().Add(-time.Second), wantMsg: "slow query", wantLevel: zapcore.WarnLevel},
		{name: "fast query silent at warn", level: gormlogger.Warn, begin: time.Now()},
		{name: "fast query traced at info", level: gormlogger.Info, begin: time.Now(), wantMsg: "query", wantLevel: zapcore.DebugLevel},
		{name: "silent drops errors", level: gormlogger.Silent, begin: time.Now(), err: errors.New("boom")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log, logs := observedLogger(zapcore.DebugLevel)
			l := newGormLogger(log, gormlogger.Warn).LogMode(tt.level)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.wantMsg == "" {
				assert.Zero(t, logs.Len())
				return
			}
			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.wantMsg, entries[0].Message)
				assert.Equal(t, tt.wantLevel, entries[0].Level)
				assert.Equal(t, "SELECT 1", entries[0].ContextMap()["sql"])
			}
		})
	}
}

func TestGormLogger_LogModeReturnsCopy(t *testing.T) {
	t.Parallel()

	base := newGormLogger(nil, gormlogger.Warn)
	_ = base.LogMode(gormlogger.Info)

	assert.Equal(t, gormlogger.Warn, base.level)
}
