package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func statement() (string, int64) {
	return `SELECT * FROM "assets" WHERE id = 1`, 1
}

func TestGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, GormLevel("debug"))
	assert.Equal(t, gormlogger.Warn, GormLevel("info"))
	assert.Equal(t, gormlogger.Error, GormLevel("error"))
	assert.Equal(t, gormlogger.Silent, GormLevel("silent"))
}

func TestGormLogger_Trace(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), gormlogger.Warn, 100*time.Millisecond)
	ctx, _ := WithRequestID(context.Background(), zap.New(core), "req-9")

	gl.Trace(ctx, time.Now(), statement, nil)
	assert.Equal(t, 0, recorded.Len(), "fast statements are not logged at warn level")

	gl.Trace(ctx, time.Now().Add(-time.Second), statement, nil)
	gl.Trace(ctx, time.Now(), statement, gorm.ErrRecordNotFound)
	gl.Trace(ctx, time.Now(), statement, errors.New("deadlock detected"))

	entries := recorded.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "slow sql", entries[0].Message)
		assert.Equal(t, "req-9", entries[0].ContextMap()["request_id"])
		assert.Equal(t, "sql error", entries[1].Message)
	}
}

func TestGormLogger_LogModeDoesNotMutate(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), gormlogger.Silent, 0)

	verbose := gl.LogMode(gormlogger.Info)
	verbose.Trace(context.Background(), time.Now(), statement, nil)
	gl.Trace(context.Background(), time.Now(), statement, nil)

	assert.Equal(t, 1, recorded.FilterMessage("sql").Len())
}
