package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"oip/account/internal/app/pkg/logger"
)

func newObservedGormLogger(level string) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(logger.NewFromZap(zap.New(core)), level, 100*time.Millisecond), logs
}

func traceSQL() (string, int64) {
	return "SELECT * FROM accounts", 1
}

func TestTraceLevels(t *testing.T) {
	ctx := context.Background()

	l, logs := newObservedGormLogger("warn")
	l.Trace(ctx, time.Now(), traceSQL, errors.New("boom"))
	l.Trace(ctx, time.Now(), traceSQL, gorm.ErrRecordNotFound)
	l.Trace(ctx, time.Now().Add(-time.Second), traceSQL, nil)
	l.Trace(ctx, time.Now(), traceSQL, nil)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel || entries[0].Message != "gorm query failed" {
		t.Fatalf("unexpected first entry %+v", entries[0].Entry)
	}
	if entries[1].Level != zapcore.WarnLevel || entries[1].Message != "gorm slow query" {
		t.Fatalf("unexpected second entry %+v", entries[1].Entry)
	}
}

func TestTraceSilent(t *testing.T) {
	l, logs := newObservedGormLogger("silent")
	l.Trace(context.Background(), time.Now(), traceSQL, errors.New("boom"))
	if logs.Len() != 0 {
		t.Fatalf("expected no entries, got %d", logs.Len())
	}
}

func TestLogModeReturnsCopy(t *testing.T) {
	l, logs := newObservedGormLogger("silent")
	verbose := l.LogMode(gormlogger.Info)

	verbose.Trace(context.Background(), time.Now(), traceSQL, nil)
	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry from info mode, got %d", logs.Len())
	}
	if l.level != gormlogger.Silent {
		t.Fatal("LogMode must not change the receiver")
	}
}
