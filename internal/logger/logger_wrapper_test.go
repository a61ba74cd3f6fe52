package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leandrodaf/tmk/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (contracts.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLoggerFrom(zap.New(core)), logs
}

func TestLevelsAreFiltered(t *testing.T) {
	log, logs := newObserved()
	log.SetLevel(contracts.WarnLevel)

	log.Debug("debug")
	log.Info("info")
	log.Warn("warn")
	log.Error("error")

	if got := logs.Len(); got != 2 {
		t.Fatalf("got %d entries, want 2", got)
	}
	entries := logs.All()
	if entries[0].Level != zapcore.WarnLevel || entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("unexpected levels %v, %v", entries[0].Level, entries[1].Level)
	}
}

func TestFieldsAreRendered(t *testing.T) {
	log, logs := newObserved()

	log.Info("note",
		log.Field().Int("pitch", 60),
		log.Field().Error("error", errors.New("boom")),
	)

	msg := logs.All()[0].Message
	if !strings.Contains(msg, `"pitch":60`) {
		t.Errorf("message %q missing pitch field", msg)
	}
	if !strings.Contains(msg, `"error":"boom"`) {
		t.Errorf("message %q missing error field", msg)
	}
	if !strings.HasPrefix(msg, "logger_wrapper_test.go:") {
		t.Errorf("message %q should start with the caller", msg)
	}
}

func TestSetDestinationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmk.log")
	log := NewZapLogger()
	log.SetDestination(contracts.FileLog, path)
	log.Info("written to file")

	z := log.(*ZapLogger)
	_ = z.current().Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file does not contain the entry: %s", data)
	}
}

func TestSetDestinationFileWithoutPath(t *testing.T) {
	log := NewZapLogger()
	before := log.(*ZapLogger).current()
	log.SetDestination(contracts.FileLog)
	if log.(*ZapLogger).current() != before {
		t.Error("destination changed without a path")
	}
}
