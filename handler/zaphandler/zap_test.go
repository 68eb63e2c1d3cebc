package zaphandler

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapSink_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	normal, errSink := NewZapPair(zap.New(core))

	normal.Print("[INFO] [app] - hello")
	errSink.Print("[ERROR] [app] - boom", 42, "x")

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Level != zapcore.InfoLevel || entries[0].Message != "[INFO] [app] - hello" {
		t.Errorf("Unexpected normal entry: %+v", entries[0].Entry)
	}
	if len(entries[0].Context) != 0 {
		t.Errorf("Expected no fields without extras, got %v", entries[0].Context)
	}

	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("Expected error level, got %v", entries[1].Level)
	}
	extra, ok := entries[1].ContextMap()["extra"].([]interface{})
	if !ok || len(extra) != 2 {
		t.Errorf("Expected extra field with 2 values, got %#v", entries[1].ContextMap()["extra"])
	}
}

func TestZapSink_DisabledLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	normal, _ := NewZapPair(zap.New(core))

	if err := normal.Print("ignored"); err != nil {
		t.Errorf("Print() error = %v", err)
	}
	if logs.Len() != 0 {
		t.Errorf("Expected no entries below the zap level, got %d", logs.Len())
	}
}

func TestZapSink_NilLogger(t *testing.T) {
	s := NewZapSink(nil, zapcore.InfoLevel)
	if err := s.Print("nop"); err != nil {
		t.Errorf("Print() error = %v", err)
	}
}
