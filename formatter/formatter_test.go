package formatter

import (
	"errors"
	"strings"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/philipp01105/levelog/core"
)

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	r := &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Label:   "src/app.go",
		Message: "test message",
	}

	got := f.Format(r)
	want := "[2026-02-18T13:00:00.000Z] [INFO] [src/app.go] - test message"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatter_Levels(t *testing.T) {
	f := NewTextFormatter(Config{})

	for _, l := range core.Levels() {
		r := &core.Record{Time: time.Now().UTC(), Level: l, Message: "m"}
		got := f.Format(r)
		if !strings.Contains(got, "["+l.Upper()+"]") {
			t.Errorf("Expected '[%s]' in output, got: %s", l.Upper(), got)
		}
		if !strings.HasSuffix(got, "[] - m") {
			t.Errorf("Expected empty label and message suffix, got: %s", got)
		}
	}
}

func TestTextFormatter_CustomTimestamp(t *testing.T) {
	f := NewTextFormatter(Config{TimestampFormat: time.RFC3339})

	r := &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.ErrorLevel,
		Message: "x",
	}
	if got := f.Format(r); !strings.HasPrefix(got, "[2026-02-18T13:00:00Z] [ERROR]") {
		t.Errorf("Unexpected header: %s", got)
	}
}

func TestTextFormatter_NoTrailingNewline(t *testing.T) {
	f := NewTextFormatter(Config{})
	r := &core.Record{Time: time.Now(), Level: core.WarnLevel, Message: "m"}
	if strings.HasSuffix(f.Format(r), "\n") {
		t.Error("Header line must not end with a newline")
	}
}

type point struct{ X, Y int }

type named string

func (n named) String() string { return "named:" + string(n) }

type nilErr struct{ msg string }

func (e *nilErr) Error() string { return e.msg }

type nilStringer struct{ s string }

func (n *nilStringer) String() string { return n.s }

func TestMessageString(t *testing.T) {
	tests := []struct {
		name string
		msg  any
		want string
	}{
		{"string", "hello", "hello"},
		{"nil", nil, "<nil>"},
		{"int", 42, "42"},
		{"error", errors.New("boom"), "boom"},
		{"stringer", named("a"), "named:a"},
		{"struct", point{1, 2}, "{1 2}"},
		{"nil error pointer", (*nilErr)(nil), "<nil>"},
		{"nil stringer pointer", (*nilStringer)(nil), "<nil>"},
		{"nil slice", []int(nil), "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MessageString(tt.msg); got != tt.want {
				t.Errorf("MessageString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsStructured(t *testing.T) {
	var nilMap map[string]int
	var nilPtr *point

	tests := []struct {
		name string
		msg  any
		want bool
	}{
		{"nil", nil, false},
		{"string", "s", false},
		{"int", 1, false},
		{"bool", true, false},
		{"float", 1.5, false},
		{"error", errors.New("e"), true},
		{"struct", point{}, true},
		{"pointer", &point{}, true},
		{"nil pointer", nilPtr, false},
		{"map", map[string]int{"a": 1}, true},
		{"nil map", nilMap, false},
		{"slice", []int{1}, true},
		{"array", [2]int{}, true},
		{"nil error pointer", (*nilErr)(nil), false},
		{"nil stringer pointer", (*nilStringer)(nil), false},
		{"error pointer", &nilErr{msg: "set"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStructured(tt.msg); got != tt.want {
				t.Errorf("IsStructured(%#v) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestVerboseDetail_StackTrace(t *testing.T) {
	err := pkgerrors.New("disk failure")

	got, ok := VerboseDetail{}.Detail(err)
	if !ok {
		t.Fatal("Expected error to be structured")
	}
	if !strings.HasPrefix(got, "disk failure") {
		t.Errorf("Expected message first, got: %s", got)
	}
	if !strings.Contains(got, "TestVerboseDetail_StackTrace") {
		t.Errorf("Expected stack trace with test function, got: %s", got)
	}
}

func TestVerboseDetail_Values(t *testing.T) {
	got, ok := VerboseDetail{}.Detail(point{X: 1, Y: 2})
	if !ok || got != "{X:1 Y:2}" {
		t.Errorf("Detail(point) = %q, %v", got, ok)
	}

	if _, ok := (VerboseDetail{}).Detail("plain"); ok {
		t.Error("Scalar messages must not produce a detail dump")
	}

	if _, ok := (VerboseDetail{}).Detail((*nilErr)(nil)); ok {
		t.Error("A nil error pointer must not produce a detail dump")
	}
}

func BenchmarkTextFormatter_Format(b *testing.B) {
	f := NewTextFormatter(Config{})
	r := &core.Record{
		Time:    time.Now().UTC(),
		Level:   core.InfoLevel,
		Label:   "src/server.go",
		Message: "request handled",
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Format(r)
	}
}
