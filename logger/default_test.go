package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultFactory(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var out, errOut bytes.Buffer
	SetDefault(newTestFactory(&out, &errOut))

	if err := SetLevel("info"); err != nil {
		t.Fatal(err)
	}
	if err := SetErrorThreshold("warn"); err != nil {
		t.Fatal(err)
	}
	if GetLevel() != InfoLevel || GetErrorThreshold() != WarnLevel {
		t.Errorf("Package accessors = (%v, %v), want (info, warn)", GetLevel(), GetErrorThreshold())
	}
	if err := SetLevel("loud"); err == nil {
		t.Error("Expected error for unknown level")
	}

	FromModule(ModuleDescriptor{Filename: "/app/cmd/main.go"}).Warn("to stderr")
	New("/app/x.go").Info("to stdout")
	FromLabel("y").Debug("hidden")

	if !strings.Contains(errOut.String(), "[WARN] [cmd/main.go] - to stderr") {
		t.Errorf("Unexpected error sink output: %s", errOut.String())
	}
	if !strings.Contains(out.String(), "[INFO] [x.go] - to stdout") || strings.Contains(out.String(), "hidden") {
		t.Errorf("Unexpected normal sink output: %s", out.String())
	}

	SetUseRelativePath(false)
	if got := FromLabel("/app/x.go").Label(); got != "/app/x.go" {
		t.Errorf("Label() = %q with relative paths disabled", got)
	}
}

func TestDefaultFactory_Initialized(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default factory must be initialized in init()")
	}
}
