package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigureLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	Configure(l, &buf, "warn")

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Expected info suppressed at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("Expected warn line in output")
	}
}

func TestConfigureInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	Configure(l, &buf, "chatty")

	if l.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, got %s", l.GetLevel())
	}
	if !strings.Contains(buf.String(), "Invalid log level") {
		t.Error("Expected warning about invalid level")
	}
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shree.log")
	closeLog, err := Init(path, "debug")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	Log.Debug("booting")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
	Log = newDiscardLogger()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "booting") {
		t.Errorf("Expected log line in file, got %q", data)
	}
}
