package dock

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel}))
	defer SetLogger(nil)

	Logger().Warn("icon load failed", "path", "x.ico")
	if !strings.Contains(buf.String(), "icon load failed") {
		t.Errorf("log output = %q", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("nil logger should discard, got %q", buf.String())
	}
}
