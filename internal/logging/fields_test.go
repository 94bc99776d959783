package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon(nil, "money-dungeon-web", "1.4.0")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "money-dungeon-web" {
		t.Fatalf("expected service attr, got %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "1.4.0" {
		t.Fatalf("expected version attr, got %+v", attrs[1])
	}
}

func TestWithCommonSkipsEmpty(t *testing.T) {
	attrs := WithCommon([]slog.Attr{slog.Int(FieldSections, 12)}, "", "")
	if len(attrs) != 1 || attrs[0].Key != FieldSections {
		t.Fatalf("expected original attrs preserved, got %+v", attrs)
	}
}

func TestWarnAttachesErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Output: &buf, Service: "money-dungeon-web"})

	Warn(logger, "metrics setup failed", errors.New("exporter unavailable"), FieldLocale, "en-US")
	out := buf.String()
	if !strings.Contains(out, `error="exporter unavailable"`) || !strings.Contains(out, "locale=en-US") {
		t.Fatalf("expected error and locale fields, got %q", out)
	}

	buf.Reset()
	Warn(logger, "message missing", nil, FieldFallback, true)
	if out := buf.String(); strings.Contains(out, FieldError+"=") || !strings.Contains(out, "message_fallback=true") {
		t.Fatalf("expected no error field for nil err, got %q", out)
	}
}
