package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewTo_Level(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "DEBUG", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "WARN", want: slog.LevelWarn},
		{level: "nonsense", want: slog.LevelError},
		{level: "", want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewTo(&bytes.Buffer{}, tt.level, "json")
			if !l.Enabled(context.Background(), tt.want) {
				t.Errorf("level %s not enabled", tt.want)
			}
			if tt.want > slog.LevelDebug && l.Enabled(context.Background(), tt.want-4) {
				t.Errorf("level below %s unexpectedly enabled", tt.want)
			}
		})
	}
}

func TestNewTo_Format(t *testing.T) {
	var buf bytes.Buffer
	NewTo(&buf, "INFO", "json").Info("proxy server running", "port", "4000")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("json output not decodable: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "proxy server running" {
		t.Errorf("msg = %v", entry["msg"])
	}

	buf.Reset()
	NewTo(&buf, "INFO", "text").Info("proxy server running", "port", "4000")
	if !strings.Contains(buf.String(), `msg="proxy server running"`) {
		t.Errorf("text output = %q", buf.String())
	}
}
