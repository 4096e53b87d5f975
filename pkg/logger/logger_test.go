package logger

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		log, err := New("production", tt.level)
		if err != nil {
			t.Fatalf("New(%q) error: %v", tt.level, err)
		}
		if log.GetLevel() != tt.want {
			t.Errorf("New(%q) level = %v, want %v", tt.level, log.GetLevel(), tt.want)
		}
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("production", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNew_WritesJSON(t *testing.T) {
	var buf strings.Builder
	log, err := New("production", "info", &buf)
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Str("op", "send").Msg("done")

	out := buf.String()
	if !strings.Contains(out, `"op":"send"`) || !strings.Contains(out, `"message":"done"`) {
		t.Errorf("unexpected output: %s", out)
	}
}
