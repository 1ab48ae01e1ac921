package cli

import (
	"bytes"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/asteroids"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return &f
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := parse(t).Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != asteroids.DefaultConfig() {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfigFileAndSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	if err := os.WriteFile(path, []byte(`{"width": 640, "seed": 3}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := parse(t, "-config", path).Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 640 || cfg.Seed != 3 {
		t.Errorf("cfg = %+v", cfg)
	}

	cfg, err = parse(t, "-config", path, "-seed", "9").Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 9 {
		t.Errorf("seed flag should override the file, got %d", cfg.Seed)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok || (tt.ok && got != tt.want) {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestLoggerInstalled(t *testing.T) {
	defer asteroids.SetLogger(nil)

	var buf bytes.Buffer
	if _, err := parse(t, "-log-level", "warn").Logger(&buf); err != nil {
		t.Fatal(err)
	}
	asteroids.Logger().Info("hidden")
	asteroids.Logger().Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("log output = %q", out)
	}
}
