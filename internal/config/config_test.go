package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	conf, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Config{Renderer: "ascii", LogLevel: "warn"}
	if conf != want {
		t.Errorf("Parse() = %+v, want %+v", conf, want)
	}
	if conf.Level() != slog.LevelWarn {
		t.Errorf("Level() = %v, want WARN", conf.Level())
	}
}

func TestParseFileThenFlags(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "conf.json")
	body := `{"input": "a.wkt", "renderer": "html", "width": 40, "height": 10, "log_level": "debug"}`
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	conf, err := Parse([]string{"-f", fn, "-r", "braille", "-H", "12"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Config{Input: "a.wkt", Renderer: "braille", Width: 40, Height: 12, LogLevel: "debug"}
	if conf != want {
		t.Errorf("Parse() = %+v, want %+v", conf, want)
	}
	if conf.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want DEBUG", conf.Level())
	}
}

func TestParsePositionalInput(t *testing.T) {
	chdir(t, t.TempDir())

	conf, err := Parse([]string{"-t", "shapes.geojson"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if conf.Input != "shapes.geojson" || !conf.Interactive {
		t.Errorf("Parse() = %+v, want input shapes.geojson, interactive", conf)
	}
}

func TestParseErrors(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{"missing explicit file", []string{"-f", "nope.json"}},
		{"unknown flag", []string{"-z"}},
		{"negative width", []string{"-W", "-3"}},
		{"bad level", []string{"-log", "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.args); err == nil {
				t.Errorf("Parse(%v) succeeded, want error", tt.args)
			}
		})
	}
}

func TestParseBadJSON(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, DefaultFile), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(nil); err == nil {
		t.Error("Parse() succeeded with a malformed default config file")
	}
}
