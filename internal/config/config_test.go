package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.Board.Width != 600 || cfg.Board.Height != 600 || cfg.Board.CellSize != 50 {
		t.Errorf("board = %+v, expected 600x600/50", cfg.Board)
	}
	if cfg.Snake.MoveInterval() != 200*time.Millisecond {
		t.Errorf("MoveInterval() = %v, expected 200ms", cfg.Snake.MoveInterval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("snake:\n  move_interval_ms: 120\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Snake.MoveIntervalMS != 120 {
		t.Errorf("MoveIntervalMS = %d, expected 120", cfg.Snake.MoveIntervalMS)
	}
	if cfg.Board.Width != 600 {
		t.Errorf("untouched keys should keep defaults, board width = %d", cfg.Board.Width)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero cell size", func(c *Config) { c.Board.CellSize = 0 }, "cell_size"},
		{"width not multiple", func(c *Config) { c.Board.Width = 610 }, "board.width"},
		{"snake off grid", func(c *Config) { c.Snake.StartX = 55 }, "snake start"},
		{"food outside board", func(c *Config) { c.Food.StartY = 600 }, "food start"},
		{"food on snake start", func(c *Config) { c.Food.StartX, c.Food.StartY = c.Snake.StartX, c.Snake.StartY }, "overlaps the snake start"},
		{"zero interval", func(c *Config) { c.Snake.MoveIntervalMS = 0 }, "move_interval_ms"},
		{"negative probe", func(c *Config) { c.Growth.MaxProbe = -1 }, "max_probe"},
		{"zero fps", func(c *Config) { c.Render.FPS = 0 }, "fps"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 400\n  height: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 400 || cfg.Board.Height != 300 {
		t.Errorf("board = %+v, expected 400x300", cfg.Board)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("Load(missing) = %v, expected read error", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load(bad) = %v, expected parse error", err)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "cell_size: 50") {
		t.Errorf("Marshal() output missing cell_size:\n%s", data)
	}
}
