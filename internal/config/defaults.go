package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 600x600 board of 50-unit cells,
// snake at (50,50) moving every 200ms, food at (100,100).
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:    600,
			Height:   600,
			CellSize: 50,
		},
		Snake: SnakeConfig{
			StartX:         50,
			StartY:         50,
			MoveIntervalMS: 200,
		},
		Food: FoodConfig{
			StartX:      100,
			StartY:      100,
			Width:       50,
			Height:      50,
			MaxAttempts: 10000,
		},
		Render: RenderConfig{
			FPS: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
