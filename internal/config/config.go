// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for a snake game.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Snake  SnakeConfig  `yaml:"snake"`
	Food   FoodConfig   `yaml:"food"`
	Growth GrowthConfig `yaml:"growth"`
	Render RenderConfig `yaml:"render"`
}

// BoardConfig defines the board geometry in board units.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SnakeConfig defines the snake's start cell and pace.
type SnakeConfig struct {
	StartX         int `yaml:"start_x"`
	StartY         int `yaml:"start_y"`
	MoveIntervalMS int `yaml:"move_interval_ms"`
}

// MoveInterval returns the move interval as a duration.
func (s SnakeConfig) MoveInterval() time.Duration {
	return time.Duration(s.MoveIntervalMS) * time.Millisecond
}

// FoodConfig defines the food's start cell, size and placement budget.
type FoodConfig struct {
	StartX      int `yaml:"start_x"`
	StartY      int `yaml:"start_y"`
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	MaxAttempts int `yaml:"max_attempts"` // Random samples before falling back to a scan
}

// GrowthConfig bounds the tail probe used when the snake grows.
type GrowthConfig struct {
	MaxProbe int `yaml:"max_probe"` // 0 means one probe per board cell
}

// RenderConfig defines frame scheduling for frontends.
type RenderConfig struct {
	FPS int `yaml:"fps"`
}

// Validate checks that the configuration describes a playable board.
func (c Config) Validate() error {
	var errs []error

	b := c.Board
	if b.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("board.cell_size must be positive, got %d", b.CellSize))
	} else {
		if b.Width <= 0 || b.Width%b.CellSize != 0 {
			errs = append(errs, fmt.Errorf("board.width must be a positive multiple of %d, got %d", b.CellSize, b.Width))
		}
		if b.Height <= 0 || b.Height%b.CellSize != 0 {
			errs = append(errs, fmt.Errorf("board.height must be a positive multiple of %d, got %d", b.CellSize, b.Height))
		}
		if !onBoard(b, c.Snake.StartX, c.Snake.StartY) {
			errs = append(errs, fmt.Errorf("snake start (%d,%d) is not a board cell", c.Snake.StartX, c.Snake.StartY))
		}
		if !onBoard(b, c.Food.StartX, c.Food.StartY) {
			errs = append(errs, fmt.Errorf("food start (%d,%d) is not a board cell", c.Food.StartX, c.Food.StartY))
		}
		if c.Food.StartX == c.Snake.StartX && c.Food.StartY == c.Snake.StartY {
			errs = append(errs, fmt.Errorf("food start (%d,%d) overlaps the snake start", c.Food.StartX, c.Food.StartY))
		}
	}

	if c.Snake.MoveIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("snake.move_interval_ms must be positive, got %d", c.Snake.MoveIntervalMS))
	}
	if c.Food.Width <= 0 || c.Food.Height <= 0 {
		errs = append(errs, fmt.Errorf("food size must be positive, got %dx%d", c.Food.Width, c.Food.Height))
	}
	if c.Food.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("food.max_attempts must not be negative, got %d", c.Food.MaxAttempts))
	}
	if c.Growth.MaxProbe < 0 {
		errs = append(errs, fmt.Errorf("growth.max_probe must not be negative, got %d", c.Growth.MaxProbe))
	}
	if c.Render.FPS <= 0 {
		errs = append(errs, fmt.Errorf("render.fps must be positive, got %d", c.Render.FPS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func onBoard(b BoardConfig, x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height && x%b.CellSize == 0 && y%b.CellSize == 0
}
