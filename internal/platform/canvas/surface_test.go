package canvas

import (
	"image/color"
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestTextOrigin(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		text   string
		align  core.Align
		wx, wy int
	}{
		{"left", 10, 20, "Score: 1", core.AlignLeft, 10, 20},
		{"center", 300, 300, "abcd", core.AlignCenter, 288, 292},
		{"center multibyte", 100, 100, "●●", core.AlignCenter, 94, 92},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := textOrigin(tc.x, tc.y, tc.text, tc.align)
			if x != tc.wx || y != tc.wy {
				t.Errorf("textOrigin() = (%d, %d), expected (%d, %d)", x, y, tc.wx, tc.wy)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	if got := RGBA(core.ColorDarkBlue); got != (color.RGBA{0, 0, 139, 255}) {
		t.Errorf("RGBA(DarkBlue) = %v", got)
	}
	if got := RGBA(core.Color(200)); got != (color.RGBA{255, 0, 255, 255}) {
		t.Errorf("RGBA(unknown) = %v, expected magenta", got)
	}
	for c := core.ColorDefault; c <= core.ColorDarkBlue; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette has no entry for color %d", c)
		}
	}
}

func TestKeyActionsCoverControls(t *testing.T) {
	seen := make(map[core.Action]int)
	for _, ka := range keyActions {
		seen[ka.Action]++
	}
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if seen[a] != 2 {
			t.Errorf("%v has %d keys, expected arrow and WASD", a, seen[a])
		}
	}
	if seen[core.ActionRestart] == 0 || seen[core.ActionQuit] == 0 {
		t.Error("restart and quit must be bound")
	}
}

func TestPressedActionsOrderIsStable(t *testing.T) {
	pressed := func(k ebiten.Key) bool {
		return k == ebiten.KeyA || k == ebiten.KeyArrowUp || k == ebiten.KeyR
	}
	want := []core.Action{core.ActionUp, core.ActionLeft, core.ActionRestart}

	for i := 0; i < 100; i++ {
		if got := pressedActions(pressed); !slices.Equal(got, want) {
			t.Fatalf("pressedActions() = %v, expected %v", got, want)
		}
	}
	if got := pressedActions(func(ebiten.Key) bool { return false }); len(got) != 0 {
		t.Errorf("pressedActions() with no keys = %v", got)
	}
}
