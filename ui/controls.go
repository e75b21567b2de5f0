package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Speed limits for the steps-per-update slider.
const (
	MinSpeed = 1
	MaxSpeed = 10
)

// ControlsState is what the user asked for through the panel this frame.
type ControlsState struct {
	Paused   bool
	Speed    int
	Snapshot bool
}

// ControlsPanel renders the pause button, speed slider and snapshot button.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		width:    width,
	}
}

// Draw renders the panel in the top-right corner and returns the updated state.
func (c *ControlsPanel) Draw(screenWidth int32, state ControlsState) ControlsState {
	r := c.renderer
	pad := r.Theme.Padding
	lh := r.Theme.LineHeight

	x := screenWidth - c.width - pad
	y := pad
	r.DrawPanel(x, y, c.width, lh*3+pad*3+30)

	px := float32(x + pad)
	py := float32(y + pad)
	inner := float32(c.width - pad*2)

	if gui.Button(rl.Rectangle{X: px, Y: py, Width: inner/2 - 4, Height: 24}, toggleText(state.Paused, "Resume", "Pause")) {
		state.Paused = !state.Paused
	}
	if gui.Button(rl.Rectangle{X: px + inner/2 + 4, Y: py, Width: inner/2 - 4, Height: 24}, "Snapshot") {
		state.Snapshot = true
	}
	py += 34

	rl.DrawText(fmt.Sprintf("Speed: %dx", state.Speed), int32(px), int32(py), r.Theme.FontSize, r.Theme.LabelColor)
	py += float32(lh)
	speed := gui.SliderBar(
		rl.Rectangle{X: px + 16, Y: py, Width: inner - 40, Height: 16},
		fmt.Sprint(MinSpeed), fmt.Sprint(MaxSpeed),
		float32(state.Speed), MinSpeed, MaxSpeed,
	)
	state.Speed = clampSpeed(int(speed + 0.5))

	return state
}

func clampSpeed(s int) int {
	if s < MinSpeed {
		return MinSpeed
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
