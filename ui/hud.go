package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KindRow is one faction's line in the HUD.
type KindRow struct {
	Name  string
	Count int
	Color rl.Color
}

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Tick      int32
	SimTime   float64
	Speed     int
	FPS       int32
	Paused    bool
	Kinds     []KindRow
	Total     int
	Diversity float64
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		width:    240,
	}
}

// Draw renders the HUD panel in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	pad := r.Theme.Padding
	lh := r.Theme.LineHeight

	height := pad*2 + lh*4 + int32(len(data.Kinds))*(lh+2) + 8
	r.DrawPanel(pad, pad, h.width, height)

	x := pad * 2
	y := pad * 2

	y = r.DrawSectionHeader(x, y, data.Title) + 4

	rl.DrawText(
		fmt.Sprintf("Tick: %d | %.1fs | %dx | FPS: %d", data.Tick, data.SimTime, data.Speed, data.FPS),
		x, y, 12, rl.LightGray,
	)
	y += lh

	for _, k := range data.Kinds {
		y = r.DrawShareBar(x, y, k.Name, k.Count, data.Total, k.Color, h.width-pad*2)
	}

	y = r.DrawLabelValue(x, y, "Diversity", fmt.Sprintf("%.3f", data.Diversity))

	// Status
	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, x, y, r.Theme.FontSize, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
