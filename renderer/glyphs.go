package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rps/camera"
	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/systems"
)

var glyphOutline = color.RGBA{R: 20, G: 20, B: 20, A: 255}

// KindColor returns the glyph colour for a kind.
func KindColor(k components.Kind) color.RGBA {
	switch k {
	case components.KindRock:
		return color.RGBA{R: 140, G: 140, B: 140, A: 255}
	case components.KindPaper:
		return color.RGBA{R: 245, G: 245, B: 245, A: 255}
	case components.KindScissors:
		return color.RGBA{R: 220, G: 40, B: 40, A: 255}
	}
	return rl.Magenta
}

// DrawAgent draws one agent centred on its position. size is the glyph edge
// length in world units.
func DrawAgent(cam *camera.Camera, a systems.AgentState, size float32) {
	sx, sy := cam.WorldToScreen(float32(a.X), float32(a.Y))
	s := size * cam.Zoom
	half := s / 2
	fill := KindColor(a.Kind)

	switch a.Kind {
	case components.KindRock:
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, half, fill)
		rl.DrawCircleLines(int32(sx), int32(sy), half, glyphOutline)

	case components.KindPaper:
		rec := rl.Rectangle{X: sx - half, Y: sy - half, Width: s, Height: s}
		rl.DrawRectangleRec(rec, fill)
		rl.DrawRectangleLinesEx(rec, 1, glyphOutline)

	case components.KindScissors:
		// Counter-clockwise on screen, as raylib requires.
		top := rl.Vector2{X: sx, Y: sy - half}
		left := rl.Vector2{X: sx - half, Y: sy + half}
		right := rl.Vector2{X: sx + half, Y: sy + half}
		rl.DrawTriangle(top, left, right, fill)
		rl.DrawTriangleLines(top, left, right, glyphOutline)
	}
}
