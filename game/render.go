package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rps/camera"
	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/renderer"
	"github.com/pthm-cable/rps/telemetry"
	"github.com/pthm-cable/rps/ui"
)

const controlsLegend = "Space: pause | ,/.: speed | S: snapshot | Arrows/wheel: camera | Home: fit | F11: fullscreen"

// initRendering sets up the camera, background and UI. Requires an open window.
func (g *Game) initRendering() {
	cfg := g.cfg
	g.screenWidth = cfg.Derived.ScreenW32
	g.screenHeight = cfg.Derived.ScreenH32

	g.camera = camera.New(g.screenWidth, g.screenHeight, float32(cfg.Derived.WorldW), float32(cfg.Derived.WorldH))

	g.field = renderer.NewFieldBackground(int(cfg.Derived.WorldW), int(cfg.Derived.WorldH), cfg.Display.BackgroundCell, cfg.Display.BackgroundSeed)
	g.field.Init()

	g.hud = ui.NewHUD()
	g.banner = ui.NewWinnerBanner()
	g.controls = ui.NewControlsPanel(200)
}

// Draw renders the current frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.field.Draw(g.camera)
	g.drawAgents()
	g.drawUI()

	rl.EndDrawing()
}

// drawAgents draws every visible agent from a fresh read-only snapshot.
func (g *Game) drawAgents() {
	size := float32(g.cfg.Display.IconSize)
	g.agents = g.pop.SnapshotInto(g.agents)
	for _, a := range g.agents {
		if !g.camera.IsVisible(float32(a.X), float32(a.Y), size) {
			continue
		}
		renderer.DrawAgent(g.camera, a, size)
	}
}

// drawUI draws the HUD, the controls panel and, once decided, the winner banner.
func (g *Game) drawUI() {
	sw, sh := int32(g.screenWidth), int32(g.screenHeight)

	rows := make([]ui.KindRow, 0, components.NumKinds)
	for _, k := range components.Kinds {
		rows = append(rows, ui.KindRow{
			Name:  k.String(),
			Count: g.counts.Of(k),
			Color: renderer.KindColor(k),
		})
	}

	g.hud.Draw(ui.HUDData{
		Title:     "Rock Paper Scissors",
		Tick:      g.tick,
		SimTime:   float64(g.tick) * g.cfg.Derived.DT,
		Speed:     g.stepsPerUpdate,
		FPS:       rl.GetFPS(),
		Paused:    g.paused,
		Kinds:     rows,
		Total:     g.counts.Total(),
		Diversity: telemetry.Diversity(g.counts),
	})
	g.hud.DrawControls(sw, sh, controlsLegend)

	state := g.controls.Draw(sw, ui.ControlsState{Paused: g.paused, Speed: g.stepsPerUpdate})
	g.paused = state.Paused
	g.stepsPerUpdate = state.Speed
	if state.Snapshot {
		g.manualSnapshot()
	}

	if g.decided {
		g.banner.Draw(sw, sh, g.winner.String())
	}
}
