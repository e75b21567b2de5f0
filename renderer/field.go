// Package renderer draws the playing field and the agents on it.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/rps/camera"
)

// Grass palette, dark to light.
var (
	grassDark  = color.RGBA{R: 46, G: 94, B: 38, A: 255}
	grassLight = color.RGBA{R: 112, G: 168, B: 72, A: 255}
	grassDry   = color.RGBA{R: 150, G: 160, B: 84, A: 255}
)

// Noise frequencies in cycles per world unit.
const (
	patchFreq  = 1.0 / 260.0
	tuftFreq   = 1.0 / 40.0
	drynesFreq = 1.0 / 520.0
)

// FieldBackground renders the playing field as a procedural grass texture.
// One texel covers cell x cell world units; the texture is stretched over the
// field rectangle with bilinear filtering.
type FieldBackground struct {
	noise opensimplex.Noise

	worldW, worldH int
	cell           int
	texW, texH     int

	pixels []color.RGBA
	tex    rl.Texture2D

	initialized bool
}

// NewFieldBackground creates a background for a worldW x worldH field.
func NewFieldBackground(worldW, worldH, cell int, seed int64) *FieldBackground {
	if cell < 1 {
		cell = 1
	}
	return &FieldBackground{
		noise:  opensimplex.NewNormalized(seed),
		worldW: worldW,
		worldH: worldH,
		cell:   cell,
		texW:   (worldW + cell - 1) / cell,
		texH:   (worldH + cell - 1) / cell,
	}
}

// Size returns the texture dimensions in texels.
func (f *FieldBackground) Size() (w, h int) {
	return f.texW, f.texH
}

// Pixels returns the texture contents, generating them on first use.
func (f *FieldBackground) Pixels() []color.RGBA {
	if f.pixels != nil {
		return f.pixels
	}
	f.pixels = make([]color.RGBA, f.texW*f.texH)
	for ty := 0; ty < f.texH; ty++ {
		for tx := 0; tx < f.texW; tx++ {
			wx := float64(tx*f.cell) + float64(f.cell)/2
			wy := float64(ty*f.cell) + float64(f.cell)/2
			f.pixels[ty*f.texW+tx] = f.sample(wx, wy)
		}
	}
	return f.pixels
}

// sample shades one world point: broad light/dark patches, fine tufts, and
// occasional dry areas.
func (f *FieldBackground) sample(wx, wy float64) color.RGBA {
	patch := f.noise.Eval2(wx*patchFreq, wy*patchFreq)
	tuft := f.noise.Eval2(wx*tuftFreq+100, wy*tuftFreq+100)
	dry := f.noise.Eval2(wx*drynesFreq-300, wy*drynesFreq-300)

	t := 0.75*patch + 0.25*tuft
	c := lerpColor(grassDark, grassLight, t)

	// Only the top of the dryness range shows.
	if dry > 0.65 {
		c = lerpColor(c, grassDry, (dry-0.65)/0.35*0.6)
	}
	return c
}

// Init uploads the texture. Must be called after the raylib window is created.
func (f *FieldBackground) Init() {
	if f.initialized {
		return
	}
	img := rl.GenImageColor(f.texW, f.texH, grassDark)
	f.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(f.tex, rl.FilterBilinear)
	rl.UpdateTexture(f.tex, f.Pixels())
	f.initialized = true
}

// Draw stretches the texture over the field's screen rectangle.
func (f *FieldBackground) Draw(cam *camera.Camera) {
	if !f.initialized {
		return
	}
	x, y, w, h := cam.FieldRect()
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(f.texW), Height: float32(f.texH)}
	dst := rl.Rectangle{X: x, Y: y, Width: w, Height: h}
	rl.DrawTexturePro(f.tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload releases the texture.
func (f *FieldBackground) Unload() {
	if !f.initialized {
		return
	}
	rl.UnloadTexture(f.tex)
	f.initialized = false
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
