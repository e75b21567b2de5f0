package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WinnerBanner announces the winning kind in a black box centred on screen.
type WinnerBanner struct {
	renderer *Renderer
}

// NewWinnerBanner creates a winner banner.
func NewWinnerBanner() *WinnerBanner {
	return &WinnerBanner{renderer: NewRenderer()}
}

// Draw renders "Winner!" above the kind name.
func (b *WinnerBanner) Draw(screenWidth, screenHeight int32, kind string) {
	th := b.renderer.Theme
	title := "Winner!"
	name := displayName(kind)

	titleW := rl.MeasureText(title, th.BannerTitleSize)
	nameW := rl.MeasureText(name, th.BannerTextSize)

	boxW := max(titleW, nameW) + 2*th.BannerPadding
	boxH := th.BannerTitleSize + th.BannerTextSize + 3*th.BannerPadding
	boxX := screenWidth/2 - boxW/2
	boxY := screenHeight/2 - boxH/2

	rl.DrawRectangle(boxX, boxY, boxW, boxH, th.BannerBg)
	rl.DrawText(title, screenWidth/2-titleW/2, boxY+th.BannerPadding, th.BannerTitleSize, th.BannerTitle)
	rl.DrawText(name, screenWidth/2-nameW/2, boxY+2*th.BannerPadding+th.BannerTitleSize, th.BannerTextSize, th.BannerText)
}

// displayName capitalises a kind name for display.
func displayName(kind string) string {
	if kind == "" {
		return kind
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}
