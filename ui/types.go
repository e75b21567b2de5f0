// Package ui draws the heads-up display, the control panel and the winner
// banner on top of the field.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	BarBg          rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32

	// Winner banner
	BannerBg        rl.Color
	BannerTitle     rl.Color
	BannerText      rl.Color
	BannerTitleSize int32
	BannerTextSize  int32
	BannerPadding   int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 200},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.RayWhite,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		Padding:        10,
		LineHeight:     18,
		LabelWidth:     70,
		BarHeight:      12,
		FontSize:       14,
		HeaderFontSize: 16,

		BannerBg:        rl.Black,
		BannerTitle:     rl.Color{R: 0x6a, G: 0xff, B: 0x9b, A: 255},
		BannerText:      rl.White,
		BannerTitleSize: 64,
		BannerTextSize:  32,
		BannerPadding:   20,
	}
}
