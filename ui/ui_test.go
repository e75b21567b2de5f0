package ui

import "testing"

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"rock":     "Rock",
		"scissors": "Scissors",
		"":         "",
	}
	for in, want := range tests {
		if got := displayName(in); got != want {
			t.Errorf("displayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, MinSpeed},
		{1, 1},
		{7, 7},
		{11, MaxSpeed},
	}
	for _, tt := range tests {
		if got := clampSpeed(tt.in); got != tt.want {
			t.Errorf("clampSpeed(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBannerColours(t *testing.T) {
	th := DefaultTheme()
	if th.BannerTitle.R != 0x6a || th.BannerTitle.G != 0xff || th.BannerTitle.B != 0x9b {
		t.Errorf("banner title colour = %v, want #6aff9b", th.BannerTitle)
	}
	if th.BannerBg.R != 0 || th.BannerBg.G != 0 || th.BannerBg.B != 0 {
		t.Errorf("banner background = %v, want black", th.BannerBg)
	}
}
