package teletext

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tags   []string
		wantFG lipgloss.Color
		wantBG lipgloss.Color
	}{
		{"defaults", nil, colorWhite, colorBlack},
		{"single foreground", []string{"f1"}, colorRed, colorBlack},
		{"single background", []string{"b4"}, colorWhite, colorBlue},
		{"last foreground wins", []string{"f1", "b0", "f3"}, colorYellow, colorBlack},
		{"last background wins", []string{"b2", "f6", "b5"}, colorMagenta, colorCyan},
		{"unrecognized tags ignored", []string{"blink", "f9", "b8", "F1"}, colorWhite, colorBlack},
		{"mixed known and unknown", []string{"ttx", "f2", "wide"}, colorGreen, colorBlack},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fg, bg := Resolve(tt.tags)
			if fg != tt.wantFG || bg != tt.wantBG {
				t.Fatalf("Resolve(%v) = (%s, %s), want (%s, %s)",
					tt.tags, fg, bg, tt.wantFG, tt.wantBG)
			}
		})
	}
}

func TestPaletteCoversAllEightColors(t *testing.T) {
	t.Parallel()

	if len(foregroundTags) != 8 || len(backgroundTags) != 8 {
		t.Fatalf("tag tables have %d/%d entries, want 8/8",
			len(foregroundTags), len(backgroundTags))
	}
	for digit := 0; digit < 8; digit++ {
		fTag := fmt.Sprintf("f%d", digit)
		bTag := fmt.Sprintf("b%d", digit)
		fColor, ok := foregroundTags[fTag]
		if !ok {
			t.Fatalf("missing foreground tag %s", fTag)
		}
		bColor, ok := backgroundTags[bTag]
		if !ok {
			t.Fatalf("missing background tag %s", bTag)
		}
		if fColor != bColor {
			t.Fatalf("tag digit %d maps to different colors: %s vs %s", digit, fColor, bColor)
		}
	}
}
