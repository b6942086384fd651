package teletext

import "github.com/charmbracelet/lipgloss"

// The teletext palette is the classic 8-color set, addressed by the
// trailing digit of a style tag: bN selects a background, fN a
// foreground.
const (
	colorBlack   = lipgloss.Color("0")
	colorRed     = lipgloss.Color("1")
	colorGreen   = lipgloss.Color("2")
	colorYellow  = lipgloss.Color("3")
	colorBlue    = lipgloss.Color("4")
	colorMagenta = lipgloss.Color("5")
	colorCyan    = lipgloss.Color("6")
	colorWhite   = lipgloss.Color("7")
)

// Defaults used when a run carries no tag of the respective kind.
const (
	DefaultForeground = colorWhite
	DefaultBackground = colorBlack
)

var foregroundTags = map[string]lipgloss.Color{
	"f0": colorBlack,
	"f1": colorRed,
	"f2": colorGreen,
	"f3": colorYellow,
	"f4": colorBlue,
	"f5": colorMagenta,
	"f6": colorCyan,
	"f7": colorWhite,
}

var backgroundTags = map[string]lipgloss.Color{
	"b0": colorBlack,
	"b1": colorRed,
	"b2": colorGreen,
	"b3": colorYellow,
	"b4": colorBlue,
	"b5": colorMagenta,
	"b6": colorCyan,
	"b7": colorWhite,
}

// Resolve maps a run's style tags to its color pair. Tags are scanned
// in order and the last tag of each kind wins; unrecognized tags are
// ignored.
func Resolve(tags []string) (fg, bg lipgloss.Color) {
	fg, bg = DefaultForeground, DefaultBackground
	for _, tag := range tags {
		if color, ok := backgroundTags[tag]; ok {
			bg = color
		} else if color, ok := foregroundTags[tag]; ok {
			fg = color
		}
	}
	return fg, bg
}

// StyleFor returns the lipgloss style rendering a run with the given
// tags.
func StyleFor(tags []string) lipgloss.Style {
	fg, bg := Resolve(tags)
	return lipgloss.NewStyle().Foreground(fg).Background(bg)
}
