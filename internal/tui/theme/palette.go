package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colours the grid draws with, derived once from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Covered     lipgloss.Color
	Uncovered   lipgloss.Color
	Current     lipgloss.Color
	Warning     lipgloss.Color

	// Block backgrounds. Alt is used for the second and later shift
	// of a stack, Wrap for the part of a shift carried over midnight.
	CoveredBg       lipgloss.Color
	CoveredBgAlt    lipgloss.Color
	CoveredWrapBg   lipgloss.Color
	UncoveredBg     lipgloss.Color
	UncoveredBgAlt  lipgloss.Color
	UncoveredWrapBg lipgloss.Color

	// NightBg shades empty cells in the night band.
	NightBg lipgloss.Color

	TextOnAccent    lipgloss.Color
	TextOnWarning   lipgloss.Color
	TextOnCurrent   lipgloss.Color
	TextOnCovered   lipgloss.Color
	TextOnUncovered lipgloss.Color

	Modal ModalColors
}

// ModalColors holds dialog colours.
type ModalColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.AdaptiveColor
	Text        lipgloss.AdaptiveColor
	Muted       lipgloss.AdaptiveColor
	Highlight   lipgloss.AdaptiveColor
	Panel       lipgloss.AdaptiveColor
	ReverseText lipgloss.AdaptiveColor
	Backdrop    lipgloss.Color
}

// NewPalette derives a Palette from t. A nil theme uses DefaultName.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	light := isLightTheme(t.Bg)
	coveredBg := blockBg(t.Covered, t.Bg, light)
	uncoveredBg := blockBg(t.Uncovered, t.Bg, light)
	coveredText := chooseTextColor(coveredBg, t.Fg, t.Bg)
	uncoveredText := chooseTextColor(uncoveredBg, t.Fg, t.Bg)

	m := t.Modal()
	modalBg := m.BaseBg
	panel := coalesce(t.BgSelection, t.BgHighlight, t.Bg)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Covered:     lipgloss.Color(t.Covered),
		Uncovered:   lipgloss.Color(t.Uncovered),
		Current:     lipgloss.Color(t.Current),
		Warning:     lipgloss.Color(t.Warning),

		CoveredBg:       lipgloss.Color(coveredBg),
		CoveredBgAlt:    lipgloss.Color(alternateShade(coveredBg, light)),
		CoveredWrapBg:   lipgloss.Color(wrapBg(t.Covered, t.Bg, light)),
		UncoveredBg:     lipgloss.Color(uncoveredBg),
		UncoveredBgAlt:  lipgloss.Color(alternateShade(uncoveredBg, light)),
		UncoveredWrapBg: lipgloss.Color(wrapBg(t.Uncovered, t.Bg, light)),

		NightBg: lipgloss.Color(blendColors(t.Bg, t.BgHighlight, 0.5)),

		TextOnAccent:    lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnWarning:   lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),
		TextOnCurrent:   lipgloss.Color(chooseTextColor(t.Current, t.Bg, t.Fg)),
		TextOnCovered:   lipgloss.Color(coveredText),
		TextOnUncovered: lipgloss.Color(uncoveredText),

		Modal: ModalColors{
			Bg:          lipgloss.Color(modalBg),
			Border:      adaptiveColor(m.ModalBorder),
			Text:        adaptiveColor(m.TextPrimary),
			Muted:       adaptiveColor(m.TextMuted),
			Highlight:   adaptiveColor(m.Highlight),
			Panel:       adaptiveColor(panel),
			ReverseText: lipgloss.AdaptiveColor{Dark: modalBg, Light: m.TextPrimary},
			Backdrop:    lipgloss.Color(panel),
		},
	}
}

// BlockBg returns the background of a shift block.
func (p *Palette) BlockBg(covered bool, stacked bool) lipgloss.Color {
	switch {
	case covered && stacked:
		return p.CoveredBgAlt
	case covered:
		return p.CoveredBg
	case stacked:
		return p.UncoveredBgAlt
	default:
		return p.UncoveredBg
	}
}

// BlockFg returns the text colour drawn on a shift block.
func (p *Palette) BlockFg(covered bool) lipgloss.Color {
	if covered {
		return p.TextOnCovered
	}
	return p.TextOnUncovered
}

// WrapBg returns the background of a midnight carry-over tail.
func (p *Palette) WrapBg(covered bool) lipgloss.Color {
	if covered {
		return p.CoveredWrapBg
	}
	return p.UncoveredWrapBg
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

func blockBg(c, bg string, light bool) string {
	if light {
		return blendColors(c, bg, 0.70)
	}
	return scaleColor(c, 0.50, 40)
}

func wrapBg(c, bg string, light bool) string {
	if light {
		return blendColors(c, bg, 0.88)
	}
	return scaleColor(c, 0.30, 30)
}

// scaleColor multiplies each channel by factor, keeping it at or above floor.
func scaleColor(hex string, factor float64, floor int) string {
	r, g, b, ok := rgb(hex)
	if !ok {
		return hex
	}
	scale := func(c int) int {
		return max(int(float64(c)*factor), floor)
	}
	return formatHexColor(scale(r), scale(g), scale(b))
}

func alternateShade(hex string, light bool) string {
	if light {
		return blendColors(hex, "#000000", 0.10)
	}
	return blendColors(hex, "#ffffff", 0.25)
}

func rgb(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	return parseHex(hex[1:3]), parseHex(hex[3:5]), parseHex(hex[5:7]), true
}

func parseHex(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v *= 16
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			v += int(c - '0')
		case c >= 'a' && c <= 'f':
			v += int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v += int(c-'A') + 10
		}
	}
	return v
}

func formatHexColor(r, g, b int) string {
	const digits = "0123456789abcdef"
	clamp := func(c int) int { return min(max(c, 0), 255) }
	r, g, b = clamp(r), clamp(g), clamp(b)
	return string([]byte{
		'#',
		digits[r>>4], digits[r&0xf],
		digits[g>>4], digits[g&0xf],
		digits[b>>4], digits[b&0xf],
	})
}

func adaptiveColor(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: hex, Light: hex}
}

// chooseTextColor picks whichever of a and b contrasts more with bg.
func chooseTextColor(bg, a, b string) string {
	if contrastRatio(bg, a) >= contrastRatio(bg, b) {
		return a
	}
	return b
}

func contrastRatio(a, b string) float64 {
	l1, l2 := relativeLuminance(a), relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	r, g, b, ok := rgb(hex)
	if !ok {
		return 0
	}
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// blendColors mixes ratio of b into a.
func blendColors(a, b string, ratio float64) string {
	ar, ag, ab, okA := rgb(a)
	br, bg, bb, okB := rgb(b)
	if !okA || !okB {
		return a
	}
	ratio = min(max(ratio, 0), 1)
	mix := func(x, y int) int {
		return int(float64(x)*(1-ratio) + float64(y)*ratio)
	}
	return formatHexColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
