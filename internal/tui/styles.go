package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rota/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
// Grid cells are padded to their width before styling, so none of the cell
// styles carry a Width.
type Styles struct {
	palette *theme.Palette

	TitleStyle        lipgloss.Style
	FilterStyle       lipgloss.Style
	FilterActiveStyle lipgloss.Style

	// Header row
	HeaderStyle      lipgloss.Style
	HeaderNightStyle lipgloss.Style
	HeaderNowStyle   lipgloss.Style

	// Name column
	NameStyle       lipgloss.Style
	NameCursorStyle lipgloss.Style
	AddressStyle    lipgloss.Style
	OnlineStyle     lipgloss.Style
	AwayStyle       lipgloss.Style
	OfflineStyle    lipgloss.Style
	SeparatorStyle  lipgloss.Style

	// Grid cells
	EmptyCellStyle  lipgloss.Style
	NightCellStyle  lipgloss.Style
	GridLineStyle   lipgloss.Style
	NowMarkerStyle  lipgloss.Style
	CursorStyle     lipgloss.Style
	CursorOnBlock   lipgloss.Style
	DragStyle       lipgloss.Style
	covered         [2]lipgloss.Style // index 1 is the stacked shade
	uncovered       [2]lipgloss.Style
	coveredWrap     lipgloss.Style
	uncoveredWrap   lipgloss.Style

	// Footer
	StatsStyle          lipgloss.Style
	StatsCoveredStyle   lipgloss.Style
	StatsUncoveredStyle lipgloss.Style
	PromptStyle         lipgloss.Style
	StatusStyle         lipgloss.Style
	HelpStyle           lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalTagStyle          lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalValueStyle        lipgloss.Style
	ModalFocusStyle        lipgloss.Style
	ModalLockedStyle       lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalErrorStyle        lipgloss.Style
	ModalAlertStyle        lipgloss.Style
	ModalBorderStyle       lipgloss.Style

	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	s := &Styles{palette: p}

	base := lipgloss.NewStyle().Foreground(p.Fg).Background(p.Bg)

	s.TitleStyle = base.Bold(true).Foreground(p.Accent)
	s.FilterStyle = base.Foreground(p.FgMuted)
	s.FilterActiveStyle = base.Foreground(p.Accent).Bold(true)

	s.HeaderStyle = base.Bold(true).Background(p.BgHighlight)
	s.HeaderNightStyle = s.HeaderStyle.Foreground(p.FgMuted).Bold(false)
	s.HeaderNowStyle = s.HeaderStyle.Foreground(p.Current)

	s.NameStyle = base
	s.NameCursorStyle = base.Bold(true).Foreground(p.Accent)
	s.AddressStyle = base.Foreground(p.FgMuted).Italic(true)
	s.OnlineStyle = base.Foreground(p.Covered)
	s.AwayStyle = base.Foreground(p.Warning)
	s.OfflineStyle = base.Foreground(p.FgMuted)
	s.SeparatorStyle = base.Foreground(p.BgSelection)

	s.EmptyCellStyle = base.Foreground(p.BgSelection)
	s.NightCellStyle = s.EmptyCellStyle.Background(p.NightBg)
	s.GridLineStyle = s.EmptyCellStyle
	s.NowMarkerStyle = lipgloss.NewStyle().Foreground(p.Current).Bold(true)
	s.CursorStyle = lipgloss.NewStyle().Background(p.BgSelection).Foreground(p.Accent).Bold(true)
	s.CursorOnBlock = lipgloss.NewStyle().Background(p.Accent).Foreground(p.TextOnAccent).Bold(true)
	s.DragStyle = lipgloss.NewStyle().Background(p.Warning).Foreground(p.TextOnWarning).Bold(true)

	for i, stacked := range []bool{false, true} {
		s.covered[i] = lipgloss.NewStyle().
			Background(p.BlockBg(true, stacked)).
			Foreground(p.BlockFg(true))
		s.uncovered[i] = lipgloss.NewStyle().
			Background(p.BlockBg(false, stacked)).
			Foreground(p.BlockFg(false)).
			Bold(true)
	}
	s.coveredWrap = lipgloss.NewStyle().Background(p.WrapBg(true)).Foreground(p.FgMuted)
	s.uncoveredWrap = lipgloss.NewStyle().Background(p.WrapBg(false)).Foreground(p.FgMuted)

	s.StatsStyle = base
	s.StatsCoveredStyle = base.Foreground(p.Covered).Bold(true)
	s.StatsUncoveredStyle = base.Foreground(p.Uncovered).Bold(true)
	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		BorderBackground(p.Bg).
		Background(p.BgHighlight).
		Foreground(p.Fg).
		Padding(0, 1)
	s.StatusStyle = base.Foreground(p.Warning).Bold(true)
	s.HelpStyle = base.Foreground(p.FgMuted)

	s.buildModalStyles(p.Modal)

	s.AppStyle = lipgloss.NewStyle().Background(p.Bg)
	return s
}

func (s *Styles) buildModalStyles(m theme.ModalColors) {
	s.ModalBgColor = m.Bg
	body := lipgloss.NewStyle().Foreground(m.Text).Background(m.Bg)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Border).
		BorderBackground(m.Bg).
		Background(m.Bg).
		Foreground(m.Text).
		Padding(1, 2).
		Width(modalWidth).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = body.Bold(true).Padding(0, 1)
	s.ModalFooterStyle = body.Padding(0, 1)
	s.ModalTitleStyle = body.Bold(true)
	s.ModalBodyStyle = body
	s.ModalMetaStyle = body.Foreground(m.Muted)
	s.ModalSectionTitleStyle = body.Bold(true)
	s.ModalTagStyle = lipgloss.NewStyle().Foreground(m.Text).Background(m.Panel).Bold(true).Padding(0, 1)
	s.ModalLabelStyle = body.Foreground(m.Muted)
	s.ModalValueStyle = body
	s.ModalFocusStyle = lipgloss.NewStyle().Foreground(m.ReverseText).Background(m.Highlight).Bold(true)
	s.ModalLockedStyle = body.Foreground(m.Muted).Italic(true)
	s.ModalInputTextStyle = lipgloss.NewStyle().Foreground(m.ReverseText).Background(m.Highlight)
	s.ModalInputCursorStyle = lipgloss.NewStyle().Foreground(m.Text).Background(m.Highlight)
	s.ModalPlaceholderStyle = s.ModalInputTextStyle.Italic(true)
	s.ModalButtonStyle = lipgloss.NewStyle().Foreground(m.Text).Background(m.Panel).Padding(0, 2)
	s.ModalButtonActiveStyle = lipgloss.NewStyle().Foreground(m.ReverseText).Background(m.Highlight).Bold(true).Padding(0, 2)
	s.ModalHintStyle = body.Foreground(m.Muted).Italic(true)
	s.ModalErrorStyle = body.Foreground(s.palette.Uncovered).Bold(true)
	s.ModalAlertStyle = body.Foreground(s.palette.Uncovered)
	s.ModalBorderStyle = lipgloss.NewStyle().Foreground(m.Border).Background(m.Bg)
}

// BlockStyle returns the style of a shift block; stacked picks the
// alternate shade used below the first shift of a stack.
func (s *Styles) BlockStyle(covered, stacked bool) lipgloss.Style {
	i := 0
	if stacked {
		i = 1
	}
	if covered {
		return s.covered[i]
	}
	return s.uncovered[i]
}

// WrapStyle returns the style of a shift's carry-over before midnight.
func (s *Styles) WrapStyle(covered bool) lipgloss.Style {
	if covered {
		return s.coveredWrap
	}
	return s.uncoveredWrap
}

// Palette returns the colours the styles were built from.
func (s *Styles) Palette() *theme.Palette {
	return s.palette
}
