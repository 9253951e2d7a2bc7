package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette assigns a color to each role of the picker dialog and the CLI.
type Palette struct {
	Text  color.Color
	Dim   color.Color
	Base  color.Color
	Panel color.Color

	// Accent marks the keyboard cursor, dialog border and focused field.
	Accent color.Color
	// Heading colors weekday and hour/minute column headers.
	Heading color.Color

	// Grid cells.
	Chosen     color.Color
	Today      color.Color
	Forbidden  color.Color
	OtherMonth color.Color

	// Status lines.
	Ok   color.Color
	Warn color.Color
	Err  color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var themes = map[string]Palette{
	"tokyo-night": {
		Text:       lipgloss.Color("#c0caf5"),
		Dim:        lipgloss.Color("#565f89"),
		Base:       lipgloss.Color("#1a1b26"),
		Panel:      lipgloss.Color("#292e42"),
		Accent:     lipgloss.Color("#7aa2f7"),
		Heading:    lipgloss.Color("#7dcfff"),
		Chosen:     lipgloss.Color("#9ece6a"),
		Today:      lipgloss.Color("#ff9e64"),
		Forbidden:  lipgloss.Color("#414868"),
		OtherMonth: lipgloss.Color("#545c7e"),
		Ok:         lipgloss.Color("#9ece6a"),
		Warn:       lipgloss.Color("#e0af68"),
		Err:        lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Text:       lipgloss.Color("#ebdbb2"),
		Dim:        lipgloss.Color("#928374"),
		Base:       lipgloss.Color("#282828"),
		Panel:      lipgloss.Color("#3c3836"),
		Accent:     lipgloss.Color("#83a598"),
		Heading:    lipgloss.Color("#8ec07c"),
		Chosen:     lipgloss.Color("#b8bb26"),
		Today:      lipgloss.Color("#fe8019"),
		Forbidden:  lipgloss.Color("#504945"),
		OtherMonth: lipgloss.Color("#665c54"),
		Ok:         lipgloss.Color("#b8bb26"),
		Warn:       lipgloss.Color("#fabd2f"),
		Err:        lipgloss.Color("#fb4934"),
	},
	// Warm temple tones: gold cursor, lacquer red for today.
	"lanna": {
		Text:       lipgloss.Color("#f2e6cf"),
		Dim:        lipgloss.Color("#8c7b63"),
		Base:       lipgloss.Color("#231a14"),
		Panel:      lipgloss.Color("#3a2c21"),
		Accent:     lipgloss.Color("#d9a441"),
		Heading:    lipgloss.Color("#c8875a"),
		Chosen:     lipgloss.Color("#7fa35b"),
		Today:      lipgloss.Color("#c0392b"),
		Forbidden:  lipgloss.Color("#4d3c2e"),
		OtherMonth: lipgloss.Color("#6b5a47"),
		Ok:         lipgloss.Color("#7fa35b"),
		Warn:       lipgloss.Color("#d9a441"),
		Err:        lipgloss.Color("#c0392b"),
	},
	// For light terminal backgrounds.
	"paper": {
		Text:       lipgloss.Color("#1f2328"),
		Dim:        lipgloss.Color("#6e7781"),
		Base:       lipgloss.Color("#ffffff"),
		Panel:      lipgloss.Color("#eaeef2"),
		Accent:     lipgloss.Color("#0969da"),
		Heading:    lipgloss.Color("#8250df"),
		Chosen:     lipgloss.Color("#1a7f37"),
		Today:      lipgloss.Color("#bc4c00"),
		Forbidden:  lipgloss.Color("#d0d7de"),
		OtherMonth: lipgloss.Color("#8c959f"),
		Ok:         lipgloss.Color("#1a7f37"),
		Warn:       lipgloss.Color("#9a6700"),
		Err:        lipgloss.Color("#cf222e"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config for the doc guides, colored
// from the active palette.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	text := colorHexPtr(CurrentPalette.Text)
	accent := colorHexPtr(CurrentPalette.Accent)
	heading := colorHexPtr(CurrentPalette.Heading)
	dim := colorHexPtr(CurrentPalette.Dim)

	cfg.Document.Color = text
	cfg.Paragraph.Color = text

	cfg.Heading.Color = accent
	cfg.H1.Color = accent
	cfg.H2.Color = accent
	cfg.H3.Color = heading

	cfg.BlockQuote.Color = dim
	cfg.HorizontalRule.Color = dim

	// Pattern text examples in the guides are inline code.
	cfg.Code.Color = heading
	cfg.CodeBlock.Color = dim

	cfg.Table.Color = text

	return cfg
}
