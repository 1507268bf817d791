package viz

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	KeyHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Italic(true)

	PausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	RunningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))
)

// bodyPalette maps the dataset's matplotlib-style color tokens onto
// terminal colors. Unknown tokens render white.
var bodyPalette = map[string]lipgloss.Color{
	"gold":      "220",
	"gray":      "245",
	"orange":    "214",
	"royalblue":     "69",
	"red":           "196",
	"peru":          "173",
	"khaki":         "186",
	"lightseagreen": "37",
	"mediumblue":    "20",
	"blue":          "27",
}

func BodyStyle(color string) lipgloss.Style {
	c, ok := bodyPalette[color]
	if !ok {
		c = "255"
	}
	return lipgloss.NewStyle().Foreground(c)
}
