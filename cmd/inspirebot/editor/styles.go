package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
)

var (
	stylePane = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	stylePaneFocused = stylePane.
				BorderForeground(lipgloss.Color("99"))

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(0, 1)

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	styleStatus = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)

	styleCode = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 2)

	styleCursor = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	styleGrabbed = lipgloss.NewStyle().
			Reverse(true)
)

var categoryColors = map[blocks.Category]lipgloss.Color{
	blocks.CategoryControl:  lipgloss.Color("214"),
	blocks.CategoryMovement: lipgloss.Color("39"),
	blocks.CategoryServo:    lipgloss.Color("170"),
	blocks.CategoryBasic:    lipgloss.Color("42"),
}

func categoryStyle(c blocks.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(categoryColors[c])
}
