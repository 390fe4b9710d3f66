package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/hangman/internal/game"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	GallowsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	WordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// Letter grid key styles, one per game.LetterState
var (
	keyBase = lipgloss.NewStyle().Padding(0, 1)

	letterStyles = [...]lipgloss.Style{
		game.LetterAvailable: keyBase.Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		game.LetterHit:       keyBase.Foreground(lipgloss.Color("#04B575")).Bold(true),
		game.LetterMiss:      keyBase.Foreground(lipgloss.Color("#FF6B6B")).Strikethrough(true),
		game.LetterDisabled:  keyBase.Foreground(lipgloss.Color("#3C3C3C")),
		game.LetterLocked:    keyBase.Foreground(lipgloss.Color("#626262")),
	}
)

// LetterStyle returns the style for one grid key.
func LetterStyle(st game.LetterState) lipgloss.Style {
	if int(st) < len(letterStyles) {
		return letterStyles[st]
	}
	return keyBase
}
