package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/drawpoker/poker"
)

// Static styles for console output
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	HandInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ActionsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FAFAFA"}).
			Bold(true)

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

	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)
)

var suitPips = map[poker.Suit]string{
	poker.Hearts:   "♥",
	poker.Diamonds: "♦",
	poker.Clubs:    "♣",
	poker.Spades:   "♠",
}

// RenderCard renders a card as rank and suit pip, coloured by suit.
func RenderCard(c poker.Card) string {
	text := c.Rank.Symbol() + suitPips[c.Suit]
	if c.Suit == poker.Hearts || c.Suit == poker.Diamonds {
		return RedCardStyle.Render(text)
	}
	return BlackCardStyle.Render(text)
}

// RenderCards renders cards separated by spaces.
func RenderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = RenderCard(c)
	}
	return strings.Join(parts, " ")
}
