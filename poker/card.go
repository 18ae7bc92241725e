package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Suit identifies one of the four French suits.
type Suit uint8

// Suit constants
const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in deck construction order.
var Suits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

var suitNames = [...]string{"Hearts", "Diamonds", "Clubs", "Spades"}

func (s Suit) String() string {
	if int(s) >= len(suitNames) {
		return "?"
	}
	return suitNames[s]
}

// Symbol returns the single-letter suit code used by ParseCard ("h", "d", "c", "s").
func (s Suit) Symbol() string {
	if int(s) >= len(suitNames) {
		return "?"
	}
	return string("hdcs"[s])
}

// Rank is the face of a card. Its numeric value is the rank order used by the
// evaluator: Two=2 up to Ace=14. Aces are always high.
type Rank uint8

// Rank constants (2-14 for 2-A)
const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Valid reports whether r lies within Two..Ace.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", uint8(r))
	}
	return "?"
}

// Symbol returns the one-character rank code ("2".."9", "T", "J", "Q", "K", "A").
func (r Rank) Symbol() string {
	if !r.Valid() {
		return "?"
	}
	return string("23456789TJQKA"[r-Two])
}

// Card is an immutable playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card from rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// Value returns the rank order of the card (2-14).
func (c Card) Value() int {
	return int(c.Rank)
}

// String returns the long form, e.g. "Ace of Spades".
func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Short returns the two-character form, e.g. "As" or "Th".
func (c Card) Short() string {
	return c.Rank.Symbol() + c.Suit.Symbol()
}

// ParseCard parses strings like "As", "Th" or "10h" into a Card.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rankPart, suitPart := s[:len(s)-1], s[len(s)-1]

	var rank Rank
	switch strings.ToUpper(rankPart) {
	case "2":
		rank = Two
	case "3":
		rank = Three
	case "4":
		rank = Four
	case "5":
		rank = Five
	case "6":
		rank = Six
	case "7":
		rank = Seven
	case "8":
		rank = Eight
	case "9":
		rank = Nine
	case "T", "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("%w: rank %q", ErrInvalidCard, rankPart)
	}

	var suit Suit
	switch suitPart {
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 'c', 'C':
		suit = Clubs
	case 's', 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: suit %q", ErrInvalidCard, suitPart)
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a whitespace or comma separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests
// and static tables.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards renders cards in short form separated by spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Short()
	}
	return strings.Join(parts, " ")
}
