package card

// Suit is the card's category label: the Major Arcana or one of the four
// minor suits.
type Suit string

const (
	SuitMajor     Suit = "Major"
	SuitCups      Suit = "Cups"
	SuitPentacles Suit = "Pentacles"
	SuitSwords    Suit = "Swords"
	SuitWands     Suit = "Wands"
)

// Card is an immutable catalog entry. The catalog is seeded once at startup
// and never mutated by request handling, so plain fields are enough here.
type Card struct {
	ID               int32
	Name             string
	Suit             Suit
	ImageURL         string
	UprightKeywords  string
	ReversedKeywords string
	Meaning          string
}
