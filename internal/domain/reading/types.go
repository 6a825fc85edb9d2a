package reading

// Position is where a drawn card sits in the three-card spread.
type Position string

const (
	PositionPast    Position = "Past"
	PositionPresent Position = "Present"
	PositionFuture  Position = "Future"
)

// SpreadSize is the number of cards in a three-card spread.
const SpreadSize = 3

// ReadingTypeThreeCard is the only reading type this service produces.
const ReadingTypeThreeCard = "ThreeCardSpread"

// Positions returns the spread positions in display order. The card at
// selection index i is placed at Positions()[i].
func Positions() [SpreadSize]Position {
	return [SpreadSize]Position{PositionPast, PositionPresent, PositionFuture}
}
