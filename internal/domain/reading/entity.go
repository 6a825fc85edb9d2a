package reading

import (
	"time"

	"github.com/google/uuid"
)

// Session is one completed reading: a question, a narrative, and exactly
// three card placements. Sessions are immutable once created.
type Session struct {
	id          uuid.UUID
	question    string
	readingType string
	narrative   Narrative
	placements  [SpreadSize]Placement
	createdAt   time.Time
}

// Placement pins one card of the spread to its position. Orientation is
// stored but never computed in this workflow, so isReversed stays false.
type Placement struct {
	cardID     int32
	position   Position
	isReversed bool
}

// NewThreeCardSession builds a session from a validated selection. Placements
// follow the selection order: index 0 is Past, 1 Present, 2 Future.
func NewThreeCardSession(id uuid.UUID, question string, sel Selection, n Narrative, now time.Time) *Session {
	if id == uuid.Nil {
		id = uuid.New()
	}

	var placements [SpreadSize]Placement
	positions := Positions()
	for i, cardID := range sel.IDs() {
		placements[i] = Placement{
			cardID:     cardID,
			position:   positions[i],
			isReversed: false,
		}
	}

	return &Session{
		id:          id,
		question:    question,
		readingType: ReadingTypeThreeCard,
		narrative:   n,
		placements:  placements,
		createdAt:   now,
	}
}

func (s *Session) ID() uuid.UUID                     { return s.id }
func (s *Session) Question() string                  { return s.question }
func (s *Session) ReadingType() string               { return s.readingType }
func (s *Session) Narrative() Narrative              { return s.narrative }
func (s *Session) Placements() [SpreadSize]Placement { return s.placements }
func (s *Session) CreatedAt() time.Time              { return s.createdAt }

func (p Placement) CardID() int32      { return p.cardID }
func (p Placement) Position() Position { return p.position }
func (p Placement) IsReversed() bool   { return p.isReversed }
