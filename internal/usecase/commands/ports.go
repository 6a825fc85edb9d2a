package commands

import (
	"context"

	"github.com/Weed1801/Mystic-Tarot/internal/domain/card"
	"github.com/Weed1801/Mystic-Tarot/internal/domain/reading"
	"github.com/Weed1801/Mystic-Tarot/internal/infra/db"
)

// CardReader resolves catalog cards for the write side. Return order is
// unspecified; the workflow restores the caller's order itself.
type CardReader interface {
	FindByIDs(ctx context.Context, ids []int32) ([]card.Card, error)
}

// ReadingRepository persists a session and its three placements inside the
// caller's transaction.
type ReadingRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *reading.Session) error
}

// NarrativeGenerator produces the raw narrative text for a spread. The raw
// reply is not guaranteed to be valid JSON; parsing and degradation are the
// workflow's concern. Implementations must contain upstream failures and
// only return an error when no narrative at all could be produced.
type NarrativeGenerator interface {
	Generate(ctx context.Context, question string, cards [reading.SpreadSize]card.Card) (string, error)
}
