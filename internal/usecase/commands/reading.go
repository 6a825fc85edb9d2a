package commands

import (
	"context"
	"log/slog"

	"github.com/Weed1801/Mystic-Tarot/internal/domain/card"
	"github.com/Weed1801/Mystic-Tarot/internal/domain/reading"
	"github.com/Weed1801/Mystic-Tarot/internal/infra/db"
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/clock"
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/errs"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/queries"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReadingCommands interface {
	CreateReading(ctx context.Context, question string, selectedCardIDs []int32) (*queries.ReadingView, error)
}

type readingCommandsImpl struct {
	cards     CardReader
	repo      ReadingRepository
	generator NarrativeGenerator
	uow       shared.UnitOfWork
	clock     clock.Clock
}

func NewReadingCommands(
	cards CardReader,
	repo ReadingRepository,
	generator NarrativeGenerator,
	uow shared.UnitOfWork,
	clock clock.Clock,
) ReadingCommands {
	return &readingCommandsImpl{
		cards:     cards,
		repo:      repo,
		generator: generator,
		uow:       uow,
		clock:     clock,
	}
}

// CreateReading runs the whole submission: validate the selection, resolve
// the cards, generate and parse the narrative, persist atomically, and
// assemble the response view. Validation happens before any I/O; the
// generator call completes (or falls back) before persistence begins.
func (r *readingCommandsImpl) CreateReading(ctx context.Context, question string, selectedCardIDs []int32) (*queries.ReadingView, error) {
	sel, err := reading.NewSelection(selectedCardIDs)
	if err != nil {
		return nil, err
	}

	ordered, err := r.resolveSelection(ctx, sel)
	if err != nil {
		return nil, err
	}

	raw, err := r.generator.Generate(ctx, question, ordered)
	if err != nil {
		// The generator absorbs upstream faults internally; an error here
		// means not even the offline fallback could be built. Nothing has
		// been persisted yet.
		return nil, errs.Mark(err, errs.ErrNarrativeUnavailable)
	}

	narrative, degraded := reading.ParseNarrative(raw)
	if degraded {
		slog.Warn("narrative parse degraded, storing raw reply as final advice",
			"raw_length", len(raw))
	}

	session := reading.NewThreeCardSession(uuid.New(), question, sel, narrative, r.clock.Now())

	err = r.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return r.repo.Create(ctx, tx, session)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return toReadingView(session, ordered), nil
}

// resolveSelection looks up the selected cards and restores the caller's id
// order; the catalog lookup makes no ordering guarantee.
func (r *readingCommandsImpl) resolveSelection(ctx context.Context, sel reading.Selection) ([reading.SpreadSize]card.Card, error) {
	var ordered [reading.SpreadSize]card.Card

	ids := sel.IDs()
	resolved, err := r.cards.FindByIDs(ctx, ids[:])
	if err != nil {
		return ordered, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(resolved) != reading.SpreadSize {
		return ordered, errs.ErrUnknownCard
	}

	byID := make(map[int32]card.Card, len(resolved))
	for _, c := range resolved {
		byID[c.ID] = c
	}
	for i, id := range ids {
		c, ok := byID[id]
		if !ok {
			return ordered, errs.ErrUnknownCard
		}
		ordered[i] = c
	}

	return ordered, nil
}

func toReadingView(s *reading.Session, ordered [reading.SpreadSize]card.Card) *queries.ReadingView {
	n := s.Narrative()
	placements := s.Placements()

	cards := make([]queries.ReadingCardView, reading.SpreadSize)
	for i, p := range placements {
		cards[i] = queries.ReadingCardView{
			CardID:     p.CardID(),
			Name:       ordered[i].Name,
			ImageURL:   ordered[i].ImageURL,
			Position:   string(p.Position()),
			IsReversed: p.IsReversed(),
		}
	}

	return &queries.ReadingView{
		SessionID:       s.ID(),
		Question:        s.Question(),
		ReadingType:     s.ReadingType(),
		PastAnalysis:    n.PastAnalysis(),
		PresentAnalysis: n.PresentAnalysis(),
		FutureAnalysis:  n.FutureAnalysis(),
		FinalAdvice:     n.FinalAdvice(),
		Cards:           cards,
		CreatedAt:       s.CreatedAt(),
	}
}
