package queries

import (
	"context"
	"time"

	"github.com/Weed1801/Mystic-Tarot/internal/infra"
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReadingView struct {
	SessionID       uuid.UUID         `json:"session_id"`
	Question        string            `json:"question"`
	ReadingType     string            `json:"reading_type"`
	PastAnalysis    string            `json:"past_analysis"`
	PresentAnalysis string            `json:"present_analysis"`
	FutureAnalysis  string            `json:"future_analysis"`
	FinalAdvice     string            `json:"final_advice"`
	Cards           []ReadingCardView `json:"cards"`
	CreatedAt       time.Time         `json:"created_at"`
}

// ReadingCardView is one placement joined with its catalog card, ordered
// Past, Present, Future.
type ReadingCardView struct {
	CardID     int32  `json:"card_id"`
	Name       string `json:"name"`
	ImageURL   string `json:"image_url"`
	Position   string `json:"position"`
	IsReversed bool   `json:"is_reversed"`
}

type ReadingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReadingView, error)
}

type ReadingQueries interface {
	GetReading(ctx context.Context, id uuid.UUID) (*ReadingView, error)
}

type readingQueriesImpl struct {
	store ReadingReadStore
}

func NewReadingQueries(store ReadingReadStore) ReadingQueries {
	return &readingQueriesImpl{store: store}
}

func (q *readingQueriesImpl) GetReading(ctx context.Context, id uuid.UUID) (*ReadingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReadingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
