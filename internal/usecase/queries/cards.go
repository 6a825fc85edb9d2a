package queries

import (
	"context"
)

// Read models (DTO for read side)
type CardView struct {
	ID               int32  `json:"id"`
	Name             string `json:"name"`
	Suit             string `json:"suit"`
	ImageURL         string `json:"image_url"`
	UprightKeywords  string `json:"upright_keywords"`
	ReversedKeywords string `json:"reversed_keywords"`
	Meaning          string `json:"meaning"`
}

type CardReadStore interface {
	FindAll(ctx context.Context) ([]*CardView, error)
}

type CardQueries interface {
	ListCards(ctx context.Context) ([]*CardView, error)
}

type cardQueriesImpl struct {
	store CardReadStore
}

func NewCardQueries(store CardReadStore) CardQueries {
	return &cardQueriesImpl{store: store}
}

// ListCards returns the full catalog in display order (ascending id). The
// catalog is never written after seeding, so repeated calls are stable.
func (q *cardQueriesImpl) ListCards(ctx context.Context) ([]*CardView, error) {
	return q.store.FindAll(ctx)
}
