package readstore

import (
	"context"

	"github.com/Weed1801/Mystic-Tarot/internal/domain/card"
	"github.com/Weed1801/Mystic-Tarot/internal/infra"
	"github.com/Weed1801/Mystic-Tarot/internal/infra/db"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/queries"
)

const selectAllCardsSQL = `
SELECT id, name, suit, image_url, upright_keywords, reversed_keywords, meaning
FROM tarot_cards
ORDER BY id
`

const selectCardsByIDsSQL = `
SELECT id, name, suit, image_url, upright_keywords, reversed_keywords, meaning
FROM tarot_cards
WHERE id = ANY($1)
`

// CardReadStore serves the catalog for both sides: full listing for the read
// path and id resolution for the reading workflow.
type CardReadStore struct {
	db db.DBTX
}

func NewCardReadStore(db db.DBTX) *CardReadStore {
	return &CardReadStore{db: db}
}

func (r *CardReadStore) FindAll(ctx context.Context) ([]*queries.CardView, error) {
	rows, err := r.db.Query(ctx, selectAllCardsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tarot cards", err)
	}
	defer rows.Close()

	var views []*queries.CardView
	for rows.Next() {
		v := &queries.CardView{}
		if err := rows.Scan(&v.ID, &v.Name, &v.Suit, &v.ImageURL, &v.UprightKeywords, &v.ReversedKeywords, &v.Meaning); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tarot card row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tarot card rows", err)
	}
	return views, nil
}

// FindByIDs returns the matching cards in unspecified order; missing ids are
// simply absent from the result.
func (r *CardReadStore) FindByIDs(ctx context.Context, ids []int32) ([]card.Card, error) {
	rows, err := r.db.Query(ctx, selectCardsByIDsSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tarot cards by ids", err)
	}
	defer rows.Close()

	var cards []card.Card
	for rows.Next() {
		var c card.Card
		if err := rows.Scan(&c.ID, &c.Name, &c.Suit, &c.ImageURL, &c.UprightKeywords, &c.ReversedKeywords, &c.Meaning); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tarot card row", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tarot card rows", err)
	}
	return cards, nil
}
