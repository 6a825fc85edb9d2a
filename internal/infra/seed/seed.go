package seed

import (
	"context"

	"github.com/Weed1801/Mystic-Tarot/internal/infra"
	infradb "github.com/Weed1801/Mystic-Tarot/internal/infra/db"
)

const insertCardSQL = `
INSERT INTO tarot_cards (id, name, suit, image_url, upright_keywords, reversed_keywords, meaning)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`

// EnsureCards inserts the fixed deck. ON CONFLICT DO NOTHING makes repeated
// startups idempotent; existing rows are never rewritten.
func EnsureCards(ctx context.Context, db infradb.DBTX) error {
	for _, c := range Deck() {
		_, err := db.Exec(ctx, insertCardSQL,
			c.ID, c.Name, string(c.Suit), c.ImageURL,
			c.UprightKeywords, c.ReversedKeywords, c.Meaning,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to seed card catalog", err)
		}
	}
	return nil
}
