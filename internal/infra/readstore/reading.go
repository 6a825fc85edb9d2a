package readstore

import (
	"context"

	"github.com/Weed1801/Mystic-Tarot/internal/infra"
	"github.com/Weed1801/Mystic-Tarot/internal/infra/db"
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/pgconv"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const selectSessionSQL = `
SELECT id, user_question, reading_type,
       past_analysis, present_analysis, future_analysis, final_advice,
       created_at
FROM reading_sessions
WHERE id = $1
`

const selectPlacementsSQL = `
SELECT rc.card_id, tc.name, tc.image_url, rc.position, rc.is_reversed
FROM reading_cards rc
JOIN tarot_cards tc ON tc.id = rc.card_id
WHERE rc.session_id = $1
ORDER BY CASE rc.position WHEN 'Past' THEN 1 WHEN 'Present' THEN 2 ELSE 3 END
`

type ReadingReadStore struct {
	db db.DBTX
}

func NewReadingReadStore(db db.DBTX) *ReadingReadStore {
	return &ReadingReadStore{db: db}
}

func (r *ReadingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReadingView, error) {
	view := &queries.ReadingView{}
	var sessionID pgtype.UUID
	var createdAt pgtype.Timestamptz

	err := r.db.QueryRow(ctx, selectSessionSQL, pgconv.UUIDToPgtype(id)).Scan(
		&sessionID,
		&view.Question,
		&view.ReadingType,
		&view.PastAnalysis,
		&view.PresentAnalysis,
		&view.FutureAnalysis,
		&view.FinalAdvice,
		&createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reading session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reading session by id", err)
	}
	view.SessionID = pgconv.UUIDFromPgtype(sessionID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	rows, err := r.db.Query(ctx, selectPlacementsSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reading card placements", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c queries.ReadingCardView
		if err := rows.Scan(&c.CardID, &c.Name, &c.ImageURL, &c.Position, &c.IsReversed); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reading card row", err)
		}
		view.Cards = append(view.Cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reading card rows", err)
	}

	return view, nil
}
