package repository

import (
	"context"

	"github.com/Weed1801/Mystic-Tarot/internal/domain/reading"
	"github.com/Weed1801/Mystic-Tarot/internal/infra"
	"github.com/Weed1801/Mystic-Tarot/internal/infra/db"
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/pgconv"
)

const insertSessionSQL = `
INSERT INTO reading_sessions (
    id, user_question, reading_type,
    past_analysis, present_analysis, future_analysis, final_advice,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const insertPlacementSQL = `
INSERT INTO reading_cards (session_id, card_id, position, is_reversed)
VALUES ($1, $2, $3, $4)
`

// ReadingRepository writes a session and its placements. All statements run
// on the transaction handed in by the caller, so a failed placement insert
// rolls the session back too.
type ReadingRepository struct{}

func NewReadingRepository() *ReadingRepository {
	return &ReadingRepository{}
}

func (r *ReadingRepository) Create(ctx context.Context, tx db.DBTX, s *reading.Session) error {
	n := s.Narrative()
	_, err := tx.Exec(ctx, insertSessionSQL,
		pgconv.UUIDToPgtype(s.ID()),
		s.Question(),
		s.ReadingType(),
		n.PastAnalysis(),
		n.PresentAnalysis(),
		n.FutureAnalysis(),
		n.FinalAdvice(),
		pgconv.TimeToPgtype(s.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reading session", err)
	}

	for _, p := range s.Placements() {
		_, err := tx.Exec(ctx, insertPlacementSQL,
			pgconv.UUIDToPgtype(s.ID()),
			p.CardID(),
			string(p.Position()),
			p.IsReversed(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create reading card placement", err)
		}
	}
	return nil
}
