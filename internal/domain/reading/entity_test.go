//go:build unit

package reading_test

import (
	"testing"
	"time"

	"github.com/Weed1801/Mystic-Tarot/internal/domain/reading"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThreeCardSession(t *testing.T) {
	now := time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)
	sel, err := reading.NewSelection([]int32{5, 12, 78})
	require.NoError(t, err)
	n := reading.NewNarrative("p", "n", "f", "a")

	t.Run("placements follow selection order", func(t *testing.T) {
		s := reading.NewThreeCardSession(uuid.Nil, "Will I find love?", sel, n, now)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, reading.ReadingTypeThreeCard, s.ReadingType())
		assert.Equal(t, now, s.CreatedAt())

		placements := s.Placements()
		require.Len(t, placements[:], 3)
		assert.Equal(t, int32(5), placements[0].CardID())
		assert.Equal(t, reading.PositionPast, placements[0].Position())
		assert.Equal(t, int32(12), placements[1].CardID())
		assert.Equal(t, reading.PositionPresent, placements[1].Position())
		assert.Equal(t, int32(78), placements[2].CardID())
		assert.Equal(t, reading.PositionFuture, placements[2].Position())
	})

	t.Run("orientation is never computed", func(t *testing.T) {
		s := reading.NewThreeCardSession(uuid.New(), "", sel, n, now)
		for _, p := range s.Placements() {
			assert.False(t, p.IsReversed())
		}
	})

	t.Run("explicit id is preserved", func(t *testing.T) {
		id := uuid.New()
		s := reading.NewThreeCardSession(id, "q", sel, n, now)
		assert.Equal(t, id, s.ID())
	})
}
