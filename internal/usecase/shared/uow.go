package shared

import (
	"context"

	"github.com/Weed1801/Mystic-Tarot/internal/infra/db"
)

// UnitOfWork runs a function inside one database transaction. The reading
// workflow uses it for the single all-or-nothing write of a session and its
// placements; a failed transaction leaves nothing visible and is not retried.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
