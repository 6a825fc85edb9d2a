package components

import (
	"github.com/Weed1801/Mystic-Tarot/internal/infra/db"
	"github.com/Weed1801/Mystic-Tarot/internal/infra/readstore"
	"github.com/Weed1801/Mystic-Tarot/internal/infra/repository"
	"github.com/Weed1801/Mystic-Tarot/internal/infra/uow"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/commands"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/queries"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewCardReadStore,
			fx.As(new(queries.CardReadStore)),
			fx.As(new(commands.CardReader)),
		),
		fx.Annotate(
			readstore.NewReadingReadStore,
			fx.As(new(queries.ReadingReadStore)),
		),
		fx.Annotate(
			repository.NewReadingRepository,
			fx.As(new(commands.ReadingRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
