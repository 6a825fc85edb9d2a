package bootstrap

import (
	"github.com/Weed1801/Mystic-Tarot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	GeminiModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
