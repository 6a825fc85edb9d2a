package bootstrap

import (
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
