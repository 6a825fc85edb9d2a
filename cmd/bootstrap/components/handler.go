package components

import (
	"github.com/Weed1801/Mystic-Tarot/internal/handler"
	"github.com/Weed1801/Mystic-Tarot/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCardHandler,
		api.NewReadingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
