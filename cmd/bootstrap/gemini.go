package bootstrap

import (
	"log/slog"
	"net/http"

	"github.com/Weed1801/Mystic-Tarot/internal/infra/gemini"
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/config"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/commands"

	"go.uber.org/fx"
)

var GeminiModule = fx.Module("gemini",
	fx.Provide(
		fx.Annotate(
			NewGeminiClient,
			fx.As(new(commands.NarrativeGenerator)),
		),
	),
)

func NewGeminiClient(cfg config.Config, logger *slog.Logger) *gemini.Client {
	httpClient := &http.Client{Timeout: cfg.Gemini.Timeout}
	return gemini.NewClient(httpClient, cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, logger)
}
