package api

import (
	"net/http"

	resdto "github.com/Weed1801/Mystic-Tarot/internal/handler/dto/response"
	"github.com/Weed1801/Mystic-Tarot/internal/handler/httperr"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	q queries.CardQueries
}

func NewCardHandler(q queries.CardQueries) *CardHandler {
	return &CardHandler{q: q}
}

// @Summary List tarot cards
// @Description Get the full 78-card catalog in display order
// @Tags cards
// @Produce json
// @Success 200 {array} resdto.CardResponse
// @Failure 500 {object} map[string]string
// @Router /cards [get]
func (h *CardHandler) List(c *gin.Context) {
	views, err := h.q.ListCards(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cards", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardList(views))
}
