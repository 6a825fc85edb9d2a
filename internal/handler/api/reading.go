package api

import (
	"errors"
	"net/http"

	"github.com/Weed1801/Mystic-Tarot/internal/domain/reading"
	reqdto "github.com/Weed1801/Mystic-Tarot/internal/handler/dto/request"
	resdto "github.com/Weed1801/Mystic-Tarot/internal/handler/dto/response"
	"github.com/Weed1801/Mystic-Tarot/internal/handler/httperr"
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/errs"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/commands"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReadingHandler struct {
	cmds commands.ReadingCommands
	q    queries.ReadingQueries
}

func NewReadingHandler(cmds commands.ReadingCommands, q queries.ReadingQueries) *ReadingHandler {
	return &ReadingHandler{cmds: cmds, q: q}
}

// @Summary Create reading
// @Description Submit a question and three selected cards for a Past, Present, Future reading
// @Tags readings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReadingRequest true "Create reading request"
// @Success 200 {object} resdto.ReadingResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /reading [post]
func (h *ReadingHandler) Create(c *gin.Context) {
	var req reqdto.CreateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateReading(c.Request.Context(), req.Question, req.SelectedCardIDs)
	if err != nil {
		status, msg := createReadingStatus(err)
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReadingView(view))
}

// @Summary Get reading
// @Description Get a stored reading session by ID
// @Tags readings
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.ReadingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /readings/{id} [get]
func (h *ReadingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetReading(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrReadingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reading not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reading", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReadingView(view))
}

func createReadingStatus(err error) (int, string) {
	switch {
	case errors.Is(err, reading.ErrInvalidCardCount):
		return http.StatusBadRequest, "Please select exactly 3 cards for a Past, Present, Future reading"
	case errors.Is(err, reading.ErrDuplicateCardID):
		return http.StatusBadRequest, "Selected cards must be distinct"
	case errors.Is(err, errs.ErrUnknownCard):
		return http.StatusBadRequest, "Invalid card IDs provided"
	case errors.Is(err, errs.ErrNarrativeUnavailable):
		return http.StatusBadGateway, "Narrative service unavailable"
	default:
		return http.StatusInternalServerError, "Create reading failed"
	}
}
