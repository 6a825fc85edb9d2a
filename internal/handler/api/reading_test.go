//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Weed1801/Mystic-Tarot/internal/domain/reading"
	"github.com/Weed1801/Mystic-Tarot/internal/handler/api"
	"github.com/Weed1801/Mystic-Tarot/internal/handler/middleware"
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/errs"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeReadingCommands struct {
	view *queries.ReadingView
	err  error

	gotQuestion string
	gotIDs      []int32
}

func (f *fakeReadingCommands) CreateReading(_ context.Context, question string, ids []int32) (*queries.ReadingView, error) {
	f.gotQuestion = question
	f.gotIDs = ids
	return f.view, f.err
}

type fakeReadingQueries struct {
	view *queries.ReadingView
	err  error
}

func (f *fakeReadingQueries) GetReading(context.Context, uuid.UUID) (*queries.ReadingView, error) {
	return f.view, f.err
}

func sampleView() *queries.ReadingView {
	return &queries.ReadingView{
		SessionID:       uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		Question:        "Will I find love?",
		ReadingType:     reading.ReadingTypeThreeCard,
		PastAnalysis:    "p",
		PresentAnalysis: "n",
		FutureAnalysis:  "f",
		FinalAdvice:     "a",
		Cards: []queries.ReadingCardView{
			{CardID: 5, Name: "The Emperor", ImageURL: "/assets/cards/the_emperor.png", Position: "Past"},
			{CardID: 12, Name: "The Hanged Man", ImageURL: "/assets/cards/the_hanged_man.png", Position: "Present"},
			{CardID: 78, Name: "King of Wands", ImageURL: "/assets/cards/wands_king.png", Position: "Future"},
		},
		CreatedAt: time.Date(2026, 2, 6, 3, 7, 0, 0, time.UTC),
	}
}

type ReadingHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	cmds   *fakeReadingCommands
	q      *fakeReadingQueries
}

func (s *ReadingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.cmds = &fakeReadingCommands{}
	s.q = &fakeReadingQueries{}
	handler := api.NewReadingHandler(s.cmds, s.q)

	s.router.POST("/reading", handler.Create)
	s.router.GET("/readings/:id", handler.Get)
}

func TestReadingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReadingHandlerTestSuite))
}

func (s *ReadingHandlerTestSuite) postReading(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/reading", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ReadingHandlerTestSuite) TestCreate_Success() {
	s.cmds.view = sampleView()

	w := s.postReading(`{"question":"Will I find love?","selectedCardIds":[5,12,78]}`)
	s.Equal(http.StatusOK, w.Code)

	s.Equal("Will I find love?", s.cmds.gotQuestion)
	s.Equal([]int32{5, 12, 78}, s.cmds.gotIDs)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("11111111-2222-3333-4444-555555555555", resp["sessionId"])
	s.Equal("ThreeCardSpread", resp["readingType"])
	s.Equal("p", resp["pastAnalysis"])
	s.Equal("a", resp["finalAdvice"])

	cards := resp["cards"].([]any)
	s.Require().Len(cards, 3)
	first := cards[0].(map[string]any)
	s.EqualValues(5, first["id"])
	s.Equal("Past", first["position"])
	s.Equal(false, first["isReversed"])
	s.Equal("/assets/cards/the_emperor.png", first["imageUrl"])
}

func (s *ReadingHandlerTestSuite) TestCreate_ErrorMapping() {
	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "wrong card count", err: reading.ErrInvalidCardCount, expectCode: http.StatusBadRequest},
		{name: "duplicate cards", err: reading.ErrDuplicateCardID, expectCode: http.StatusBadRequest},
		{name: "unknown card id", err: errs.ErrUnknownCard, expectCode: http.StatusBadRequest},
		{name: "narrative unavailable", err: errs.Mark(errs.New("boom"), errs.ErrNarrativeUnavailable), expectCode: http.StatusBadGateway},
		{name: "persistence failure", err: errs.Mark(errs.New("down"), errs.ErrDatabaseOperationFailed), expectCode: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.cmds.view = nil
			s.cmds.err = tc.err

			w := s.postReading(`{"question":"q","selectedCardIds":[5,12,78]}`)
			s.Equal(tc.expectCode, w.Code)
		})
	}
}

func (s *ReadingHandlerTestSuite) TestCreate_MalformedBody() {
	w := s.postReading(`{"question": 42}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ReadingHandlerTestSuite) TestGet_Success() {
	s.q.view = sampleView()

	req := httptest.NewRequest(http.MethodGet, "/readings/11111111-2222-3333-4444-555555555555", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Will I find love?", resp["question"])
	s.Len(resp["cards"].([]any), 3)
}

func (s *ReadingHandlerTestSuite) TestGet_NotFound() {
	s.q.err = errs.ErrReadingNotFound

	req := httptest.NewRequest(http.MethodGet, "/readings/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ReadingHandlerTestSuite) TestGet_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/readings/not-a-uuid", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}
