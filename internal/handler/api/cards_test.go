//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Weed1801/Mystic-Tarot/internal/handler/api"
	"github.com/Weed1801/Mystic-Tarot/internal/handler/middleware"
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/errs"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type fakeCardQueries struct {
	views []*queries.CardView
	err   error
}

func (f *fakeCardQueries) ListCards(context.Context) ([]*queries.CardView, error) {
	return f.views, f.err
}

type CardHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	q      *fakeCardQueries
}

func (s *CardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.q = &fakeCardQueries{}
	s.router.GET("/cards", api.NewCardHandler(s.q).List)
}

func TestCardHandlerSuite(t *testing.T) {
	suite.Run(t, new(CardHandlerTestSuite))
}

func (s *CardHandlerTestSuite) TestList_Success() {
	s.q.views = []*queries.CardView{
		{ID: 1, Name: "The Fool", Suit: "Major", ImageURL: "/assets/cards/the_fool.png", UprightKeywords: "beginnings", ReversedKeywords: "recklessness", Meaning: "A leap of faith."},
		{ID: 2, Name: "The Magician", Suit: "Major", ImageURL: "/assets/cards/the_magician.png", UprightKeywords: "willpower", ReversedKeywords: "manipulation", Meaning: "Power to manifest."},
	}

	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var resp []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp, 2)
	s.EqualValues(1, resp[0]["id"])
	s.Equal("The Fool", resp[0]["name"])
	s.Equal("Major", resp[0]["suit"])
	s.Equal("/assets/cards/the_fool.png", resp[0]["imageUrl"])
	s.Equal("beginnings", resp[0]["uprightKeywords"])
}

func (s *CardHandlerTestSuite) TestList_StoreFailure() {
	s.q.err = errs.New("connection refused")

	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusInternalServerError, w.Code)
}
