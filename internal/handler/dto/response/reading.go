package response

import (
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/queries"
)

type ReadingResponse struct {
	SessionID       string                `json:"sessionId"`
	Question        string                `json:"question"`
	ReadingType     string                `json:"readingType"`
	PastAnalysis    string                `json:"pastAnalysis"`
	PresentAnalysis string                `json:"presentAnalysis"`
	FutureAnalysis  string                `json:"futureAnalysis"`
	FinalAdvice     string                `json:"finalAdvice"`
	Cards           []ReadingCardResponse `json:"cards"`
	CreatedAt       int64                 `json:"createdAt"`
}

type ReadingCardResponse struct {
	ID         int32  `json:"id"`
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl"`
	Position   string `json:"position"`
	IsReversed bool   `json:"isReversed"`
}

func FromReadingView(v *queries.ReadingView) *ReadingResponse {
	cards := make([]ReadingCardResponse, len(v.Cards))
	for i, c := range v.Cards {
		cards[i] = ReadingCardResponse{
			ID:         c.CardID,
			Name:       c.Name,
			ImageURL:   c.ImageURL,
			Position:   c.Position,
			IsReversed: c.IsReversed,
		}
	}
	return &ReadingResponse{
		SessionID:       v.SessionID.String(),
		Question:        v.Question,
		ReadingType:     v.ReadingType,
		PastAnalysis:    v.PastAnalysis,
		PresentAnalysis: v.PresentAnalysis,
		FutureAnalysis:  v.FutureAnalysis,
		FinalAdvice:     v.FinalAdvice,
		Cards:           cards,
		CreatedAt:       v.CreatedAt.Unix(),
	}
}
