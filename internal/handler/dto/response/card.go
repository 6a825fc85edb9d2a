package response

import (
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/queries"
)

type CardResponse struct {
	ID               int32  `json:"id"`
	Name             string `json:"name"`
	Suit             string `json:"suit"`
	ImageURL         string `json:"imageUrl"`
	UprightKeywords  string `json:"uprightKeywords"`
	ReversedKeywords string `json:"reversedKeywords"`
	Meaning          string `json:"meaning"`
}

func FromCardList(views []*queries.CardView) []*CardResponse {
	res := make([]*CardResponse, len(views))
	for i, v := range views {
		res[i] = &CardResponse{
			ID:               v.ID,
			Name:             v.Name,
			Suit:             v.Suit,
			ImageURL:         v.ImageURL,
			UprightKeywords:  v.UprightKeywords,
			ReversedKeywords: v.ReversedKeywords,
			Meaning:          v.Meaning,
		}
	}
	return res
}
