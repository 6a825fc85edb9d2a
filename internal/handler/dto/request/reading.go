package request

// CreateReadingRequest is the spread submission. SelectedCardIDs must hold
// exactly three distinct catalog ids; order is meaningful (Past, Present,
// Future). Question may be empty.
type CreateReadingRequest struct {
	Question        string  `json:"question"`
	SelectedCardIDs []int32 `json:"selectedCardIds" binding:"required"`
}
