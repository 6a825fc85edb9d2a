package reading

import (
	"encoding/json"

	"github.com/Weed1801/Mystic-Tarot/internal/pkg/errs"
)

var (
	ErrInvalidCardCount = errs.New("a three-card spread requires exactly 3 cards")
	ErrDuplicateCardID  = errs.New("the same card cannot be drawn twice")
)

// MaxAnalysisLength bounds each stored narrative field. Longer upstream
// replies are truncated, never rejected.
const MaxAnalysisLength = 4000

// Selection is a validated, ordered pick of exactly 3 distinct card ids.
// The order is the caller's, and it determines Past/Present/Future placement.
type Selection struct {
	ids [SpreadSize]int32
}

func NewSelection(ids []int32) (Selection, error) {
	if len(ids) != SpreadSize {
		return Selection{}, ErrInvalidCardCount
	}
	seen := make(map[int32]struct{}, SpreadSize)
	var s Selection
	for i, id := range ids {
		if _, dup := seen[id]; dup {
			return Selection{}, ErrDuplicateCardID
		}
		seen[id] = struct{}{}
		s.ids[i] = id
	}
	return s, nil
}

func (s Selection) IDs() [SpreadSize]int32 { return s.ids }

// Narrative is the four-field interpretation of a spread.
type Narrative struct {
	pastAnalysis    string
	presentAnalysis string
	futureAnalysis  string
	finalAdvice     string
}

func NewNarrative(past, present, future, advice string) Narrative {
	return Narrative{
		pastAnalysis:    truncate(past),
		presentAnalysis: truncate(present),
		futureAnalysis:  truncate(future),
		finalAdvice:     truncate(advice),
	}
}

func (n Narrative) PastAnalysis() string    { return n.pastAnalysis }
func (n Narrative) PresentAnalysis() string { return n.presentAnalysis }
func (n Narrative) FutureAnalysis() string  { return n.futureAnalysis }
func (n Narrative) FinalAdvice() string     { return n.finalAdvice }

// rawNarrative mirrors the JSON contract with the generator. encoding/json
// matches the snake_case keys case-insensitively, which covers the casing
// drift observed in upstream replies.
type rawNarrative struct {
	PastAnalysis    string `json:"past_analysis"`
	PresentAnalysis string `json:"present_analysis"`
	FutureAnalysis  string `json:"future_analysis"`
	FinalAdvice     string `json:"final_advice"`
}

// ParseNarrative decodes the generator's raw reply. When the reply is not the
// expected JSON object it degrades instead of failing: the raw text becomes
// the final advice and the per-position analyses stay empty, so the reading
// still reaches the user. The second return reports that degradation.
func ParseNarrative(raw string) (Narrative, bool) {
	var parsed rawNarrative
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return NewNarrative("", "", "", raw), true
	}
	return NewNarrative(
		parsed.PastAnalysis,
		parsed.PresentAnalysis,
		parsed.FutureAnalysis,
		parsed.FinalAdvice,
	), false
}

func truncate(s string) string {
	if len(s) <= MaxAnalysisLength {
		return s
	}
	runes := []rune(s)
	if len(runes) <= MaxAnalysisLength {
		return s
	}
	return string(runes[:MaxAnalysisLength])
}
