package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Weed1801/Mystic-Tarot/internal/domain/card"
	"github.com/Weed1801/Mystic-Tarot/internal/domain/reading"
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/errs"
)

// minAPIKeyLength guards against obviously broken keys (empty, placeholder
// fragments) without validating the real format.
const minAPIKeyLength = 10

// Client generates reading narratives through the Gemini generateContent
// API. Upstream faults never surface to the caller: any failure past key
// validation degrades to a deterministic offline reading built from the
// card meanings, so a broken upstream costs narrative quality, not the
// request.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		logger:     logger,
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) Generate(ctx context.Context, question string, cards [reading.SpreadSize]card.Card) (string, error) {
	if len(c.apiKey) < minAPIKeyLength {
		c.logger.WarnContext(ctx, "gemini api key missing or too short, using fallback reading")
		return fallbackReading(cards)
	}

	raw, err := c.callGemini(ctx, buildPrompt(question, cards))
	if err != nil {
		c.logger.WarnContext(ctx, "gemini call failed, using fallback reading", "error", err)
		return fallbackReading(cards)
	}

	return stripCodeFences(raw), nil
}

func (c *Client) callGemini(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			MaxOutputTokens: 2000,
			Temperature:     0.7,
		},
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to marshal gemini request")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build gemini request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "gemini http call failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Wrap(err, "failed to read gemini response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errs.New(fmt.Sprintf("gemini returned status %d: %s", resp.StatusCode, string(respBody)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errs.Wrap(err, "failed to decode gemini response")
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errs.New("gemini response contained no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func buildPrompt(question string, cards [reading.SpreadSize]card.Card) string {
	var b strings.Builder
	b.WriteString("You are a professional tarot reader with a mystic, empathetic and insightful voice.\n")
	fmt.Fprintf(&b, "The querent asks: %q\n", question)
	b.WriteString("The cards drawn for a Past / Present / Future spread:\n")
	for i, c := range cards {
		fmt.Fprintf(&b, "Card %d (%s): %s (%s) - Description: %s\n",
			i+1, reading.Positions()[i], c.Name, c.UprightKeywords, c.Meaning)
	}
	b.WriteString(`
Your task:
1. Weave a coherent story connecting the three cards to answer the question.
2. Do not list the card meanings in isolation; analyse how they interact.
3. Be specific and direct, avoid vague hedging.
4. Close with practical advice addressing the querent's situation.

Return ONLY a valid JSON string (no markdown code block) with exactly this structure:
{
  "past_analysis": "...",
  "present_analysis": "...",
  "future_analysis": "...",
  "final_advice": "..."
}
`)
	return b.String()
}

// stripCodeFences removes a wrapping markdown code block. Gemini sometimes
// fences the JSON despite being told not to.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(text, "```json"):
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	case strings.HasPrefix(text, "```"):
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

type fallbackNarrative struct {
	PastAnalysis    string `json:"past_analysis"`
	PresentAnalysis string `json:"present_analysis"`
	FutureAnalysis  string `json:"future_analysis"`
	FinalAdvice     string `json:"final_advice"`
}

// fallbackReading builds a deterministic narrative from the stored card
// meanings so the reading flow keeps working while the upstream is down.
func fallbackReading(cards [reading.SpreadSize]card.Card) (string, error) {
	out, err := json.Marshal(fallbackNarrative{
		PastAnalysis: fmt.Sprintf(
			"The card %s appears in the Past position. Its meaning: %s. Experiences already behind you still shape your path strongly.",
			cards[0].Name, cards[0].Meaning),
		PresentAnalysis: fmt.Sprintf(
			"In the Present position stands %s. Its message: %s. This is the dominant energy to pay attention to right now.",
			cards[1].Name, cards[1].Meaning),
		FutureAnalysis: fmt.Sprintf(
			"The card %s foretells the Future. Its meaning: %s. Prepare yourself to welcome these changes.",
			cards[2].Name, cards[2].Meaning),
		FinalAdvice: "The connection to the universe is temporarily unreachable, so a detailed prophecy cannot reach you yet. Reflect on the meaning of the three cards above; the answer lies within your own intuition.",
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to build fallback reading")
	}
	return string(out), nil
}
