//go:build unit

package gemini

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Weed1801/Mystic-Tarot/internal/domain/card"
	"github.com/Weed1801/Mystic-Tarot/internal/domain/reading"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key-long-enough"

func testSpread() [reading.SpreadSize]card.Card {
	return [reading.SpreadSize]card.Card{
		{ID: 1, Name: "The Fool", UprightKeywords: "beginnings, spontaneity", Meaning: "A leap of faith."},
		{ID: 2, Name: "The Magician", UprightKeywords: "willpower, skill", Meaning: "Power to manifest."},
		{ID: 3, Name: "The High Priestess", UprightKeywords: "intuition, mystery", Meaning: "Hidden knowledge."},
	}
}

func geminiReply(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	out, _ := json.Marshal(resp)
	return string(out)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.Client(), testAPIKey, srv.URL, "gemini-2.0-flash", slog.Default())
}

func TestGenerate_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(geminiReply(`{"past_analysis":"p","present_analysis":"n","future_analysis":"f","final_advice":"a"}`)))
	})

	raw, err := client.Generate(context.Background(), "Will it rain?", testSpread())
	require.NoError(t, err)
	assert.JSONEq(t, `{"past_analysis":"p","present_analysis":"n","future_analysis":"f","final_advice":"a"}`, raw)

	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, testAPIKey, gotKey)

	cfg, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2000, cfg["maxOutputTokens"])
	assert.EqualValues(t, 0.7, cfg["temperature"])

	prompt := gotBody["contents"].([]any)[0].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"].(string)
	assert.Contains(t, prompt, "Will it rain?")
	assert.Contains(t, prompt, "The Fool")
	assert.Contains(t, prompt, "The High Priestess")
}

func TestGenerate_StripsCodeFences(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{name: "json fence", reply: "```json\n{\"final_advice\":\"a\"}\n```"},
		{name: "bare fence", reply: "```\n{\"final_advice\":\"a\"}\n```"},
		{name: "no fence", reply: `{"final_advice":"a"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(geminiReply(tc.reply)))
			})

			raw, err := client.Generate(context.Background(), "q", testSpread())
			require.NoError(t, err)
			assert.JSONEq(t, `{"final_advice":"a"}`, raw)
		})
	}
}

func TestGenerate_UpstreamErrorFallsBack(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	raw, err := client.Generate(context.Background(), "q", testSpread())
	require.NoError(t, err)
	assertFallback(t, raw)
}

func TestGenerate_MalformedReplyFallsBack(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	raw, err := client.Generate(context.Background(), "q", testSpread())
	require.NoError(t, err)
	assertFallback(t, raw)
}

func TestGenerate_MissingKeySkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)

	for _, key := range []string{"", "short"} {
		client := NewClient(srv.Client(), key, srv.URL, "gemini-2.0-flash", slog.Default())

		raw, err := client.Generate(context.Background(), "q", testSpread())
		require.NoError(t, err)
		assertFallback(t, raw)
	}
	assert.False(t, called, "no request should be sent without a usable key")
}

// assertFallback checks the degraded reading is itself well-formed: the
// workflow parses it like any other reply.
func assertFallback(t *testing.T, raw string) {
	t.Helper()

	var n struct {
		PastAnalysis    string `json:"past_analysis"`
		PresentAnalysis string `json:"present_analysis"`
		FutureAnalysis  string `json:"future_analysis"`
		FinalAdvice     string `json:"final_advice"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &n))

	assert.Contains(t, n.PastAnalysis, "The Fool")
	assert.Contains(t, n.PresentAnalysis, "The Magician")
	assert.Contains(t, n.FutureAnalysis, "The High Priestess")
	assert.Contains(t, n.FinalAdvice, "temporarily unreachable")
}
