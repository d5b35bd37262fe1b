// Package sigi implements the "Sigi" fishing assistant: a thin client for
// the OpenAI chat completions API with a keyword-matched canned fallback so
// the chat always answers, with or without credentials.
package sigi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	chatBaseURL = "https://api.openai.com/v1/chat/completions"
	chatModel   = "gpt-4o-mini"
)

// ContextStats is the user summary the client sends along with a message.
type ContextStats struct {
	TotalCatches  int      `json:"totalCatches"`
	BestCatch     float64  `json:"bestCatch"`
	FavoriteSpots []string `json:"favoriteSpots"`
	Equipment     []string `json:"equipment"`
}

// Context is the situational payload folded into Sigi's system prompt.
type Context struct {
	UserStats    *ContextStats  `json:"userStats"`
	Weather      map[string]any `json:"weather"`
	SelectedSpot map[string]any `json:"selectedSpot"`
	PlanningMode bool           `json:"planningMode"`
}

// Client calls the AI text-generation collaborator.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        logrus.FieldLogger
}

// NewClient creates a Sigi client. An empty API key is allowed; Reply then
// always serves the fallback.
func NewClient(apiKey string, log logrus.FieldLogger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: chatBaseURL,
		apiKey:  apiKey,
		log:     log,
	}
}

// Reply answers a chat message. It never fails: if the collaborator is
// unreachable, times out or no key is configured, the canned fallback for
// the message is returned instead.
func (c *Client) Reply(ctx context.Context, message string, sctx Context) string {
	if c.apiKey == "" {
		return FallbackReply(message)
	}
	reply, err := c.chat(ctx, message, sctx)
	if err != nil {
		c.log.WithError(err).Warn("AI collaborator unavailable, serving fallback")
		return FallbackReply(message)
	}
	return reply
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) chat(ctx context.Context, message string, sctx Context) (string, error) {
	payload := chatRequest{
		Model: chatModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(sctx)},
			{Role: "user", Content: message},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("parsing chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// systemPrompt renders the situational context into Sigi's instructions.
func systemPrompt(sctx Context) string {
	var b strings.Builder
	b.WriteString("Du bist Sigi, ein erfahrener deutscher Angel-Experte der FishMasterKI App. ")
	b.WriteString("Antworte kurz, freundlich und praxisnah auf Deutsch.")

	if sctx.UserStats != nil {
		fmt.Fprintf(&b, " Der Nutzer hat %d Fänge", sctx.UserStats.TotalCatches)
		if sctx.UserStats.BestCatch > 0 {
			fmt.Fprintf(&b, ", bester Fang %.1f kg", sctx.UserStats.BestCatch)
		}
		if len(sctx.UserStats.FavoriteSpots) > 0 {
			fmt.Fprintf(&b, ", Lieblingsspots: %s", strings.Join(sctx.UserStats.FavoriteSpots, ", "))
		}
		b.WriteString(".")
	}
	if len(sctx.Weather) > 0 {
		if raw, err := json.Marshal(sctx.Weather); err == nil {
			fmt.Fprintf(&b, " Aktuelles Wetter: %s.", raw)
		}
	}
	if len(sctx.SelectedSpot) > 0 {
		if raw, err := json.Marshal(sctx.SelectedSpot); err == nil {
			fmt.Fprintf(&b, " Gewählter Spot: %s.", raw)
		}
	}
	if sctx.PlanningMode {
		b.WriteString(" Der Nutzer plant gerade einen Angelausflug.")
	}
	return b.String()
}
