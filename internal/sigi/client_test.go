package sigi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestReplyWithoutKeyServesFallback(t *testing.T) {
	c := NewClient("", discardLogger())

	got := c.Reply(context.Background(), "Hallo!", Context{})
	if !strings.Contains(got, "Hallo! Ich bin Sigi") {
		t.Errorf("Reply = %q, want greeting fallback", got)
	}
}

func TestReplyCallsCollaborator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Model != chatModel {
			t.Errorf("model = %q", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Fatalf("unexpected messages: %+v", req.Messages)
		}
		if !strings.Contains(req.Messages[0].Content, "Der Nutzer hat 7 Fänge") {
			t.Errorf("system prompt missing user stats: %q", req.Messages[0].Content)
		}
		if req.Messages[1].Content != "Welcher Köder heute?" {
			t.Errorf("user message = %q", req.Messages[1].Content)
		}

		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"Probier einen Wobbler."}}]}`)
	}))
	defer srv.Close()

	c := NewClient("test-key", discardLogger())
	c.baseURL = srv.URL

	got := c.Reply(context.Background(), "Welcher Köder heute?", Context{
		UserStats: &ContextStats{TotalCatches: 7, BestCatch: 3.4},
	})
	if got != "Probier einen Wobbler." {
		t.Errorf("Reply = %q", got)
	}
}

func TestReplyServesFallbackOnCollaboratorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient("test-key", discardLogger())
	c.baseURL = srv.URL

	got := c.Reply(context.Background(), "Wie wird das Wetter?", Context{})
	if !strings.Contains(got, "Wetter ist perfekt") {
		t.Errorf("Reply = %q, want weather fallback", got)
	}
}

func TestSystemPrompt(t *testing.T) {
	got := systemPrompt(Context{
		UserStats:    &ContextStats{TotalCatches: 3, BestCatch: 5.2, FavoriteSpots: []string{"Chiemsee"}},
		PlanningMode: true,
	})
	for _, want := range []string{
		"Du bist Sigi",
		"3 Fänge",
		"5.2 kg",
		"Chiemsee",
		"plant gerade einen Angelausflug",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("system prompt missing %q: %q", want, got)
		}
	}
}
