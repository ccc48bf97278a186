package gemini

import (
	"context"
	"errors"
	"flag"
	"os"
	"testing"

	"github.com/zicongmei/ai-chat/pkg/config"
	"google.golang.org/genai"
)

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{
			name: "Nil response",
			resp: nil,
			want: "",
		},
		{
			name: "No candidates",
			resp: &genai.GenerateContentResponse{},
			want: "",
		},
		{
			name: "Candidate without content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			},
			want: "",
		},
		{
			name: "Single text part",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{Text: "Hi there"}}}},
				},
			},
			want: "Hi there",
		},
		{
			name: "Multiple parts are joined",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{Text: "Hi"}, {Text: " there"}}}},
				},
			},
			want: "Hi there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := responseText(tt.resp); got != tt.want {
				t.Errorf("responseText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUsageSummary(t *testing.T) {
	if got, want := usageSummary(nil), "usage unavailable"; got != want {
		t.Errorf("usageSummary(nil) = %q, want %q", got, want)
	}
	usage := &genai.GenerateContentResponseUsageMetadata{PromptTokenCount: 3, CandidatesTokenCount: 5, TotalTokenCount: 8}
	if got, want := usageSummary(usage), "tokens: prompt=3 candidates=5 total=8"; got != want {
		t.Errorf("usageSummary() = %q, want %q", got, want)
	}
}

// A missing key must not fail construction; it is reported by the first call.
func TestMissingAPIKeySurfacesOnFirstCall(t *testing.T) {
	client := NewClient(&config.Config{APIKey: "", Model: config.DefaultModel})

	for i := 0; i < 2; i++ {
		_, err := client.SendPrompt(context.Background(), "hello")
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Fatalf("SendPrompt() #%d error = %v, want %v", i, err, ErrMissingAPIKey)
		}
	}
}

// TestSendPrompt_Integration performs a real API call to Gemini.
// It depends on network connectivity and API_KEY or GEMINI_API_KEY being set.
func TestSendPrompt_Integration(t *testing.T) {
	cfg, err := config.Load(os.DevNull)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.APIKey == "" {
		t.Skip("API_KEY/GEMINI_API_KEY not set. Skipping Gemini integration test.")
	}

	got, err := NewClient(cfg).SendPrompt(context.Background(), "Reply with the single word: pong")
	if err != nil {
		t.Fatalf("SendPrompt() error = %v", err)
	}
	if got == "" {
		t.Errorf("SendPrompt() returned empty response")
	}
}
