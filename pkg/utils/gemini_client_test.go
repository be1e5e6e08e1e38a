package utils

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestExtractItineraryJSON(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"days": []}`)}}},
		},
	}

	got, err := extractItineraryJSON(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"days": []}` {
		t.Errorf("got %q", got)
	}
}

func TestExtractItineraryJSONEmptyReplies(t *testing.T) {
	cases := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"no candidates", &genai.GenerateContentResponse{}},
		// Safety-blocked candidates come back with nil Content.
		{"blocked candidate", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: nil}},
		}},
		{"no parts", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := extractItineraryJSON(tc.resp); err == nil {
				t.Fatal("want error, got nil")
			}
		})
	}
}

func TestExtractItineraryJSONRejectsProse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Here is your itinerary!")}}},
		},
	}

	if _, err := extractItineraryJSON(resp); err == nil {
		t.Fatal("non-JSON reply must be rejected")
	}
}
