package services

import (
	"strings"
	"testing"
)

func TestBuildItineraryPromptFixedDates(t *testing.T) {
	prompt := NewPromptBuilder().BuildItineraryPrompt(fixedInput(3))

	for _, want := range []string{
		"3-day itinerary for Tokyo",
		"from 2025-03-01 to 2025-03-04",
		"Day 1 is 2025-03-01",
		"2-4 activities per day",
		"2-3 restaurants per day",
		"At most 2 entries in \"highlights\"",
		"Moderate budget",
		"Return JSON only",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "suggestedStartDate\" and \"suggestedEndDate") {
		t.Error("fixed-date prompt must not ask for suggested dates")
	}
}

func TestBuildItineraryPromptFlexibleDates(t *testing.T) {
	prompt := NewPromptBuilder().BuildItineraryPrompt(flexibleInput(5))

	for _, want := range []string{
		"5-day itinerary for Tokyo",
		"dates are flexible",
		"fixed at exactly 5 days",
		"\"suggestedStartDate\" and \"suggestedEndDate\"",
		"exactly 5 entries in \"days\"",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildItineraryPromptSpecialRequests(t *testing.T) {
	in := fixedInput(3)
	in.SpecialRequests = "vegetarian food only, no museums"

	prompt := NewPromptBuilder().BuildItineraryPrompt(in)
	if !strings.Contains(prompt, "vegetarian food only, no museums") {
		t.Error("special requests must appear verbatim")
	}

	in.SpecialRequests = ""
	prompt = NewPromptBuilder().BuildItineraryPrompt(in)
	if strings.Contains(prompt, "Special requests") {
		t.Error("empty special requests must not add a section")
	}
}

func TestBuildItineraryPromptIsPure(t *testing.T) {
	in := fixedInput(3)
	b := NewPromptBuilder()
	if b.BuildItineraryPrompt(in) != b.BuildItineraryPrompt(in) {
		t.Error("same input must produce the same prompt")
	}
}

func TestBuildItineraryPromptSchemaFields(t *testing.T) {
	prompt := NewPromptBuilder().BuildItineraryPrompt(fixedInput(2))

	for _, field := range []string{
		"displayName", "countryCode", "dayNumber", "activities",
		"restaurants", "hiddenGems", "estimatedDailyCost",
		"highlights", "localTips", "totalEstimatedCost",
	} {
		if !strings.Contains(prompt, field) {
			t.Errorf("schema missing field %q", field)
		}
	}
}
