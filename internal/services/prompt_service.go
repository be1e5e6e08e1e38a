package services

import (
	"fmt"
	"strings"

	"voyago/pkg/utils"
)

type PromptBuilderInterface interface {
	BuildItineraryPrompt(in *PlanInput) string
}

// PromptBuilder turns a validated plan request into the model prompt. Pure
// string assembly, no I/O.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const itinerarySchema = `{
  "displayName": "Corrected, canonical place name",
  "countryCode": "ISO 3166-1 alpha-2 code or null",
  "days": [
    {
      "dayNumber": 1,
      "date": "YYYY-MM-DD",
      "theme": "Short theme for the day",
      "activities": [
        {"time": "09:00", "name": "...", "description": "...", "duration": "2h", "cost": "$20", "location": "...", "tips": "..."}
      ],
      "restaurants": [
        {"name": "...", "time": "12:30", "cuisine": "...", "priceRange": "$$", "reservation": "recommended", "description": "..."}
      ],
      "hiddenGems": ["..."],
      "tip": "One practical tip for the day",
      "estimatedDailyCost": "$120"
    }
  ],
  "highlights": ["...", "..."],
  "localTips": ["..."],
  "totalEstimatedCost": "$840"
}`

func (b *PromptBuilder) BuildItineraryPrompt(in *PlanInput) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("You are an expert travel planner. Create a detailed %d-day itinerary for %s.\n\n", in.DayCount, in.Destination))

	if in.IsFlexibleDates {
		prompt.WriteString("The traveler's dates are flexible. Choose the optimal start date for this destination, ")
		prompt.WriteString("considering seasonality, local events and crowd levels.\n")
		prompt.WriteString(fmt.Sprintf("The trip length is fixed at exactly %d days.\n", in.DayCount))
		prompt.WriteString("Include \"suggestedStartDate\" and \"suggestedEndDate\" (format YYYY-MM-DD) at the top level of your reply, ")
		prompt.WriteString(fmt.Sprintf("and return exactly %d entries in \"days\".\n\n", in.DayCount))
	} else {
		prompt.WriteString(fmt.Sprintf("The trip runs from %s to %s. Day 1 is %s.\n\n",
			utils.FormatCalendarDate(in.StartDate),
			utils.FormatCalendarDate(in.EndDate),
			utils.FormatCalendarDate(in.StartDate)))
	}

	prompt.WriteString("Return a single JSON object matching this schema exactly:\n")
	prompt.WriteString(itinerarySchema)
	prompt.WriteString("\n\nHard constraints:\n")
	prompt.WriteString("- 2-4 activities per day and 2-3 restaurants per day.\n")
	prompt.WriteString("- Keep descriptions concise (1-2 sentences).\n")
	prompt.WriteString("- At most 2 entries in \"highlights\".\n")
	prompt.WriteString(fmt.Sprintf("- All pricing must match a %s budget.\n", in.Budget))

	if in.SpecialRequests != "" {
		prompt.WriteString(fmt.Sprintf("\nSpecial requests from the traveler: %s\n", in.SpecialRequests))
	}

	prompt.WriteString("\nReturn JSON only. No comments, no markdown.\n")

	return prompt.String()
}
