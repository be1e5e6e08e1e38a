package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

type NormalizerInterface interface {
	Normalize(rawJSON string, in *PlanInput) (*response_models.TravelPlanResponse, error)
}

// ItineraryNormalizer coerces the model's loosely-structured reply into the
// strict plan shape: concrete sequential dates, clamped lists, defaults for
// everything optional. Identity fields (id, userId, timestamps) are left for
// the orchestrator to fill.
type ItineraryNormalizer struct {
	now func() time.Time
}

func NewItineraryNormalizer() *ItineraryNormalizer {
	return &ItineraryNormalizer{now: time.Now}
}

// looseString accepts a JSON string or number; anything else is discarded.
// Models frequently return costs as bare numbers.
type looseString string

func (f *looseString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = looseString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = looseString(n.String())
		return nil
	}
	return nil
}

type modelActivity struct {
	Time        string      `json:"time"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Duration    looseString `json:"duration"`
	Cost        looseString `json:"cost"`
	Location    string      `json:"location"`
	Tips        string      `json:"tips"`
}

type modelRestaurant struct {
	Name        string      `json:"name"`
	Time        string      `json:"time"`
	Cuisine     string      `json:"cuisine"`
	PriceRange  looseString `json:"priceRange"`
	Reservation string      `json:"reservation"`
	Description string      `json:"description"`
}

type modelDay struct {
	Date               string            `json:"date"`
	Theme              string            `json:"theme"`
	Activities         []modelActivity   `json:"activities"`
	Restaurants        []modelRestaurant `json:"restaurants"`
	HiddenGems         []string          `json:"hiddenGems"`
	Tip                string            `json:"tip"`
	EstimatedDailyCost looseString       `json:"estimatedDailyCost"`
}

type modelItinerary struct {
	DisplayName        string      `json:"displayName"`
	CountryCode        string      `json:"countryCode"`
	SuggestedStartDate string      `json:"suggestedStartDate"`
	SuggestedEndDate   string      `json:"suggestedEndDate"`
	Days               []modelDay  `json:"days"`
	Highlights         []string    `json:"highlights"`
	LocalTips          []string    `json:"localTips"`
	TotalEstimatedCost looseString `json:"totalEstimatedCost"`
}

func (n *ItineraryNormalizer) Normalize(rawJSON string, in *PlanInput) (*response_models.TravelPlanResponse, error) {
	cleaned := stripMarkdownFences(rawJSON)

	var reply modelItinerary
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedModelOutput, err)
	}

	finalStart, finalEnd := n.resolveDateRange(&reply, in)

	// The persisted per-day date is always derived from finalStart; the
	// model's per-day dates only ever bootstrap the range above.
	days := make([]response_models.DayItinerary, 0, in.DayCount)
	for i := 0; i < in.DayCount; i++ {
		var md *modelDay
		if i < len(reply.Days) {
			md = &reply.Days[i]
		}
		days = append(days, buildDay(md, i+1, finalStart.AddDate(0, 0, i)))
	}

	highlights := reply.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	if len(highlights) > 2 {
		highlights = highlights[:2]
	}

	localTips := reply.LocalTips
	if localTips == nil {
		localTips = []string{}
	}

	displayName := strings.TrimSpace(reply.DisplayName)
	if displayName == "" {
		displayName = in.Destination
	}

	plan := &response_models.TravelPlanResponse{
		Destination:        in.Destination,
		DisplayName:        displayName,
		CountryCode:        optString(reply.CountryCode),
		StartDate:          utils.FormatCalendarDate(finalStart),
		EndDate:            utils.FormatCalendarDate(finalEnd),
		Budget:             in.Budget,
		SpecialRequests:    optString(in.SpecialRequests),
		Days:               days,
		TotalEstimatedCost: optString(string(reply.TotalEstimatedCost)),
		Highlights:         highlights,
		LocalTips:          localTips,
	}

	return plan, nil
}

// resolveDateRange pins the trip to concrete calendar dates. Fixed-date
// requests pass their dates through. Flexible requests take, in order: the
// model's suggested pair, the first/last per-day dates (each only if it
// parses), then today+30d with a length-derived end.
func (n *ItineraryNormalizer) resolveDateRange(reply *modelItinerary, in *PlanInput) (time.Time, time.Time) {
	if !in.IsFlexibleDates {
		return in.StartDate, in.EndDate
	}

	if start, ok := utils.ParseCalendarDate(reply.SuggestedStartDate); ok {
		if end, ok := utils.ParseCalendarDate(reply.SuggestedEndDate); ok {
			return start, end
		}
	}

	var start, end time.Time
	var haveStart, haveEnd bool
	if len(reply.Days) > 0 {
		start, haveStart = utils.ParseCalendarDate(reply.Days[0].Date)
		end, haveEnd = utils.ParseCalendarDate(reply.Days[len(reply.Days)-1].Date)
	}

	if !haveStart {
		start = utils.TruncateToDate(n.now().AddDate(0, 0, 30))
	}
	if !haveEnd || end.Before(start) {
		if len(reply.Days) > 0 {
			end = start.AddDate(0, 0, len(reply.Days)-1)
		} else {
			end = start.AddDate(0, 0, 6)
		}
	}
	return start, end
}

func buildDay(md *modelDay, dayNumber int, date time.Time) response_models.DayItinerary {
	day := response_models.DayItinerary{
		DayNumber:   dayNumber,
		Date:        utils.FormatCalendarDate(date),
		Activities:  []response_models.Activity{},
		Restaurants: []response_models.Restaurant{},
		HiddenGems:  []string{},
	}
	if md == nil {
		return day
	}

	day.Theme = optString(md.Theme)
	day.Tip = optString(md.Tip)
	day.EstimatedDailyCost = optString(string(md.EstimatedDailyCost))
	if md.HiddenGems != nil {
		day.HiddenGems = md.HiddenGems
	}

	for _, a := range md.Activities {
		// time, name and description are required; entries missing any of
		// them are dropped rather than failing the whole plan.
		if strings.TrimSpace(a.Time) == "" || strings.TrimSpace(a.Name) == "" || strings.TrimSpace(a.Description) == "" {
			continue
		}
		day.Activities = append(day.Activities, response_models.Activity{
			Time:        a.Time,
			Name:        a.Name,
			Description: a.Description,
			Duration:    optString(string(a.Duration)),
			Cost:        optString(string(a.Cost)),
			Location:    optString(a.Location),
			Tips:        optString(a.Tips),
		})
	}

	for _, r := range md.Restaurants {
		if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Time) == "" {
			continue
		}
		day.Restaurants = append(day.Restaurants, response_models.Restaurant{
			Name:        r.Name,
			Time:        r.Time,
			Cuisine:     optString(r.Cuisine),
			PriceRange:  optString(string(r.PriceRange)),
			Reservation: optString(r.Reservation),
			Description: optString(r.Description),
		})
	}

	return day
}

// stripMarkdownFences removes ```json fences some models wrap around their
// reply even when asked for raw JSON.
func stripMarkdownFences(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
