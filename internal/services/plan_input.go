package services

import (
	"fmt"
	"strings"
	"time"

	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

const (
	defaultFlexibleDuration = 7
	maxTripDays             = 30
	maxDestinationLength    = 200
)

// PlanInput is a validated generation request. StartDate/EndDate are zero
// when IsFlexibleDates is set; DayCount is the number of itinerary days the
// final plan must contain.
type PlanInput struct {
	Destination     string
	Budget          string
	StartDate       time.Time
	EndDate         time.Time
	IsFlexibleDates bool
	DayCount        int
	SpecialRequests string
}

func normalizeBudget(budget string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(budget)) {
	case "budget-friendly", "budget":
		return request_models.BudgetFriendly, true
	case "moderate":
		return request_models.BudgetModerate, true
	case "luxury":
		return request_models.BudgetLuxury, true
	}
	return "", false
}

// ValidatePlanRequest checks the untrusted request and resolves it into a
// PlanInput. Every failure wraps ErrInvalidInput and names the field.
func ValidatePlanRequest(req request_models.GeneratePlanRequest) (*PlanInput, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return nil, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}
	if len(req.Destination) > maxDestinationLength {
		return nil, fmt.Errorf("%w: destination must be at most %d characters", utils.ErrInvalidInput, maxDestinationLength)
	}

	budget, ok := normalizeBudget(req.Budget)
	if !ok {
		return nil, fmt.Errorf("%w: budget must be one of Budget-Friendly, Moderate, Luxury", utils.ErrInvalidInput)
	}

	in := &PlanInput{
		Destination:     destination,
		Budget:          budget,
		IsFlexibleDates: req.IsFlexibleDates,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	}

	if req.IsFlexibleDates {
		duration := req.Duration
		if duration == 0 {
			duration = defaultFlexibleDuration
		}
		if duration < 1 || duration > maxTripDays {
			return nil, fmt.Errorf("%w: duration must be between 1 and %d days", utils.ErrInvalidInput, maxTripDays)
		}
		in.DayCount = duration
		return in, nil
	}

	start, ok := utils.ParseCalendarDate(req.StartDate)
	if !ok {
		return nil, fmt.Errorf("%w: startDate is required and must be a valid date", utils.ErrInvalidInput)
	}
	end, ok := utils.ParseCalendarDate(req.EndDate)
	if !ok {
		return nil, fmt.Errorf("%w: endDate is required and must be a valid date", utils.ErrInvalidInput)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", utils.ErrInvalidInput)
	}

	dayCount := utils.DaysBetween(start, end)
	if dayCount > maxTripDays {
		return nil, fmt.Errorf("%w: trips are limited to %d days", utils.ErrInvalidInput, maxTripDays)
	}

	in.StartDate = start
	in.EndDate = end
	in.DayCount = dayCount
	return in, nil
}
