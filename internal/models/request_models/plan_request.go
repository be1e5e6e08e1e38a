package request_models

// Budget levels accepted on plan generation.
const (
	BudgetFriendly = "Budget-Friendly"
	BudgetModerate = "Moderate"
	BudgetLuxury   = "Luxury"
)

// GeneratePlanRequest is the untrusted input for plan generation. Dates are
// ISO-8601 strings; they are required unless IsFlexibleDates is set, in which
// case Duration (days, default 7) drives the trip length and the model picks
// the calendar placement.
type GeneratePlanRequest struct {
	Destination     string `json:"destination" binding:"required"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Budget          string `json:"budget" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
	IsFlexibleDates bool   `json:"isFlexibleDates"`
	Duration        int    `json:"duration"`
}
