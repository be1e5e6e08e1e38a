package response_models

// TravelPlanResponse is the canonical plan shape returned to clients and
// persisted verbatim as the plan document. Optional scalar fields are
// pointers so they serialize as null rather than disappearing; collections
// are always present, possibly empty. StartDate, EndDate and per-day dates
// are YYYY-MM-DD; CreatedAt/UpdatedAt are RFC3339.
type TravelPlanResponse struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"userId"`
	Destination        string         `json:"destination"`
	DisplayName        string         `json:"displayName"`
	CountryCode        *string        `json:"countryCode"`
	StartDate          string         `json:"startDate"`
	EndDate            string         `json:"endDate"`
	Budget             string         `json:"budget"`
	SpecialRequests    *string        `json:"specialRequests"`
	Days               []DayItinerary `json:"days"`
	TotalEstimatedCost *string        `json:"totalEstimatedCost"`
	Highlights         []string       `json:"highlights"`
	LocalTips          []string       `json:"localTips"`
	CreatedAt          string         `json:"createdAt"`
	UpdatedAt          string         `json:"updatedAt"`
}

type DayItinerary struct {
	DayNumber          int          `json:"dayNumber"`
	Date               string       `json:"date"`
	Theme              *string      `json:"theme"`
	Activities         []Activity   `json:"activities"`
	Restaurants        []Restaurant `json:"restaurants"`
	HiddenGems         []string     `json:"hiddenGems"`
	Tip                *string      `json:"tip"`
	EstimatedDailyCost *string      `json:"estimatedDailyCost"`
}

type Activity struct {
	Time        string  `json:"time"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    *string `json:"duration"`
	Cost        *string `json:"cost"`
	Location    *string `json:"location"`
	Tips        *string `json:"tips"`
}

type Restaurant struct {
	Name        string  `json:"name"`
	Time        string  `json:"time"`
	Cuisine     *string `json:"cuisine"`
	PriceRange  *string `json:"priceRange"`
	Reservation *string `json:"reservation"`
	Description *string `json:"description"`
}
