package utils

import "errors"

var (
	ErrUnauthenticated      = errors.New("user must be authenticated")
	ErrInvalidInput         = errors.New("invalid request")
	ErrRateLimitExceeded    = errors.New("rate limit exceeded")
	ErrModelUnavailable     = errors.New("itinerary model unavailable")
	ErrMalformedModelOutput = errors.New("model returned an unusable itinerary")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrDatabaseError        = errors.New("database error")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
)
