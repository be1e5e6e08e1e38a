package utils

import "context"

// ItineraryClientInterface is the single seam between the pipeline and the
// external language model. Implementations must return a raw JSON string.
type ItineraryClientInterface interface {
	GenerateItineraryJSON(ctx context.Context, prompt string) (string, error)
}
