package services

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

const planCacheTTL = 10 * time.Minute

type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, userID string, req request_models.GeneratePlanRequest) (*response_models.TravelPlanResponse, error)
	GetPlanById(ctx context.Context, planID string) (*response_models.TravelPlanResponse, error)
	GetPlansByUserId(ctx context.Context, userID string) ([]*response_models.TravelPlanResponse, error)
	DeletePlan(ctx context.Context, planID string, userID string) error
}

// PlanService runs the generation pipeline: validate, rate-limit, prompt,
// model call, normalize, persist. Each step either succeeds or aborts the
// chain; nothing is persisted unless every earlier step passed.
type PlanService struct {
	planRepo      repositories.PlanRepository
	rateLimiter   RateLimiterInterface
	promptBuilder PromptBuilderInterface
	normalizer    NormalizerInterface
	aiClient      utils.ItineraryClientInterface
	planCache     mem.PlanCache
	now           func() time.Time
}

func NewPlanService(
	planRepo repositories.PlanRepository,
	rateLimiter RateLimiterInterface,
	promptBuilder PromptBuilderInterface,
	normalizer NormalizerInterface,
	aiClient utils.ItineraryClientInterface,
	planCache mem.PlanCache,
) PlanServiceInterface {
	return &PlanService{
		planRepo:      planRepo,
		rateLimiter:   rateLimiter,
		promptBuilder: promptBuilder,
		normalizer:    normalizer,
		aiClient:      aiClient,
		planCache:     planCache,
		now:           time.Now,
	}
}

func (s *PlanService) GeneratePlan(ctx context.Context, userID string, req request_models.GeneratePlanRequest) (*response_models.TravelPlanResponse, error) {
	if userID == "" {
		return nil, utils.ErrUnauthenticated
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	in, err := ValidatePlanRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.rateLimiter.CheckAndRecord(ctx, userID); err != nil {
		return nil, err
	}

	log.Printf("Generating travel plan for user %s, destination %q", userID, in.Destination)

	prompt := s.promptBuilder.BuildItineraryPrompt(in)

	rawJSON, err := s.aiClient.GenerateItineraryJSON(ctx, prompt)
	if err != nil {
		log.Printf("Model call failed for user %s, destination %q: %v", userID, in.Destination, err)
		return nil, utils.ErrModelUnavailable
	}

	plan, err := s.normalizer.Normalize(rawJSON, in)
	if err != nil {
		log.Printf("Normalization failed for user %s, destination %q: %v", userID, in.Destination, err)
		return nil, err
	}

	now := s.now().UTC()
	plan.ID = uuid.New().String()
	plan.UserID = userID
	plan.CreatedAt = now.Format(time.RFC3339)
	plan.UpdatedAt = plan.CreatedAt

	document, err := json.Marshal(plan)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	record := &db_models.TravelPlan{
		BaseModel:   db_models.BaseModel{ID: uuid.MustParse(plan.ID)},
		UserID:      userUUID,
		Destination: in.Destination,
		Document:    document,
	}
	if err := s.planRepo.InsertPlan(ctx, record); err != nil {
		log.Printf("Persisting plan failed for user %s, destination %q: %v", userID, in.Destination, err)
		return nil, utils.ErrDatabaseError
	}

	log.Printf("Travel plan %s created for user %s", plan.ID, userID)

	s.planCache.Set(plan.ID, plan, planCacheTTL)

	// Return the exact struct that was persisted so the client never needs
	// a re-fetch to agree with the server.
	return plan, nil
}

func (s *PlanService) GetPlanById(ctx context.Context, planID string) (*response_models.TravelPlanResponse, error) {
	if cached, ok := s.planCache.Get(planID); ok {
		return cached, nil
	}

	record, err := s.planRepo.GetPlanById(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrPlanNotFound
	}

	plan, err := decodePlanDocument(record)
	if err != nil {
		log.Printf("Unreadable plan document %s: %v", planID, err)
		return nil, utils.ErrDatabaseError
	}

	s.planCache.Set(planID, plan, planCacheTTL)
	return plan, nil
}

func (s *PlanService) GetPlansByUserId(ctx context.Context, userID string) ([]*response_models.TravelPlanResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	records, err := s.planRepo.ListPlansByUserId(ctx, userUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Newest first; sorted here rather than by the store.
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})

	plans := make([]*response_models.TravelPlanResponse, 0, len(records))
	for i := range records {
		plan, err := decodePlanDocument(&records[i])
		if err != nil {
			log.Printf("Skipping unreadable plan document %s: %v", records[i].ID, err)
			continue
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

func (s *PlanService) DeletePlan(ctx context.Context, planID string, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrUnauthenticated
	}

	if err := s.planRepo.DeletePlan(ctx, planID, userUUID); err != nil {
		return utils.ErrDatabaseError
	}

	s.planCache.Invalidate(planID)
	return nil
}

func decodePlanDocument(record *db_models.TravelPlan) (*response_models.TravelPlanResponse, error) {
	var plan response_models.TravelPlanResponse
	if err := json.Unmarshal(record.Document, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
