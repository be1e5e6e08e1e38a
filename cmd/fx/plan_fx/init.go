package plan_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	providePlanRepo,
	provideRateLimitRepo,
	provideRateLimiter,
	provideItineraryClient,
	providePromptBuilder,
	provideNormalizer,
	providePlanCache,
	providePlanService,
	providePlanController)

// ModelConfig holds configuration for the itinerary model client
type ModelConfig struct {
	Provider string
	APIKey   string
	Model    string
}

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideRateLimitRepo(db *gorm.DB) repositories.RateLimitRepository {
	return repositories.NewRateLimitRepository(db)
}

func provideRateLimiter(repo repositories.RateLimitRepository) services.RateLimiterInterface {
	return services.NewRateLimiter(repo)
}

// provideItineraryClient creates a model client based on environment variables
func provideItineraryClient() (utils.ItineraryClientInterface, error) {
	config := getModelConfig()

	log.Printf("Initializing %s itinerary client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIItineraryClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiItineraryClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported model provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func providePromptBuilder() services.PromptBuilderInterface {
	return services.NewPromptBuilder()
}

func provideNormalizer() services.NormalizerInterface {
	return services.NewItineraryNormalizer()
}

func providePlanCache() mem.PlanCache {
	return mem.NewPlanCache()
}

func providePlanService(
	planRepo repositories.PlanRepository,
	rateLimiter services.RateLimiterInterface,
	promptBuilder services.PromptBuilderInterface,
	normalizer services.NormalizerInterface,
	aiClient utils.ItineraryClientInterface,
	planCache mem.PlanCache,
) services.PlanServiceInterface {
	return services.NewPlanService(
		planRepo,
		rateLimiter,
		promptBuilder,
		normalizer,
		aiClient,
		planCache,
	)
}

func providePlanController(planService services.PlanServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}

// getModelConfig reads configuration from environment variables
func getModelConfig() ModelConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return ModelConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
