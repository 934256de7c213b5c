package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"pharmacy-assistant/internal/infra/vision"
	"pharmacy-assistant/internal/repository"
)

const recommendationCacheTTL = 10 * time.Minute

// RecommendationService asks the text model for alternatives to a medicine,
// drawn from the current inventory. This path never surfaces errors: every
// failure becomes a user-facing message string.
type RecommendationService struct {
	model       vision.TextGenerator
	repo        repository.MedicineRepository
	redisClient *redis.Client
}

func NewRecommendationService(model vision.TextGenerator, repo repository.MedicineRepository) *RecommendationService {
	return &RecommendationService{model: model, repo: repo}
}

func (s *RecommendationService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *RecommendationService) Recommend(ctx context.Context, medicineName string) string {
	cacheKey := "recommendations:" + strings.ToLower(medicineName)

	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			return cached
		}
	}

	if s.model == nil {
		return "Could not generate recommendations: no text model configured"
	}

	medicines, err := s.repo.FindAll()
	if err != nil {
		return fmt.Sprintf("Could not generate recommendations: %v", err)
	}

	var list strings.Builder
	for _, m := range medicines {
		fmt.Fprintf(&list, "- %s (%s)\n", m.Name, m.Dosage)
	}

	prompt := fmt.Sprintf(`Based on the medicine %q, suggest 3 alternatives or similar medications from this list:
%s
For each suggestion, explain why it's an alternative (e.g., same drug class, similar effects, etc.).
Only suggest from the provided list and respond in this format:

1. [Medicine Name] ([Dosage]): [Reason for recommendation]
2. [Medicine Name] ([Dosage]): [Reason for recommendation]
3. [Medicine Name] ([Dosage]): [Reason for recommendation]

If no alternatives can be found, respond with "No similar medications found in the database."`, medicineName, list.String())

	answer, err := s.model.GenerateText(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Could not generate recommendations: %v", err)
	}

	if s.redisClient != nil {
		s.redisClient.Set(ctx, cacheKey, answer, recommendationCacheTTL)
	}
	return answer
}
