package recommendationService

import (
	"AIShopService/internal/entity"
	"context"

	"github.com/sirupsen/logrus"
)

type IRecommendationService interface {
	GetRecommendations(ctx context.Context, userID string, catalog []entity.Product, history []entity.InteractionRecord, limit int, minRating float64) ([]entity.Product, error)
}

type recommendationService struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) IRecommendationService {
	return &recommendationService{
		log: log,
	}
}
