package recommendation

import "AIShopService/internal/entity"

const (
	DefaultLimit = 10

	// Algorithm is reported to clients; the scorer itself is a
	// category/rating heuristic standing in for the real thing.
	Algorithm = "collaborative-filtering"
)

type RecommendationRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	ProductID string  `json:"product_id" validate:"omitempty"`
	Category  string  `json:"category" validate:"omitempty"`
	Limit     int     `json:"limit" validate:"omitempty,gte=1,lte=50"`
	MinRating float64 `json:"min_rating" validate:"omitempty,gte=0,lte=5"`
}

type RecommendationResponse struct {
	Products  []entity.Product `json:"products"`
	Total     int              `json:"total"`
	Algorithm string           `json:"algorithm"`
}
