package search

import "AIShopService/internal/entity"

const (
	DefaultLimit = 20

	SearchType = "semantic"
)

type SmartSearchRequest struct {
	Query   string                 `json:"query" validate:"required,min=1"`
	Filters map[string]interface{} `json:"filters" validate:"omitempty"`
	Limit   int                    `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

type SmartSearchResponse struct {
	Results    []entity.Product `json:"results"`
	Total      int              `json:"total"`
	Query      string           `json:"query"`
	SearchType string           `json:"search_type"`
}

// SearchResult keeps the relevance score alongside the product while
// results are being assembled. The wire response carries the products
// only; the score stays implicit in the ordering.
type SearchResult struct {
	Product        entity.Product `json:"product"`
	RelevanceScore float64        `json:"relevance_score"`
}
