package summary

type ProductSummaryRequest struct {
	ProductID   string                 `json:"product_id" validate:"required"`
	ProductData map[string]interface{} `json:"product_data" validate:"required"`
}

type ProductSummaryResponse struct {
	ProductID   string   `json:"product_id"`
	Summary     string   `json:"summary"`
	KeyFeatures []string `json:"key_features"`
	BestFor     string   `json:"best_for"`
}

// ProductSummary is the generator output before the product ID is
// echoed back onto the response.
type ProductSummary struct {
	Summary     string   `json:"summary"`
	KeyFeatures []string `json:"key_features"`
	BestFor     string   `json:"best_for"`
}
