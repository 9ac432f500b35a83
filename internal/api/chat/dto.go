package chat

import "AIShopService/internal/entity"

// Intent values form a closed set; every message resolves to exactly
// one of them.
const (
	IntentSearch         = "search"
	IntentRecommendation = "recommendation"
	IntentProductInfo    = "product_info"
	IntentHelp           = "help"
	IntentGeneral        = "general"
)

type ConversationalRequest struct {
	UserID  string                 `json:"user_id" validate:"required"`
	Message string                 `json:"message" validate:"required"`
	Context map[string]interface{} `json:"context" validate:"omitempty"`
}

type ConversationalResponse struct {
	UserID              string           `json:"user_id"`
	Response            string           `json:"response"`
	RecommendedProducts []entity.Product `json:"recommended_products"`
	NextAction          *string          `json:"next_action"`
}

// MessageResult is the router's verdict for one message.
type MessageResult struct {
	Intent              string
	Response            string
	NextAction          *string
	RecommendedProducts []entity.Product
}
