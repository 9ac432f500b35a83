package entity

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Active      bool    `json:"active"`
}

// InteractionRecord is one past purchase/view from a user's history.
type InteractionRecord struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}
