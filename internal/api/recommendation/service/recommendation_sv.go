package recommendationService

import (
	"AIShopService/internal/entity"
	contextPkg "AIShopService/pkg/context"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// GetRecommendations ranks the catalog for one user. Products below
// minRating are dropped first. With history present, products already
// interacted with are excluded and the rest are scored by category
// affinity plus a rating boost; without history the catalog is ranked
// by rating alone. Never returns more than limit products.
func (s *recommendationService) GetRecommendations(ctx context.Context, userID string, catalog []entity.Product, history []entity.InteractionRecord, limit int, minRating float64) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if len(catalog) == 0 {
		return []entity.Product{}, nil
	}
	if limit < 0 {
		limit = 0
	}

	filtered := make([]entity.Product, 0, len(catalog))
	for _, p := range catalog {
		if p.Rating >= minRating {
			filtered = append(filtered, p)
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"catalog":    len(catalog),
		"filtered":   len(filtered),
		"history":    len(history),
	}).Debug("Scoring product recommendations")

	if len(history) > 0 {
		return scoreAgainstHistory(filtered, history, limit), nil
	}

	// No history yet, rank purely by rating.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Rating > filtered[j].Rating
	})
	return truncate(filtered, limit), nil
}

type scoredProduct struct {
	product entity.Product
	score   float64
}

func scoreAgainstHistory(products []entity.Product, history []entity.InteractionRecord, limit int) []entity.Product {
	seenIDs := make(map[string]bool, len(history))
	seenCategories := make(map[string]bool, len(history))
	for _, h := range history {
		seenIDs[h.ID] = true
		if h.Category != "" {
			seenCategories[h.Category] = true
		}
	}

	scored := make([]scoredProduct, 0, len(products))
	for _, p := range products {
		if seenIDs[p.ID] {
			continue
		}

		score := 0.0
		if seenCategories[p.Category] {
			score += 2
		}
		score += p.Rating * 0.5

		scored = append(scored, scoredProduct{product: p, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]entity.Product, 0, len(scored))
	for _, sp := range scored {
		out = append(out, sp.product)
	}
	return truncate(out, limit)
}

func truncate(products []entity.Product, limit int) []entity.Product {
	if len(products) > limit {
		return products[:limit]
	}
	return products
}
