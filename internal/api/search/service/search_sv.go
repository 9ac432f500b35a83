package searchService

import (
	"AIShopService/internal/api/search"
	"AIShopService/internal/entity"
	contextPkg "AIShopService/pkg/context"
	"AIShopService/pkg/tfidf"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// SemanticSearch ranks active catalog products against a free-text
// query. Each product becomes one document built from its name and
// description; the engine handles weighting, ranking and the
// substring fallback. Zero-relevance products never appear.
func (s *searchService) SemanticSearch(ctx context.Context, query string, products []entity.Product, limit int) ([]search.SearchResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if len(products) == 0 || query == "" {
		return []search.SearchResult{}, nil
	}

	byID := make(map[string]entity.Product, len(products))
	docs := make([]tfidf.Document, 0, len(products))
	for _, p := range products {
		if !p.Active {
			continue
		}
		docs = append(docs, tfidf.Document{
			ID:   p.ID,
			Text: strings.ToLower(fmt.Sprintf("%s %s", p.Name, p.Description)),
		})
		byID[p.ID] = p
	}

	if len(docs) == 0 {
		return []search.SearchResult{}, nil
	}

	ranked := s.engine.Rank(query, docs, limit)
	if ranked.Fallback {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"query":      query,
		}).Warn("Semantic ranking degraded to substring matching")
	}

	results := make([]search.SearchResult, 0, len(ranked.Matches))
	for _, m := range ranked.Matches {
		product, ok := byID[m.ID]
		if !ok {
			continue
		}
		results = append(results, search.SearchResult{
			Product:        product,
			RelevanceScore: m.Score,
		})
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"query":      query,
		"results":    len(results),
		"fallback":   ranked.Fallback,
	}).Debug("Semantic search completed")

	return results, nil
}
