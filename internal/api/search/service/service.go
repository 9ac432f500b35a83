package searchService

import (
	"AIShopService/internal/api/search"
	"AIShopService/internal/entity"
	"AIShopService/pkg/tfidf"
	"context"

	"github.com/sirupsen/logrus"
)

type ISearchService interface {
	SemanticSearch(ctx context.Context, query string, products []entity.Product, limit int) ([]search.SearchResult, error)
}

type searchService struct {
	log    *logrus.Logger
	engine tfidf.IEngine
}

func New(log *logrus.Logger, engine tfidf.IEngine) ISearchService {
	return &searchService{
		log:    log,
		engine: engine,
	}
}
