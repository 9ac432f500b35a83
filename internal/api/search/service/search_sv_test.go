package searchService

import (
	"AIShopService/internal/entity"
	"AIShopService/pkg/tfidf"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() ISearchService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(logger, tfidf.NewEngine(logger))
}

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Premium Wireless Headphones", Description: "High-quality wireless headphones with noise cancellation", Category: "electronics", Rating: 4.5, Active: true},
		{ID: "p2", Name: "Premium Cotton T-Shirt", Description: "Comfortable premium cotton t-shirt", Category: "fashion", Rating: 4.2, Active: true},
		{ID: "p3", Name: "Smart Home Security Camera", Description: "4K Smart home security camera with AI detection", Category: "electronics", Rating: 4.8, Active: true},
	}
}

func TestSemanticSearchRanksMatchingProductFirst(t *testing.T) {
	s := newTestService()

	results, err := s.SemanticSearch(context.Background(), "wireless headphones", testProducts(), 20)

	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "p1", results[0].Product.ID)
	assert.Greater(t, results[0].RelevanceScore, 0.0)
}

func TestSemanticSearchSkipsInactiveProducts(t *testing.T) {
	s := newTestService()
	products := testProducts()
	products[0].Active = false

	results, err := s.SemanticSearch(context.Background(), "wireless headphones", products, 20)

	require.NoError(t, err)
	for _, r := range results {
		assert.NotEqual(t, "p1", r.Product.ID)
	}
}

func TestSemanticSearchRespectsLimit(t *testing.T) {
	s := newTestService()

	results, err := s.SemanticSearch(context.Background(), "premium", testProducts(), 1)

	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSemanticSearchNoMatches(t *testing.T) {
	s := newTestService()

	results, err := s.SemanticSearch(context.Background(), "bicycle", testProducts(), 20)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSemanticSearchEmptyInputs(t *testing.T) {
	s := newTestService()

	results, err := s.SemanticSearch(context.Background(), "", testProducts(), 20)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = s.SemanticSearch(context.Background(), "headphones", nil, 20)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSemanticSearchFallsBackToSubstringMatching(t *testing.T) {
	s := newTestService()

	// Names and descriptions made of stopwords collapse the vector
	// space; substring matching still finds the product.
	products := []entity.Product{
		{ID: "p1", Name: "The", Description: "and of it", Active: true},
	}

	results, err := s.SemanticSearch(context.Background(), "and of", products, 20)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p1", results[0].Product.ID)
	assert.Zero(t, results[0].RelevanceScore)
}

func TestSemanticSearchIdempotent(t *testing.T) {
	s := newTestService()

	first, err := s.SemanticSearch(context.Background(), "smart camera", testProducts(), 20)
	require.NoError(t, err)
	second, err := s.SemanticSearch(context.Background(), "smart camera", testProducts(), 20)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
