package summaryService

import (
	"AIShopService/internal/api/summary"
	contextPkg "AIShopService/pkg/context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	summaryDescriptionLimit = 150
	maxKeyFeatures          = 5
	minFeatureWordLength    = 4
)

var bestForByCategory = map[string]string{
	"electronics": "technology enthusiasts",
	"fashion":     "style-conscious buyers",
	"home":        "home improvement",
	"sports":      "active lifestyle",
}

const bestForDefault = "quality-conscious consumers"

// GenerateSummary produces the templated summary, key feature list
// and target audience for a product record. Missing fields degrade to
// empty strings rather than errors.
func (s *summaryService) GenerateSummary(ctx context.Context, productData map[string]interface{}) (*summary.ProductSummary, error) {
	requestID := contextPkg.GetRequestID(ctx)

	name := stringField(productData, "name")
	description := stringField(productData, "description")
	category := stringField(productData, "category")

	// The ellipsis is always appended, truncated or not. Clients
	// depend on the exact template.
	text := fmt.Sprintf("%s is a premium %s product. %s...",
		name, strings.ToLower(category), truncateRunes(description, summaryDescriptionLimit))

	bestFor, ok := bestForByCategory[strings.ToLower(category)]
	if !ok {
		bestFor = bestForDefault
	}

	result := &summary.ProductSummary{
		Summary:     text,
		KeyFeatures: extractKeyFeatures(productData, description),
		BestFor:     bestFor,
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"name":       name,
		"category":   category,
		"features":   len(result.KeyFeatures),
	}).Debug("Generated product summary")

	return result, nil
}

// extractKeyFeatures prefers an explicit features list, taking its
// first five entries. Otherwise it looks at the first five
// whitespace words of the description and keeps those longer than
// four characters. Only that window is examined, even when it yields
// fewer than five features; downstream consumers rely on this
// bounded behavior.
func extractKeyFeatures(productData map[string]interface{}, description string) []string {
	features := make([]string, 0, maxKeyFeatures)

	if raw, ok := productData["features"]; ok {
		for _, f := range toStringSlice(raw) {
			features = append(features, f)
			if len(features) == maxKeyFeatures {
				break
			}
		}
		return features
	}

	words := strings.Fields(description)
	if len(words) > maxKeyFeatures {
		words = words[:maxKeyFeatures]
	}
	for _, w := range words {
		if len([]rune(w)) > minFeatureWordLength {
			features = append(features, w)
		}
	}
	return features
}

func toStringSlice(raw interface{}) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	default:
		return nil
	}
}

func stringField(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}
