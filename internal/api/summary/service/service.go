package summaryService

import (
	"AIShopService/internal/api/summary"
	"context"

	"github.com/sirupsen/logrus"
)

type ISummaryService interface {
	GenerateSummary(ctx context.Context, productData map[string]interface{}) (*summary.ProductSummary, error)
}

type summaryService struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) ISummaryService {
	return &summaryService{
		log: log,
	}
}
