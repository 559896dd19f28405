package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"padcalc/internal/domain"
)

// ICalculationAnalytics — запись разрешённых операций в хранилище для
// аналитики (например, ClickHouse).
type ICalculationAnalytics interface {
	WriteCalculation(ctx context.Context, c domain.Calculation) error
}
