package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"padcalc/internal/domain"
)

// ISessionUseCase — контракт бизнес-логики сессий калькулятора: применение
// жестов, чтение дисплея, история, обработка событий из Kafka.
type ISessionUseCase interface {
	Apply(ctx context.Context, sessionID string, keys []string) (string, error)
	Display(ctx context.Context, sessionID string) (string, error)
	History(ctx context.Context, sessionID string) ([]domain.Calculation, error)
	HandleCalculationEvent(ctx context.Context, c domain.Calculation) error
}
