package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"padcalc/internal/domain"
)

// ISessionRepository — контракт сохранения и чтения разрешённых операций
// сессии.
type ISessionRepository interface {
	SaveCalculation(ctx context.Context, c domain.Calculation) error
	GetHistory(ctx context.Context, sessionID string) ([]domain.Calculation, error)
	Ping(ctx context.Context) error
}
