package session

import (
	"log/slog"
	"sync"

	"padcalc/internal/engine"
	"padcalc/internal/ports"
)

// cacheKey формирует ключ снимка сессии в кэше, например "session:alice".
func cacheKey(sessionID string) string {
	return "session:" + sessionID
}

// UseCase — бизнес-логика сессий калькулятора. Держит автоматы живых сессий
// в памяти; ядро несинхронизировано и нереентерабельно, поэтому все
// обращения к автоматам сериализуются мьютексом здесь.
type UseCase struct {
	repo      ports.ISessionRepository
	cache     ports.ICache
	broker    ports.IProducer
	analytics ports.ICalculationAnalytics
	log       *slog.Logger

	mu       sync.Mutex
	sessions map[string]*engine.Engine
}

// New создаёт юзкейс сессий.
func New(repo ports.ISessionRepository, cache ports.ICache, broker ports.IProducer, analytics ports.ICalculationAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{
		repo:      repo,
		cache:     cache,
		broker:    broker,
		analytics: analytics,
		log:       log,
		sessions:  make(map[string]*engine.Engine),
	}
}
