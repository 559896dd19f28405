package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import "context"

// ICache — контракт кэша снимков сессий. Ключ — идентификатор сессии,
// значение — сериализованное состояние автомата. Сессия переживает рестарт
// процесса за счёт восстановления из снимка.
type ICache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
