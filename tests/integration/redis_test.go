package integration

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padcalc/internal/engine"
	"padcalc/internal/infrastructure/redis"
	"padcalc/tests/integration/testutil"
)

// redisContainer — контейнер Redis, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var redisContainer *testutil.RedisContainer

// setupRedisCache подключается к тестовому Redis и очищает его.
func setupRedisCache(t *testing.T) *redis.Cache {
	t.Helper()

	client, err := redis.New(&redis.Config{
		Host:     redisContainer.Host,
		Port:     redisContainer.Port,
		Password: "",
		DB:       0,
	})
	require.NoError(t, err, "не удалось подключиться к Redis")

	err = client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "не удалось очистить Redis")

	t.Cleanup(func() {
		client.Close()
	})

	return redis.NewCache(client, newTestLogger())
}

func TestRedisCache_SetAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "session:alice", `{"input":"15","pending":false}`)
	require.NoError(t, err, "Set должен успешно сохранить")

	value, found, err := cache.Get(ctx, "session:alice")
	require.NoError(t, err, "Get должен успешно получить")
	assert.True(t, found, "ключ должен быть найден")
	assert.Equal(t, `{"input":"15","pending":false}`, value, "значение должно совпадать")
}

func TestRedisCache_Get_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	value, found, err := cache.Get(ctx, "session:nobody")

	require.NoError(t, err, "Get несуществующего ключа не должен возвращать ошибку")
	assert.False(t, found, "ключ не должен быть найден")
	assert.Empty(t, value, "значение должно быть пустым")
}

func TestRedisCache_Overwrite(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "session:bob", `{"input":"1","pending":false}`))
	require.NoError(t, cache.Set(ctx, "session:bob", `{"input":"2","pending":false}`))

	value, found, err := cache.Get(ctx, "session:bob")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"input":"2","pending":false}`, value, "значение должно быть перезаписано")
}

// Снимок автомата переживает цикл кэш → restore: отложенная операция
// доводится до результата уже на восстановленном автомате.
func TestRedisCache_EngineSnapshotRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	e := engine.New()
	for _, key := range []string{"7", "+", "3"} {
		e.Press(key)
	}

	raw, err := json.Marshal(e.State())
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, "session:carol", string(raw)))

	stored, found, err := cache.Get(ctx, "session:carol")
	require.NoError(t, err)
	require.True(t, found)

	var st engine.State
	require.NoError(t, json.Unmarshal([]byte(stored), &st))
	restored := engine.Restore(st)

	restored.Press("=")
	assert.Equal(t, "10", restored.Display(), "восстановленный автомат доводит 7+3 до 10")
}
