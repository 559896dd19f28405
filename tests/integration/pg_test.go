package integration

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padcalc/internal/domain"
	"padcalc/internal/infrastructure/pg"
	"padcalc/tests/integration/testutil"
)

// pgContainer — контейнер PostgreSQL, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var pgContainer *testutil.PostgresContainer

// newTestLogger создаёт логгер для тестов.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setupPgDB подключается к тестовой БД, прогоняет миграцию и очищает таблицу.
func setupPgDB(t *testing.T) *pg.DB {
	t.Helper()

	db, err := pg.New(&pg.Config{
		Host:     pgContainer.Host,
		Port:     pgContainer.Port,
		User:     pgContainer.User,
		Password: pgContainer.Password,
		DBName:   pgContainer.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось создать pg.DB")

	require.NoError(t, pg.Migrate(context.Background(), db), "миграция не прошла")

	_, err = db.Exec("TRUNCATE TABLE calculations RESTART IDENTITY")
	require.NoError(t, err, "не удалось очистить таблицу calculations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestPgRepo_SaveCalculation(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewSessionRepo(db, newTestLogger())
	ctx := context.Background()

	c := domain.Calculation{
		SessionID: "it-session",
		Left:      12,
		Right:     3,
		Operator:  "+",
		Result:    15,
		Display:   "15",
		Timestamp: time.Now(),
	}

	err := repo.SaveCalculation(ctx, c)
	require.NoError(t, err, "SaveCalculation должен успешно сохранить")

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM calculations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "в таблице должна быть 1 запись")
}

func TestPgRepo_GetHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewSessionRepo(db, newTestLogger())
	ctx := context.Background()

	calcs := []domain.Calculation{
		{SessionID: "it-session", Left: 1, Right: 1, Operator: "+", Result: 2, Display: "2", Timestamp: time.Now().Add(-2 * time.Second)},
		{SessionID: "it-session", Left: 2, Right: 2, Operator: "*", Result: 4, Display: "4", Timestamp: time.Now().Add(-1 * time.Second)},
		{SessionID: "it-session", Left: 9, Right: 0, Operator: "/", Result: 0, Display: "0", Timestamp: time.Now()},
		// чужая сессия не должна попасть в выборку
		{SessionID: "other", Left: 5, Right: 5, Operator: "+", Result: 10, Display: "10", Timestamp: time.Now()},
	}

	for _, c := range calcs {
		require.NoError(t, repo.SaveCalculation(ctx, c))
	}

	history, err := repo.GetHistory(ctx, "it-session")
	require.NoError(t, err, "GetHistory должен успешно вернуть данные")

	assert.Len(t, history, 3, "должно быть 3 записи своей сессии")

	// последние сначала
	assert.Equal(t, 0.0, history[0].Result, "первая запись — самая новая")
	assert.Equal(t, "/", history[0].Operator)
	assert.Equal(t, 4.0, history[1].Result)
	assert.Equal(t, 2.0, history[2].Result, "последняя запись — самая старая")

	assert.NotZero(t, history[0].ID, "ID должен быть назначен")
}

func TestPgRepo_GetHistory_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewSessionRepo(db, newTestLogger())
	ctx := context.Background()

	history, err := repo.GetHistory(ctx, "nobody")
	require.NoError(t, err, "GetHistory на пустой таблице не должен возвращать ошибку")
	assert.Empty(t, history, "история должна быть пустой")
}

func TestPgRepo_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewSessionRepo(db, newTestLogger())
	ctx := context.Background()

	err := repo.Ping(ctx)
	assert.NoError(t, err, "Ping должен успешно проверить соединение")
}
