package session

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"padcalc/internal/domain"
	"padcalc/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestUseCase(ctrl *gomock.Controller) (*UseCase, *mocks.MockISessionRepository, *mocks.MockICache, *mocks.MockIProducer, *mocks.MockICalculationAnalytics) {
	mockRepo := mocks.NewMockISessionRepository(ctrl)
	mockCache := mocks.NewMockICache(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)
	mockAnalytics := mocks.NewMockICalculationAnalytics(ctrl)
	uc := New(mockRepo, mockCache, mockBroker, mockAnalytics, newTestLogger())
	return uc, mockRepo, mockCache, mockBroker, mockAnalytics
}

// Полный флоу: равно разрешает операцию → БД → брокер → снимок в кэш.
func TestApply_EqualsResolvesAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockCache, mockBroker, _ := newTestUseCase(ctrl)

	gomock.InOrder(
		// сессии нет ни в памяти, ни в кэше
		mockCache.EXPECT().Get(gomock.Any(), "session:calc").Return("", false, nil),
		mockRepo.EXPECT().SaveCalculation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c domain.Calculation) error {
				assert.Equal(t, "calc", c.SessionID)
				assert.Equal(t, 12.0, c.Left)
				assert.Equal(t, 3.0, c.Right)
				assert.Equal(t, "+", c.Operator)
				assert.Equal(t, 15.0, c.Result)
				assert.Equal(t, "15", c.Display)
				return nil
			}),
		mockBroker.EXPECT().Send(gomock.Any(), []byte("calc"), gomock.Any()).Return(nil),
		mockCache.EXPECT().Set(gomock.Any(), "session:calc", `{"input":"15","pending":false}`).Return(nil),
	)

	display, err := uc.Apply(context.Background(), "calc", []string{"1", "2", "+", "3", "="})

	require.NoError(t, err)
	assert.Equal(t, "15", display)
}

// Без разрешённой операции БД и брокер не трогаются, пишется только снимок.
func TestApply_DigitsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, mockCache, _, _ := newTestUseCase(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "session:calc").Return("", false, nil)
	mockCache.EXPECT().Set(gomock.Any(), "session:calc", `{"input":"42","pending":false}`).Return(nil)

	display, err := uc.Apply(context.Background(), "calc", []string{"4", "2"})

	require.NoError(t, err)
	assert.Equal(t, "42", display)
}

// Сессия восстанавливается из снимка в кэше: отложенная операция доживает
// до равно.
func TestApply_RestoresFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockCache, mockBroker, _ := newTestUseCase(ctrl)

	gomock.InOrder(
		mockCache.EXPECT().Get(gomock.Any(), "session:calc").
			Return(`{"input":"3","pending":true,"left":7,"op":"+"}`, true, nil),
		mockRepo.EXPECT().SaveCalculation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c domain.Calculation) error {
				assert.Equal(t, 10.0, c.Result)
				return nil
			}),
		mockBroker.EXPECT().Send(gomock.Any(), []byte("calc"), gomock.Any()).Return(nil),
		mockCache.EXPECT().Set(gomock.Any(), "session:calc", `{"input":"10","pending":false}`).Return(nil),
	)

	display, err := uc.Apply(context.Background(), "calc", []string{"="})

	require.NoError(t, err)
	assert.Equal(t, "10", display)
}

// Порченый снимок в кэше не валит запрос — сессия начинается заново.
func TestApply_CorruptSnapshotStartsFresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, mockCache, _, _ := newTestUseCase(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "session:calc").Return("not json", true, nil)
	mockCache.EXPECT().Set(gomock.Any(), "session:calc", `{"input":"5","pending":false}`).Return(nil)

	display, err := uc.Apply(context.Background(), "calc", []string{"5"})

	require.NoError(t, err)
	assert.Equal(t, "5", display)
}

// Деление на ноль — не ошибка: операция разрешается с результатом 0.
func TestApply_DivisionByZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockCache, mockBroker, _ := newTestUseCase(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "session:calc").Return("", false, nil)
	mockRepo.EXPECT().SaveCalculation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c domain.Calculation) error {
			assert.Equal(t, 0.0, c.Result)
			assert.Equal(t, "/", c.Operator)
			return nil
		})
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Set(gomock.Any(), "session:calc", gomock.Any()).Return(nil)

	display, err := uc.Apply(context.Background(), "calc", []string{"9", "/", "0", "="})

	require.NoError(t, err)
	assert.Equal(t, "0", display)
}

// Ошибка репозитория прерывает серию.
func TestApply_SaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockCache, _, _ := newTestUseCase(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "session:calc").Return("", false, nil)
	mockRepo.EXPECT().SaveCalculation(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := uc.Apply(context.Background(), "calc", []string{"1", "+", "1", "="})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

// Ошибка брокера не валит запрос — операция уже сохранена.
func TestApply_BrokerFailureIsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockCache, mockBroker, _ := newTestUseCase(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "session:calc").Return("", false, nil)
	mockRepo.EXPECT().SaveCalculation(gomock.Any(), gomock.Any()).Return(nil)
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))
	mockCache.EXPECT().Set(gomock.Any(), "session:calc", gomock.Any()).Return(nil)

	display, err := uc.Apply(context.Background(), "calc", []string{"1", "+", "1", "="})

	require.NoError(t, err)
	assert.Equal(t, "2", display)
}

func TestDisplay_NewSessionIsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, mockCache, _, _ := newTestUseCase(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), "session:fresh").Return("", false, nil)

	display, err := uc.Display(context.Background(), "fresh")

	require.NoError(t, err)
	assert.Equal(t, "0", display)
}

func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockISessionRepository(ctrl)

	expected := []domain.Calculation{
		{ID: 2, SessionID: "calc", Left: 10, Right: 2, Operator: "+", Result: 12, Display: "12"},
		{ID: 1, SessionID: "calc", Left: 7, Right: 3, Operator: "+", Result: 10, Display: "10"},
	}
	mockRepo.EXPECT().GetHistory(gomock.Any(), "calc").Return(expected, nil)

	// для History не нужны cache, broker, analytics — передаём nil
	uc := New(mockRepo, nil, nil, nil, newTestLogger())

	result, err := uc.History(context.Background(), "calc")

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, expected, result)
}

func TestHandleCalculationEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, mockAnalytics := newTestUseCase(ctrl)

	calc := domain.Calculation{SessionID: "calc", Left: 1, Right: 2, Operator: "+", Result: 3}
	mockAnalytics.EXPECT().WriteCalculation(gomock.Any(), calc).Return(nil)

	require.NoError(t, uc.HandleCalculationEvent(context.Background(), calc))

	mockAnalytics.EXPECT().WriteCalculation(gomock.Any(), calc).Return(errors.New("click down"))
	assert.Error(t, uc.HandleCalculationEvent(context.Background(), calc))
}
