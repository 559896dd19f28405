package keypad

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"padcalc/internal/domain"
	"padcalc/internal/ports"
)

// Controller — маршруты клавиатуры: keys, display, history.
type Controller struct {
	uc  ports.ISessionUseCase
	log *slog.Logger
}

// New создаёт контроллер клавиатуры.
func New(uc ports.ISessionUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/sessions/:id/keys", c.keys)
	api.GET("/sessions/:id/display", c.display)
	api.GET("/sessions/:id/history", c.history)
}

// @Summary Нажать серию клавиш
// @Description Применяет жесты (0-9, ".", "+", "-", "*", "/", "=", "%", "+/-", "CE", "AC") к сессии по порядку и возвращает строку дисплея. Разрешённые операции сохраняются в БД и публикуются в брокер.
// @Tags keypad
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param request body KeysRequest true "Серия жестов"
// @Success 200 {object} DisplayResponse "Дисплей после серии"
// @Failure 400 {object} DisplayResponse "Невалидный запрос или нераспознанный жест"
// @Failure 500 {object} DisplayResponse "Внутренняя ошибка сервера"
// @Router /api/v1/sessions/{id}/keys [post]
func (c *Controller) keys(ctx *gin.Context) {
	var req KeysRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("keys bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, DisplayResponse{Message: "invalid request: " + err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.log.Warn("keys validation failed", "error", err)
		ctx.JSON(http.StatusBadRequest, DisplayResponse{Message: err.Error()})
		return
	}

	display, err := c.uc.Apply(ctx.Request.Context(), ctx.Param("id"), req.Keys)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownKey) {
			c.log.Warn("keys bad gesture", "error", err)
			ctx.JSON(http.StatusBadRequest, DisplayResponse{Message: err.Error()})
			return
		}
		c.log.Error("keys failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, DisplayResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, DisplayResponse{Display: display})
}

// @Summary Текущий дисплей сессии
// @Description Возвращает каноничную строку дисплея; новая сессия отвечает "0".
// @Tags keypad
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Success 200 {object} DisplayResponse "Строка дисплея"
// @Failure 500 {object} DisplayResponse "Внутренняя ошибка сервера"
// @Router /api/v1/sessions/{id}/display [get]
func (c *Controller) display(ctx *gin.Context) {
	display, err := c.uc.Display(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.log.Error("display failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, DisplayResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, DisplayResponse{Display: display})
}

// @Summary История операций сессии
// @Description Возвращает разрешённые бинарные операции сессии из БД (последние сначала)
// @Tags keypad
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Success 200 {object} HistoryResponse "Список операций"
// @Failure 500 {object} DisplayResponse "Внутренняя ошибка сервера"
// @Router /api/v1/sessions/{id}/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]HistoryItem, len(list))
	for i, calc := range list {
		items[i] = HistoryItem{
			ID:        calc.ID,
			SessionID: calc.SessionID,
			Left:      calc.Left,
			Right:     calc.Right,
			Operator:  calc.Operator,
			Result:    calc.Result,
			Display:   calc.Display,
			Timestamp: calc.Timestamp,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}
