package session

import (
	"context"
	"encoding/json"
	"time"

	"padcalc/internal/domain"
	"padcalc/internal/engine"
)

// Apply применяет жесты к сессии по порядку. Каждая разрешённая операция
// сохраняется в БД и публикуется в брокер; после серии снимок автомата
// пишется в кэш. Возвращает строку дисплея после последнего жеста.
// Нераспознанные жесты ядро поглощает; здесь они только логируются —
// валидация для клиентов живёт на транспортном слое.
func (u *UseCase) Apply(ctx context.Context, sessionID string, keys []string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	e := u.sessionLocked(ctx, sessionID)
	for _, key := range keys {
		if !engine.Recognized(key) {
			u.log.Warn("key ignored", "session", sessionID, "key", key)
		}
		res, resolved := e.Press(key)
		if !resolved {
			continue
		}
		c := domain.Calculation{
			SessionID: sessionID,
			Left:      res.Left,
			Right:     res.Right,
			Operator:  res.Operator,
			Result:    res.Result,
			Display:   e.Display(),
			Timestamp: time.Now(),
		}
		if err := u.repo.SaveCalculation(ctx, c); err != nil {
			return "", err
		}
		u.log.Info("calculation saved", "session", sessionID, "operator", c.Operator, "result", c.Result)

		value, err := json.Marshal(c)
		if err != nil {
			return "", err
		}
		if err := u.broker.Send(ctx, []byte(sessionID), value); err != nil {
			u.log.Warn("broker send", "session", sessionID, "error", err)
		} else {
			u.log.Info("calculation published", "session", sessionID, "result", c.Result)
		}
	}

	if err := u.snapshotLocked(ctx, sessionID, e); err != nil {
		return "", err
	}
	return e.Display(), nil
}

// Display возвращает текущую строку дисплея сессии (новая сессия — "0").
func (u *UseCase) Display(ctx context.Context, sessionID string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sessionLocked(ctx, sessionID).Display(), nil
}

// History — история разрешённых операций сессии (обвязка над репозиторием).
func (u *UseCase) History(ctx context.Context, sessionID string) ([]domain.Calculation, error) {
	return u.repo.GetHistory(ctx, sessionID)
}

// HandleCalculationEvent вызывается консьюмером при получении сообщения из
// топика calculations (часть ISessionUseCase).
func (u *UseCase) HandleCalculationEvent(ctx context.Context, c domain.Calculation) error {
	if err := u.analytics.WriteCalculation(ctx, c); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("calculation stored to click", "session", c.SessionID, "left", c.Left, "operator", c.Operator, "right", c.Right, "result", c.Result)

	return nil
}

// sessionLocked возвращает автомат сессии: из памяти, иначе восстанавливает
// из снимка в кэше, иначе создаёт новый. Вызывается под мьютексом.
func (u *UseCase) sessionLocked(ctx context.Context, sessionID string) *engine.Engine {
	if e, ok := u.sessions[sessionID]; ok {
		return e
	}
	e := engine.New()
	if raw, found, err := u.cache.Get(ctx, cacheKey(sessionID)); err == nil && found {
		var st engine.State
		if err := json.Unmarshal([]byte(raw), &st); err != nil {
			u.log.Warn("session snapshot corrupt, starting fresh", "session", sessionID, "error", err)
		} else {
			e = engine.Restore(st)
		}
	}
	u.sessions[sessionID] = e
	return e
}

// snapshotLocked пишет снимок автомата в кэш. Вызывается под мьютексом.
func (u *UseCase) snapshotLocked(ctx context.Context, sessionID string, e *engine.Engine) error {
	raw, err := json.Marshal(e.State())
	if err != nil {
		return err
	}
	if err := u.cache.Set(ctx, cacheKey(sessionID), string(raw)); err != nil {
		return err
	}
	return nil
}
