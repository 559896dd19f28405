package keypad

import (
	"fmt"
	"time"

	"padcalc/internal/domain"
	"padcalc/internal/engine"
)

// KeysRequest — серия жестов клавиатуры (для POST /api/v1/sessions/:id/keys).
type KeysRequest struct {
	Keys []string `json:"keys" binding:"required"`
}

// Validate проверяет, что жесты присутствуют и каждый распознаётся.
// Ядро нераспознанные жесты молча поглощает; API честно отвечает 400,
// чтобы клиент узнал об опечатке.
func (r *KeysRequest) Validate() error {
	if len(r.Keys) == 0 {
		return fmt.Errorf("keys must not be empty")
	}
	for _, k := range r.Keys {
		if !engine.Recognized(k) {
			return fmt.Errorf("%w: %q", domain.ErrUnknownKey, k)
		}
	}
	return nil
}

// DisplayResponse — ответ со строкой дисплея.
type DisplayResponse struct {
	Display string `json:"display"`
	Message string `json:"message,omitempty"`
}

// HistoryItem — одна запись в истории (для GET /api/v1/sessions/:id/history).
type HistoryItem struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	Left      float64   `json:"left"`
	Right     float64   `json:"right"`
	Operator  string    `json:"operator"`
	Result    float64   `json:"result"`
	Display   string    `json:"display,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse — ответ со списком операций сессии.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}
