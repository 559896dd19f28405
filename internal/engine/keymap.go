package engine

import "padcalc/internal/domain"

// Клавиши, не являющиеся цифрами и операторами.
const (
	KeyDecimal    = "."
	KeyEquals     = "="
	KeyPercent    = "%"
	KeySign       = "+/-"
	KeyClearEntry = "CE"
	KeyAllClear   = "AC"
)

// Recognized сообщает, распознаётся ли жест клавиатуры. Один жест — одно
// действие автомата.
func Recognized(key string) bool {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return true
	}
	if domain.IsOperator(key) {
		return true
	}
	switch key {
	case KeyDecimal, KeyEquals, KeyPercent, KeySign, KeyClearEntry, KeyAllClear:
		return true
	}
	return false
}

// Press транслирует жест в действие автомата. Нераспознанные жесты
// поглощаются (у ядра нет канала ошибок); адаптеры, которым важно сообщить
// о них пользователю, валидируют жест через Recognized до вызова.
// Возвращает разрешённую операцию, если нажатие её вызвало.
func (e *Engine) Press(key string) (Resolution, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		e.InputDigit(key[0])
		return Resolution{}, false
	}
	if domain.IsOperator(key) {
		return e.SetOperator(key)
	}
	switch key {
	case KeyDecimal:
		e.InputDecimal()
	case KeyEquals:
		return e.CalculateResult()
	case KeyPercent:
		e.CalculatePercentage()
	case KeySign:
		e.ToggleSign()
	case KeyClearEntry:
		e.ClearEntry()
	case KeyAllClear:
		e.AllClear()
	}
	return Resolution{}, false
}
