// Package engine — ядро калькулятора: конечный автомат, превращающий
// дискретные жесты (цифра, точка, знак, оператор, равно, процент, сброс)
// в текущее вычисление и строку дисплея. Чистая логика без зависимостей:
// ни UI, ни IO, ни синхронизации — вызывающий сериализует обращения сам.
package engine

import (
	"padcalc/internal/domain"
)

// Engine — калькуляторный автомат. Два состояния: Idle (pending == nil)
// и PendingOp (отложенная бинарная операция ждёт второй операнд).
// Левый операнд и оператор живут в одной паре pending и выставляются и
// снимаются только вместе.
type Engine struct {
	input   domain.Operand
	pending *pendingOp
}

// pendingOp — отложенная бинарная операция: левый операнд уже зафиксирован,
// оператор выбран, правый операнд набирается в input.
type pendingOp struct {
	left float64
	op   string
}

// Resolution — одна разрешённая бинарная операция. Возвращается из
// SetOperator и CalculateResult, чтобы внешний слой мог наблюдать
// завершённые вычисления, не заглядывая внутрь автомата.
type Resolution struct {
	Left     float64
	Right    float64
	Operator string
	Result   float64
}

// New возвращает автомат в начальном состоянии: дисплей "0", без
// отложенной операции.
func New() *Engine {
	return &Engine{input: domain.ZeroOperand}
}

// Display возвращает каноничную строку дисплея для текущего операнда.
func (e *Engine) Display() string {
	return e.input.Display()
}

// InputDigit дописывает цифру к текущему операнду. Не-цифры поглощаются.
func (e *Engine) InputDigit(d byte) {
	e.input = e.input.AppendDigit(d)
}

// InputDecimal добавляет десятичную точку; повторный вызов — no-op.
func (e *Engine) InputDecimal() {
	e.input = e.input.AppendDecimal()
}

// ToggleSign переключает знак текущего операнда (ноль не трогает).
func (e *Engine) ToggleSign() {
	e.input = e.input.ToggleSign()
}

// ClearEntry сбрасывает только набираемый операнд; отложенная операция
// остаётся.
func (e *Engine) ClearEntry() {
	e.input = domain.ZeroOperand
}

// AllClear полностью возвращает автомат в начальное состояние.
func (e *Engine) AllClear() {
	e.input = domain.ZeroOperand
	e.pending = nil
}

// CalculatePercentage делит текущий операнд на 100 на месте. Отложенную
// операцию не трогает: автомат остаётся в том же состоянии.
func (e *Engine) CalculatePercentage() {
	e.input = domain.FormatResult(e.input.Float() / 100)
}

// SetOperator выбирает бинарный оператор. Если операция уже отложена,
// сначала разрешает её (алгоритм равно) — цепочка считается жадно слева
// направо, без приоритетов. Затем текущий операнд становится левым,
// оператор запоминается, набор начинается с "0". Неизвестный оператор —
// no-op.
func (e *Engine) SetOperator(op string) (Resolution, bool) {
	if !domain.IsOperator(op) {
		return Resolution{}, false
	}
	res, resolved := e.CalculateResult()
	e.pending = &pendingOp{left: e.input.Float(), op: op}
	e.input = domain.ZeroOperand
	return res, resolved
}

// CalculateResult (равно) разрешает отложенную операцию: правый операнд —
// текущий ввод, результат становится новым операндом, пара pending
// очищается. Без отложенной операции — no-op (повторное равно ничего не
// повторяет). Деление на ноль даёт 0 — осознанная продуктовая политика,
// а не числовая практика: ни ошибки, ни бесконечности.
func (e *Engine) CalculateResult() (Resolution, bool) {
	if e.pending == nil {
		return Resolution{}, false
	}
	right := e.input.Float()
	var result float64
	switch e.pending.op {
	case domain.OpAdd:
		result = e.pending.left + right
	case domain.OpSub:
		result = e.pending.left - right
	case domain.OpMul:
		result = e.pending.left * right
	case domain.OpDiv:
		if right == 0 {
			result = 0
		} else {
			result = e.pending.left / right
		}
	}
	res := Resolution{
		Left:     e.pending.left,
		Right:    right,
		Operator: e.pending.op,
		Result:   result,
	}
	e.input = domain.FormatResult(result)
	e.pending = nil
	return res, true
}

// State — сериализуемый снимок автомата (для кэша сессий).
type State struct {
	Input   string  `json:"input"`
	Pending bool    `json:"pending"`
	Left    float64 `json:"left,omitempty"`
	Op      string  `json:"op,omitempty"`
}

// State возвращает снимок текущего состояния.
func (e *Engine) State() State {
	s := State{Input: string(e.input)}
	if e.pending != nil {
		s.Pending = true
		s.Left = e.pending.left
		s.Op = e.pending.op
	}
	return s
}

// Restore восстанавливает автомат из снимка. Невалидный операнд или
// рассогласованная пара (pending без корректного оператора) отбрасываются:
// порченые данные дают свежий автомат, а не порченое состояние.
func Restore(s State) *Engine {
	e := New()
	if domain.ValidOperand(s.Input) {
		e.input = domain.Operand(s.Input)
	}
	if s.Pending && domain.IsOperator(s.Op) {
		e.pending = &pendingOp{left: s.Left, op: s.Op}
	}
	return e
}
