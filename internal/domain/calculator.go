package domain

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownKey возвращается, когда жест клавиатуры не распознан.
var ErrUnknownKey = errors.New("unknown key")

// Константы арифметических операторов.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"
)

// IsOperator сообщает, является ли символ поддерживаемым бинарным оператором.
func IsOperator(op string) bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// Operand — набираемый операнд как строка: цифры, не более одной точки,
// опциональный ведущий минус. Никогда не пустой, стартовое значение "0".
// Грамматика: -?\d+(\.\d*)?
type Operand string

// ZeroOperand — начальное значение операнда.
const ZeroOperand Operand = "0"

var operandRe = regexp.MustCompile(`^-?\d+(\.\d*)?$`)

// ValidOperand проверяет строку на соответствие грамматике операнда
// (используется при восстановлении сохранённого состояния).
func ValidOperand(s string) bool {
	return operandRe.MatchString(s)
}

// AppendDigit добавляет цифру справа. Если операнд — ровно "0", цифра его
// заменяет (без ведущих нулей). Решение заменить/добавить принимается только
// по сравнению со строкой "0": после ввода точки операнд уже не "0", поэтому
// последовательность 0 . 5 даёт "0.5". Не-цифры игнорируются.
func (o Operand) AppendDigit(d byte) Operand {
	if d < '0' || d > '9' {
		return o
	}
	if o == ZeroOperand {
		return Operand(d)
	}
	return o + Operand(d)
}

// AppendDecimal добавляет точку, если её ещё нет; иначе ничего не меняет.
func (o Operand) AppendDecimal() Operand {
	if strings.Contains(string(o), ".") {
		return o
	}
	return o + "."
}

// ToggleSign переключает знак: ведущий минус снимается, иначе добавляется.
// Знак нуля не переключается — "-0" на дисплее не бывает.
func (o Operand) ToggleSign() Operand {
	if strings.HasPrefix(string(o), "-") {
		return o[1:]
	}
	if o == ZeroOperand {
		return o
	}
	return "-" + o
}

// Float возвращает числовое значение операнда. Висячая точка ("3.")
// парсится как целая часть. По инварианту грамматики ошибок не бывает;
// при ошибке возвращается 0.
func (o Operand) Float() float64 {
	v, err := strconv.ParseFloat(string(o), 64)
	if err != nil {
		return 0
	}
	return v
}

// Display — каноничная строка для дисплея. Операнд без точки перечитывается
// как целое и печатается заново (схлопывает случайные ведущие нули,
// идемпотентно). Операнд с точкой — включая висячую ("3.") — не меняется.
func (o Operand) Display() string {
	s := string(o)
	if strings.Contains(s, ".") {
		return s
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// за пределами int64 — форматируем через float
		return strconv.FormatFloat(o.Float(), 'f', -1, 64)
	}
	return strconv.FormatInt(n, 10)
}

// FormatResult превращает числовой результат в операнд: десятичная запись
// без экспоненты, чтобы строка оставалась в грамматике операнда.
func FormatResult(v float64) Operand {
	return Operand(strconv.FormatFloat(v, 'f', -1, 64))
}

// Calculation — запись об одной разрешённой бинарной операции сессии.
type Calculation struct {
	ID        int
	SessionID string
	Left      float64
	Right     float64
	Operator  string
	Result    float64
	Display   string
	Timestamp time.Time
}
