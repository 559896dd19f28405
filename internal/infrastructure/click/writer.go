package click

import (
	"context"
	"fmt"

	"padcalc/internal/domain"
	"padcalc/internal/ports"
)

const calculationsAnalyticsFull = "default.calculations_analytics"

var _ ports.ICalculationAnalytics = (*CalculationWriter)(nil)

// CalculationWriter записывает разрешённые операции в ClickHouse в формате,
// удобном для аналитики (GROUP BY operator, по сессиям и времени).
type CalculationWriter struct {
	db *Client
}

// NewCalculationWriter создаёт писатель операций для аналитики.
func NewCalculationWriter(db *Client) *CalculationWriter {
	return &CalculationWriter{db: db}
}

// EnsureTable создаёт таблицу аналитики в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *CalculationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			session_id String,
			left_operand Float64,
			right_operand Float64,
			operator String,
			result Float64,
			display String,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, session_id)
		PARTITION BY toYYYYMM(created_at)`,
		calculationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteCalculation реализует ports.ICalculationAnalytics: пишет одну операцию в ClickHouse.
func (w *CalculationWriter) WriteCalculation(ctx context.Context, c domain.Calculation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (session_id, left_operand, right_operand, operator, result, display, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		calculationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		c.SessionID, c.Left, c.Right, c.Operator, c.Result, c.Display, c.Timestamp)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}
