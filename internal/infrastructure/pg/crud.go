package pg

import (
	"context"
	"log/slog"

	"padcalc/internal/domain"
	"padcalc/internal/ports"
)

var _ ports.ISessionRepository = (*SessionRepo)(nil)

// SessionRepo реализует ports.ISessionRepository для PostgreSQL.
type SessionRepo struct {
	db  *DB
	log *slog.Logger
}

// NewSessionRepo возвращает репозиторий операций сессий.
func NewSessionRepo(db *DB, log *slog.Logger) *SessionRepo {
	return &SessionRepo{db: db, log: log}
}

// SaveCalculation сохраняет разрешённую операцию в БД.
func (r *SessionRepo) SaveCalculation(ctx context.Context, c domain.Calculation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculations (session_id, left_operand, right_operand, operator, result, display, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.SessionID, c.Left, c.Right, c.Operator, c.Result, c.Display, c.Timestamp)
	if err != nil {
		r.log.Debug("SaveCalculation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает историю операций сессии (последние сначала).
func (r *SessionRepo) GetHistory(ctx context.Context, sessionID string) ([]domain.Calculation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, left_operand, right_operand, operator, result, display, created_at
		 FROM calculations WHERE session_id = $1 ORDER BY created_at DESC`,
		sessionID)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.Calculation
	for rows.Next() {
		var c domain.Calculation
		err := rows.Scan(&c.ID, &c.SessionID, &c.Left, &c.Right, &c.Operator, &c.Result, &c.Display, &c.Timestamp)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *SessionRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
