package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"padcalc/internal/domain"
	"padcalc/internal/ports"
)

// calculationDoc — документ в коллекции calculations (без ID — в домене ID
// int для совместимости с PG, при чтении оставляем 0).
type calculationDoc struct {
	SessionID string    `bson:"session_id"`
	Left      float64   `bson:"left_operand"`
	Right     float64   `bson:"right_operand"`
	Operator  string    `bson:"operator"`
	Result    float64   `bson:"result"`
	Display   string    `bson:"display"`
	CreatedAt time.Time `bson:"created_at"`
}

var _ ports.ISessionRepository = (*SessionRepo)(nil)

// SessionRepo реализует ports.ISessionRepository для MongoDB.
type SessionRepo struct {
	client *Client
	log    *slog.Logger
}

// NewSessionRepo возвращает репозиторий операций сессий.
func NewSessionRepo(client *Client, log *slog.Logger) *SessionRepo {
	return &SessionRepo{client: client, log: log}
}

// SaveCalculation сохраняет операцию в коллекцию.
func (r *SessionRepo) SaveCalculation(ctx context.Context, c domain.Calculation) error {
	doc := calculationDoc{
		SessionID: c.SessionID,
		Left:      c.Left,
		Right:     c.Right,
		Operator:  c.Operator,
		Result:    c.Result,
		Display:   c.Display,
		CreatedAt: c.Timestamp,
	}
	_, err := r.client.Coll().InsertOne(ctx, doc)
	if err != nil {
		r.log.Debug("SaveCalculation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает историю операций сессии (последние сначала).
func (r *SessionRepo) GetHistory(ctx context.Context, sessionID string) ([]domain.Calculation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.client.Coll().Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []calculationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Calculation, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.Calculation{
			ID:        0,
			SessionID: d.SessionID,
			Left:      d.Left,
			Right:     d.Right,
			Operator:  d.Operator,
			Result:    d.Result,
			Display:   d.Display,
			Timestamp: d.CreatedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *SessionRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
