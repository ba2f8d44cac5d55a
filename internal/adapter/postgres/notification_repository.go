package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adsdesk/internal/core/domain"
	"adsdesk/internal/core/port"
)

var _ port.NotificationRepository = (*NotificationRepository)(nil)

// NotificationRepository implements port.NotificationRepository on
// PostgreSQL.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

const notificationColumns = `id, level, action, entity_kind, entity_id, message, created_at`

// Save inserts n. Saving the same id twice keeps the first row.
func (r *NotificationRepository) Save(ctx context.Context, n domain.Notification) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO notifications (`+notificationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		n.ID, n.Level, n.Action, n.EntityKind, n.EntityID, n.Message, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification %s: %w", n.ID, err)
	}
	return nil
}

// ListRecent returns the newest notifications first.
func (r *NotificationRepository) ListRecent(ctx context.Context, limit int) ([]domain.Notification, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+notificationColumns+` FROM notifications
		 ORDER BY created_at DESC, id
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanNotification)
}

// Get returns one notification or port.ErrNotFound.
func (r *NotificationRepository) Get(ctx context.Context, id string) (domain.Notification, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
	if err != nil {
		return domain.Notification{}, err
	}
	n, err := pgx.CollectExactlyOneRow(rows, scanNotification)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Notification{}, port.ErrNotFound
	}
	return n, err
}

func scanNotification(row pgx.CollectableRow) (domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.Level, &n.Action, &n.EntityKind, &n.EntityID, &n.Message, &n.CreatedAt)
	return n, err
}
