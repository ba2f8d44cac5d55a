package port

import (
	"context"

	"adsdesk/internal/core/domain"
)

// NotificationRepository keeps the user-visible outcome of mutations.
type NotificationRepository interface {
	Save(ctx context.Context, n domain.Notification) error
	// Get returns ErrNotFound for unknown ids.
	Get(ctx context.Context, id string) (domain.Notification, error)
	// ListRecent returns at most limit notifications, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.Notification, error)
}
