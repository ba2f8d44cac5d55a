package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"adsdesk/internal/core/cache"
	"adsdesk/internal/core/domain"
	"adsdesk/internal/core/optimistic"
	"adsdesk/internal/core/port"
)

var _ port.MutationService = (*MutationUseCase)(nil)

// MutationUseCase runs every write against the ads platform as an optimistic
// transaction over the cached read models and records its outcome as a
// notification. Collaborator failures never surface as errors: they roll the
// cache back and produce an error-level notification. Returned errors are
// reserved for requests that were not attempted.
type MutationUseCase struct {
	api    port.AdsAPI
	store  *cache.Store
	notes  port.NotificationRepository
	logger *slog.Logger
	now    func() time.Time

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewMutationUseCase(api port.AdsAPI, store *cache.Store, notes port.NotificationRepository, logger *slog.Logger) *MutationUseCase {
	return &MutationUseCase{
		api:      api,
		store:    store,
		notes:    notes,
		logger:   logger,
		now:      time.Now,
		inflight: make(map[string]struct{}),
	}
}

// ToggleStatus moves one entity to a new status. The cached lists show the
// new status, and for campaigns the adjusted active counters, before the
// platform answers; a failure takes back only its own patch.
func (u *MutationUseCase) ToggleStatus(ctx context.Context, req domain.StatusToggleRequest) (domain.Notification, error) {
	if req.EntityID == "" {
		return domain.Notification{}, fmt.Errorf("%w: empty entity id", port.ErrInvalidRequest)
	}
	status, err := domain.ParseStatus(string(req.Status))
	if err != nil {
		return domain.Notification{}, fmt.Errorf("%w: %v", port.ErrInvalidRequest, err)
	}
	req.Status = status
	resources := resourcesOf(req.Kind)
	if resources == nil {
		return domain.Notification{}, fmt.Errorf("%w: unknown entity kind %q", port.ErrInvalidRequest, req.Kind)
	}

	release, err := u.acquire(string(req.Kind) + ":" + req.EntityID)
	if err != nil {
		return domain.Notification{}, err
	}
	defer release()

	tx := optimistic.Begin(u.store, u.store.Keys(resources...)...)
	tx.Apply(optimistic.StatusPatch(req.Kind, req.EntityID, req.Status))

	msg, err := u.api.UpdateStatus(context.WithoutCancel(ctx), req)
	n := u.finish(ctx, tx, err, "update status", msg, "Status updated")
	n.EntityKind, n.EntityID = req.Kind, req.EntityID
	return u.record(ctx, n), nil
}

// AttachPixel links a tracking pixel to an ad.
func (u *MutationUseCase) AttachPixel(ctx context.Context, adID, pixelID string) (domain.Notification, error) {
	if adID == "" || pixelID == "" {
		return domain.Notification{}, fmt.Errorf("%w: ad id and pixel id are required", port.ErrInvalidRequest)
	}
	return u.changePixel(ctx, adID, pixelID, "attach pixel", "Pixel attached", func(ctx context.Context) (string, error) {
		return u.api.AttachPixel(ctx, adID, pixelID)
	})
}

// DetachPixel removes the tracking pixel of an ad.
func (u *MutationUseCase) DetachPixel(ctx context.Context, adID string) (domain.Notification, error) {
	if adID == "" {
		return domain.Notification{}, fmt.Errorf("%w: ad id is required", port.ErrInvalidRequest)
	}
	return u.changePixel(ctx, adID, "", "detach pixel", "Pixel detached", func(ctx context.Context) (string, error) {
		return u.api.DetachPixel(ctx, adID)
	})
}

func (u *MutationUseCase) changePixel(ctx context.Context, adID, pixelID, action, okMsg string, call func(context.Context) (string, error)) (domain.Notification, error) {
	release, err := u.acquire(string(domain.KindAd) + ":" + adID)
	if err != nil {
		return domain.Notification{}, err
	}
	defer release()

	tx := optimistic.Begin(u.store, u.store.Keys(ResourceAds)...)
	tx.Apply(optimistic.PixelPatch(adID, pixelID))

	msg, err := call(context.WithoutCancel(ctx))
	n := u.finish(ctx, tx, err, action, msg, okMsg)
	n.EntityKind, n.EntityID = domain.KindAd, adID
	return u.record(ctx, n), nil
}

// CreatePixel creates a tracking pixel. The pixel list shows it right away
// without an id until the refetch brings the authoritative entry.
func (u *MutationUseCase) CreatePixel(ctx context.Context, req domain.PixelCreate) (domain.Pixel, domain.Notification, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return domain.Pixel{}, domain.Notification{}, fmt.Errorf("%w: pixel name is required", port.ErrInvalidRequest)
	}
	tx := optimistic.Begin(u.store, u.store.Keys(ResourcePixels)...)
	tx.Apply(optimistic.AppendPixel(domain.Pixel{Name: req.Name}))

	p, err := u.api.CreatePixel(context.WithoutCancel(ctx), req)
	n := u.finish(ctx, tx, err, "create pixel", "", "Pixel created")
	if err == nil {
		n.EntityID = p.ID
	}
	return p, u.record(ctx, n), nil
}

// CreateLeadForm creates a lead form. No cached read model lists lead forms,
// so the transaction covers no keys.
func (u *MutationUseCase) CreateLeadForm(ctx context.Context, req domain.LeadFormCreate) (domain.LeadForm, domain.Notification, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return domain.LeadForm{}, domain.Notification{}, fmt.Errorf("%w: lead form name is required", port.ErrInvalidRequest)
	}
	tx := optimistic.Begin(u.store)
	f, err := u.api.CreateLeadForm(context.WithoutCancel(ctx), req)
	n := u.finish(ctx, tx, err, "create lead form", "", "Lead form created")
	if err == nil {
		n.EntityID = f.ID
	}
	return f, u.record(ctx, n), nil
}

// CreateComposite creates a campaign with its first ad group and ad. On
// success every list that may show the new entities is refetched.
func (u *MutationUseCase) CreateComposite(ctx context.Context, req domain.CompositeCreate) (domain.CompositeResult, domain.Notification, error) {
	tx := optimistic.Begin(u.store, u.store.Keys(ResourceCampaigns, ResourceAdGroups, ResourceAds, ResourceAnalytics)...)
	res, err := u.api.CreateComposite(context.WithoutCancel(ctx), req)
	n := u.finish(ctx, tx, err, "create campaign", res.Message, "Campaign created")
	if err == nil {
		n.EntityKind, n.EntityID = domain.KindCampaign, res.CampaignID
	}
	return res, u.record(ctx, n), nil
}

// Notifications returns the most recent notifications, newest first.
func (u *MutationUseCase) Notifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	return u.notes.ListRecent(ctx, limit)
}

// Notification returns one notification by id.
func (u *MutationUseCase) Notification(ctx context.Context, id string) (domain.Notification, error) {
	return u.notes.Get(ctx, id)
}

// finish ends tx according to err and builds the notification.
func (u *MutationUseCase) finish(ctx context.Context, tx *optimistic.Tx, err error, action, msg, okMsg string) domain.Notification {
	n := domain.Notification{Action: action}
	if err != nil {
		tx.Rollback()
		n.Level = domain.LevelError
		n.Message = domain.UserMessage(err, action)
		u.logger.WarnContext(ctx, "mutation failed",
			slog.String("action", action),
			slog.Int("restored_keys", len(tx.Keys())),
			slog.Any("error", err))
		return n
	}
	tx.Commit()
	n.Level = domain.LevelSuccess
	n.Message = msg
	if n.Message == "" {
		n.Message = okMsg
	}
	u.logger.InfoContext(ctx, "mutation applied",
		slog.String("action", action),
		slog.Int("patched_keys", tx.Patched()))
	return n
}

// record stamps and stores n. Storage failures are logged and do not change
// the outcome of the mutation.
func (u *MutationUseCase) record(ctx context.Context, n domain.Notification) domain.Notification {
	n.ID = uuid.NewString()
	n.CreatedAt = u.now().UTC()
	if err := u.notes.Save(context.WithoutCancel(ctx), n); err != nil {
		u.logger.ErrorContext(ctx, "save notification", slog.String("id", n.ID), slog.Any("error", err))
	}
	return n
}

// acquire marks key as having a mutation in flight.
func (u *MutationUseCase) acquire(key string) (func(), error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inflight[key]; busy {
		return nil, port.ErrMutationInFlight
	}
	u.inflight[key] = struct{}{}
	return func() {
		u.mu.Lock()
		delete(u.inflight, key)
		u.mu.Unlock()
	}, nil
}
