package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adsdesk/internal/adapter/upstream"
	"adsdesk/internal/core/domain"
	"adsdesk/internal/core/port"
	"adsdesk/internal/core/port/mocks"
)

type mutationFixture struct {
	api     *mocks.MockAdsAPI
	notes   *mocks.MockNotificationRepository
	catalog *CatalogUseCase
	svc     *MutationUseCase
}

func newMutationFixture(t *testing.T) mutationFixture {
	t.Helper()
	api := mocks.NewMockAdsAPI(t)
	notes := mocks.NewMockNotificationRepository(t)
	store := newStore(t)
	return mutationFixture{
		api:     api,
		notes:   notes,
		catalog: NewCatalogUseCase(api, store, WithClock(fixedNow)),
		svc:     NewMutationUseCase(api, store, notes, discard),
	}
}

func (f mutationFixture) expectNotification(level domain.NotificationLevel, message string) {
	f.notes.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
			return n.Level == level && n.Message == message && n.ID != ""
		})).
		Return(nil).
		Once()
}

func TestToggleStatusRollsBackOnFailure(t *testing.T) {
	f := newMutationFixture(t)
	f.api.EXPECT().ListCampaigns(mock.Anything, query(domain.PresetToday)).Return(campaignPage(domain.StatusEnable, domain.StatusDisable), nil).Once()
	f.api.EXPECT().GetAnalytics(mock.Anything, query(domain.PresetToday)).Return(domain.AnalyticsReport{
		Rows:            []domain.AnalyticsRow{{CampaignID: "c1", Status: domain.StatusEnable}},
		ActiveCampaigns: 1,
	}, nil).Once()

	ctx := context.Background()
	_, err := f.catalog.Campaigns(ctx)
	require.NoError(t, err)
	_, err = f.catalog.Analytics(ctx)
	require.NoError(t, err)

	req := domain.StatusToggleRequest{EntityID: "c1", Kind: domain.KindCampaign, Status: domain.StatusDisable}
	f.api.EXPECT().UpdateStatus(mock.Anything, req).
		RunAndReturn(func(ctx context.Context, _ domain.StatusToggleRequest) (string, error) {
			page, err := f.catalog.Campaigns(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusDisable, page.Items[0].Status, "optimistic status visible while in flight")
			assert.Equal(t, 0, page.Summary.Active)
			report, err := f.catalog.Analytics(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, report.ActiveCampaigns)
			return "", &upstream.RejectedError{Op: "update status", StatusCode: http.StatusConflict, Message: "Campaign is locked"}
		}).
		Once()
	f.expectNotification(domain.LevelError, "Campaign is locked")

	n, err := f.svc.ToggleStatus(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelError, n.Level)
	assert.Equal(t, "c1", n.EntityID)

	page, err := f.catalog.Campaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, campaignPage(domain.StatusEnable, domain.StatusDisable), page)
	report, err := f.catalog.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.ActiveCampaigns)
	assert.Equal(t, domain.StatusEnable, report.Rows[0].Status)
}

func TestToggleStatusCommitsAndRefetches(t *testing.T) {
	f := newMutationFixture(t)
	q := query(domain.PresetToday)
	f.api.EXPECT().ListCampaigns(mock.Anything, q).Return(campaignPage(domain.StatusDisable), nil).Once()
	f.api.EXPECT().ListCampaigns(mock.Anything, q).Return(campaignPage(domain.StatusEnable), nil).Once()

	ctx := context.Background()
	_, err := f.catalog.Campaigns(ctx)
	require.NoError(t, err)

	req := domain.StatusToggleRequest{EntityID: "c1", Kind: domain.KindCampaign, Status: domain.StatusEnable}
	f.api.EXPECT().UpdateStatus(mock.Anything, req).Return("", nil).Once()
	f.expectNotification(domain.LevelSuccess, "Status updated")

	n, err := f.svc.ToggleStatus(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelSuccess, n.Level)

	page, err := f.catalog.Campaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Summary.Active, "inactive to active adds exactly one")

	store := f.svc.store
	require.Eventually(t, func() bool {
		for _, k := range store.Keys(ResourceCampaigns) {
			if store.Stale(k) {
				return false
			}
		}
		return true
	}, time.Second, time.Millisecond)
}

func TestToggleStatusTransportFailure(t *testing.T) {
	f := newMutationFixture(t)
	req := domain.StatusToggleRequest{EntityID: "a1", Kind: domain.KindAd, Status: domain.StatusDelete}
	f.api.EXPECT().UpdateStatus(mock.Anything, req).
		Return("", &upstream.TransportError{Op: "update status", Err: errors.New("connection refused")}).
		Once()
	f.expectNotification(domain.LevelError, "Network error: could not update status, please retry")

	n, err := f.svc.ToggleStatus(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.KindAd, n.EntityKind)
}

func TestToggleStatusRejectsConcurrentToggleOfSameEntity(t *testing.T) {
	f := newMutationFixture(t)
	req := domain.StatusToggleRequest{EntityID: "g1", Kind: domain.KindAdGroup, Status: domain.StatusDisable}
	other := domain.StatusToggleRequest{EntityID: "g2", Kind: domain.KindAdGroup, Status: domain.StatusDisable}

	f.api.EXPECT().UpdateStatus(mock.Anything, other).Return("ok", nil).Once()
	f.api.EXPECT().UpdateStatus(mock.Anything, req).
		RunAndReturn(func(ctx context.Context, _ domain.StatusToggleRequest) (string, error) {
			_, err := f.svc.ToggleStatus(ctx, req)
			assert.ErrorIs(t, err, port.ErrMutationInFlight)
			_, err = f.svc.ToggleStatus(ctx, other)
			assert.NoError(t, err, "other entities are independent")
			return "ok", nil
		}).
		Once()
	f.notes.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Twice()

	_, err := f.svc.ToggleStatus(context.Background(), req)
	require.NoError(t, err)

	// released after completion
	f.api.EXPECT().UpdateStatus(mock.Anything, req).Return("ok", nil).Once()
	f.notes.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	_, err = f.svc.ToggleStatus(context.Background(), req)
	require.NoError(t, err)
}

func TestOverlappingRejectedTogglesRestoreBothEntities(t *testing.T) {
	f := newMutationFixture(t)
	f.api.EXPECT().ListCampaigns(mock.Anything, query(domain.PresetToday)).
		Return(campaignPage(domain.StatusEnable, domain.StatusEnable), nil).Once()
	ctx := context.Background()
	_, err := f.catalog.Campaigns(ctx)
	require.NoError(t, err)

	reqA := domain.StatusToggleRequest{EntityID: "c1", Kind: domain.KindCampaign, Status: domain.StatusDisable}
	reqB := domain.StatusToggleRequest{EntityID: "c2", Kind: domain.KindCampaign, Status: domain.StatusDisable}
	inA, releaseA := make(chan struct{}), make(chan struct{})
	inB, releaseB := make(chan struct{}), make(chan struct{})
	blockUntil := func(in, release chan struct{}) func(context.Context, domain.StatusToggleRequest) (string, error) {
		return func(context.Context, domain.StatusToggleRequest) (string, error) {
			close(in)
			<-release
			return "", &upstream.RejectedError{Op: "update status", StatusCode: http.StatusBadRequest, Message: "Budget too low"}
		}
	}
	f.api.EXPECT().UpdateStatus(mock.Anything, reqA).RunAndReturn(blockUntil(inA, releaseA)).Once()
	f.api.EXPECT().UpdateStatus(mock.Anything, reqB).RunAndReturn(blockUntil(inB, releaseB)).Once()
	f.notes.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Twice()

	doneA, doneB := make(chan struct{}), make(chan struct{})
	go func() {
		defer close(doneA)
		_, err := f.svc.ToggleStatus(ctx, reqA)
		assert.NoError(t, err)
	}()
	<-inA
	go func() {
		defer close(doneB)
		_, err := f.svc.ToggleStatus(ctx, reqB)
		assert.NoError(t, err)
	}()
	<-inB

	page, err := f.catalog.Campaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Summary.Active, "both optimistic patches visible")

	close(releaseA)
	<-doneA
	page, err = f.catalog.Campaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnable, page.Items[0].Status)
	assert.Equal(t, domain.StatusDisable, page.Items[1].Status, "c2 is still in flight")
	assert.Equal(t, 1, page.Summary.Active)

	close(releaseB)
	<-doneB
	page, err = f.catalog.Campaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, campaignPage(domain.StatusEnable, domain.StatusEnable), page)
}

func TestToggleStatusNormalisesStatus(t *testing.T) {
	f := newMutationFixture(t)
	f.api.EXPECT().ListCampaigns(mock.Anything, query(domain.PresetToday)).
		Return(campaignPage(domain.StatusDisable), nil).Once()
	ctx := context.Background()
	_, err := f.catalog.Campaigns(ctx)
	require.NoError(t, err)

	want := domain.StatusToggleRequest{EntityID: "c1", Kind: domain.KindCampaign, Status: domain.StatusEnable}
	f.api.EXPECT().UpdateStatus(mock.Anything, want).
		RunAndReturn(func(ctx context.Context, _ domain.StatusToggleRequest) (string, error) {
			page, err := f.catalog.Campaigns(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusEnable, page.Items[0].Status)
			assert.Equal(t, 1, page.Summary.Active)
			return "", errors.New("connection reset")
		}).
		Once()
	f.expectNotification(domain.LevelError, "Network error: could not update status, please retry")

	_, err = f.svc.ToggleStatus(ctx, domain.StatusToggleRequest{EntityID: "c1", Kind: domain.KindCampaign, Status: " enable "})
	require.NoError(t, err)
}

func TestToggleStatusValidatesInput(t *testing.T) {
	f := newMutationFixture(t)
	tests := []domain.StatusToggleRequest{
		{Kind: domain.KindCampaign, Status: domain.StatusEnable},
		{EntityID: "c1", Kind: domain.KindCampaign, Status: "PAUSED"},
		{EntityID: "c1", Kind: "creative", Status: domain.StatusEnable},
	}
	for _, req := range tests {
		_, err := f.svc.ToggleStatus(context.Background(), req)
		assert.ErrorIs(t, err, port.ErrInvalidRequest)
	}
}

func TestToggleStatusSurvivesCancelledCaller(t *testing.T) {
	f := newMutationFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	req := domain.StatusToggleRequest{EntityID: "c1", Kind: domain.KindCampaign, Status: domain.StatusEnable}
	f.api.EXPECT().UpdateStatus(mock.Anything, req).
		RunAndReturn(func(ctx context.Context, _ domain.StatusToggleRequest) (string, error) {
			cancel()
			assert.NoError(t, ctx.Err(), "the request outlives its caller")
			return "", nil
		}).
		Once()
	f.expectNotification(domain.LevelSuccess, "Status updated")

	_, err := f.svc.ToggleStatus(ctx, req)
	require.NoError(t, err)
}

func TestNotificationStorageFailureDoesNotFailMutation(t *testing.T) {
	f := newMutationFixture(t)
	f.api.EXPECT().DetachPixel(mock.Anything, "a1").Return("Pixel removed", nil).Once()
	f.notes.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	n, err := f.svc.DetachPixel(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.LevelSuccess, n.Level)
	assert.Equal(t, "Pixel removed", n.Message)
}

func TestAttachPixelRollsBackOnFailure(t *testing.T) {
	f := newMutationFixture(t)
	q := query(domain.PresetToday)
	q.ParentID = "g1"
	ads := domain.AdPage{Items: []domain.Ad{{ID: "a1", PixelID: "px0"}}, Total: 1}
	f.api.EXPECT().ListAds(mock.Anything, q).Return(ads, nil).Once()

	ctx := context.Background()
	_, err := f.catalog.Ads(ctx, "g1")
	require.NoError(t, err)

	f.api.EXPECT().AttachPixel(mock.Anything, "a1", "px1").
		RunAndReturn(func(ctx context.Context, _, _ string) (string, error) {
			page, _ := f.catalog.Ads(ctx, "g1")
			assert.Equal(t, "px1", page.Items[0].PixelID)
			return "", &upstream.RejectedError{StatusCode: http.StatusBadRequest}
		}).
		Once()
	f.expectNotification(domain.LevelError, "Failed to attach pixel")

	_, err = f.svc.AttachPixel(ctx, "a1", "px1")
	require.NoError(t, err)
	page, err := f.catalog.Ads(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, ads, page)
}

func TestCreatePixelShowsPlaceholder(t *testing.T) {
	f := newMutationFixture(t)
	f.api.EXPECT().ListPixels(mock.Anything).Return(domain.PixelList{Items: []domain.Pixel{{ID: "px0", Name: "Main"}}}, nil).Once()
	f.api.EXPECT().ListPixels(mock.Anything).Return(domain.PixelList{Items: []domain.Pixel{{ID: "px0", Name: "Main"}, {ID: "px1", Name: "Checkout"}}}, nil).Maybe()

	ctx := context.Background()
	_, err := f.catalog.Pixels(ctx)
	require.NoError(t, err)

	f.api.EXPECT().CreatePixel(mock.Anything, domain.PixelCreate{Name: "Checkout"}).
		RunAndReturn(func(ctx context.Context, _ domain.PixelCreate) (domain.Pixel, error) {
			list, _ := f.catalog.Pixels(ctx)
			assert.Equal(t, domain.Pixel{Name: "Checkout"}, list.Items[1])
			return domain.Pixel{ID: "px1", Name: "Checkout"}, nil
		}).
		Once()
	f.expectNotification(domain.LevelSuccess, "Pixel created")

	p, n, err := f.svc.CreatePixel(ctx, domain.PixelCreate{Name: "  Checkout "})
	require.NoError(t, err)
	assert.Equal(t, "px1", p.ID)
	assert.Equal(t, "px1", n.EntityID)

	_, _, err = f.svc.CreatePixel(ctx, domain.PixelCreate{Name: " "})
	assert.ErrorIs(t, err, port.ErrInvalidRequest)
}

func TestCreateLeadForm(t *testing.T) {
	f := newMutationFixture(t)
	req := domain.LeadFormCreate{Name: "Contact", Fields: []string{"email"}}
	f.api.EXPECT().CreateLeadForm(mock.Anything, req).Return(domain.LeadForm{ID: "f1", Name: "Contact"}, nil).Once()
	f.expectNotification(domain.LevelSuccess, "Lead form created")

	form, n, err := f.svc.CreateLeadForm(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "f1", form.ID)
	assert.Equal(t, "f1", n.EntityID)
}

func TestNotificationsDefaultLimit(t *testing.T) {
	f := newMutationFixture(t)
	want := []domain.Notification{{ID: "n1"}}
	f.notes.EXPECT().ListRecent(mock.Anything, 50).Return(want, nil).Once()

	got, err := f.svc.Notifications(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

var _ port.AdsAPI = (*mocks.MockAdsAPI)(nil)
