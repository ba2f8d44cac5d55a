package optimistic

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"adsdesk/internal/core/cache"
	"adsdesk/internal/core/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	keyCampaigns = cache.NewKey("campaigns", url.Values{"range": {"today"}})
	keyAllTime   = cache.NewKey("campaigns", url.Values{"range": {"all_time"}})
	keyAnalytics = cache.NewKey("analytics", url.Values{"range": {"today"}})
	keyAds       = cache.NewKey("ads", url.Values{"ad_group_id": {"g1"}})
)

func campaigns(statuses ...domain.Status) domain.CampaignPage {
	p := domain.CampaignPage{}
	for i, st := range statuses {
		p.Items = append(p.Items, domain.Campaign{ID: "c" + string(rune('1'+i)), Name: "Campaign", Status: st})
		if st.Active() {
			p.Summary.Active++
		}
	}
	p.Summary.Total = len(statuses)
	return p
}

func report(statuses ...domain.Status) domain.AnalyticsReport {
	r := domain.AnalyticsReport{}
	for i, st := range statuses {
		r.Rows = append(r.Rows, domain.AnalyticsRow{CampaignID: "c" + string(rune('1'+i)), Status: st})
		if st.Active() {
			r.ActiveCampaigns++
		}
	}
	return r
}

func seeded(t *testing.T) *cache.Store {
	t.Helper()
	s, err := cache.New(16)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	s.Set(keyCampaigns, campaigns(domain.StatusEnable, domain.StatusDisable))
	s.Set(keyAllTime, campaigns(domain.StatusEnable, domain.StatusDisable, domain.StatusEnable))
	s.Set(keyAnalytics, report(domain.StatusEnable, domain.StatusDisable))
	return s
}

func values(s *cache.Store, keys ...cache.Key) map[cache.Key]domain.ReadModel {
	out := make(map[cache.Key]domain.ReadModel, len(keys))
	for _, k := range keys {
		if v, ok := s.Get(k); ok {
			out[k] = v
		}
	}
	return out
}

func TestRollbackRestoresEveryKey(t *testing.T) {
	s := seeded(t)
	keys := []cache.Key{keyCampaigns, keyAllTime, keyAnalytics}
	before := values(s, keys...)

	tx := Begin(s, keys...)
	n := tx.Apply(StatusPatch(domain.KindCampaign, "c1", domain.StatusDisable))
	assert.Equal(t, 3, n)
	assert.NotEmpty(t, cmp.Diff(before, values(s, keys...)))

	tx.Rollback()
	if diff := cmp.Diff(before, values(s, keys...)); diff != "" {
		t.Fatalf("cache differs from snapshot after rollback (-want +got):\n%s", diff)
	}
	for _, k := range keys {
		assert.False(t, s.Stale(k), k.String())
	}
}

func TestRollbackKeepsKeysLoadedDuringTransaction(t *testing.T) {
	s := seeded(t)
	tx := Begin(s, keyCampaigns, keyAds)
	loaded := domain.AdPage{Items: []domain.Ad{{ID: "a1"}}}
	s.Set(keyAds, loaded)

	tx.Rollback()
	v, ok := s.Get(keyAds)
	require.True(t, ok)
	assert.Equal(t, loaded, v)
}

func TestOverlappingRollbacksKeepEachOthersPatches(t *testing.T) {
	for _, firstBack := range []string{"c1", "c2"} {
		t.Run(firstBack+" rolls back first", func(t *testing.T) {
			s, err := cache.New(16)
			require.NoError(t, err)
			t.Cleanup(s.Close)
			s.Set(keyCampaigns, campaigns(domain.StatusEnable, domain.StatusEnable))
			s.Set(keyAnalytics, report(domain.StatusEnable, domain.StatusEnable))
			keys := []cache.Key{keyCampaigns, keyAnalytics}
			before := values(s, keys...)

			txs := map[string]*Tx{}
			for _, id := range []string{"c1", "c2"} {
				txs[id] = Begin(s, keys...)
				require.Equal(t, 2, txs[id].Apply(StatusPatch(domain.KindCampaign, id, domain.StatusDisable)))
			}

			other := map[string]string{"c1": "c2", "c2": "c1"}[firstBack]
			txs[firstBack].Rollback()
			page, _ := s.Get(keyCampaigns)
			st, _ := page.StatusOf(domain.KindCampaign, other)
			assert.Equal(t, domain.StatusDisable, st, "in-flight patch of the other transaction stays visible")
			assert.Equal(t, 1, page.(domain.CampaignPage).Summary.Active)

			txs[other].Rollback()
			if diff := cmp.Diff(before, values(s, keys...)); diff != "" {
				t.Fatalf("cache differs after both rollbacks (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRollbackAfterOtherCommit(t *testing.T) {
	s := seeded(t)
	a := Begin(s, keyCampaigns)
	a.Apply(StatusPatch(domain.KindCampaign, "c1", domain.StatusDisable))
	b := Begin(s, keyCampaigns)
	b.Apply(StatusPatch(domain.KindCampaign, "c2", domain.StatusEnable))
	b.Commit()

	a.Rollback()
	v, _ := s.Get(keyCampaigns)
	page := v.(domain.CampaignPage)
	assert.Equal(t, domain.StatusEnable, page.Items[0].Status)
	assert.Equal(t, domain.StatusEnable, page.Items[1].Status, "accepted change survives")
	assert.Equal(t, 2, page.Summary.Active)
}

func TestRollbackWithoutUndoRestoresUntouchedKey(t *testing.T) {
	s := seeded(t)
	before := values(s, keyCampaigns)
	tx := Begin(s, keyCampaigns)
	tx.Apply(func(_ cache.Key, m domain.ReadModel) (domain.ReadModel, bool) { return campaigns(), true }, nil)

	tx.Rollback()
	assert.Equal(t, before, values(s, keyCampaigns))
	assert.False(t, s.Stale(keyCampaigns))
}

func TestRollbackWithoutUndoRefetchesSharedKey(t *testing.T) {
	s, err := cache.New(16)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	server := campaigns(domain.StatusEnable, domain.StatusEnable)
	_, err = s.Fetch(context.Background(), keyCampaigns, func(context.Context) (domain.ReadModel, error) { return server, nil })
	require.NoError(t, err)

	recount := func(_ cache.Key, m domain.ReadModel) (domain.ReadModel, bool) {
		p := m.(domain.CampaignPage)
		p.Summary.Total = 99
		return p, true
	}
	a := Begin(s, keyCampaigns)
	a.Apply(recount, nil)
	b := Begin(s, keyCampaigns)
	require.Equal(t, 1, b.Apply(StatusPatch(domain.KindCampaign, "c2", domain.StatusDisable)))

	a.Rollback()
	require.Eventually(t, func() bool { return !s.Stale(keyCampaigns) }, time.Second, time.Millisecond)
	v, _ := s.Get(keyCampaigns)
	assert.Equal(t, server, v)
	b.Commit()
}

func TestActiveCountAdjustment(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		status     domain.Status
		wantActive int
		wantReport int
	}{
		{name: "inactive to active", id: "c2", status: domain.StatusEnable, wantActive: 2, wantReport: 2},
		{name: "active to same status", id: "c1", status: domain.StatusEnable, wantActive: 1, wantReport: 1},
		{name: "active to inactive", id: "c1", status: domain.StatusDisable, wantActive: 0, wantReport: 0},
		{name: "inactive to deleted", id: "c2", status: domain.StatusDelete, wantActive: 1, wantReport: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seeded(t)
			tx := Begin(s, keyCampaigns, keyAnalytics)
			tx.Apply(StatusPatch(domain.KindCampaign, tt.id, tt.status))

			v, _ := s.Get(keyCampaigns)
			assert.Equal(t, tt.wantActive, v.(domain.CampaignPage).Summary.Active)
			r, _ := s.Get(keyAnalytics)
			assert.Equal(t, tt.wantReport, r.(domain.AnalyticsReport).ActiveCampaigns)
			tx.Rollback()
		})
	}
}

func TestNonCampaignToggleLeavesCountersAlone(t *testing.T) {
	s := seeded(t)
	tx := Begin(s, keyCampaigns, keyAnalytics)
	assert.Zero(t, tx.Apply(StatusPatch(domain.KindAdGroup, "c1", domain.StatusDisable)))
	assert.Zero(t, tx.Patched())
	tx.Commit()
}

func TestCommitMarksKeysStaleAndRefetches(t *testing.T) {
	s, err := cache.New(16)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	server := campaigns(domain.StatusEnable)
	fetch := func(context.Context) (domain.ReadModel, error) { return server, nil }
	_, err = s.Fetch(context.Background(), keyCampaigns, fetch)
	require.NoError(t, err)

	tx := Begin(s, keyCampaigns)
	tx.Apply(StatusPatch(domain.KindCampaign, "c1", domain.StatusDisable))
	server = campaigns(domain.StatusDisable)
	tx.Commit()

	require.Eventually(t, func() bool { return !s.Stale(keyCampaigns) }, time.Second, time.Millisecond)
	v, _ := s.Get(keyCampaigns)
	assert.Equal(t, campaigns(domain.StatusDisable), v)
}

func TestEndingTwiceIsNoop(t *testing.T) {
	s := seeded(t)
	before := values(s, keyCampaigns)

	tx := Begin(s, keyCampaigns)
	tx.Apply(StatusPatch(domain.KindCampaign, "c1", domain.StatusDisable))
	tx.Rollback()
	tx.Commit()
	assert.Zero(t, tx.Apply(StatusPatch(domain.KindCampaign, "c1", domain.StatusDisable)))

	assert.False(t, s.Stale(keyCampaigns))
	assert.Equal(t, before, values(s, keyCampaigns))
}

func TestPixelPatches(t *testing.T) {
	s := seeded(t)
	pixelsKey := cache.NewKey("pixels", nil)
	s.Set(keyAds, domain.AdPage{Items: []domain.Ad{{ID: "a1"}, {ID: "a2", PixelID: "px0"}}, Total: 2})
	s.Set(pixelsKey, domain.PixelList{Items: []domain.Pixel{{ID: "px0"}}})

	tx := Begin(s, keyAds, pixelsKey, keyCampaigns)
	assert.Equal(t, 1, tx.Apply(PixelPatch("a1", "px1")))
	assert.Equal(t, 1, tx.Apply(AppendPixel(domain.Pixel{Name: "new"})))

	ads, _ := s.Get(keyAds)
	assert.Equal(t, "px1", ads.(domain.AdPage).Items[0].PixelID)
	px, _ := s.Get(pixelsKey)
	assert.Len(t, px.(domain.PixelList).Items, 2)

	tx.Rollback()
	ads, _ = s.Get(keyAds)
	assert.Empty(t, ads.(domain.AdPage).Items[0].PixelID)
	px, _ = s.Get(pixelsKey)
	assert.Len(t, px.(domain.PixelList).Items, 1)
}
