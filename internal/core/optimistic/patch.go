package optimistic

import (
	"slices"

	"adsdesk/internal/core/cache"
	"adsdesk/internal/core/domain"
)

// StatusPatch sets the status of one entity wherever it appears. The undo
// puts back the status the entity had when the transaction began.
func StatusPatch(kind domain.EntityKind, id string, status domain.Status) (Patch, cache.Reconcile) {
	patch := func(_ cache.Key, m domain.ReadModel) (domain.ReadModel, bool) {
		return m.WithStatus(kind, id, status)
	}
	undo := func(_ cache.Key, captured, current domain.ReadModel) (domain.ReadModel, bool) {
		prev, ok := captured.StatusOf(kind, id)
		if !ok {
			return current, false
		}
		v, _ := current.WithStatus(kind, id, prev)
		return v, true
	}
	return patch, undo
}

// PixelPatch attaches pixelID to an ad in cached ad lists. An empty pixelID
// detaches it.
func PixelPatch(adID, pixelID string) (Patch, cache.Reconcile) {
	patch := func(_ cache.Key, m domain.ReadModel) (domain.ReadModel, bool) {
		page, ok := m.(domain.AdPage)
		if !ok {
			return m, false
		}
		return page.WithPixel(adID, pixelID)
	}
	undo := func(_ cache.Key, captured, current domain.ReadModel) (domain.ReadModel, bool) {
		was, ok := captured.(domain.AdPage)
		page, isPage := current.(domain.AdPage)
		if !ok || !isPage {
			return current, false
		}
		prev, ok := was.PixelOf(adID)
		if !ok {
			return current, false
		}
		v, _ := page.WithPixel(adID, prev)
		return v, true
	}
	return patch, undo
}

// AppendPixel adds a newly created pixel to cached pixel lists. The undo
// removes that entry again.
func AppendPixel(p domain.Pixel) (Patch, cache.Reconcile) {
	patch := func(_ cache.Key, m domain.ReadModel) (domain.ReadModel, bool) {
		list, ok := m.(domain.PixelList)
		if !ok {
			return m, false
		}
		list.Items = append(append([]domain.Pixel(nil), list.Items...), p)
		return list, true
	}
	undo := func(_ cache.Key, _, current domain.ReadModel) (domain.ReadModel, bool) {
		list, ok := current.(domain.PixelList)
		if !ok {
			return current, false
		}
		if i := slices.Index(list.Items, p); i >= 0 {
			list.Items = slices.Delete(slices.Clone(list.Items), i, i+1)
		}
		return list, true
	}
	return patch, undo
}
