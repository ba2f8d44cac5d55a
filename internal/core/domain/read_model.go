package domain

// ReadModel is a snapshot of server-owned data held in the client cache.
// Implementations are immutable values: every method returns a new value and
// leaves the receiver untouched.
type ReadModel interface {
	// WithStatus returns a copy in which the entity identified by kind and id
	// has the given status. The boolean reports whether the entity was found.
	WithStatus(kind EntityKind, id string, status Status) (ReadModel, bool)
	// StatusOf returns the status of the entity identified by kind and id.
	StatusOf(kind EntityKind, id string) (Status, bool)
}

// Summary carries aggregate counters reported alongside a list.
type Summary struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// CampaignPage is the campaign list for one filter set.
type CampaignPage struct {
	Items   []Campaign `json:"items"`
	Summary Summary    `json:"summary"`
}

// WithStatus replaces the status of a campaign and keeps Summary.Active in
// step with the transition.
func (p CampaignPage) WithStatus(kind EntityKind, id string, status Status) (ReadModel, bool) {
	if kind != KindCampaign {
		return p, false
	}
	for i := range p.Items {
		if p.Items[i].ID != id {
			continue
		}
		items := append([]Campaign(nil), p.Items...)
		p.Summary.Active += activeDelta(items[i].Status, status)
		items[i].Status = status
		p.Items = items
		return p, true
	}
	return p, false
}

func (p CampaignPage) StatusOf(kind EntityKind, id string) (Status, bool) {
	if kind != KindCampaign {
		return "", false
	}
	for _, c := range p.Items {
		if c.ID == id {
			return c.Status, true
		}
	}
	return "", false
}

// AdGroupPage is the ad group list for one filter set.
type AdGroupPage struct {
	Items []AdGroup `json:"items"`
	Total int       `json:"total"`
}

func (p AdGroupPage) WithStatus(kind EntityKind, id string, status Status) (ReadModel, bool) {
	if kind != KindAdGroup {
		return p, false
	}
	for i := range p.Items {
		if p.Items[i].ID == id {
			items := append([]AdGroup(nil), p.Items...)
			items[i].Status = status
			p.Items = items
			return p, true
		}
	}
	return p, false
}

func (p AdGroupPage) StatusOf(kind EntityKind, id string) (Status, bool) {
	if kind != KindAdGroup {
		return "", false
	}
	for _, g := range p.Items {
		if g.ID == id {
			return g.Status, true
		}
	}
	return "", false
}

// AdPage is the ad list for one filter set.
type AdPage struct {
	Items []Ad `json:"items"`
	Total int  `json:"total"`
}

func (p AdPage) WithStatus(kind EntityKind, id string, status Status) (ReadModel, bool) {
	if kind != KindAd {
		return p, false
	}
	for i := range p.Items {
		if p.Items[i].ID == id {
			items := append([]Ad(nil), p.Items...)
			items[i].Status = status
			p.Items = items
			return p, true
		}
	}
	return p, false
}

func (p AdPage) StatusOf(kind EntityKind, id string) (Status, bool) {
	if a, ok := p.find(id); ok && kind == KindAd {
		return a.Status, true
	}
	return "", false
}

// PixelOf returns the tracking pixel of an ad.
func (p AdPage) PixelOf(adID string) (string, bool) {
	a, ok := p.find(adID)
	return a.PixelID, ok
}

func (p AdPage) find(id string) (Ad, bool) {
	for _, a := range p.Items {
		if a.ID == id {
			return a, true
		}
	}
	return Ad{}, false
}

// WithPixel returns a copy with the ad's tracking pixel replaced. An empty
// pixelID detaches the pixel.
func (p AdPage) WithPixel(adID, pixelID string) (AdPage, bool) {
	for i := range p.Items {
		if p.Items[i].ID == adID {
			items := append([]Ad(nil), p.Items...)
			items[i].PixelID = pixelID
			p.Items = items
			return p, true
		}
	}
	return p, false
}

// PixelList holds the advertiser's pixels.
type PixelList struct {
	Items []Pixel `json:"items"`
}

func (l PixelList) WithStatus(EntityKind, string, Status) (ReadModel, bool) { return l, false }
func (l PixelList) StatusOf(EntityKind, string) (Status, bool)              { return "", false }

// IdentityList holds the identities ads can be published under.
type IdentityList struct {
	Items []Identity `json:"items"`
}

func (l IdentityList) WithStatus(EntityKind, string, Status) (ReadModel, bool) { return l, false }
func (l IdentityList) StatusOf(EntityKind, string) (Status, bool)              { return "", false }

// LeadPage holds collected leads for one date range.
type LeadPage struct {
	Items []Lead `json:"items"`
	Total int    `json:"total"`
}

func (p LeadPage) WithStatus(EntityKind, string, Status) (ReadModel, bool) { return p, false }
func (p LeadPage) StatusOf(EntityKind, string) (Status, bool)              { return "", false }

// Metrics are delivery counters for a period.
type Metrics struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
}

// AnalyticsRow is the per-campaign line of an analytics report.
type AnalyticsRow struct {
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Status       Status  `json:"status"`
	Metrics      Metrics `json:"metrics"`
}

// AnalyticsReport aggregates delivery for a date range.
type AnalyticsReport struct {
	Rows            []AnalyticsRow `json:"rows"`
	Totals          Metrics        `json:"totals"`
	ActiveCampaigns int            `json:"active_campaigns"`
}

// WithStatus updates the campaign row and the active campaign counter.
func (r AnalyticsReport) WithStatus(kind EntityKind, id string, status Status) (ReadModel, bool) {
	if kind != KindCampaign {
		return r, false
	}
	for i := range r.Rows {
		if r.Rows[i].CampaignID != id {
			continue
		}
		rows := append([]AnalyticsRow(nil), r.Rows...)
		r.ActiveCampaigns += activeDelta(rows[i].Status, status)
		rows[i].Status = status
		r.Rows = rows
		return r, true
	}
	return r, false
}

func (r AnalyticsReport) StatusOf(kind EntityKind, id string) (Status, bool) {
	if kind != KindCampaign {
		return "", false
	}
	for _, row := range r.Rows {
		if row.CampaignID == id {
			return row.Status, true
		}
	}
	return "", false
}
