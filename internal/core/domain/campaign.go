package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdTrackingConnection is an organizer's OAuth link to an ad platform account.
type AdTrackingConnection struct {
	ID             int64          `json:"id"`
	OrganizerID    int64          `json:"organizer_id"`
	Platform       AdPlatform     `json:"platform"`
	AccountID      string         `json:"account_id"`
	AccountName    string         `json:"account_name"`
	AccessToken    string         `json:"-"`
	RefreshToken   string         `json:"-"`
	TokenExpiresAt *time.Time     `json:"token_expires_at,omitempty"`
	IsActive       bool           `json:"is_active"`
	ConnectedAt    time.Time      `json:"connected_at"`
	LastSyncedAt   *time.Time     `json:"last_synced_at,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// AdCampaignTracking is a campaign mirrored from an ad platform together with
// its latest metrics.
type AdCampaignTracking struct {
	ID                 int64               `json:"id"`
	OrderItemID        *int64              `json:"order_item_id,omitempty"`
	ConnectionID       int64               `json:"connection_id"`
	OrganizerID        int64               `json:"organizer_id"`
	Platform           AdPlatform          `json:"platform"`
	ExternalCampaignID string              `json:"external_campaign_id"`
	CampaignName       string              `json:"campaign_name"`
	CampaignStatus     string              `json:"campaign_status"`
	Objective          string              `json:"objective"`
	Budget             decimal.NullDecimal `json:"budget"`
	BudgetType         string              `json:"budget_type"`
	StartDate          *time.Time          `json:"start_date,omitempty"`
	EndDate            *time.Time          `json:"end_date,omitempty"`
	Impressions        int64               `json:"impressions"`
	Reach              int64               `json:"reach"`
	Clicks             int64               `json:"clicks"`
	Conversions        int64               `json:"conversions"`
	Spend              decimal.Decimal     `json:"spend"`
	CampaignMetrics
	LastSyncedAt *time.Time     `json:"last_synced_at,omitempty"`
	TrackingData map[string]any `json:"tracking_data,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// CampaignMetrics are ratios derived from raw counters. A metric is null when
// its denominator is zero.
type CampaignMetrics struct {
	CPC            decimal.NullDecimal `json:"cpc"`
	CPM            decimal.NullDecimal `json:"cpm"`
	CTR            decimal.NullDecimal `json:"ctr"`
	ConversionRate decimal.NullDecimal `json:"conversion_rate"`
	ROAS           decimal.NullDecimal `json:"roas"`
}

// DeriveMetrics computes cost per click, cost per mille, click-through rate,
// conversion rate and return on ad spend.
func DeriveMetrics(impressions, clicks, conversions int64, spend, revenue decimal.Decimal) CampaignMetrics {
	var m CampaignMetrics
	imp := decimal.NewFromInt(impressions)
	clk := decimal.NewFromInt(clicks)
	if clicks > 0 {
		m.CPC = nullDecimal(spend.Div(clk))
		m.ConversionRate = nullDecimal(decimal.NewFromInt(conversions).Div(clk).Mul(hundred))
	}
	if impressions > 0 {
		m.CPM = nullDecimal(spend.Div(imp).Mul(decimal.NewFromInt(1000)))
		m.CTR = nullDecimal(clk.Div(imp).Mul(hundred))
	}
	if spend.IsPositive() {
		m.ROAS = nullDecimal(revenue.Div(spend))
	}
	return m
}

func nullDecimal(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d.Round(4), Valid: true}
}

// PlatformAnalytics aggregates tracked campaigns of one platform.
type PlatformAnalytics struct {
	Platform    AdPlatform      `json:"platform"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Spend       decimal.Decimal `json:"spend"`
	CPC         decimal.Decimal `json:"cpc"`
	CTR         decimal.Decimal `json:"ctr"`
	ROAS        decimal.Decimal `json:"roas"`
}

// TrackingAnalytics aggregates tracked campaigns across platforms.
type TrackingAnalytics struct {
	Platforms        []PlatformAnalytics `json:"platforms"`
	TotalImpressions int64               `json:"total_impressions"`
	TotalClicks      int64               `json:"total_clicks"`
	TotalConversions int64               `json:"total_conversions"`
	TotalSpend       decimal.Decimal     `json:"total_spend"`
}

// NewTrackingAnalytics fills derived ratios per platform and the totals.
func NewTrackingAnalytics(rows []PlatformAnalytics) TrackingAnalytics {
	out := TrackingAnalytics{Platforms: make([]PlatformAnalytics, 0, len(rows)), TotalSpend: decimal.Zero}
	for _, p := range rows {
		p.CPC, p.CTR, p.ROAS = decimal.Zero, decimal.Zero, decimal.Zero
		if p.Clicks > 0 {
			p.CPC = RoundMoney(p.Spend.Div(decimal.NewFromInt(p.Clicks)))
		}
		if p.Impressions > 0 {
			p.CTR = RoundMoney(decimal.NewFromInt(p.Clicks).Div(decimal.NewFromInt(p.Impressions)).Mul(hundred))
		}
		out.Platforms = append(out.Platforms, p)
		out.TotalImpressions += p.Impressions
		out.TotalClicks += p.Clicks
		out.TotalConversions += p.Conversions
		out.TotalSpend = out.TotalSpend.Add(p.Spend)
	}
	out.TotalSpend = RoundMoney(out.TotalSpend)
	return out
}
