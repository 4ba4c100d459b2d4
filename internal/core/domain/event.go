package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlatformToken is the result of exchanging an OAuth authorization code.
type PlatformToken struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// PlatformAccount identifies the ad account behind an access token.
type PlatformAccount struct {
	AccountID   string
	AccountName string
}

// PlatformCampaign is a campaign as reported by an ad platform API.
type PlatformCampaign struct {
	ID          string
	Name        string
	Status      string
	Objective   string
	Budget      *decimal.Decimal
	BudgetType  string
	StartDate   *time.Time
	EndDate     *time.Time
	Impressions int64
	Reach       int64
	Clicks      int64
	Conversions int64
	Spend       decimal.Decimal
	Revenue     decimal.Decimal
	Raw         map[string]any
}

// Tracking maps the platform view of a campaign onto a tracked campaign row
// owned by conn.
func (c PlatformCampaign) Tracking(conn AdTrackingConnection) AdCampaignTracking {
	budgetType := c.BudgetType
	if budgetType == "" {
		budgetType = "daily"
	}
	var budget decimal.NullDecimal
	if c.Budget != nil {
		budget = decimal.NewNullDecimal(*c.Budget)
	}
	raw := c.Raw
	if raw == nil {
		raw = map[string]any{}
	}
	return AdCampaignTracking{
		ConnectionID:       conn.ID,
		OrganizerID:        conn.OrganizerID,
		Platform:           conn.Platform,
		ExternalCampaignID: c.ID,
		CampaignName:       c.Name,
		CampaignStatus:     c.Status,
		Objective:          c.Objective,
		Budget:             budget,
		BudgetType:         budgetType,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		Impressions:        c.Impressions,
		Reach:              c.Reach,
		Clicks:             c.Clicks,
		Conversions:        c.Conversions,
		Spend:              c.Spend,
		CampaignMetrics:    DeriveMetrics(c.Impressions, c.Clicks, c.Conversions, c.Spend, c.Revenue),
		TrackingData:       raw,
	}
}
