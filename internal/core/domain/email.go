package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// AudienceType selects the population an email campaign is sent to.
type AudienceType string

const (
	AudienceWholeDatabase    AudienceType = "whole_database"
	AudienceFilteredDatabase AudienceType = "filtered_database"
	AudiencePastClients      AudienceType = "past_clients"
)

// Valid reports whether a is a known audience type.
func (a AudienceType) Valid() bool {
	_, ok := audiencePriceTiers[a]
	return ok
}

// AgeRange bounds recipient age in whole years, inclusive.
type AgeRange struct {
	Min int `json:"min" validate:"gte=0"`
	Max int `json:"max" validate:"gtefield=Min"`
}

// AudienceFilters narrow an audience. Empty fields do not filter.
type AudienceFilters struct {
	Cities              []string  `json:"cities,omitempty"`
	Countries           []string  `json:"countries,omitempty"`
	AgeRange            *AgeRange `json:"age_range,omitempty"`
	Gender              []string  `json:"gender,omitempty"`
	Interests           []string  `json:"interests,omitempty"`
	EventCategories     []string  `json:"event_categories,omitempty"`
	PurchasedInLastDays int       `json:"purchased_in_last_days,omitempty" validate:"gte=0"`
	EventIDs            []int64   `json:"event_ids,omitempty"`
}

type audienceTier struct {
	maxCount int64
	price    decimal.Decimal
}

// Per-recipient prices fall as the audience grows. The last tier of each
// type is unbounded.
var audiencePriceTiers = map[AudienceType][]audienceTier{
	AudienceWholeDatabase: {
		{5000, decimal.RequireFromString("0.08")},
		{25000, decimal.RequireFromString("0.06")},
		{100000, decimal.RequireFromString("0.04")},
		{math.MaxInt64, decimal.RequireFromString("0.03")},
	},
	AudienceFilteredDatabase: {
		{1000, decimal.RequireFromString("0.10")},
		{10000, decimal.RequireFromString("0.08")},
		{50000, decimal.RequireFromString("0.06")},
		{math.MaxInt64, decimal.RequireFromString("0.05")},
	},
	AudiencePastClients: {
		{500, decimal.RequireFromString("0.05")},
		{2000, decimal.RequireFromString("0.04")},
		{10000, decimal.RequireFromString("0.03")},
		{math.MaxInt64, decimal.RequireFromString("0.02")},
	},
}

// AudienceUnitPrice returns the per-recipient price for an audience of count.
func AudienceUnitPrice(a AudienceType, count int64) (decimal.Decimal, error) {
	tiers, ok := audiencePriceTiers[a]
	if !ok {
		return decimal.Zero, ErrInvalidAudience
	}
	for _, t := range tiers {
		if count <= t.maxCount {
			return t.price, nil
		}
	}
	return tiers[len(tiers)-1].price, nil
}

// AudienceCount is a sized and priced audience.
type AudienceCount struct {
	AudienceType  AudienceType     `json:"audience_type"`
	Count         int64            `json:"count"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	EstimatedCost decimal.Decimal  `json:"estimated_cost"`
	Filters       *AudienceFilters `json:"filters,omitempty"`
}

// EmailCampaignStatus is the send state of an email campaign.
type EmailCampaignStatus string

const (
	EmailCampaignDraft     EmailCampaignStatus = "draft"
	EmailCampaignScheduled EmailCampaignStatus = "scheduled"
	EmailCampaignSending   EmailCampaignStatus = "sending"
	EmailCampaignCompleted EmailCampaignStatus = "completed"
)

// EmailCampaign is a bulk email purchased through an order item.
type EmailCampaign struct {
	ID                int64               `json:"id"`
	OrderItemID       int64               `json:"order_item_id"`
	OrganizerID       int64               `json:"organizer_id"`
	EventID           *int64              `json:"event_id,omitempty"`
	AudienceType      AudienceType        `json:"audience_type"`
	AudienceFilters   AudienceFilters     `json:"audience_filters"`
	Subject           string              `json:"subject"`
	PreviewText       *string             `json:"preview_text,omitempty"`
	TemplateID        *int64              `json:"template_id,omitempty"`
	HTMLContent       string              `json:"html_content"`
	PlainTextContent  *string             `json:"plain_text_content,omitempty"`
	TotalRecipients   int64               `json:"total_recipients"`
	SentCount         int64               `json:"sent_count"`
	DeliveredCount    int64               `json:"delivered_count"`
	OpenedCount       int64               `json:"opened_count"`
	ClickedCount      int64               `json:"clicked_count"`
	BouncedCount      int64               `json:"bounced_count"`
	UnsubscribedCount int64               `json:"unsubscribed_count"`
	ScheduledAt       *time.Time          `json:"scheduled_at,omitempty"`
	StartedAt         *time.Time          `json:"started_at,omitempty"`
	CompletedAt       *time.Time          `json:"completed_at,omitempty"`
	Status            EmailCampaignStatus `json:"status"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// CanBeSent reports whether sending may start.
func (c *EmailCampaign) CanBeSent() bool {
	return c.Status == EmailCampaignDraft || c.Status == EmailCampaignScheduled
}

// EmailCampaignInput describes a campaign to create.
type EmailCampaignInput struct {
	AudienceType     AudienceType     `json:"audience_type" validate:"required"`
	AudienceFilters  *AudienceFilters `json:"audience_filters,omitempty"`
	Subject          string           `json:"subject" validate:"required,max=255"`
	PreviewText      *string          `json:"preview_text,omitempty"`
	HTMLContent      string           `json:"html_content" validate:"required"`
	PlainTextContent *string          `json:"plain_text_content,omitempty"`
	ScheduledAt      *time.Time       `json:"scheduled_at,omitempty"`
}

// EmailAnalytics are delivery rates of a sent campaign, in percent.
type EmailAnalytics struct {
	TotalSent    int64           `json:"total_sent"`
	Delivered    int64           `json:"delivered"`
	Opened       int64           `json:"opened"`
	Clicked      int64           `json:"clicked"`
	Bounced      int64           `json:"bounced"`
	Unsubscribed int64           `json:"unsubscribed"`
	OpenRate     decimal.Decimal `json:"open_rate"`
	ClickRate    decimal.Decimal `json:"click_rate"`
	BounceRate   decimal.Decimal `json:"bounce_rate"`
}

// Analytics derives delivery rates from the campaign counters.
func (c *EmailCampaign) Analytics() EmailAnalytics {
	rate := func(n, d int64) decimal.Decimal {
		if d == 0 {
			return decimal.Zero
		}
		return RoundMoney(decimal.NewFromInt(n).Div(decimal.NewFromInt(d)).Mul(hundred))
	}
	return EmailAnalytics{
		TotalSent:    c.SentCount,
		Delivered:    c.DeliveredCount,
		Opened:       c.OpenedCount,
		Clicked:      c.ClickedCount,
		Bounced:      c.BouncedCount,
		Unsubscribed: c.UnsubscribedCount,
		OpenRate:     rate(c.OpenedCount, c.SentCount),
		ClickRate:    rate(c.ClickedCount, c.OpenedCount),
		BounceRate:   rate(c.BouncedCount, c.SentCount),
	}
}

// SendResult is what an email provider reports for one batch.
type SendResult struct {
	Sent   int
	Failed int
}
