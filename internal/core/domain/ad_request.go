package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdPlatform is an external advertising network.
type AdPlatform string

const (
	AdPlatformFacebook AdPlatform = "facebook"
	AdPlatformGoogle   AdPlatform = "google"
	AdPlatformTikTok   AdPlatform = "tiktok"
)

// Valid reports whether p is a supported platform.
func (p AdPlatform) Valid() bool {
	switch p {
	case AdPlatformFacebook, AdPlatformGoogle, AdPlatformTikTok:
		return true
	}
	return false
}

// AdRequestStatus is the review state of an ad campaign request.
type AdRequestStatus string

const (
	AdRequestPendingReview AdRequestStatus = "pending_review"
	AdRequestInProgress    AdRequestStatus = "in_progress"
	AdRequestNeedsInfo     AdRequestStatus = "needs_info"
	AdRequestApproved      AdRequestStatus = "approved"
	AdRequestRejected      AdRequestStatus = "rejected"
	AdRequestLive          AdRequestStatus = "live"
	AdRequestCompleted     AdRequestStatus = "completed"
)

// AdCampaignRequest asks the platform team to build and run ad campaigns on
// behalf of an organizer, paid for through an order item.
type AdCampaignRequest struct {
	ID                  int64             `json:"id"`
	OrderItemID         int64             `json:"order_item_id"`
	OrganizerID         int64             `json:"organizer_id"`
	EventID             *int64            `json:"event_id,omitempty"`
	Platforms           []AdPlatform      `json:"platforms"`
	CampaignName        *string           `json:"campaign_name,omitempty"`
	CampaignObjective   *string           `json:"campaign_objective,omitempty"`
	TargetAudience      TargetAudience    `json:"target_audience"`
	Budget              decimal.Decimal   `json:"budget"`
	BudgetType          string            `json:"budget_type"`
	DurationDays        *int              `json:"duration_days,omitempty"`
	StartDate           *time.Time        `json:"start_date,omitempty"`
	EndDate             *time.Time        `json:"end_date,omitempty"`
	CreativeAssets      []CreativeAsset   `json:"creative_assets"`
	AdCopy              *string           `json:"ad_copy,omitempty"`
	LandingURL          *string           `json:"landing_url,omitempty"`
	Notes               *string           `json:"notes,omitempty"`
	Status              AdRequestStatus   `json:"status"`
	AssignedTo          *int64            `json:"assigned_to,omitempty"`
	ReviewedAt          *time.Time        `json:"reviewed_at,omitempty"`
	ReviewedBy          *int64            `json:"reviewed_by,omitempty"`
	RejectionReason     *string           `json:"rejection_reason,omitempty"`
	ExternalCampaignIDs map[string]string `json:"external_campaign_ids,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// CanBeModified reports whether the organizer may still edit the request.
func (r *AdCampaignRequest) CanBeModified() bool {
	return r.Status == AdRequestPendingReview || r.Status == AdRequestNeedsInfo
}

// CanBeReviewed reports whether the team may approve, reject or query it.
func (r *AdCampaignRequest) CanBeReviewed() bool {
	switch r.Status {
	case AdRequestPendingReview, AdRequestInProgress, AdRequestNeedsInfo:
		return true
	}
	return false
}

// AdRequestInput carries organizer-provided fields of a request.
type AdRequestInput struct {
	Platforms         []AdPlatform    `json:"platforms"`
	CampaignName      *string         `json:"campaign_name,omitempty"`
	CampaignObjective *string         `json:"campaign_objective,omitempty"`
	TargetAudience    *TargetAudience `json:"target_audience,omitempty"`
	Budget            decimal.Decimal `json:"budget"`
	BudgetType        string          `json:"budget_type,omitempty" validate:"omitempty,oneof=total daily"`
	DurationDays      int             `json:"duration_days,omitempty" validate:"gte=0"`
	StartDate         *time.Time      `json:"start_date,omitempty"`
	EndDate           *time.Time      `json:"end_date,omitempty"`
	AdCopy            *string         `json:"ad_copy,omitempty"`
	LandingURL        *string         `json:"landing_url,omitempty" validate:"omitempty,url"`
	Notes             *string         `json:"notes,omitempty"`
}

// AdRequestPatch holds the fields an organizer changed. Nil means unchanged.
type AdRequestPatch struct {
	CampaignName      *string          `json:"campaign_name,omitempty"`
	CampaignObjective *string          `json:"campaign_objective,omitempty"`
	TargetAudience    *TargetAudience  `json:"target_audience,omitempty"`
	Budget            *decimal.Decimal `json:"budget,omitempty"`
	AdCopy            *string          `json:"ad_copy,omitempty"`
	LandingURL        *string          `json:"landing_url,omitempty" validate:"omitempty,url"`
	Notes             *string          `json:"notes,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p AdRequestPatch) Empty() bool {
	return p.CampaignName == nil && p.CampaignObjective == nil && p.TargetAudience == nil &&
		p.Budget == nil && p.AdCopy == nil && p.LandingURL == nil && p.Notes == nil
}

// AdRequestStatistics counts requests per review state.
type AdRequestStatistics struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	NeedsInfo  int64 `json:"needs_info"`
	Approved   int64 `json:"approved"`
	Live       int64 `json:"live"`
	Completed  int64 `json:"completed"`
	Rejected   int64 `json:"rejected"`
}
