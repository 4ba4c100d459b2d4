package domain

import "errors"

// Error categories. Every domain error unwraps to exactly one of them so
// adapters can map failures without knowing each sentinel.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("state conflict")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

var (
	ErrOrderNotFound         = newError(ErrNotFound, "order not found")
	ErrTypeNotFound          = newError(ErrNotFound, "promotion type not found")
	ErrOptionNotFound        = newError(ErrNotFound, "promotion option not found")
	ErrAdRequestNotFound     = newError(ErrNotFound, "campaign request not found")
	ErrConnectionNotFound    = newError(ErrNotFound, "ad platform connection not found")
	ErrTrackedNotFound       = newError(ErrNotFound, "tracked campaign not found")
	ErrEmailCampaignNotFound = newError(ErrNotFound, "campaign not found")

	ErrEmptyOrder          = newError(ErrValidation, "Order must have at least one item")
	ErrInvalidType         = newError(ErrValidation, "invalid promotion type")
	ErrOptionTypeMismatch  = newError(ErrValidation, "option does not belong to promotion type")
	ErrQuantityOutOfBounds = newError(ErrValidation, "quantity out of bounds")
	ErrDurationOutOfBounds = newError(ErrValidation, "duration out of bounds")
	ErrNoPricingTier       = newError(ErrValidation, "no pricing tier matches")
	ErrInvalidTier         = newError(ErrValidation, "invalid pricing tier")
	ErrOverlappingTiers    = newError(ErrValidation, "overlapping pricing tiers")
	ErrInvalidBudget       = newError(ErrValidation, "Budget must be greater than 0")
	ErrNoPlatforms         = newError(ErrValidation, "At least one platform must be selected")
	ErrUnsupportedPlatform = newError(ErrValidation, "unsupported platform")
	ErrInvalidAudience     = newError(ErrValidation, "invalid audience type")

	ErrOrderNotModifiable     = newError(ErrConflict, "Order cannot be modified")
	ErrOrderNotCancellable    = newError(ErrConflict, "Order cannot be cancelled")
	ErrOrderNotDraft          = newError(ErrConflict, "Only draft orders can be checked out")
	ErrOrderNotPendingPayment = newError(ErrConflict, "Order is not pending payment")
	ErrAdRequestNotModifiable = newError(ErrConflict, "Campaign request cannot be modified")
	ErrAdRequestTransition    = newError(ErrConflict, "campaign request status does not allow this action")
	ErrCampaignNotSendable    = newError(ErrConflict, "Campaign cannot be sent")
	ErrPlatformNotConfigured  = newError(ErrConflict, "ad platform API not configured")
	ErrEmailProviderMissing   = newError(ErrConflict, "email provider not configured")
)

// ErrUnknownCostModel marks a promotion type whose cost model the pricing
// engine cannot evaluate. It indicates bad catalog data, not bad input.
var ErrUnknownCostModel = errors.New("unknown cost model")
