package port

import (
	"context"

	"promo-orders/internal/core/domain"
)

// CatalogRepository reads promotion types, options and pricing tiers. Types
// and options are returned with their children loaded and ordered by sort
// order. Lookups return (nil, nil) when nothing matches.
type CatalogRepository interface {
	// ListActiveTypes returns every active type with its active options.
	ListActiveTypes(ctx context.Context) ([]domain.PromotionType, error)
	// GetType returns an active type by id.
	GetType(ctx context.Context, id int64) (*domain.PromotionType, error)
	// GetTypeBySlug returns an active type by slug.
	GetTypeBySlug(ctx context.Context, slug string) (*domain.PromotionType, error)
	// GetOption returns an active option by id with its pricing tiers.
	GetOption(ctx context.Context, id int64) (*domain.PromotionOption, error)
	// GetOptionByCode returns an active option of a type by code.
	GetOptionByCode(ctx context.Context, typeID int64, code string) (*domain.PromotionOption, error)
}

// DiscountRepository resolves discount codes.
type DiscountRepository interface {
	// FindDiscountCode returns the active discount with the given code, or
	// (nil, nil) when none exists.
	FindDiscountCode(ctx context.Context, code string) (*domain.DiscountCode, error)
}

// CatalogUseCase is the read model of purchasable promotions.
type CatalogUseCase interface {
	ListTypes(ctx context.Context) ([]domain.PromotionType, error)
	GetType(ctx context.Context, id int64) (*domain.PromotionType, error)
	GetTypeBySlug(ctx context.Context, slug string) (*domain.PromotionType, error)
	GetOption(ctx context.Context, id int64) (*domain.PromotionOption, error)
	GetOptionByCode(ctx context.Context, typeID int64, code string) (*domain.PromotionOption, error)
	// OptionBelongsToType reports whether optionID is an active option of typeID.
	OptionBelongsToType(ctx context.Context, optionID, typeID int64) (bool, error)
	// Search matches the query against type and option names and descriptions.
	Search(ctx context.Context, query string) ([]domain.PromotionType, error)
}

// PricingUseCase prices requested order lines.
type PricingUseCase interface {
	CalculateItemCost(ctx context.Context, item domain.OrderItemInput) (domain.ItemCost, error)
	CalculateOrderCost(ctx context.Context, items []domain.OrderItemInput) (domain.CostBreakdown, error)
	ApplyDiscountCode(ctx context.Context, b domain.CostBreakdown, code string) (domain.CostBreakdown, error)
}
