package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
)

// CatalogUseCase serves the promotion catalog. Every option it hands out has
// had its pricing tiers validated.
type CatalogUseCase struct {
	repo port.CatalogRepository
}

// NewCatalogUseCase creates a catalog over repo.
func NewCatalogUseCase(repo port.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListTypes(ctx context.Context) ([]domain.PromotionType, error) {
	types, err := u.repo.ListActiveTypes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range types {
		if err = validateType(&types[i]); err != nil {
			return nil, err
		}
	}
	return types, nil
}

func (u *CatalogUseCase) GetType(ctx context.Context, id int64) (*domain.PromotionType, error) {
	t, err := u.repo.GetType(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrTypeNotFound
	}
	if err = validateType(t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTypeBySlug accepts display names as well as slugs: "Homepage Featured"
// resolves the same type as "homepage-featured".
func (u *CatalogUseCase) GetTypeBySlug(ctx context.Context, s string) (*domain.PromotionType, error) {
	key := slug.Make(s)
	if key == "" {
		return nil, domain.ErrTypeNotFound
	}
	t, err := u.repo.GetTypeBySlug(ctx, key)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrTypeNotFound
	}
	if err = validateType(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (u *CatalogUseCase) GetOption(ctx context.Context, id int64) (*domain.PromotionOption, error) {
	o, err := u.repo.GetOption(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOptionNotFound
	}
	if err = validateOption(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (u *CatalogUseCase) GetOptionByCode(ctx context.Context, typeID int64, code string) (*domain.PromotionOption, error) {
	o, err := u.repo.GetOptionByCode(ctx, typeID, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOptionNotFound
	}
	if err = validateOption(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (u *CatalogUseCase) OptionBelongsToType(ctx context.Context, optionID, typeID int64) (bool, error) {
	o, err := u.repo.GetOption(ctx, optionID)
	if err != nil {
		return false, err
	}
	return o != nil && o.PromotionTypeID == typeID, nil
}

func (u *CatalogUseCase) Search(ctx context.Context, query string) ([]domain.PromotionType, error) {
	types, err := u.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PromotionType, 0, len(types))
	for _, t := range types {
		if t.Matches(query) {
			out = append(out, t)
		}
	}
	return out, nil
}

func validateType(t *domain.PromotionType) error {
	for i := range t.Options {
		if err := validateOption(&t.Options[i]); err != nil {
			return fmt.Errorf("promotion type %q: %w", t.Slug, err)
		}
	}
	return nil
}

func validateOption(o *domain.PromotionOption) error {
	if err := domain.ValidateTiers(o.Pricing); err != nil {
		return fmt.Errorf("option %q: %w", o.Code, err)
	}
	return nil
}
