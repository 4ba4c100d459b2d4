package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port/mocks"
)

func catalogTypes() []domain.PromotionType {
	featured, opt := homepageFeatured()
	featured.Description = "Top of the homepage"
	featured.Options = []domain.PromotionOption{opt}
	email := domain.PromotionType{
		ID:          2,
		Slug:        "email-marketing",
		Name:        "Email Marketing",
		Description: "Reach past clients",
		CostModel:   domain.CostModelPerUnit,
		Options: []domain.PromotionOption{
			{ID: 20, PromotionTypeID: 2, Code: "newsletter", Name: "Newsletter blast", Description: "Sent to the whole database"},
		},
	}
	return []domain.PromotionType{featured, email}
}

func TestGetTypeBySlugNormalises(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	typ, _ := homepageFeatured()
	repo.EXPECT().GetTypeBySlug(mock.Anything, "homepage-featured").Return(&typ, nil)

	got, err := NewCatalogUseCase(repo).GetTypeBySlug(context.Background(), "  Homepage Featured ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestGetTypeNotFound(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().GetType(mock.Anything, int64(9)).Return(nil, nil)

	_, err := NewCatalogUseCase(repo).GetType(context.Background(), 9)
	require.ErrorIs(t, err, domain.ErrTypeNotFound)
}

func TestGetOptionByCode(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	_, opt := homepageFeatured()
	repo.EXPECT().GetOptionByCode(mock.Anything, int64(1), "featured").Return(&opt, nil)
	repo.EXPECT().GetOptionByCode(mock.Anything, int64(1), "missing").Return(nil, nil)

	uc := NewCatalogUseCase(repo)
	got, err := uc.GetOptionByCode(context.Background(), 1, " featured")
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)

	_, err = uc.GetOptionByCode(context.Background(), 1, "missing")
	require.ErrorIs(t, err, domain.ErrOptionNotFound)
}

func TestOptionBelongsToType(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	_, opt := homepageFeatured()
	repo.EXPECT().GetOption(mock.Anything, int64(10)).Return(&opt, nil)
	repo.EXPECT().GetOption(mock.Anything, int64(99)).Return(nil, nil)

	uc := NewCatalogUseCase(repo)
	ok, err := uc.OptionBelongsToType(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.OptionBelongsToType(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.OptionBelongsToType(context.Background(), 99, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().ListActiveTypes(mock.Anything).Return(catalogTypes(), nil)
	uc := NewCatalogUseCase(repo)

	cases := map[string][]int64{
		"homepage":   {1},
		"NEWSLETTER": {2},
		"database":   {2},
		"":           {1, 2},
		"billboard":  {},
	}
	for query, want := range cases {
		got, err := uc.Search(context.Background(), query)
		require.NoError(t, err)
		ids := make([]int64, 0, len(got))
		for _, typ := range got {
			ids = append(ids, typ.ID)
		}
		assert.Equal(t, want, ids, query)
	}
}

func TestListTypesRejectsOverlappingTiers(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	types := catalogTypes()
	types[0].Options[0].Pricing = append(types[0].Options[0].Pricing,
		domain.PromotionPricing{ID: 101, MinQuantity: 30, MaxQuantity: intPtr(60), UnitPrice: dec("45")})
	repo.EXPECT().ListActiveTypes(mock.Anything).Return(types, nil)

	_, err := NewCatalogUseCase(repo).ListTypes(context.Background())
	require.ErrorIs(t, err, domain.ErrOverlappingTiers)
}
