package db

import (
	"testing"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-orders/internal/core/domain"
)

func TestDefaultCatalog(t *testing.T) {
	slugs := map[string]bool{}
	for _, st := range defaultCatalog {
		s := slug.Make(st.name)
		assert.False(t, slugs[s], "duplicate slug %s", s)
		slugs[s] = true

		model := domain.CostModel(st.costModel)
		require.Contains(t, []domain.CostModel{
			domain.CostModelFixed, domain.CostModelPerUnit, domain.CostModelSubscription, domain.CostModelPercentage,
		}, model, st.name)

		codes := map[string]bool{}
		for _, o := range st.options {
			assert.False(t, codes[o.code], "duplicate option %s/%s", s, o.code)
			codes[o.code] = true
			assert.True(t, decimal.RequireFromString(o.modifier).IsPositive())

			tiers := make([]domain.PromotionPricing, 0, len(o.tiers))
			for _, tr := range o.tiers {
				tiers = append(tiers, domain.PromotionPricing{
					MinQuantity: tr.min,
					MaxQuantity: nullInt(tr.max),
					UnitPrice:   decimal.RequireFromString(tr.price),
				})
			}
			require.NotEmpty(t, tiers, "%s/%s has no pricing", s, o.code)
			assert.NoError(t, domain.ValidateTiers(tiers), "%s/%s", s, o.code)
		}
	}
	assert.True(t, slugs["ad-campaign-creation"])
}
