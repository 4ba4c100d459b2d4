package db

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type seedTier struct {
	min   int
	max   int // 0 means unbounded
	price string
}

type seedOption struct {
	code     string
	name     string
	modifier string
	minDays  int
	maxDays  int
	metadata map[string]any
	tiers    []seedTier
}

type seedType struct {
	name        string
	description string
	category    string
	costModel   string
	icon        string
	options     []seedOption
}

var durationTiers = []seedTier{
	{min: 1, max: 6, price: "50.00"},
	{min: 7, max: 13, price: "45.00"},
	{min: 14, price: "40.00"},
}

var defaultCatalog = []seedType{
	{
		name:        "Featured Listing",
		description: "Pin an event to a prominent placement for a number of days.",
		category:    "visibility",
		costModel:   "fixed",
		icon:        "star",
		options: []seedOption{
			{code: "homepage", name: "Homepage hero", modifier: "1", minDays: 1, maxDays: 30, tiers: durationTiers},
			{code: "category", name: "Category page", modifier: "0.6", minDays: 1, maxDays: 30, tiers: durationTiers},
			{code: "city", name: "City page", modifier: "0.4", minDays: 1, maxDays: 30, tiers: durationTiers},
		},
	},
	{
		name:        "Email Marketing",
		description: "Send a campaign to platform users who opted in to marketing email.",
		category:    "marketing",
		costModel:   "per_unit",
		icon:        "mail",
		options: []seedOption{
			{code: "whole_database", name: "Whole database", modifier: "1", tiers: []seedTier{
				{min: 1, max: 5000, price: "0.08"},
				{min: 5001, max: 25000, price: "0.06"},
				{min: 25001, price: "0.04"},
			}},
			{code: "filtered_database", name: "Filtered audience", modifier: "1.25", tiers: []seedTier{
				{min: 1, max: 1000, price: "0.10"},
				{min: 1001, max: 10000, price: "0.08"},
				{min: 10001, price: "0.06"},
			}},
			{code: "past_clients", name: "Past clients", modifier: "1", tiers: []seedTier{
				{min: 1, max: 500, price: "0.05"},
				{min: 501, price: "0.04"},
			}},
		},
	},
	{
		name:        "Ad Campaign Creation",
		description: "Our team builds and runs paid campaigns on social and search platforms.",
		category:    "advertising",
		costModel:   "percentage",
		icon:        "megaphone",
		options: []seedOption{
			{code: "managed", name: "Managed campaign", modifier: "1", metadata: map[string]any{"fee_percent": 15},
				tiers: []seedTier{{min: 1, price: "299.00"}}},
			{code: "managed_premium", name: "Managed campaign with creatives", modifier: "1", metadata: map[string]any{"fee_percent": 10},
				tiers: []seedTier{{min: 1, price: "599.00"}}},
		},
	},
	{
		name:        "Ad Tracking",
		description: "Connect ad accounts and follow campaign results next to ticket sales.",
		category:    "analytics",
		costModel:   "subscription",
		icon:        "chart",
		options: []seedOption{
			{code: "monthly", name: "Monthly", modifier: "1", tiers: []seedTier{{min: 1, price: "49.00"}}},
		},
	},
}

// Seed inserts the default promotion catalog with prices in currency. It
// does nothing when any promotion type already exists.
func Seed(ctx context.Context, pool *pgxpool.Pool, currency string) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM promotion_types)`).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}

		for i, t := range defaultCatalog {
			var typeID int64
			err := tx.QueryRow(ctx, `
INSERT INTO promotion_types (slug, name, description, category, cost_model, icon, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`,
				slug.Make(t.name), t.name, t.description, t.category, t.costModel, t.icon, i,
			).Scan(&typeID)
			if err != nil {
				return fmt.Errorf("seed type %q: %w", t.name, err)
			}
			if err = seedOptions(ctx, tx, typeID, t.options, currency); err != nil {
				return fmt.Errorf("seed type %q: %w", t.name, err)
			}
		}
		return nil
	})
}

func seedOptions(ctx context.Context, tx pgx.Tx, typeID int64, options []seedOption, currency string) error {
	for i, o := range options {
		metadata := o.metadata
		if metadata == nil {
			metadata = map[string]any{}
		}
		var optionID int64
		err := tx.QueryRow(ctx, `
INSERT INTO promotion_options
    (promotion_type_id, code, name, cost_modifier, min_duration_days, max_duration_days, metadata, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`,
			typeID, o.code, o.name, decimal.RequireFromString(o.modifier),
			nullInt(o.minDays), nullInt(o.maxDays), metadata, i,
		).Scan(&optionID)
		if err != nil {
			return fmt.Errorf("option %q: %w", o.code, err)
		}

		batch := &pgx.Batch{}
		for _, tier := range o.tiers {
			batch.Queue(`
INSERT INTO promotion_pricing (option_id, min_quantity, max_quantity, unit_price, currency)
VALUES ($1, $2, $3, $4, $5)`,
				optionID, tier.min, nullInt(tier.max), decimal.RequireFromString(tier.price), currency)
		}
		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("option %q pricing: %w", o.code, err)
		}
	}
	return nil
}

func nullInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
