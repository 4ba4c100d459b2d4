package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRoundMoney(t *testing.T) {
	cases := map[string]string{
		"1.005":  "1.01",
		"2.675":  "2.68",
		"4.995":  "5",
		"4.994":  "4.99",
		"-1.005": "-1.01",
		"10":     "10",
	}
	for in, want := range cases {
		got := RoundMoney(money(in))
		assert.Truef(t, money(want).Equal(got), "%s: want %s, got %s", in, want, got)
	}
}

func TestRecompute(t *testing.T) {
	cases := []struct {
		name                     string
		subtotal, discount, rate string
		tax, total               string
	}{
		{name: "no discount", subtotal: "350", discount: "0", rate: "19", tax: "66.5", total: "416.5"},
		{name: "with discount", subtotal: "350", discount: "35", rate: "19", tax: "59.85", total: "374.85"},
		{name: "half cent tax", subtotal: "10.50", discount: "0", rate: "19", tax: "2", total: "12.5"},
		{name: "fully discounted", subtotal: "60", discount: "60", rate: "19", tax: "0", total: "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := CostBreakdown{Subtotal: money(tc.subtotal), DiscountAmount: money(tc.discount), TaxRate: money(tc.rate)}
			b.Recompute()
			assert.Truef(t, money(tc.tax).Equal(b.TaxAmount), "tax %s", b.TaxAmount)
			assert.Truef(t, money(tc.total).Equal(b.Total), "total %s", b.Total)
		})
	}
}

func TestDiscountAmountFor(t *testing.T) {
	cases := []struct {
		name     string
		code     DiscountCode
		subtotal string
		want     string
	}{
		{name: "percentage", code: DiscountCode{Kind: DiscountPercentage, Value: money("10")}, subtotal: "350", want: "35"},
		{name: "percentage rounds", code: DiscountCode{Kind: DiscountPercentage, Value: money("15")}, subtotal: "33.33", want: "5"},
		{name: "fixed", code: DiscountCode{Kind: DiscountFixed, Value: money("20")}, subtotal: "60", want: "20"},
		{name: "fixed capped at subtotal", code: DiscountCode{Kind: DiscountFixed, Value: money("100")}, subtotal: "60", want: "60"},
		{name: "unknown kind", code: DiscountCode{Kind: "bogus", Value: money("10")}, subtotal: "60", want: "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.code.AmountFor(money(tc.subtotal))
			assert.Truef(t, money(tc.want).Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}
