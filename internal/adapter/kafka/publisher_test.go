package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-orders/internal/core/domain"
)

func TestMessage(t *testing.T) {
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	event := domain.OrderEvent{
		Type:        domain.OrderEventPaid,
		OrderID:     7,
		OrderNumber: "PRO-1A2B3C",
		OrganizerID: 42,
		Status:      domain.OrderStatusPaid,
		Total:       decimal.RequireFromString("416.5"),
		Currency:    "RON",
		OccurredAt:  at,
	}

	msg, err := message(event)
	require.NoError(t, err)
	assert.Equal(t, "PRO-1A2B3C", string(msg.Key))
	assert.Equal(t, at, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "order.paid", string(msg.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "order.paid", body["type"])
	assert.Equal(t, "416.5", body["total"])
	assert.Equal(t, float64(42), body["organizer_id"])
}
