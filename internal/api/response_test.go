package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yathish26/GrojetDPartner/internal/models"
)

func TestResponse_Success(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]any
		expected bool
	}{
		{"true flag", map[string]any{"success": true}, true},
		{"false flag", map[string]any{"success": false}, false},
		{"absent flag", map[string]any{"message": "hi"}, false},
		{"non-bool flag", map[string]any{"success": "yes"}, false},
		{"empty body", map[string]any{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := &Response{OK: true, Status: 200, Body: tc.body}
			assert.Equal(t, tc.expected, resp.Success())
		})
	}
}

func TestResponse_Message(t *testing.T) {
	resp := &Response{Body: map[string]any{"message": "All good"}}
	assert.Equal(t, "All good", resp.Message())

	resp = &Response{Body: map[string]any{"message": 42}}
	assert.Empty(t, resp.Message())

	resp = &Response{Body: map[string]any{}}
	assert.Empty(t, resp.Message())
}

func TestResponse_Decode(t *testing.T) {

	resp := &Response{
		OK:     true,
		Status: 200,
		Body: map[string]any{
			"success": true,
			"orders": []any{
				map[string]any{"_id": "o1", "customerName": "Jane", "status": "pending", "total": 240.5},
				map[string]any{"_id": "o2", "customerName": "Ravi", "status": "delivered"},
			},
		},
	}

	var orders []models.Order
	require.NoError(t, resp.Decode("orders", &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, "Jane", orders[0].Customer)
	assert.InDelta(t, 240.5, orders[0].Total, 0.001)
	assert.Equal(t, "delivered", orders[1].Status)
}

func TestResponse_DecodeWholeBody(t *testing.T) {

	resp := &Response{
		OK:     true,
		Status: 200,
		Body: map[string]any{
			"totalOrders": float64(12),
			"totalUsers":  float64(40),
		},
	}

	var stats models.DashboardStats
	require.NoError(t, resp.Decode("", &stats))
	assert.Equal(t, 12, stats.TotalOrders)
	assert.Equal(t, 40, stats.TotalUsers)
}

func TestResponse_DecodeMissingField(t *testing.T) {
	resp := &Response{Body: map[string]any{"success": true}}

	var orders []models.Order
	err := resp.Decode("orders", &orders)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orders")
}
