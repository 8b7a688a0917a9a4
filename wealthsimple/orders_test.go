package wealthsimple

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersFixture = `{
	"results": [
		{"order_id": "order-1", "symbol": "AC", "status": "posted"},
		{"order_id": "order-2", "symbol": "SHOP", "status": "posted"},
		{"order_id": "order-3", "symbol": "AC", "status": "cancelled"},
		{"order_id": "order-4", "symbol": "BMO", "status": "filled"}
	]
}`

func TestClient_Orders_NoFilterReturnsAll(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		w.Write([]byte(ordersFixture))
	})

	orders, err := client.Orders("")
	require.NoError(t, err)
	require.Len(t, orders, 4)
	assert.Equal(t, "order-1", orders[0].ID)
	assert.Equal(t, "order-4", orders[3].ID)
}

func TestClient_Orders_FilterBySymbolPreservesOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ordersFixture))
	})

	orders, err := client.Orders("AC")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "order-1", orders[0].ID)
	assert.Equal(t, "order-3", orders[1].ID)
	for _, order := range orders {
		assert.Equal(t, "AC", order.Symbol)
	}
}

func TestClient_Orders_FilterWithNoMatches(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ordersFixture))
	})

	orders, err := client.Orders("TSLA")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestClient_PlaceFractionalOrder(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"order_id": "order-9", "status": "submitted"}`))
	})

	receipt, err := client.PlaceFractionalOrder("sec-123", "tfsa-abc123", decimal.NewFromFloat(25.5))
	require.NoError(t, err)

	assert.Equal(t, "sec-123", body["security_id"])
	assert.Equal(t, "tfsa-abc123", body["account_id"])
	assert.Equal(t, "buy_value", body["order_type"])
	assert.Equal(t, "fractional", body["order_sub_type"])
	assert.Equal(t, "day", body["time_in_force"])
	assert.Equal(t, 25.5, body["market_value"])

	assert.Equal(t, "order-9", receipt["order_id"])
	assert.Equal(t, "submitted", receipt["status"])
}

func TestClient_CancelOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/orders/order-3", r.URL.Path)
		w.Write([]byte(`{"order_id": "order-3", "status": "cancelled"}`))
	})

	resp, err := client.CancelOrder("order-3")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp["status"])
}

func TestClient_CancelOrder_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	resp, err := client.CancelOrder("order-3")
	require.NoError(t, err)
	assert.Nil(t, resp)
}
