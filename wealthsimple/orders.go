package wealthsimple

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// Fixed order parameters for fractional share purchases.
const (
	fractionalOrderType    = "buy_value"
	fractionalOrderSubType = "fractional"
	fractionalTimeInForce  = "day"
)

// Orders returns the orders on the account. A non-empty symbol
// restricts the result to orders whose security symbol matches,
// preserving the order the trade service returned.
func (c *Client) Orders(symbol string) ([]Order, error) {
	data, err := c.do(http.MethodGet, "orders", nil, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []Order `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding orders: %w", err)
	}

	if symbol == "" {
		return envelope.Results, nil
	}

	filtered := make([]Order, 0, len(envelope.Results))
	for _, order := range envelope.Results {
		if order.Symbol == symbol {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

// PlaceFractionalOrder buys fractional shares of a security for the
// given amount in the user's local currency, returning the raw order
// receipt. Fractional orders are only available for select securities;
// the purchase value is passed through unvalidated.
func (c *Client) PlaceFractionalOrder(securityID, accountID string, purchaseValue decimal.Decimal) (map[string]any, error) {
	body := map[string]any{
		"security_id":    securityID,
		"order_type":     fractionalOrderType,
		"order_sub_type": fractionalOrderSubType,
		"market_value":   json.Number(purchaseValue.String()),
		"time_in_force":  fractionalTimeInForce,
		"account_id":     accountID,
	}

	data, err := c.do(http.MethodPost, "orders", nil, body)
	if err != nil {
		return nil, err
	}

	return decodeObject(data, "order receipt")
}

// CancelOrder cancels a pending order and returns the raw response.
func (c *Client) CancelOrder(orderID string) (map[string]any, error) {
	data, err := c.do(http.MethodDelete, "orders/"+orderID, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeObject(data, "cancel response")
}
