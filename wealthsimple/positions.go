package wealthsimple

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Positions returns the positions held in an account.
func (c *Client) Positions(accountID string) ([]Position, error) {
	query := url.Values{}
	query.Set("account_id", accountID)

	data, err := c.do(http.MethodGet, "account/positions", query, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []Position `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding positions: %w", err)
	}

	return envelope.Results, nil
}
