package wealthsimple

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Security returns details for a single security by id.
func (c *Client) Security(securityID string) (*Security, error) {
	data, err := c.do(http.MethodGet, "securities/"+securityID, nil, nil)
	if err != nil {
		return nil, err
	}

	var security Security
	if err := json.Unmarshal(data, &security); err != nil {
		return nil, fmt.Errorf("decoding security: %w", err)
	}

	return &security, nil
}

// SecuritiesByTicker searches securities by ticker symbol.
func (c *Client) SecuritiesByTicker(symbol string) ([]Security, error) {
	query := url.Values{}
	query.Set("query", symbol)

	data, err := c.do(http.MethodGet, "securities", query, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []Security `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding securities: %w", err)
	}

	return envelope.Results, nil
}
