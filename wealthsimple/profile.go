package wealthsimple

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Me returns the raw user object for the authenticated user.
func (c *Client) Me() (map[string]any, error) {
	data, err := c.do(http.MethodGet, "me", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeObject(data, "user")
}

// Person returns the raw person object for the authenticated user.
func (c *Client) Person() (map[string]any, error) {
	data, err := c.do(http.MethodGet, "person", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeObject(data, "person")
}

// BankAccounts returns the linked external bank accounts.
func (c *Client) BankAccounts() ([]BankAccount, error) {
	data, err := c.do(http.MethodGet, "bank-accounts", nil, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []BankAccount `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding bank accounts: %w", err)
	}

	return envelope.Results, nil
}

// Deposits returns the funding transfers made into the brokerage.
func (c *Client) Deposits() ([]Deposit, error) {
	data, err := c.do(http.MethodGet, "deposits", nil, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []Deposit `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding deposits: %w", err)
	}

	return envelope.Results, nil
}

// Forex returns the raw currency exchange rates object.
func (c *Client) Forex() (map[string]any, error) {
	data, err := c.do(http.MethodGet, "forex", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeObject(data, "exchange rates")
}
