package wealthsimple

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// recordNotFound is the error message the trade service returns for
// account-scoped queries against an unknown account.
const recordNotFound = "Record not found"

// Accounts returns the brokerage accounts associated with the login
// credentials.
func (c *Client) Accounts() ([]Account, error) {
	data, err := c.do(http.MethodGet, "account/list", nil, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []Account `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding accounts: %w", err)
	}

	return envelope.Results, nil
}

// AccountIDs returns the ids of all accounts, in the order the trade
// service lists them.
func (c *Client) AccountIDs() ([]string, error) {
	accounts, err := c.Accounts()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(accounts))
	for i, account := range accounts {
		ids[i] = account.ID
	}
	return ids, nil
}

// Account returns the account with the given id. Fails with
// ErrNotFound if no account matches.
func (c *Client) Account(accountID string) (*Account, error) {
	accounts, err := c.Accounts()
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].ID == accountID {
			return &accounts[i], nil
		}
	}

	return nil, fmt.Errorf("account %s: %w", accountID, ErrNotFound)
}

// AccountHistory returns the value history of an account over the
// given period (one of the Period constants). Fails with ErrNotFound
// if the service reports the account as unknown.
func (c *Client) AccountHistory(accountID, period string) ([]HistoryEntry, error) {
	query := url.Values{}
	query.Set("account_id", accountID)

	data, err := c.do(http.MethodGet, "account/history/"+period, query, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message() == recordNotFound {
			return nil, fmt.Errorf("account %s: %w", accountID, ErrNotFound)
		}
		return nil, err
	}

	var envelope struct {
		Results []HistoryEntry `json:"results"`
		Error   string         `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding account history: %w", err)
	}

	// The service has been seen reporting the missing record in a 2xx
	// body as well.
	if envelope.Error == recordNotFound {
		return nil, fmt.Errorf("account %s: %w", accountID, ErrNotFound)
	}

	return envelope.Results, nil
}
