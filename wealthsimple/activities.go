package wealthsimple

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultActivityLimit is the number of activities returned when no
// limit is given.
const DefaultActivityLimit = 20

// Activity types accepted by Activities.
const (
	ActivityDividend              = "dividend"
	ActivityBuy                   = "buy"
	ActivitySell                  = "sell"
	ActivityDeposit               = "deposit"
	ActivityConvertFunds          = "convert_funds"
	ActivityWithdrawal            = "withdrawal"
	ActivityInstitutionalTransfer = "institutional_transfer"
	ActivityInternalTransfer      = "internal_transfer"
	ActivitySubscriptionPayment   = "subscription_payment"
	ActivityRefund                = "refund"
	ActivityReferralBonus         = "referral_bonus"
	ActivityAffiliate             = "affiliate"
	ActivityAssetMovement         = "asset_movement"
)

// ActivitiesOptions narrows an Activities call. The zero value returns
// the most recent DefaultActivityLimit activities across all accounts.
type ActivitiesOptions struct {
	// Type filters by activity type, one of the Activity constants.
	// Empty means all types.
	Type string
	// Limit caps the number of returned activities.
	// DefaultActivityLimit when zero.
	Limit int
	// AccountIDs restricts the feed to the given accounts. Empty means
	// all accounts.
	AccountIDs []string
}

// Activities returns recent account activity.
func (c *Client) Activities(opts ActivitiesOptions) ([]Activity, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	for _, id := range opts.AccountIDs {
		query.Add("account_id", id)
	}
	if opts.Type != "" {
		query.Set("type", opts.Type)
	}

	data, err := c.do(http.MethodGet, "account/activities", query, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []Activity `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding activities: %w", err)
	}

	return envelope.Results, nil
}
