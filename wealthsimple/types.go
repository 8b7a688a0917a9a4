package wealthsimple

// The trade service returns more fields than the client reads. The
// structs here model the stable subset; everything else passes through
// the raw-object endpoints untouched.

// Time periods accepted by AccountHistory.
const (
	Period1D  = "1d"
	Period1W  = "1w"
	Period1M  = "1m"
	Period3M  = "3m"
	Period1Y  = "1y"
	PeriodAll = "all"
)

// Money is a monetary value with its currency as returned by the
// trade service.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Account is a brokerage account.
type Account struct {
	ID             string `json:"id"`
	AccountType    string `json:"account_type"`
	BaseCurrency   string `json:"base_currency"`
	CurrentBalance Money  `json:"current_balance"`
	NetDeposits    Money  `json:"net_deposits"`
	CreatedAt      string `json:"created_at"`
}

// HistoryEntry is one point of an account's value history.
type HistoryEntry struct {
	Date             string `json:"date"`
	Value            Money  `json:"value"`
	EquityValue      Money  `json:"equity_value"`
	NetDeposits      Money  `json:"net_deposits"`
	RelativeEarnings Money  `json:"relative_equity_earnings"`
}

// Order is a buy or sell order.
type Order struct {
	ID           string  `json:"order_id"`
	Symbol       string  `json:"symbol"`
	AccountID    string  `json:"account_id"`
	SecurityID   string  `json:"security_id"`
	OrderType    string  `json:"order_type"`
	OrderSubType string  `json:"order_sub_type"`
	Status       string  `json:"status"`
	TimeInForce  string  `json:"time_in_force"`
	Quantity     float64 `json:"quantity"`
	MarketValue  Money   `json:"market_value"`
	CreatedAt    string  `json:"created_at"`
}

// Stock identifies the listed instrument behind a security.
type Stock struct {
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	PrimaryExchange string `json:"primary_exchange"`
}

// Security is a tradeable security.
type Security struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Buyable  bool   `json:"buyable"`
	Stock    Stock  `json:"stock"`
}

// Position is a holding in an account.
type Position struct {
	ID        string  `json:"id"`
	AccountID string  `json:"account_id"`
	Quantity  float64 `json:"quantity"`
	Stock     Stock   `json:"stock"`
}

// Activity is one entry of the account activity feed.
type Activity struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	AccountID string `json:"account_id"`
	CreatedAt string `json:"created_at"`
}

// BankAccount is a linked external bank account.
type BankAccount struct {
	ID            string `json:"id"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	CreatedAt     string `json:"created_at"`
}

// Deposit is a funding transfer from a linked bank account.
type Deposit struct {
	ID            string  `json:"id"`
	BankAccountID string  `json:"bank_account_id"`
	AccountID     string  `json:"account_id"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	CreatedAt     string  `json:"created_at"`
}
