package core

// DefaultWebhookKey is substituted when the form leaves the key blank.
const DefaultWebhookKey = "your_webhook_secret_key"

// Action represents an order direction
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// ProductType represents the broker product type
type ProductType string

const (
	ProductIntraday     ProductType = "INTRADAY"
	ProductDelivery     ProductType = "DELIVERY"
	ProductCarryForward ProductType = "CARRYFORWARD"
	ProductMargin       ProductType = "MARGIN"
)

// OrderType represents the order execution type
type OrderType string

const (
	OrderMarket         OrderType = "MARKET"
	OrderLimit          OrderType = "LIMIT"
	OrderStoplossLimit  OrderType = "STOPLOSS_LIMIT"
	OrderStoplossMarket OrderType = "STOPLOSS_MARKET"
)

// WebhookPayload is the canonical order instruction assembled for the
// order-execution endpoint. Optional fields carry omitempty so an empty
// form input produces an absent key, not an empty string.
//
// Field order matters: DisplayText renders keys in struct order.
type WebhookPayload struct {
	WebhookKey   string      `json:"webhook_key"`
	Action       Action      `json:"action"`
	Symbol       string      `json:"symbol"`
	SymbolToken  string      `json:"symbol_token"`
	Exchange     string      `json:"exchange"`
	ProductType  ProductType `json:"product_type"`
	OrderType    OrderType   `json:"order_type"`
	Quantity     int         `json:"quantity"`
	Price        string      `json:"price,omitempty"`
	TakeProfit   string      `json:"takeProfit,omitempty"`
	StopLoss     string      `json:"stopLoss,omitempty"`
	TriggerPrice string      `json:"trigger_price,omitempty"`
}

// Template is a named snapshot of form values. All fields are persisted
// verbatim, empty or not, so loading restores the form exactly.
//
// Note the take_profit/stop_loss snake_case keys against the payload's
// takeProfit/stopLoss. The upstream schema carries this mismatch; it is
// kept as-is so previously saved templates stay readable.
type Template struct {
	Name         string `json:"name"`
	Action       string `json:"action"`
	Symbol       string `json:"symbol"`
	SymbolToken  string `json:"symbol_token"`
	Exchange     string `json:"exchange"`
	ProductType  string `json:"product_type"`
	OrderType    string `json:"order_type"`
	Quantity     string `json:"quantity"`
	Price        string `json:"price"`
	TakeProfit   string `json:"take_profit"`
	StopLoss     string `json:"stop_loss"`
	TriggerPrice string `json:"trigger_price"`
}

// FormState holds raw form input, all strings, exactly as entered.
type FormState struct {
	WebhookKey   string `json:"webhook_key"`
	Action       string `json:"action"`
	Symbol       string `json:"symbol"`
	SymbolToken  string `json:"symbol_token"`
	Exchange     string `json:"exchange"`
	ProductType  string `json:"product_type"`
	OrderType    string `json:"order_type"`
	Quantity     string `json:"quantity"`
	Price        string `json:"price"`
	TakeProfit   string `json:"take_profit"`
	StopLoss     string `json:"stop_loss"`
	TriggerPrice string `json:"trigger_price"`
}

// HasRequired checks that every required field is present
func (f FormState) HasRequired() bool {
	return f.Action != "" && f.Symbol != "" && f.SymbolToken != "" &&
		f.Exchange != "" && f.ProductType != "" && f.OrderType != "" &&
		f.Quantity != ""
}

// AccountSummary mirrors the collaborator /api/accounts/summary response.
type AccountSummary struct {
	TotalBalance   float64 `json:"total_balance"`
	TotalPositions int     `json:"total_positions"`
	TotalPnL       float64 `json:"total_pnl"`
}

// AccountStatus mirrors one entry of the /api/accounts/status response.
type AccountStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// IsActive reports whether the account counts toward the active tally.
func (a AccountStatus) IsActive() bool {
	return a.Status == "Active"
}

// SymbolResult mirrors one entry of the /search_symbols response.
type SymbolResult struct {
	TradingSymbol string `json:"tradingsymbol"`
	Name          string `json:"name"`
	Token         string `json:"token"`
	ExchSeg       string `json:"exch_seg"`
	Expiry        string `json:"expiry"`
}

// DisplaySymbol returns tradingsymbol, falling back to name.
func (s SymbolResult) DisplaySymbol() string {
	if s.TradingSymbol != "" {
		return s.TradingSymbol
	}
	return s.Name
}
