// Package symbols implements the symbol search flow: query the broker's
// symbol master through the collaborator endpoint and turn a chosen result
// into a prefilled webhook payload for the generator.
package symbols

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/newthinker/tradedeck/internal/core"
)

// minQueryLength guards the collaborator from over-broad scans; enforced
// before any request goes out.
const minQueryLength = 3

// Client performs symbol searches against the account manager.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a symbol search client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type searchResponse struct {
	Status  string              `json:"status"`
	Symbols []core.SymbolResult `json:"symbols"`
	Message string              `json:"message"`
}

// Search queries symbols matching the query on the given exchange. Queries
// shorter than three characters are rejected locally.
func (c *Client) Search(ctx context.Context, exchange, query string) ([]core.SymbolResult, error) {
	if utf8.RuneCountInString(query) < minQueryLength {
		return nil, core.ErrQueryTooShort
	}

	form := url.Values{}
	form.Set("exchange", exchange)
	form.Set("symbol_query", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/search_symbols", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, core.WrapError(core.ErrRemoteFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, core.WrapError(core.ErrRemoteFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, core.WrapError(core.ErrRemoteFailed,
			fmt.Errorf("search_symbols: unexpected status %d", resp.StatusCode))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, core.WrapError(core.ErrRemoteFailed, err)
	}

	if result.Status != "success" {
		return nil, core.WrapError(core.ErrRemoteFailed, fmt.Errorf("%s", result.Message))
	}
	return result.Symbols, nil
}

// CopyToWebhook builds the default payload for a chosen search result:
// a single-quantity intraday market buy, the same starting point the
// search page has always written into the handoff slot.
func CopyToWebhook(result core.SymbolResult) core.WebhookPayload {
	return core.WebhookPayload{
		WebhookKey:  core.DefaultWebhookKey,
		Action:      core.ActionBuy,
		Symbol:      result.DisplaySymbol(),
		SymbolToken: result.Token,
		Exchange:    result.ExchSeg,
		ProductType: core.ProductIntraday,
		OrderType:   core.OrderMarket,
		Quantity:    1,
	}
}
