// Package template implements the webhook template manager: payload
// building from form state, named template persistence, and the one-shot
// handoff slot shared with the symbol search flow.
package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/newthinker/tradedeck/internal/core"
	"github.com/shopspring/decimal"
)

// BuildPayload transforms raw form values into the canonical webhook
// payload. Required fields are copied verbatim. Quantity must parse as an
// integer; anything else is a validation error, never a silent zero.
// Optional fields are included only when their source string is non-empty —
// an exact check, no trimming, so a value of " " is still "present".
func BuildPayload(form core.FormState) (core.WebhookPayload, error) {
	if !form.HasRequired() {
		return core.WebhookPayload{}, core.WrapError(core.ErrValidation,
			fmt.Errorf("missing required field"))
	}

	quantity, err := strconv.Atoi(form.Quantity)
	if err != nil {
		return core.WebhookPayload{}, core.WrapError(core.ErrValidation,
			fmt.Errorf("quantity %q is not an integer", form.Quantity))
	}

	key := form.WebhookKey
	if key == "" {
		key = core.DefaultWebhookKey
	}

	p := core.WebhookPayload{
		WebhookKey:  key,
		Action:      core.Action(form.Action),
		Symbol:      form.Symbol,
		SymbolToken: form.SymbolToken,
		Exchange:    form.Exchange,
		ProductType: core.ProductType(form.ProductType),
		OrderType:   core.OrderType(form.OrderType),
		Quantity:    quantity,
	}

	if form.Price != "" {
		p.Price = form.Price
	}
	if form.TakeProfit != "" {
		p.TakeProfit = form.TakeProfit
	}
	if form.StopLoss != "" {
		p.StopLoss = form.StopLoss
	}
	if form.TriggerPrice != "" {
		p.TriggerPrice = form.TriggerPrice
	}

	return p, nil
}

// DisplayText renders the payload as 2-space-indented JSON. Key order
// follows the payload struct, matching what the generator page shows.
// HTML escaping is off: symbols like M&M-EQ must render verbatim, not
// as escaped Unicode sequences.
func DisplayText(p core.WebhookPayload) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// ShowTriggerPrice reports whether the trigger-price section is visible
// for the given order type. Pure function, recomputed on every change.
func ShowTriggerPrice(orderType string) bool {
	return strings.Contains(orderType, "STOPLOSS")
}

// WebhookURL assembles the delivery target for the given origin.
// Delivery itself happens elsewhere; this only builds the address the
// user copies into their alerting tool.
func WebhookURL(origin string) string {
	return strings.TrimSuffix(origin, "/") + "/webhook"
}

// DecimalWarnings checks the optional price fields against a strict
// decimal parse and returns a human-readable warning per field that does
// not parse. The payload still builds — the upstream contract passes these
// strings through verbatim — but the generator UI shows the warnings.
func DecimalWarnings(form core.FormState) []string {
	var warnings []string
	fields := []struct {
		name  string
		value string
	}{
		{"price", form.Price},
		{"take_profit", form.TakeProfit},
		{"stop_loss", form.StopLoss},
		{"trigger_price", form.TriggerPrice},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if _, err := decimal.NewFromString(f.value); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s %q is not a valid decimal", f.name, f.value))
		}
	}
	return warnings
}
