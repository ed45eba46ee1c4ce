// internal/template/form.go
package template

import (
	"context"
	"strconv"
	"sync"

	"github.com/newthinker/tradedeck/internal/core"
	"go.uber.org/zap"
)

// Form is the webhook generator view-model. It owns the current form
// state, the rendered payload text, and the trigger-price visibility flag,
// and binds the template store operations so the transport layer stays
// free of logic. The visibility flag is recomputed on every order-type
// change, never cached across edits.
type Form struct {
	store  *Store
	logger *zap.Logger

	mu          sync.Mutex
	state       core.FormState
	display     string
	showTrigger bool
}

// NewForm creates a form bound to the given template store.
func NewForm(store *Store, logger *zap.Logger) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Form{store: store, logger: logger}
}

// SetState replaces the whole form state, as a page-level form fill does.
func (f *Form) SetState(state core.FormState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = state
	f.showTrigger = ShowTriggerPrice(state.OrderType)
}

// State returns a copy of the current form values.
func (f *Form) State() core.FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetOrderType handles an order-type change event.
func (f *Form) SetOrderType(orderType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.OrderType = orderType
	f.showTrigger = ShowTriggerPrice(orderType)
}

// TriggerPriceVisible reports whether the trigger-price section is shown.
func (f *Form) TriggerPriceVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.showTrigger
}

// Build generates the payload from the current form values and renders
// the display text. Decimal oddities in optional fields are returned as
// warnings, not errors.
func (f *Form) Build() (core.WebhookPayload, []string, error) {
	f.mu.Lock()
	state := f.state
	f.mu.Unlock()

	payload, err := BuildPayload(state)
	if err != nil {
		return core.WebhookPayload{}, nil, err
	}

	warnings := DecimalWarnings(state)
	for _, w := range warnings {
		f.logger.Warn("payload field warning", zap.String("warning", w))
	}

	text := DisplayText(payload)
	f.mu.Lock()
	f.display = text
	f.mu.Unlock()

	return payload, warnings, nil
}

// DisplayText returns the most recently rendered payload text.
func (f *Form) DisplayText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.display
}

// SaveTemplate snapshots the current form under the given name.
func (f *Form) SaveTemplate(ctx context.Context, name string) error {
	return f.store.Save(ctx, name, f.State())
}

// DeleteTemplate removes the template at index, subject to confirmation.
func (f *Form) DeleteTemplate(ctx context.Context, index int, confirm Confirmer) error {
	return f.store.Delete(ctx, index, confirm)
}

// LoadTemplate pushes the template at index into the form, recomputes the
// trigger-price visibility, and regenerates the payload — the same
// sequence the generator page runs on a Load click.
func (f *Form) LoadTemplate(ctx context.Context, index int) error {
	tpl, err := f.store.Load(ctx, index)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.state.Action = tpl.Action
	f.state.Symbol = tpl.Symbol
	f.state.SymbolToken = tpl.SymbolToken
	f.state.Exchange = tpl.Exchange
	f.state.ProductType = tpl.ProductType
	f.state.OrderType = tpl.OrderType
	f.state.Quantity = tpl.Quantity
	f.state.Price = tpl.Price
	f.state.TakeProfit = tpl.TakeProfit
	f.state.StopLoss = tpl.StopLoss
	f.state.TriggerPrice = tpl.TriggerPrice
	f.showTrigger = ShowTriggerPrice(tpl.OrderType)
	f.mu.Unlock()

	if _, _, err := f.Build(); err != nil {
		// A saved template can hold an incomplete form; the load itself
		// succeeded, so keep the state and leave the display untouched.
		f.logger.Debug("loaded template does not build", zap.Error(err))
	}
	return nil
}

// ApplyHandoff consumes the handoff slot if occupied: prefill the form,
// build once, report whether anything was applied. Called once at startup,
// mirroring the generator page-load check.
func (f *Form) ApplyHandoff(ctx context.Context) bool {
	p, ok := f.store.TakeHandoff(ctx)
	if !ok {
		return false
	}

	f.mu.Lock()
	f.state.Action = string(p.Action)
	f.state.Symbol = p.Symbol
	f.state.SymbolToken = p.SymbolToken
	f.state.Exchange = p.Exchange
	f.state.ProductType = string(p.ProductType)
	f.state.OrderType = string(p.OrderType)
	f.state.Quantity = strconv.Itoa(p.Quantity)
	if p.Price != "" {
		f.state.Price = p.Price
	}
	f.showTrigger = ShowTriggerPrice(string(p.OrderType))
	f.mu.Unlock()

	if _, _, err := f.Build(); err != nil {
		f.logger.Warn("handoff payload does not build", zap.Error(err))
	}
	return true
}
