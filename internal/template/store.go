// internal/template/store.go
package template

import (
	"context"
	"encoding/json"

	"github.com/newthinker/tradedeck/internal/core"
	"github.com/newthinker/tradedeck/internal/storage/kv"
	"go.uber.org/zap"
)

// Storage keys. The handoff slot deliberately reuses the singular key the
// symbol search flow has always written.
const (
	templatesKey = "webhook_templates"
	handoffKey   = "webhook_template"
)

// Confirmer approves destructive operations. The UI layer supplies one;
// tests supply a stub.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Store manages the ordered template list and the handoff slot on top of
// a durable key-value store. Templates have no stable IDs: positions are
// the only handle, and any index held across a mutation is stale — callers
// must re-fetch the list after Save or Delete.
type Store struct {
	kv     kv.Store
	logger *zap.Logger
}

// NewStore creates a template store over the given KV backend.
func NewStore(store kv.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: store, logger: logger}
}

// List returns all saved templates in insertion order. An absent or
// unparseable store key degrades to an empty list — corruption is treated
// as "no templates", never surfaced to the user.
func (s *Store) List(ctx context.Context) []core.Template {
	data, err := s.kv.Get(ctx, templatesKey)
	if err != nil {
		return []core.Template{}
	}

	var templates []core.Template
	if err := json.Unmarshal(data, &templates); err != nil {
		s.logger.Warn("template list unparseable, treating as empty", zap.Error(err))
		return []core.Template{}
	}
	return templates
}

// Save appends a template built from the current form values. An empty
// name aborts with no mutation. A persistence failure is surfaced as a
// recoverable error rather than dropped.
func (s *Store) Save(ctx context.Context, name string, form core.FormState) error {
	if name == "" {
		return core.ErrEmptyName
	}

	templates := append(s.List(ctx), templateFromForm(name, form))
	if err := s.persist(ctx, templates); err != nil {
		return err
	}

	s.logger.Info("template saved",
		zap.String("name", name),
		zap.Int("count", len(templates)),
	)
	return nil
}

// Load returns the template at index for the caller to push into the form.
func (s *Store) Load(ctx context.Context, index int) (core.Template, error) {
	templates := s.List(ctx)
	if index < 0 || index >= len(templates) {
		return core.Template{}, core.ErrTemplateNotFound
	}
	return templates[index], nil
}

// Delete removes the template at index after confirmation. A declined
// confirmation is a no-op and not an error; the caller re-renders the
// list either way.
func (s *Store) Delete(ctx context.Context, index int, confirm Confirmer) error {
	if confirm != nil && !confirm.Confirm("Are you sure you want to delete this template?") {
		return nil
	}

	templates := s.List(ctx)
	if index < 0 || index >= len(templates) {
		return core.ErrTemplateNotFound
	}

	templates = append(templates[:index], templates[index+1:]...)
	if err := s.persist(ctx, templates); err != nil {
		return err
	}

	s.logger.Info("template deleted",
		zap.Int("index", index),
		zap.Int("remaining", len(templates)),
	)
	return nil
}

// WriteHandoff stores a payload in the one-shot handoff slot, replacing
// any previous occupant.
func (s *Store) WriteHandoff(ctx context.Context, p core.WebhookPayload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return core.WrapError(core.ErrStorageWrite, err)
	}
	if err := s.kv.Set(ctx, handoffKey, data); err != nil {
		return core.WrapError(core.ErrStorageWrite, err)
	}
	return nil
}

// TakeHandoff returns the handoff payload if present and clears the slot
// unconditionally — at-most-once delivery. A crash between read and use
// loses the handoff; it is a best-effort convenience, not a transaction.
func (s *Store) TakeHandoff(ctx context.Context) (*core.WebhookPayload, bool) {
	data, err := s.kv.Get(ctx, handoffKey)
	if err != nil {
		return nil, false
	}

	if err := s.kv.Delete(ctx, handoffKey); err != nil {
		s.logger.Warn("clearing handoff slot failed", zap.Error(err))
	}

	var p core.WebhookPayload
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("handoff payload unparseable, discarding", zap.Error(err))
		return nil, false
	}
	return &p, true
}

func (s *Store) persist(ctx context.Context, templates []core.Template) error {
	data, err := json.Marshal(templates)
	if err != nil {
		return core.WrapError(core.ErrStorageWrite, err)
	}
	if err := s.kv.Set(ctx, templatesKey, data); err != nil {
		s.logger.Error("persisting template list failed", zap.Error(err))
		return core.WrapError(core.ErrStorageWrite, err)
	}
	return nil
}

// templateFromForm snapshots form values verbatim, empty fields included.
func templateFromForm(name string, form core.FormState) core.Template {
	return core.Template{
		Name:         name,
		Action:       form.Action,
		Symbol:       form.Symbol,
		SymbolToken:  form.SymbolToken,
		Exchange:     form.Exchange,
		ProductType:  form.ProductType,
		OrderType:    form.OrderType,
		Quantity:     form.Quantity,
		Price:        form.Price,
		TakeProfit:   form.TakeProfit,
		StopLoss:     form.StopLoss,
		TriggerPrice: form.TriggerPrice,
	}
}
