// internal/dashboard/service.go
package dashboard

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service ties the client, cached state and pollers together.
type Service struct {
	client *Client
	state  *State
	logger *zap.Logger
}

// NewService creates a dashboard service.
func NewService(client *Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		state:  NewState(),
		logger: logger,
	}
}

// State exposes the cached snapshot holder.
func (s *Service) State() *State {
	return s.state
}

// RefreshDashboard fetches account status and summary concurrently and
// applies whatever succeeded. A panel that fails this tick keeps its
// previous figures; the error is logged, not propagated, so the next tick
// runs regardless.
func (s *Service) RefreshDashboard(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		statuses, err := s.client.FetchAccountStatus(ctx)
		if err != nil {
			s.logger.Warn("account status fetch failed", zap.Error(err))
			return nil
		}
		s.state.ApplyStatus(statuses)
		return nil
	})

	g.Go(func() error {
		summary, err := s.client.FetchAccountSummary(ctx)
		if err != nil {
			s.logger.Warn("account summary fetch failed", zap.Error(err))
			return nil
		}
		s.state.ApplySummary(*summary)
		return nil
	})

	g.Wait()
}

// RefreshNotifications fetches the pending notification count.
func (s *Service) RefreshNotifications(ctx context.Context) {
	count, err := s.client.FetchNotificationCount(ctx)
	if err != nil {
		s.logger.Warn("notification fetch failed", zap.Error(err))
		return
	}
	s.state.ApplyNotifications(count)
}
