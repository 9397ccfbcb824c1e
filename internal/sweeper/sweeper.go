package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=sweeper.go -destination=mock_sweeper.go -package=sweeper

// Cleaner removes registrations that were never verified.
type Cleaner interface {
	CleanupUnverified(ctx context.Context) (int64, error)
}

// Service periodically runs the same sweep the cleanup endpoint triggers.
type Service struct {
	cleaner  Cleaner
	interval time.Duration
}

func New(cleaner Cleaner, interval time.Duration) *Service {
	return &Service{
		cleaner:  cleaner,
		interval: interval,
	}
}

// Enabled reports whether a sweep interval was configured.
func (s *Service) Enabled() bool {
	return s.interval > 0
}

// Start blocks until ctx is done. It returns at once when disabled.
func (s *Service) Start(ctx context.Context) {
	if !s.Enabled() {
		zap.L().Info("Cleanup sweeper disabled")
		return
	}
	zap.L().Info("Cleanup sweeper started", zap.Duration("interval", s.interval))
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	deleted, err := s.cleaner.CleanupUnverified(ctx)
	if err != nil {
		zap.L().Error("Failed to remove stale registrations", zap.Error(err))
		return
	}
	if deleted > 0 {
		zap.L().Debug("Sweep finished", zap.Int64("deleted", deleted))
	}
}
