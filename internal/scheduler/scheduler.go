// Package scheduler drives the unattended control loop. Each tick fans
// out independent per-customer units of work (budget allocation, portfolio
// optimization) onto a bounded worker pool. Units share no in-process
// state, so no ordering between customers is needed or provided.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"adpilot/internal/core/port"
)

// Scheduler runs allocation and optimization for every customer on a
// fixed interval.
type Scheduler struct {
	campaigns   port.CampaignRepository
	allocator   port.Allocator
	optimizer   port.Optimizer
	interval    time.Duration
	concurrency int
	logger      *slog.Logger
}

// New wires a scheduler.
func New(
	campaigns port.CampaignRepository,
	allocator port.Allocator,
	optimizer port.Optimizer,
	interval time.Duration,
	concurrency int,
	logger *slog.Logger,
) *Scheduler {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Scheduler{
		campaigns:   campaigns,
		allocator:   allocator,
		optimizer:   optimizer,
		interval:    interval,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run ticks until ctx is cancelled. The first tick fires after one full
// interval so startup is quiet.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick dispatches one allocation and one optimization unit per customer.
// Unit failures are recorded per customer and never abort the batch; the
// group error is always nil by construction.
func (s *Scheduler) Tick(ctx context.Context) {
	customerIDs, err := s.campaigns.ListCustomerIDs(ctx)
	if err != nil {
		s.logger.Error("scheduler: list customers", slog.Any("error", err))
		return
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)
	for _, id := range customerIDs {
		eg.Go(func() error {
			allocated := s.allocator.Allocate(ctx, id)
			scanned := s.optimizer.Scan(ctx, id)
			s.logger.Info("scheduler: customer processed",
				slog.Int64("customer_id", id),
				slog.Bool("allocated", allocated),
				slog.Bool("scanned", scanned))
			return nil
		})
	}
	_ = eg.Wait()
	s.logger.Info("scheduler: tick complete", slog.Int("customers", len(customerIDs)))
}
