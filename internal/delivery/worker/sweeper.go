package worker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"tiffin/config"
	"tiffin/internal/delivery"
	"tiffin/internal/domain/lifecycle"
	"tiffin/internal/usecase"

	"go.uber.org/fx"
)

// sweeper runs the periodic maintenance pass.
type sweeper struct {
	interval time.Duration
	logger   *slog.Logger
	sweepUC  usecase.SweepUsecase

	quit    context.Context
	quitFn  context.CancelFunc
	started atomic.Bool
	done    chan struct{}
}

// SweeperParams holds dependencies for the sweeper
type SweeperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	SweepUC usecase.SweepUsecase
}

func NewSweeper(params SweeperParams) (delivery.Delivery, error) {
	s := &sweeper{
		interval: params.Cfg.Worker.ExpirySweepInterval,
		logger:   params.Logger,
		sweepUC:  params.SweepUC,
		done:     make(chan struct{}),
	}
	s.quit, s.quitFn = context.WithCancel(context.Background())

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve sweeps once at start and then on every tick.
func (s *sweeper) Serve(ctx context.Context) error {
	s.started.Store(true)
	defer close(s.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer context.AfterFunc(s.quit, cancel)()

	s.logger.Info("Starting expiry sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.runOnce(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *sweeper) runOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	result, err := s.sweepUC.Sweep(ctx)
	if err != nil {
		s.logger.Error("[Worker] Sweep failed", slog.Any("error", err))

		return
	}

	if result.ExpiredSubscriptions > 0 || result.DeliveredAnnouncements > 0 || result.Conflicts > 0 {
		s.logger.Info("[Worker] Sweep completed",
			slog.Int("expired_subscriptions", result.ExpiredSubscriptions),
			slog.Int("conflicts", result.Conflicts),
			slog.Int("delivered_announcements", result.DeliveredAnnouncements),
		)
	}
}

func (s *sweeper) stop(ctx context.Context) error {
	s.quitFn()
	if !s.started.Load() {
		return nil
	}

	s.logger.Info("Stopping expiry sweeper")

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
