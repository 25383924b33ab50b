package jobs

import (
	"context"
	"time"

	"messdelivery/internal/core/application/usecases/commands"
	"messdelivery/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultRelaySchedule runs the relay every two seconds.
const DefaultRelaySchedule = "@every 2s"

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayResult, error)
}

// OutboxRelayJob drains the outbox on a cron schedule. A run that overlaps
// the previous one is skipped.
type OutboxRelayJob struct {
	handler  outboxRelayer
	cmd      commands.RelayOutboxCommand
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewOutboxRelayJob(
	handler outboxRelayer,
	cmd commands.RelayOutboxCommand,
	schedule string,
	logger *zap.Logger,
) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}
	return &OutboxRelayJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With(zap.String("component", "outbox_relay_job")),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", zap.String("schedule", j.schedule))
	return nil
}

// RunOnce relays a single batch.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	result, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.Error("Outbox relay job failed", zap.Error(err))
		return
	}

	metrics.OutboxPublishedTotal.Add(float64(result.Processed))
	metrics.OutboxFailuresTotal.Add(float64(result.Failed))
	if result.Failed > 0 {
		j.logger.Warn("Outbox messages left for retry",
			zap.Int("processed", result.Processed),
			zap.Int("failed", result.Failed),
		)
	} else if result.Processed > 0 {
		j.logger.Debug("Outbox batch relayed", zap.Int("processed", result.Processed))
	}
}

// Stop waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
