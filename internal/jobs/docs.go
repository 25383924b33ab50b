// Package jobs provides scheduled background tasks for the delivery service.
//
// Jobs use github.com/robfig/cron/v3. OutboxRelayJob periodically publishes
// pending outbox messages and writes the notifications they produce;
// JobManager starts and stops the jobs together:
//
//	jobManager := jobs.NewJobManager(jobs.NewOutboxRelayJob(handler, cmd, "@every 2s", logger))
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A relay run that fails is logged and retried on the next tick; messages
// that failed to publish stay in the outbox until they reach the attempt
// limit.
package jobs
