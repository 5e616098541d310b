package cron

import (
	"context"
	"log"
	"time"

	"deliveryhours/config"
	"deliveryhours/services/hours"

	"github.com/hibiken/asynq"
)

const TypeScheduleRefresh = "schedule:refresh"

// InitScheduleRefreshWorker runs the async worker and its periodic scheduler
// in the background. The worker re-warms the consolidated-schedule cache for
// all active venues on the configured cadence.
func InitScheduleRefreshWorker(hoursSvc hours.HoursService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeScheduleRefresh, handleScheduleRefreshTask(hoursSvc))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ScheduleRefreshWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ScheduleRefreshWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ScheduleRefreshWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	// Enqueue the refresh task on the configured cadence.
	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(config.AppConfig.ScheduleRefreshCron, asynq.NewTask(TypeScheduleRefresh, nil)); err != nil {
		log.Fatalf("[ScheduleRefreshWorker] failed to register periodic refresh: %v", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ScheduleRefreshWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleScheduleRefreshTask(hoursSvc hours.HoursService) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		refreshed, err := hoursSvc.RefreshSchedules(ctx)
		if err != nil {
			log.Printf("[ScheduleRefreshWorker] refresh sweep failed: %v", err)
			return err
		}
		log.Printf("[ScheduleRefreshWorker] refreshed %d venue schedules", refreshed)
		return nil
	}
}
