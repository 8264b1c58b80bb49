package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"huddle/config"
	"huddle/services/conversation"
	"huddle/services/tasks"

	"github.com/hibiken/asynq"
)

// InitDeadlineWorker runs the async worker handling deadline sweeps in the
// background.
func InitDeadlineWorker(convSvc conversation.ConversationService) {
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
	mux.HandleFunc(tasks.TypeDeadlineSweep, handleDeadlineSweep(convSvc))

	// Start async worker with retry logic.
	go func() {
		log.Println("[DeadlineWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DeadlineWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[DeadlineWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleDeadlineSweep(convSvc conversation.ConversationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.DeadlineSweepPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[DeadlineWorker] invalid payload: %v", err)
			return err
		}

		log.Printf("[DeadlineWorker] sweeping thread %s", p.ThreadID)
		if err := convSvc.SweepDeadline(ctx, p.ThreadID); err != nil {
			log.Printf("[DeadlineWorker] sweep failed for thread %s: %v", p.ThreadID, err)
			return err
		}
		return nil
	}
}
