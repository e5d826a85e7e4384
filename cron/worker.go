package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"slotdesk/config"
	"slotdesk/models"
	"slotdesk/utils"

	"github.com/hibiken/asynq"
)

const TypeContextSweep = "chat:context:sweep"

// sweepInterval is how often expired conversation contexts are swept. The
// Redis TTL already covers the 24-hour rule; the sweep catches contexts whose
// remembered date slipped into the past before the TTL fired.
const sweepInterval = time.Hour

// InitContextSweeper runs the async sweep worker in background and enqueues
// a sweep task on a fixed interval.
func InitContextSweeper() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeContextSweep, handleContextSweep)

	go func() {
		client := asynq.NewClient(redisOpts)
		defer client.Close()

		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := client.Enqueue(asynq.NewTask(TypeContextSweep, nil)); err != nil {
				log.Printf("[ContextSweeper] failed to enqueue sweep: %v", err)
			}
		}
	}()

	go func() {
		log.Println("[ContextSweeper] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ContextSweeper] failed to start worker: %v", err)
		}
	}()
}

// handleContextSweep deletes every stored conversation context that reports
// itself expired.
func handleContextSweep(ctx context.Context, _ *asynq.Task) error {
	client := utils.GetChatCacheClient()
	now := time.Now()
	swept := 0

	iter := client.Scan(ctx, 0, utils.ChatContextPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		data, err := client.Get(ctx, key).Result()
		if err != nil {
			continue
		}
		var c models.ConversationContext
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			// Unreadable contexts are dropped rather than kept forever.
			_ = client.Del(ctx, key).Err()
			continue
		}
		if c.IsExpired(now) {
			if err := client.Del(ctx, key).Err(); err == nil {
				swept++
			}
		}
	}
	if swept > 0 {
		log.Printf("[ContextSweeper] removed %d expired conversation contexts", swept)
	}
	return iter.Err()
}
