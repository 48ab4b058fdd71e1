//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Manual smoke test for the stats worker: publishes one collection change
// event to annotations:events and exits. Run with the worker consuming and
// watch the cached statistics refresh.
//
//	go run scripts/test_publish.go -redis localhost:6379

type ChangeEvent struct {
	Collection string    `json:"collection"`
	Records    int       `json:"records"`
	Version    string    `json:"version"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	collection := flag.String("collection", "substations", "Collection name to report as changed")
	records := flag.Int("records", 1, "Record count to report")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := ChangeEvent{
		Collection: *collection,
		Records:    *records,
		Version:    "manual-test",
		Actor:      "test_publish",
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "annotations:events",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published to annotations:events\n")
	fmt.Printf("  Message ID: %s\n", result)
	fmt.Printf("  Collection: %s (%d records)\n", event.Collection, event.Records)
}
