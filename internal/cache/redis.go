// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Rdb is the global Redis client. Connect it once at application startup;
// when nil, event publishing is disabled and the engine runs standalone.
var Rdb *redis.Client

// DefaultQueueName is the Redis list that game event records are pushed to
// for out-of-band consumers (stats, history, moderation).
var DefaultQueueName = "trivia_events"

// RoundEventRecord is queued whenever a round starts.
type RoundEventRecord struct {
	Type      string `json:"type"`
	LobbyID   string `json:"lobby_id"`
	Round     int    `json:"round"`
	PostID    string `json:"post_id"`
	SetIndex  int    `json:"set_index"`
	Timestamp int64  `json:"timestamp"`
}

// AnswerEventRecord is queued for every accepted answer submission.
type AnswerEventRecord struct {
	Type      string `json:"type"`
	LobbyID   string `json:"lobby_id"`
	PlayerID  string `json:"player_id"`
	Round     int    `json:"round"`
	Points    int    `json:"points"`
	IsCorrect bool   `json:"is_correct"`
	Timestamp int64  `json:"timestamp"`
}

// ConnectRedis initializes the global Redis client with environment variables:
//   - REDIS_ADDR (default "localhost:6379")
//   - REDIS_DB (optional, default 0)
func ConnectRedis() error {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	dbIdx := getEnvInt("REDIS_DB", 0)

	Rdb = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIdx,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return nil
}

// PublishRoundStarted queues a round_started record. Best-effort; callers
// log and move on when it fails.
func PublishRoundStarted(ctx context.Context, lobbyID string, round int, postID string, setIndex int) error {
	return push(ctx, RoundEventRecord{
		Type:      "round_started",
		LobbyID:   lobbyID,
		Round:     round,
		PostID:    postID,
		SetIndex:  setIndex,
		Timestamp: time.Now().Unix(),
	})
}

// PublishAnswer queues an answer_submitted record.
func PublishAnswer(ctx context.Context, lobbyID, playerID string, round, points int, isCorrect bool) error {
	return push(ctx, AnswerEventRecord{
		Type:      "answer_submitted",
		LobbyID:   lobbyID,
		PlayerID:  playerID,
		Round:     round,
		Points:    points,
		IsCorrect: isCorrect,
		Timestamp: time.Now().Unix(),
	})
}

func push(ctx context.Context, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal event record: %w", err)
	}

	queueName := getEnv("HISTORIAN_QUEUE_NAME", DefaultQueueName)
	if err := Rdb.RPush(ctx, queueName, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", queueName, err)
	}
	return nil
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
