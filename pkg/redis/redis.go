package redis

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	defaultHistorySize = 20
	defaultHistoryTTL  = 7 * 24 * time.Hour
)

// IChatHistory keeps the latest chat exchanges per user, newest first.
type IChatHistory interface {
	AppendExchange(ctx context.Context, userID string, exchange entity.ChatExchange) error
	RecentExchanges(ctx context.Context, userID string, limit int) ([]entity.ChatExchange, error)
	ClearHistory(ctx context.Context, userID string) error
}

type redisClient struct {
	client *redis.Client
	size   int64
	ttl    time.Duration
}

func New() IChatHistory {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return NewWithClient(client, historySizeFromEnv(), historyTTLFromEnv())
}

func NewWithClient(client *redis.Client, size int64, ttl time.Duration) IChatHistory {
	if size <= 0 {
		size = defaultHistorySize
	}
	if ttl <= 0 {
		ttl = defaultHistoryTTL
	}
	return &redisClient{client: client, size: size, ttl: ttl}
}

func historyKey(userID string) string {
	return "chat:history:" + userID
}

// AppendExchange pushes the exchange and trims the list to its bound in one
// MULTI block so readers never see an overlong list.
func (r *redisClient) AppendExchange(ctx context.Context, userID string, exchange entity.ChatExchange) error {
	payload, err := jsoniter.Marshal(exchange)
	if err != nil {
		return fmt.Errorf("encode chat exchange: %w", err)
	}

	key := historyKey(userID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, payload)
		pipe.LTrim(ctx, key, 0, r.size-1)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		logrus.Error(fmt.Sprintf("Error appending chat history for key %s: %v", key, err))
		return err
	}

	return nil
}

func (r *redisClient) RecentExchanges(ctx context.Context, userID string, limit int) ([]entity.ChatExchange, error) {
	if limit <= 0 || int64(limit) > r.size {
		limit = int(r.size)
	}

	key := historyKey(userID)
	values, err := r.client.LRange(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error reading chat history for key %s: %v", key, err))
		return nil, err
	}

	exchanges := make([]entity.ChatExchange, 0, len(values))
	for _, v := range values {
		var exchange entity.ChatExchange
		if err := jsoniter.UnmarshalFromString(v, &exchange); err != nil {
			logrus.Warn(fmt.Sprintf("Skipping malformed chat history entry in %s: %v", key, err))
			continue
		}
		exchanges = append(exchanges, exchange)
	}

	return exchanges, nil
}

func (r *redisClient) ClearHistory(ctx context.Context, userID string) error {
	return r.client.Del(ctx, historyKey(userID)).Err()
}

func historySizeFromEnv() int64 {
	size, err := strconv.ParseInt(os.Getenv("CHAT_HISTORY_SIZE"), 10, 64)
	if err != nil {
		return defaultHistorySize
	}
	return size
}

func historyTTLFromEnv() time.Duration {
	ttl, err := time.ParseDuration(os.Getenv("CHAT_HISTORY_TTL"))
	if err != nil {
		return defaultHistoryTTL
	}
	return ttl
}
