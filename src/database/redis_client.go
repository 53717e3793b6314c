package database

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs the draft store. Drafts never reach MongoDB except
// through an explicit submit.
var RedisClient *redis.Client
var RedisCtx = context.Background()

func InitRedis() {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_URI"), // e.g. localhost:6379
		Password: "",
		DB:       0,
	})
	_, err := RedisClient.Ping(RedisCtx).Result()
	if err != nil {
		panic("❌ Failed to connect Redis: " + err.Error())
	}
}
