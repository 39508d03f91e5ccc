// Package repository contains the repository layer for the Employee Directory API
package repository

import (
	"context"
	"time"

	"github.com/dealsdray/empdirapi/internal/config"
	"github.com/dealsdray/empdirapi/pkg/utils/zaplogger"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis connects to Redis and verifies the connection with a ping
func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Initializing Redis")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	// Check Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	zaplogger.Info("  * connected")

	return redisClient, nil
}
