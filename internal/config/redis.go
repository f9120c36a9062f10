package config

import (
	"os"
	"strconv"
	"time"
)

type RedisConfig struct {
	DB             int
	Url            string
	Password       string
	LeaderboardTTL time.Duration
}

func NewRedisConfig() *RedisConfig {
	db, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		db = 0
	}
	ttlSec, err := strconv.Atoi(os.Getenv("LEADERBOARD_CACHE_TTL_SEC"))
	if err != nil || ttlSec <= 0 {
		ttlSec = 60
	}
	return &RedisConfig{
		DB:             db,
		Url:            getEnv("REDIS_ADDR", "localhost:6379"),
		Password:       os.Getenv("REDIS_PASSWORD"),
		LeaderboardTTL: time.Duration(ttlSec) * time.Second,
	}
}
