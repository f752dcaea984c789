package config

import (
	"os"
	"strings"
	"time"
)

// Config captures process-level configuration so main stays lean.
type Config struct {
	Addr         string
	PostgresDSN  string
	Redis        RedisConfig
	KafkaBrokers []string
	TaskTopic    string
}

// RedisConfig tunes the realtime publisher connection.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables. Empty Postgres, Redis
// or Kafka settings leave the corresponding collaborator on its in-memory
// fallback, which keeps local development dependency-free.
func FromEnv() Config {
	addr := os.Getenv("WAREBELL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	taskTopic := os.Getenv("WAREBELL_TASK_TOPIC")
	if taskTopic == "" {
		taskTopic = "warebell.tasks"
	}

	var brokers []string
	if raw := os.Getenv("WAREBELL_KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return Config{
		Addr:         addr,
		PostgresDSN:  os.Getenv("WAREBELL_POSTGRES_DSN"),
		KafkaBrokers: brokers,
		TaskTopic:    taskTopic,
		Redis: RedisConfig{
			URL:          os.Getenv("WAREBELL_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}
}
