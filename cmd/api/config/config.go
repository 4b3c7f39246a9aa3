package config

import "time"

type Config struct {
	ModelName            string
	PlannerSessionTTL    time.Duration
	ChatSessionTTL       time.Duration
	SessionCheckInterval time.Duration
}

func NewConfig() *Config {
	return &Config{
		ModelName:            "gemini-2.0-flash-001",
		PlannerSessionTTL:    30 * time.Minute,
		ChatSessionTTL:       30 * time.Minute,
		SessionCheckInterval: 1 * time.Minute,
	}
}
