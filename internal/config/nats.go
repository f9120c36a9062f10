package config

import "os"

type NatsConfig struct {
	// Url is empty when event publishing is disabled
	Url     string
	Subject string
}

func NewNatsConfig() *NatsConfig {
	return &NatsConfig{
		Url:     os.Getenv("NATS_URL"),
		Subject: getEnv("NATS_SUBMISSION_SUBJECT", "submissions.judged"),
	}
}
