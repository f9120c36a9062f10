package config

import (
	"os"
	"strconv"
)

type HTTPConfig struct {
	Port        int
	ServiceName string
}

func NewHTTPConfig() *HTTPConfig {
	port, err := strconv.Atoi(os.Getenv("HTTP_PORT"))
	if err != nil {
		port = 8082
	}
	return &HTTPConfig{
		Port:        port,
		ServiceName: getEnv("SERVICE_NAME", "codearena"),
	}
}
