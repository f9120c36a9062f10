package config

import "os"

type AppConfig struct {
	DebugMode      bool
	HTTPConfig     *HTTPConfig
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	JwtConfig      *JwtConfig
	GGAuthConfig   *GGAuthConfig
	SandboxConfig  *SandboxConfig
	JudgeConfig    *JudgeConfig
	NatsConfig     *NatsConfig
	AdminConfig    *AdminConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		HTTPConfig:     NewHTTPConfig(),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		JwtConfig:      NewJwtConfig(),
		GGAuthConfig:   NewGGAuthConfig(),
		SandboxConfig:  NewSandboxConfig(),
		JudgeConfig:    NewJudgeConfig(),
		NatsConfig:     NewNatsConfig(),
		AdminConfig:    NewAdminConfig(),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
