package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"orderhub/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	AMQPURL      string
	AMQPExchange string

	ChatRetention   time.Duration
	ChatMaxPerOrder int

	LogLevel    string
	LogFormat   string
	CORSOrigins []string
}

// LoadConfig reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_TTL", "720h")
	v.SetDefault("AMQP_EXCHANGE", "orderhub.events")
	v.SetDefault("CHAT_RETENTION", "24h")
	v.SetDefault("CHAT_MAX_PER_ORDER", 200)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ORIGINS", "")

	cfg := Config{
		HTTPPort:        v.GetString("HTTP_PORT"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBUser:          v.GetString("DB_USER"),
		DBPassword:      v.GetString("DB_PASSWORD"),
		DBName:          v.GetString("DB_NAME"),
		DBSslMode:       v.GetString("DB_SSLMODE"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTTTL:          v.GetDuration("JWT_TTL"),
		AMQPURL:         v.GetString("AMQP_URL"),
		AMQPExchange:    v.GetString("AMQP_EXCHANGE"),
		ChatRetention:   v.GetDuration("CHAT_RETENTION"),
		ChatMaxPerOrder: v.GetInt("CHAT_MAX_PER_ORDER"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		CORSOrigins:     splitList(v.GetString("CORS_ORIGINS")),
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var problems []error
	if c.HTTPPort == "" {
		problems = append(problems, errors.New("HTTP_PORT is required"))
	}
	if c.JWTSecret == "" {
		problems = append(problems, errors.New("JWT_SECRET is required"))
	}
	if c.ChatRetention <= 0 {
		problems = append(problems, errors.New("CHAT_RETENTION must be positive"))
	}
	if c.ChatMaxPerOrder <= 0 {
		problems = append(problems, errors.New("CHAT_MAX_PER_ORDER must be positive"))
	}
	return errors.Join(problems...)
}

// DatabaseEnabled reports whether orders and users are kept in postgres.
func (c Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

func (c Config) BrokerEnabled() bool {
	return c.AMQPURL != ""
}

func (c Config) Database() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
