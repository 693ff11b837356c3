package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP            HTTP
	Logger          Logger
	Postgres        Postgres
	CustomerService CustomerService
	CardService     CardService
	Breaker         Breaker
	Kafka           Kafka
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type CustomerService struct {
	BaseURL  string        `env:"CUSTOMER_SERVICE_URL"`
	Timeout  time.Duration `env:"CUSTOMER_SERVICE_TIMEOUT" envDefault:"2s"`
	RetryMax int           `env:"CUSTOMER_SERVICE_RETRY_MAX" envDefault:"2"`
}

type CardService struct {
	BaseURL string        `env:"CARD_SERVICE_URL"`
	Timeout time.Duration `env:"CARD_SERVICE_TIMEOUT" envDefault:"2s"`
}

// Breaker settings apply to each downstream circuit breaker independently.
type Breaker struct {
	Interval     time.Duration `env:"BREAKER_INTERVAL" envDefault:"60s"`
	Cooldown     time.Duration `env:"BREAKER_COOLDOWN" envDefault:"30s"`
	MinRequests  uint32        `env:"BREAKER_MIN_REQUESTS" envDefault:"5"`
	FailureRatio float64       `env:"BREAKER_FAILURE_RATIO" envDefault:"0.5"`
}

type Kafka struct {
	Brokers           []string `env:"KAFKA_BROKERS"`
	CreditEventsTopic string   `env:"KAFKA_CREDIT_EVENTS_TOPIC"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
