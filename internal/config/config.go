package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Config struct {
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
	Port           uint16   `env:"PORT" envDefault:"9090"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	ParseServerURL      url.URL       `env:"PARSE_SERVER_URL" envDefault:"https://parseapi.back4app.com/"`
	ParseApplicationID  string        `env:"PARSE_APPLICATION_ID,required"`
	ParseRESTAPIKey     string        `env:"PARSE_REST_API_KEY,required"`
	ParseRequestTimeout time.Duration `env:"PARSE_REQUEST_TIMEOUT" envDefault:"10s"`
	// Class queried once at start-up to check the Parse keys. Empty disables the check.
	ParsePingClass string `env:"PARSE_PING_CLASS"`

	LogInRateLimitPerHour  uint16 `env:"LOG_IN_RATE_LIMIT_PER_HOUR" envDefault:"10"`
	SignUpRateLimitPerHour uint16 `env:"SIGN_UP_RATE_LIMIT_PER_HOUR" envDefault:"3"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.AllowedOrigins, validation.Required),
		validation.Field(&c.PostgresqlURL, validation.Required),
		validation.Field(&c.RedisURL, validation.Required),
		validation.Field(&c.ParseServerURL, validation.By(isAbsoluteURL)),
		validation.Field(&c.ParseApplicationID, validation.Required),
		validation.Field(&c.ParseRESTAPIKey, validation.Required),
		validation.Field(&c.ParseRequestTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.LogInRateLimitPerHour, validation.Required),
		validation.Field(&c.SignUpRateLimitPerHour, validation.Required),
	)
}

func (c Config) Address() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func isAbsoluteURL(value interface{}) error {
	u, _ := value.(url.URL)
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be an absolute URL")
	}
	return nil
}
