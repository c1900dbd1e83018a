package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Development fallbacks for the token secrets. A missing secret is a
// misconfiguration that warns at startup, it never aborts the process.
const (
	DefaultAccessSecret  = "dev-access-secret"
	DefaultRefreshSecret = "dev-refresh-secret"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"taskgate"`

	Server struct {
		Port int    `env:"PORT" envDefault:"3000"`
		Mode string `env:"MODE" envDefault:"dev"`
	}

	DB struct {
		Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
		Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
		User     string `env:"POSTGRES_USER" envDefault:"postgres"`
		Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
		Database string `env:"POSTGRES_DB" envDefault:"taskgate"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
	}

	Auth struct {
		AccessSecret    string        `env:"ACCESS_TOKEN_SECRET" envDefault:"dev-access-secret"`
		RefreshSecret   string        `env:"REFRESH_TOKEN_SECRET" envDefault:"dev-refresh-secret"`
		AccessDuration  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
		RefreshDuration time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`
		BcryptCost      int           `env:"BCRYPT_COST" envDefault:"10"`
		Issuer          string        `env:"TOKEN_ISSUER" envDefault:"taskgate"`
	}

	Jaeger struct {
		Sampler struct {
			Type  string `env:"JAEGER_SAMPLER_TYPE" envDefault:"const"`
			Param int    `env:"JAEGER_SAMPLER_PARAM" envDefault:"1"`
		}
		Reporter struct {
			LogSpans           bool   `env:"JAEGER_REPORTER_LOG_SPANS" envDefault:"false"`
			LocalAgentHostPort string `env:"JAEGER_AGENT" envDefault:"localhost:6831"`
		}
	}
}

func MustLoad() Config {
	_ = godotenv.Load()

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to parse config: %v", err))
	}

	return conf
}

// WarnInsecureDefaults reports secrets left at their development values.
func (c Config) WarnInsecureDefaults() {
	if c.Auth.AccessSecret == DefaultAccessSecret {
		zap.L().Warn("ACCESS_TOKEN_SECRET is not set, using insecure development default")
	}

	if c.Auth.RefreshSecret == DefaultRefreshSecret {
		zap.L().Warn("REFRESH_TOKEN_SECRET is not set, using insecure development default")
	}
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Database,
	)
}
