package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Port     string `envconfig:"PORT" default:"8080"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	} `envconfig:"SERVER"`

	Cors struct {
		Origins string `envconfig:"CORS_ORIGINS"`
	}

	Mongo struct {
		URI      string `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017/hotel_management"`
		Database string `envconfig:"MONGODB_DATABASE" default:"hotel_management"`
	}

	Cache struct {
		RedisAddr     string `envconfig:"REDIS_ADDR"`
		RedisPassword string `envconfig:"REDIS_PASSWORD"`
		RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
		TTLSeconds    int    `envconfig:"CACHE_TTL_SECONDS" default:"60"`
	}

	// Legacy relational store, read by the migration command only.
	Legacy struct {
		Host string `envconfig:"DB_HOST" default:"127.0.0.1"`
		Port string `envconfig:"DB_PORT" default:"3306"`
		User string `envconfig:"DB_USER" default:"hoteluser"`
		Pass string `envconfig:"DB_PASS" default:"hotelpass"`
		Name string `envconfig:"DB_NAME" default:"hotel_management"`
	}
}

// LegacyDSN builds the MySQL DSN for the legacy store.
func (c *Config) LegacyDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Legacy.User, c.Legacy.Pass, c.Legacy.Host, c.Legacy.Port, c.Legacy.Name,
	)
}

var (
	conf Config
	once sync.Once
)

// Get loads the configuration from the environment exactly once. A missing
// .env file is not an error; deployments set real environment variables.
func Get() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Info().Msg(".env not found, reading configuration from environment")
		}
		if err := envconfig.Process("", &conf); err != nil {
			log.Fatal().Err(err).Msg("failed to process environment configuration")
		}
	})
	return &conf
}
