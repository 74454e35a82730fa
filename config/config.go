package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Environment   string `envconfig:"ENVIRONMENT" default:"development"`
	ServicePort   string `envconfig:"SERVICE_PORT" default:"3000"`
	MetricsPort   string `envconfig:"METRICS_PORT" default:"9090"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	MongoDBConfig MongoDBConfig
	RedisConfig   RedisConfig
	KafkaConfig   KafkaConfig
	JWTConfig     JWTConfig
	AuthConfig    AuthConfig
	TracingConfig TracingConfig
	RateLimit     RateLimitConfig
}

type MongoDBConfig struct {
	URI             string        `envconfig:"MONGODB_URI"`
	DBHost          string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort          string        `envconfig:"DB_PORT" default:"27017"`
	DBName          string        `envconfig:"DB_NAME" default:"koffe"`
	UseTransactions bool          `envconfig:"MONGO_TRANSACTIONS" default:"true"`
	ConnectTimeout  time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"REDIS_TTL" default:"5m"`
}

type KafkaConfig struct {
	BrokerAddress string `envconfig:"BROKER_ADDRESS"`
	BrokerTopic   string `envconfig:"BROKER_TOPIC" default:"koffe-events"`
}

type JWTConfig struct {
	JWTSecret string        `envconfig:"JWT_SECRET"`
	TokenTTL  time.Duration `envconfig:"JWT_TTL" default:"1h"`
}

type AuthConfig struct {
	Enforce    bool `envconfig:"AUTH_ENFORCE" default:"true"`
	BcryptCost int  `envconfig:"BCRYPT_COST" default:"10"`
}

type TracingConfig struct {
	CollectorHost string `envconfig:"COLLECTOR_HOST"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{}
	if err := envconfig.Process("", &conf); err != nil {
		log.Fatal().Err(err).Str("component", "CreateNewConfig").Msg("invalid environment configuration")
	}

	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Str("component", "CreateNewConfig").Msg("invalid environment configuration")
	}

	return &conf
}

// Validate rejects settings the service must not start with.
func (c *Config) Validate() error {
	if c.JWTConfig.JWTSecret == "" && c.AuthConfig.Enforce {
		return errors.New("JWT_SECRET must be set while AUTH_ENFORCE is on")
	}

	return nil
}

// MongoURI prefers MONGODB_URI and falls back to host and port.
func (c MongoDBConfig) MongoURI() string {
	if c.URI != "" {
		return c.URI
	}

	return "mongodb://" + c.DBHost + ":" + c.DBPort
}
