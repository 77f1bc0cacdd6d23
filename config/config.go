package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Store  StoreConfig  `mapstructure:"store"`
	Log    LogConfig    `mapstructure:"log"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowOrigins string `mapstructure:"allow_origins"`
}

type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	Collection     string        `mapstructure:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// StoreConfig selects the document store backing the API.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SeedConfig holds the defaults of the bulk seeding endpoint.
type SeedConfig struct {
	BulkCount     int `mapstructure:"bulk_count"`
	BulkBatchSize int `mapstructure:"bulk_batch_size"`
}

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// envBindings maps config keys to the variable names used in .env files.
var envBindings = map[string]string{
	"server.port":               "PORT",
	"server.cors.allow_origins": "CORS_ALLOW_ORIGINS",
	"mongo.uri":                 "MONGO_URI",
	"mongo.database":            "MONGO_DB",
	"mongo.collection":          "MONGO_COLLECTION",
	"mongo.connect_timeout":     "MONGO_CONNECT_TIMEOUT",
	"store.driver":              "STORE_DRIVER",
	"log.level":                 "LOG_LEVEL",
	"log.format":                "LOG_FORMAT",
	"seed.bulk_count":           "SEED_BULK_COUNT",
	"seed.bulk_batch_size":      "SEED_BULK_BATCH_SIZE",
}

// LoadConfig reads .env, an optional config file and the environment.
// Environment wins over the file, the file wins over defaults.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	v := viper.New()

	v.SetDefault("server.port", 3001)
	v.SetDefault("server.cors.allow_origins", "*")

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "next-target")
	v.SetDefault("mongo.collection", "manpowers")
	v.SetDefault("mongo.connect_timeout", "10s")

	v.SetDefault("store.driver", DriverMongo)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("seed.bulk_count", 5000)
	v.SetDefault("seed.bulk_batch_size", 1000)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.Store.Driver {
	case DriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" || c.Mongo.Collection == "" {
			return fmt.Errorf("invalid config: mongo.uri, mongo.database and mongo.collection are required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("invalid config: unknown store.driver %q", c.Store.Driver)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid config: unknown log.format %q", c.Log.Format)
	}
	if c.Seed.BulkCount <= 0 || c.Seed.BulkBatchSize <= 0 {
		return fmt.Errorf("invalid config: seed.bulk_count and seed.bulk_batch_size must be positive")
	}
	return nil
}

// Addr is the listen address for Fiber.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
