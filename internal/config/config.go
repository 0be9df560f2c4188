package config

import (
	"fmt"
	"io"
	"time"

	"github.com/nikolayk812/rocketcart/internal/repository"
	"golang.org/x/text/currency"
)

type StorageDriver string

const (
	StoragePostgres StorageDriver = "postgres"
	StorageRedis    StorageDriver = "redis"
	StorageMongo    StorageDriver = "mongo"
)

type Config struct {
	LogLevel string
	// LogOutput defaults to os.Stdout.
	LogOutput io.Writer

	Catalog CatalogConfig
	Storage StorageConfig
}

type CatalogConfig struct {
	BaseURL string
	// Zero disables the per-request timeout.
	Timeout time.Duration
	// ISO 4217 code attached to catalog prices.
	Currency string
}

type StorageConfig struct {
	Driver StorageDriver
	Key    string

	PostgresDSN string
	// Migrate applies the embedded schema before use.
	Migrate bool

	RedisAddr     string
	RedisPassword string

	MongoURI      string
	MongoDatabase string
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Catalog: CatalogConfig{
			BaseURL:  "http://localhost:3333",
			Currency: "BRL",
		},
		Storage: StorageConfig{
			Driver:        StorageRedis,
			Key:           repository.DefaultKey,
			RedisAddr:     "localhost:6379",
			MongoDatabase: "rocketcart",
		},
	}
}

func (c Config) Validate() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog.BaseURL is empty")
	}

	if c.Catalog.Timeout < 0 {
		return fmt.Errorf("catalog.Timeout[%s] is negative", c.Catalog.Timeout)
	}

	if _, err := c.Catalog.ParseCurrency(); err != nil {
		return err
	}

	if c.Storage.Key == "" {
		return fmt.Errorf("storage.Key is empty")
	}

	switch c.Storage.Driver {
	case StoragePostgres:
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("storage.PostgresDSN is empty")
		}
	case StorageRedis:
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("storage.RedisAddr is empty")
		}
	case StorageMongo:
		if c.Storage.MongoURI == "" || c.Storage.MongoDatabase == "" {
			return fmt.Errorf("storage.MongoURI or storage.MongoDatabase is empty")
		}
	default:
		return fmt.Errorf("storage.Driver[%s] is not supported", c.Storage.Driver)
	}

	return nil
}

func (c CatalogConfig) ParseCurrency() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("catalog.Currency[%s] is not valid: %w", c.Currency, err)
	}

	return unit, nil
}
