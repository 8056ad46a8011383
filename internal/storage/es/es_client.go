package es

import (
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/elastic/go-elasticsearch/v8"
)

const defaultTimeout = 30 * time.Second

type Credentials struct {
	Username string
	Password string
}

type ClientConfig struct {
	Addresses   []string
	IndexName   string
	Credentials *Credentials
	Timeout     time.Duration
}

func (c ClientConfig) validate() error {
	if len(c.Addresses) == 0 {
		return apperr.NewConfiguration("elasticsearch host is required")
	}
	if c.IndexName == "" {
		return apperr.NewConfiguration("elasticsearch default index is required")
	}
	return nil
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	cfg := elasticsearch.Config{
		Addresses:    config.Addresses,
		DisableRetry: true,
	}

	if config.Credentials != nil {
		cfg.Username = config.Credentials.Username
		cfg.Password = config.Credentials.Password
	}

	client, err := elasticsearch.NewTypedClient(cfg)
	if err != nil {
		return nil, apperr.NewConfigurationWrap("invalid elasticsearch client configuration", err)
	}
	return client, nil
}
