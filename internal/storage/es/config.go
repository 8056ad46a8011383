package es

import (
	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/pkg/config/env"
)

func LoadEnv() (ClientConfig, error) {
	timeout, err := env.Duration("QUERIDO_DIARIO_ELASTICSEARCH_TIMEOUT", defaultTimeout)
	if err != nil {
		return ClientConfig{}, apperr.NewConfigurationWrap("invalid elasticsearch timeout", err)
	}

	cfg := ClientConfig{
		Addresses: env.List("QUERIDO_DIARIO_ELASTICSEARCH_HOST"),
		IndexName: env.String("QUERIDO_DIARIO_ELASTICSEARCH_INDEX", "querido-diario"),
		Timeout:   timeout,
	}

	user := env.String("QUERIDO_DIARIO_ELASTICSEARCH_USER", "")
	password := env.String("QUERIDO_DIARIO_ELASTICSEARCH_PASSWORD", "")
	if user != "" || password != "" {
		cfg.Credentials = &Credentials{Username: user, Password: password}
	}

	if err := cfg.validate(); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}
