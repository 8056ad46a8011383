package server

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/pkg/config/env"
)

const defaultRequestTimeout = 30 * time.Second

type Config struct {
	Port           string
	UseHttp2       bool
	CorsOrigins    []string
	RequestTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	port := env.String("PORT", "8080")
	if err := validatePort(port); err != nil {
		return nil, apperr.NewConfigurationWrap(fmt.Sprintf("invalid port %q", port), err)
	}

	timeout, err := env.Duration("REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, apperr.NewConfigurationWrap("invalid request timeout", err)
	}
	if timeout <= 0 {
		return nil, apperr.NewConfiguration("request timeout must be positive")
	}

	origins := env.List("CORS_ORIGINS")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:           port,
		UseHttp2:       env.Bool("USE_HTTP2"),
		CorsOrigins:    origins,
		RequestTimeout: timeout,
	}, nil
}

func validatePort(port string) error {
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return fmt.Errorf("port %q is not in 1-65535", port)
	}
	if n == 0 {
		return errors.New("port 0 is reserved")
	}
	return nil
}
