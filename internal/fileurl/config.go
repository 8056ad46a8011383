package fileurl

import "github.com/DjordjeVuckovic/gazette-hunter/pkg/config/env"

type Config struct {
	Endpoint       string
	ReplaceEnabled bool
}

func LoadEnv() Config {
	return Config{
		Endpoint:       env.String("FILES_ENDPOINT", ""),
		ReplaceEnabled: env.Bool("REPLACE_FILE_URL_BASE"),
	}
}
