package suggestion

import (
	"github.com/DjordjeVuckovic/gazette-hunter/pkg/config/env"
)

const defaultBaseURL = "https://api.mailjet.com"

type Config struct {
	BaseURL        string
	APIKey         string
	SecretKey      string
	SenderName     string
	SenderEmail    string
	RecipientName  string
	RecipientEmail string
	CustomID       string
}

func (c Config) Enabled() bool {
	return c.APIKey != "" && c.SecretKey != "" && c.SenderEmail != "" && c.RecipientEmail != ""
}

func LoadEnv() Config {
	return Config{
		BaseURL:        env.String("MAILJET_BASE_URL", defaultBaseURL),
		APIKey:         env.String("MAILJET_API_KEY", ""),
		SecretKey:      env.String("MAILJET_SECRET_KEY", ""),
		SenderName:     env.String("SUGGESTION_SENDER_NAME", "Querido Diário"),
		SenderEmail:    env.String("SUGGESTION_SENDER_EMAIL", ""),
		RecipientName:  env.String("SUGGESTION_RECIPIENT_NAME", "Querido Diário"),
		RecipientEmail: env.String("SUGGESTION_RECIPIENT_EMAIL", ""),
		CustomID:       env.String("SUGGESTION_MAILJET_CUSTOM_ID", ""),
	}
}
