// Package suggestion forwards suggestions sent by API users to the project mailbox.
package suggestion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/dto"
)

const subjectPrefix = "[Querido Diário] Sugestão de "

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Service struct {
	sender Sender
	cfg    Config
}

func NewService(sender Sender, cfg Config) (*Service, error) {
	if sender == nil {
		return nil, apperr.NewConfiguration("suggestion service requires a sender")
	}
	if cfg.SenderEmail == "" || cfg.RecipientEmail == "" {
		return nil, apperr.NewConfiguration("suggestion sender and recipient emails are required")
	}
	return &Service{sender: sender, cfg: cfg}, nil
}

func (s *Service) Send(ctx context.Context, req dto.SuggestionRequest) error {
	req.EmailAddress = strings.TrimSpace(req.EmailAddress)
	req.Name = strings.TrimSpace(req.Name)
	req.Content = strings.TrimSpace(req.Content)

	if err := validate(req); err != nil {
		return err
	}

	msg := Message{
		From:     Address{Email: s.cfg.SenderEmail, Name: s.cfg.SenderName},
		To:       []Address{{Email: s.cfg.RecipientEmail, Name: s.cfg.RecipientName}},
		ReplyTo:  &Address{Email: req.EmailAddress, Name: req.Name},
		Subject:  subjectPrefix + req.Name,
		TextPart: fmt.Sprintf("%s <%s> escreveu:\n\n%s", req.Name, req.EmailAddress, req.Content),
		CustomID: s.cfg.CustomID,
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return err
	}

	slog.Info("Suggestion sent", "from", req.EmailAddress)
	return nil
}

func validate(req dto.SuggestionRequest) error {
	switch {
	case req.EmailAddress == "":
		return apperr.NewValidation("email_address is required")
	case !strings.Contains(req.EmailAddress, "@"):
		return apperr.NewValidation("email_address is not valid")
	case req.Name == "":
		return apperr.NewValidation("name is required")
	case req.Content == "":
		return apperr.NewValidation("content is required")
	}
	return nil
}
