package contact

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"marqet.co/app/internal/config"
	"marqet.co/app/internal/http/validation"
	"marqet.co/app/internal/mailer"
	"marqet.co/app/internal/shared/apperr"
)

// Message is one contact-form submission. Minimum lengths follow the
// storefront's canonical rules: three characters for the free-text
// fields.
type Message struct {
	FullName string `form:"fullName" validate:"required,min=3"`
	Subject  string `form:"subject" validate:"required,min=3"`
	Email    string `form:"email" validate:"required,email"`
	Body     string `form:"message" validate:"required,min=3"`
}

var validate = validator.New()

// Service validates submissions and delivers them to the shop inbox
// through the mailer port.
type Service struct {
	mailer mailer.Service
	cfg    config.ContactConfig
	log    *slog.Logger
}

func NewService(m mailer.Service, cfg config.ContactConfig, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{mailer: m, cfg: cfg, log: log}
}

// Submit validates the message and mails it to the shop inbox. Returns
// the assigned message ID. Validation failures come back as an invalid
// apperr carrying per-field messages.
func (s *Service) Submit(ctx context.Context, msg Message) (string, error) {
	msg.FullName = strings.TrimSpace(msg.FullName)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Body = strings.TrimSpace(msg.Body)

	if err := validate.Struct(msg); err != nil {
		fields := validation.FromBindError(err, &msg)
		return "", apperr.InvalidErr("Please fix the errors in the form.", fields)
	}

	id := uuid.NewString()

	if s.mailer != nil {
		e := mailer.Email{
			FromName: s.cfg.FromName,
			From:     s.cfg.From,
			To:       []string{s.cfg.Inbox},
			Subject:  fmt.Sprintf("[contact] %s", msg.Subject),
			TextBody: fmt.Sprintf("Message %s\nFrom: %s <%s>\n\n%s\n", id, msg.FullName, msg.Email, msg.Body),
			HTMLBody: fmt.Sprintf("<p>Message %s</p><p>From: %s &lt;%s&gt;</p><p>%s</p>",
				id, html.EscapeString(msg.FullName), html.EscapeString(msg.Email), html.EscapeString(msg.Body)),
			Headers: map[string]string{"Reply-To": msg.Email},
		}
		if err := s.mailer.Send(ctx, e); err != nil {
			s.log.Error("contact_send_failed", "err", err, "message_id", id)
			return "", apperr.Wrap(err)
		}
	}

	s.log.Info("contact_submitted", "message_id", id, "subject", msg.Subject)
	return id, nil
}
