package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactServiceInterface interface {
	SubmitContact(ctx context.Context, msg domain.ContactMessage) error
	SubmitReservation(ctx context.Context, res domain.Reservation) error
}

// ContactService validates contact-form and reservation submissions and
// hands them to the notification topic for the external mailer.
type ContactService struct {
	notifier Notifier
}

func NewContactService(notifier Notifier) *ContactService {
	return &ContactService{notifier: notifier}
}

func (s *ContactService) SubmitContact(ctx context.Context, msg domain.ContactMessage) error {
	if msg.Name == "" || msg.Email == "" || msg.Phone == "" || msg.Subject == "" || msg.Message == "" {
		return fmt.Errorf("all fields are required: %w", domain.ErrInvalidInput)
	}
	if !emailPattern.MatchString(msg.Email) {
		return fmt.Errorf("invalid email format: %w", domain.ErrInvalidInput)
	}
	return s.notifier.PublishContactMessage(ctx, msg)
}

func (s *ContactService) SubmitReservation(ctx context.Context, res domain.Reservation) error {
	if res.Name == "" || res.Email == "" || res.Date == "" || res.Time == "" || res.Guests < 1 {
		return fmt.Errorf("name, email, date, time, and guests are required: %w", domain.ErrInvalidInput)
	}
	if !emailPattern.MatchString(res.Email) {
		return fmt.Errorf("invalid email format: %w", domain.ErrInvalidInput)
	}
	return s.notifier.PublishReservation(ctx, res)
}

var _ ContactServiceInterface = (*ContactService)(nil)
