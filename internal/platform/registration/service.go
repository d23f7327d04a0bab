package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"registrar/internal/auth"
	"registrar/internal/database"
	"registrar/internal/mail"
	"registrar/internal/platform/user"
	"registrar/pkg/utils"
)

const defaultRole = "trial"

type Status int

const (
	StatusExisting Status = iota
	StatusCreated
)

// UserStore is the keyed record store the flow runs against.
// CreateIfAbsent must be atomic: one concurrent caller wins and the
// rest observe the winner's record.
type UserStore interface {
	GetUser(ctx context.Context, uid string) (*database.User, error)
	CreateIfAbsent(ctx context.Context, user *database.User) (*database.User, error)
}

type Outcome struct {
	Status Status
	User   *database.User
}

type Service struct {
	store  UserStore
	mailer mail.Mailer
	from   string
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

// WithWelcomeMail enables a best-effort welcome email on first-time
// creation. Send failures are logged and never affect the outcome.
func (s *Service) WithWelcomeMail(mailer mail.Mailer, from string) *Service {
	s.mailer = mailer
	s.from = from
	return s
}

// Register runs the onboarding pipeline for a verified identity token.
// Existing users short-circuit unchanged; reconciliation failures are
// returned as *NeedsMoreInfoError or ErrUnresolvable; any other error
// is a store failure.
func (s *Service) Register(ctx context.Context, token auth.IdentityToken, input ContactInput) (*Outcome, error) {
	existing, err := s.store.GetUser(ctx, token.Subject)
	if err == nil {
		return &Outcome{Status: StatusExisting, User: existing}, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	contact, err := Reconcile(token, input)
	if err != nil {
		return nil, err
	}

	record := &database.User{
		UID:             token.Subject,
		EmailEntered:    contact.EmailEntered,
		EmailNormalized: utils.NormalizeEmail(contact.EmailEntered),
		EmailValidated:  contact.EmailValidated,
		Phone:           contact.Phone,
		PhoneValidated:  contact.PhoneValidated,
		Role:            defaultRole,
	}

	created, err := s.store.CreateIfAbsent(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("user create: %w", err)
	}

	s.sendWelcomeMail(created)

	return &Outcome{Status: StatusCreated, User: created}, nil
}

func (s *Service) sendWelcomeMail(u *database.User) {
	if s.mailer == nil || u.EmailEntered == "" {
		return
	}

	go func() {
		err := s.mailer.SendMail(&mail.Email{
			Subject: "Welcome",
			Body:    "Your account has been created.",
			From:    s.from,
			To:      []string{u.EmailEntered},
		})
		if err != nil {
			log.Warnf("welcome mail to %s: %v", u.UID, err)
		}
	}()
}
