package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aliskhannn/newsletter/internal/domain"
	"github.com/aliskhannn/newsletter/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/subscription/mock.go -package=mocks

// ErrInvalidInput wraps every validation failure returned by Subscribe.
var ErrInvalidInput = errors.New("invalid subscriber")

type subscriptionStore interface {
	Insert(context.Context, domain.NewSubscriber) (model.Subscription, error)
}

type confirmationSender interface {
	SendConfirmation(ctx context.Context, to domain.SubscriberEmail, subject, htmlBody, textBody string) error
}

type confirmationRenderer interface {
	Render(name, email string) (subject, htmlBody, textBody string, err error)
}

// State is a step of a single subscribe request.
type State int

const (
	StateReceived State = iota
	StateValidated
	StateStored
	StateNotified
	StateCompleted
	StateRejected
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReceived:
		return "received"
	case StateValidated:
		return "validated"
	case StateStored:
		return "stored"
	case StateNotified:
		return "notified"
	case StateCompleted:
		return "completed"
	case StateRejected:
		return "rejected"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result describes how a subscribe request ended.
type Result struct {
	State        State
	Subscription model.Subscription
	Notified     bool  // confirmation email accepted by the delivery service
	NotifyErr    error // set when the confirmation could not be sent
}

// Service validates, stores and confirms new subscribers.
type Service struct {
	store    subscriptionStore
	sender   confirmationSender
	renderer confirmationRenderer
	log      zerolog.Logger
}

// NewService creates a new subscription service.
func NewService(
	store subscriptionStore,
	sender confirmationSender,
	renderer confirmationRenderer,
	log zerolog.Logger,
) *Service {
	return &Service{store: store, sender: sender, renderer: renderer, log: log}
}

// Subscribe turns untrusted form values into a stored subscriber and then
// sends a confirmation email.
//
// Validation failures return an error wrapping ErrInvalidInput and touch
// nothing. Store failures are returned as is and no email is sent. Once the
// row is stored the call succeeds: a failed confirmation is logged and
// reported in Result, never rolled back.
func (s *Service) Subscribe(ctx context.Context, name, email string) (Result, error) {
	res := Result{State: StateReceived}

	subscriber, err := domain.NewSubscriberFromForm(name, email)
	if err != nil {
		s.transition(&res, StateRejected)
		return res, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	s.transition(&res, StateValidated)

	sub, err := s.store.Insert(ctx, subscriber)
	if err != nil {
		s.transition(&res, StateFailed)
		return res, fmt.Errorf("store subscriber: %w", err)
	}
	s.transition(&res, StateStored)
	res.Subscription = sub

	s.log.Info().
		Str("id", sub.ID.String()).
		Str("email", sub.Email).
		Msg("subscriber stored")

	if err := s.notify(ctx, subscriber); err != nil {
		res.NotifyErr = err
		s.log.Warn().
			Err(err).
			Str("id", sub.ID.String()).
			Str("email", sub.Email).
			Msg("failed to send confirmation email")
	} else {
		s.transition(&res, StateNotified)
		res.Notified = true
	}

	s.transition(&res, StateCompleted)

	return res, nil
}

func (s *Service) transition(res *Result, to State) {
	s.log.Debug().Stringer("from", res.State).Stringer("to", to).Msg("subscribe state changed")
	res.State = to
}

func (s *Service) notify(ctx context.Context, subscriber domain.NewSubscriber) error {
	subject, htmlBody, textBody, err := s.renderer.Render(subscriber.Name.String(), subscriber.Email.String())
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	if err := s.sender.SendConfirmation(ctx, subscriber.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send confirmation: %w", err)
	}

	return nil
}
