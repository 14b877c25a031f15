package subscription

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/newsletter/internal/domain"
	"github.com/aliskhannn/newsletter/internal/model"
)

var (
	ErrConnectionFailure = errors.New("storage unreachable")
	ErrWriteFailure      = errors.New("failed to write subscription")
)

const insertSubscriptionQuery = `
		INSERT INTO subscriptions (
		    id, email, name, subscribed_at
		) VALUES ($1, $2, $3, $4);
    `

// Repository provides methods to interact with subscriptions table.
//
// It only ever inserts: records are append-only and there is no uniqueness
// check on email, so subscribing twice yields two rows.
type Repository struct {
	db     *dbpg.DB
	log    zerolog.Logger
	now    func() time.Time
	nextID func() uuid.UUID
}

// NewRepository creates a new subscription repository.
func NewRepository(db *dbpg.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:     db,
		log:    log,
		now:    time.Now,
		nextID: uuid.New,
	}
}

// Insert stores subscriber as a new row with a fresh ID and the current UTC time.
//
// A single statement is issued, so either the row is committed or nothing is.
func (r *Repository) Insert(ctx context.Context, subscriber domain.NewSubscriber) (model.Subscription, error) {
	sub := model.Subscription{
		ID:           r.nextID(),
		Email:        subscriber.Email.String(),
		Name:         subscriber.Name.String(),
		SubscribedAt: r.now().UTC(),
	}

	_, err := r.db.ExecContext(ctx, insertSubscriptionQuery, sub.ID, sub.Email, sub.Name, sub.SubscribedAt)
	if err != nil {
		err = classify(err)
		r.log.Error().
			Err(err).
			Str("id", sub.ID.String()).
			Str("email", sub.Email).
			Msg("failed to insert subscription")

		return model.Subscription{}, err
	}

	return sub, nil
}

// classify maps a driver error onto ErrConnectionFailure or ErrWriteFailure.
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, pqErr.Code.Name(), err)
	}

	var netErr net.Error
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		return fmt.Errorf("%w: %w", ErrConnectionFailure, err)
	}

	return fmt.Errorf("%w: %w", ErrWriteFailure, err)
}
