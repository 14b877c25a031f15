package subscription

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/newsletter/internal/api/dto"
	"github.com/aliskhannn/newsletter/internal/api/respond"
	"github.com/aliskhannn/newsletter/internal/domain"
	subscriptionsvc "github.com/aliskhannn/newsletter/internal/service/subscription"
)

// subscriptionService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/subscription/mock.go -package=mocks
type subscriptionService interface {
	Subscribe(ctx context.Context, name, email string) (subscriptionsvc.Result, error)
}

// Handler handles HTTP requests related to subscriptions.
type Handler struct {
	service   subscriptionService
	validator *validator.Validate
	log       zerolog.Logger
}

// NewHandler creates a new Handler instance.
//
// Parameters:
//   - s: implementation of subscriptionService
//   - v: validator instance for request validation
//   - log: logger
func NewHandler(s subscriptionService, v *validator.Validate, log zerolog.Logger) *Handler {
	return &Handler{service: s, validator: v, log: log}
}

// SubscribeResponse is the body of a successful subscribe call.
type SubscribeResponse struct {
	ID       uuid.UUID `json:"id"`
	Notified bool      `json:"notified"` // whether the confirmation email went out
}

// Subscribe handles HTTP POST requests with a form-encoded name and email.
//
// It answers 422 when the form cannot be read or a field is missing,
// 400 when a field is present but invalid, 500 when storing fails and
// 200 once the subscriber is stored, whatever happened to the email.
func (h *Handler) Subscribe(c *ginext.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		h.log.Warn().Err(err).Msg("failed to parse subscription form")
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, fmt.Errorf("invalid form body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		h.log.Warn().Err(err).Msg("missing subscription fields")
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, fmt.Errorf("missing field: %w", err))
		return
	}

	name, email := *req.Name, *req.Email

	res, err := h.service.Subscribe(c.Request.Context(), name, email)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.Is(err, subscriptionsvc.ErrInvalidInput) && errors.As(err, &vErr) {
			h.log.Warn().Err(err).Msg("rejected subscription")
			respond.Fail(c.Writer, http.StatusBadRequest, vErr)
			return
		}

		h.log.Error().Err(err).Str("email", email).Msg("failed to subscribe")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, SubscribeResponse{ID: res.Subscription.ID, Notified: res.Notified})
}
