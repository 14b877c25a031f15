package subscription

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/newsletter/internal/mocks/api/handlers/subscription"
	"github.com/aliskhannn/newsletter/internal/domain"
	"github.com/aliskhannn/newsletter/internal/model"
	subscriptionrepo "github.com/aliskhannn/newsletter/internal/repository/subscription"
	subscriptionsvc "github.com/aliskhannn/newsletter/internal/service/subscription"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocksubscriptionService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocksubscriptionService(ctrl)
	handler := NewHandler(mockService, validator.New(), zerolog.Nop())
	return handler, mockService
}

func postForm(body string) (*httptest.ResponseRecorder, *gin.Context) {
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return w, c
}

func TestHandler_Subscribe_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	id := uuid.New()
	mockService.EXPECT().
		Subscribe(gomock.Any(), "benjamin", "b3nj4m1n@gmx.net").
		Return(subscriptionsvc.Result{
			State:        subscriptionsvc.StateCompleted,
			Subscription: model.Subscription{ID: id, Name: "benjamin", Email: "b3nj4m1n@gmx.net"},
			Notified:     true,
		}, nil)

	w, c := postForm("name=benjamin&email=b3nj4m1n%40gmx.net")
	handler.Subscribe(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var body struct {
		Result SubscribeResponse `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id, body.Result.ID)
	assert.True(t, body.Result.Notified)
}

func TestHandler_Subscribe_NotificationFailedStillOK(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().
		Subscribe(gomock.Any(), "benjamin", "b3nj4m1n@gmx.net").
		Return(subscriptionsvc.Result{
			State:        subscriptionsvc.StateCompleted,
			Subscription: model.Subscription{ID: uuid.New()},
			NotifyErr:    fmt.Errorf("send confirmation: boom"),
		}, nil)

	w, c := postForm("name=benjamin&email=b3nj4m1n%40gmx.net")
	handler.Subscribe(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Subscribe_MissingFields(t *testing.T) {
	tests := []struct {
		body string
		desc string
	}{
		{"name=le%20guin", "missing the email"},
		{"email=ursula_le_guin%40gmail.com", "missing the name"},
		{"", "missing both name and email"},
		{"name=%zz&email=a%40b.co", "malformed encoding"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			// the service must not be called
			handler, _ := setupHandler(t)

			w, c := postForm(tt.body)
			handler.Subscribe(c)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Result().StatusCode,
				"the API did not fail with 422 when the payload was %s", tt.desc)
		})
	}
}

func TestHandler_Subscribe_InvalidFields(t *testing.T) {
	tests := []struct {
		body      string
		desc      string
		name      string
		email     string
		reasonErr error
		field     string
	}{
		{"name=&email=bla", "empty name", "", "bla", domain.ErrEmptyOrBlank, "name"},
		{"name=test&email=", "empty email", "test", "", domain.ErrInvalidEmail, "email"},
		{"name=someone&email=not-an-email", "invalid email", "someone", "not-an-email", domain.ErrInvalidEmail, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			handler, mockService := setupHandler(t)

			vErr := &domain.ValidationError{Field: tt.field, Err: tt.reasonErr}
			mockService.EXPECT().
				Subscribe(gomock.Any(), tt.name, tt.email).
				Return(subscriptionsvc.Result{State: subscriptionsvc.StateRejected},
					fmt.Errorf("%w: %w", subscriptionsvc.ErrInvalidInput, vErr))

			w, c := postForm(tt.body)
			handler.Subscribe(c)

			assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode,
				"the API did not fail with 400 when the payload was %s", tt.desc)
			assert.Contains(t, w.Body.String(), "invalid "+tt.field)
		})
	}
}

func TestHandler_Subscribe_StoreFailure(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().
		Subscribe(gomock.Any(), "benjamin", "b3nj4m1n@gmx.net").
		Return(subscriptionsvc.Result{State: subscriptionsvc.StateFailed},
			fmt.Errorf("store subscriber: %w: dial tcp: refused", subscriptionrepo.ErrConnectionFailure))

	w, c := postForm("name=benjamin&email=b3nj4m1n%40gmx.net")
	handler.Subscribe(c)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	assert.NotContains(t, w.Body.String(), "dial tcp", "internal details must not leak")
}
