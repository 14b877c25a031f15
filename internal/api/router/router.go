package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/newsletter/internal/api/handlers/health"
	"github.com/aliskhannn/newsletter/internal/api/handlers/subscription"
)

func New(subscriptions *subscription.Handler, healthHandler *health.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/health_check", healthHandler.Check)
	e.POST("/subscriptions", subscriptions.Subscribe)

	return e
}
