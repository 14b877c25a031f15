package health

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// Handler answers liveness probes.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Check responds 200 with an empty body.
func (h *Handler) Check(c *ginext.Context) {
	c.Status(http.StatusOK)
}
