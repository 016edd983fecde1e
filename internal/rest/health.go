package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/forumapi/forum-api/internal/rest/response"
)

// HealthHandler reports whether the database answers
type HealthHandler struct {
	Ping func(ctx context.Context) error
}

func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{
		Ping: ping,
	}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	if err := h.Ping(c.Request.Context()); err != nil {
		logrus.WithError(err).Warn("health check failed")
		c.JSON(http.StatusServiceUnavailable, response.Fail{
			Status:  response.StatusError,
			Message: "database unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, response.NewSuccess(nil))
}
