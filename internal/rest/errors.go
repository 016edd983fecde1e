package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/forumapi/forum-api/domain"
	"github.com/forumapi/forum-api/internal/rest/middleware"
	"github.com/forumapi/forum-api/internal/rest/response"
)

// getStatusCode will get the code of the error returned by the usecases
func getStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case domain.IsValidationError(err), errors.Is(err, domain.ErrInvariant):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the fail envelope for err. Unexpected errors are
// logged and never shown to the client.
func respondError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("unexpected error")
		c.JSON(code, response.NewError())
		return
	}
	c.JSON(code, response.NewFail(err.Error()))
}

// userID returns the id set by the auth middleware.
func userID(c *gin.Context) (string, error) {
	id := c.GetString(middleware.UserIDKey)
	if id == "" {
		return "", domain.ErrUnauthorized
	}
	return id, nil
}
