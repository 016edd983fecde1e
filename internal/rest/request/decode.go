package request

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/forumapi/forum-api/domain"
)

// Decode binds the JSON body of c into v. Decoding failures are reported as
// validation errors of entity: an empty body is a missing property, a
// value of the wrong JSON type or malformed JSON is an invalid type.
func Decode(c *gin.Context, entity string, v any) error {
	err := c.ShouldBindJSON(v)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return &domain.ValidationError{Entity: entity, Kind: domain.ErrMissingProperty}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &domain.ValidationError{Entity: entity, Field: typeErr.Field, Kind: domain.ErrInvalidType}
	}

	return &domain.ValidationError{Entity: entity, Kind: domain.ErrInvalidType}
}
