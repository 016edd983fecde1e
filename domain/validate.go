package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Entity names used in validation errors.
const (
	EntityRegisterThread         = "register thread"
	EntityRegisteredThread       = "registered thread"
	EntityReturnedThread         = "returned thread"
	EntityRegisterComment        = "register comment"
	EntityRegisteredComment      = "registered comment"
	EntityReturnedComment        = "returned comment"
	EntityRegisterReply          = "register reply"
	EntityRegisteredReply        = "registered reply"
	EntityReturnedReply          = "returned reply"
	EntityRegisterCommentReply   = "register comment reply"
	EntityRegisteredCommentReply = "registered comment reply"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names, so errors match what the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateEntity runs the struct tags of v and converts the first failure
// into a *ValidationError for entity.
func validateEntity(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	kind := ErrInvalidType
	if fe.Tag() == "required" {
		kind = ErrMissingProperty
	}
	return &ValidationError{Entity: entity, Field: fe.Field(), Kind: kind}
}
