package httputil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ContextUser is the gin context key the auth middleware stores the
// authenticated user ID under.
const ContextUser = "neuralcash-user"

// UserID returns the authenticated user for the request. The auth
// middleware guarantees that it is set on all protected routes.
func UserID(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextUser).(uuid.UUID)
}

// BindData binds the JSON body of the request to the struct passed in.
// On failure, an error response has already been written.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		Error(c, ErrorStatus(ErrRequestBodyEmpty), ErrRequestBodyEmpty)
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		e := errors.New(validationErrorsToText(validationErrors))
		Error(c, ErrorStatus(ErrInvalidBody), e)
		return e
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	Error(c, ErrorStatus(ErrInvalidBody), ErrInvalidBody)
	return ErrInvalidBody
}

func validationErrorsToText(errs validator.ValidationErrors) string {
	texts := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			texts = append(texts, fmt.Sprintf("%s is required", e.Field()))
		case "max":
			texts = append(texts, fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param()))
		case "min":
			texts = append(texts, fmt.Sprintf("%s must be longer than %s", e.Field(), e.Param()))
		default:
			texts = append(texts, fmt.Sprintf("%s is not valid", e.Field()))
		}
	}

	return strings.Join(texts, "; ")
}
