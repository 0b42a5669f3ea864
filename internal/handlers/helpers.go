package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

// parseIDParam reads a uuid path parameter, writing 400 invalid_id when
// it is malformed.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Business(c, httperr.ErrBusiness("invalid_id"))
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUID parses s; blank yields nil.
func optionalUUID(s string) (*uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_id")
	}
	return &id, nil
}

// bindingCode maps a ShouldBindJSON error to a business code. Failed
// tags are checked in order so the most specific code wins.
func bindingCode(err error, tagCodes map[string]string, fallback string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid_request"
	}
	for _, fe := range verrs {
		if code, ok := tagCodes[fe.Tag()]; ok {
			return code
		}
	}
	return fallback
}
