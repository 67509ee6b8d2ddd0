package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
)

type DuplicatePolicy string

const (
	// DuplicateOK answers 200 with a DuplicateNotice body.
	DuplicateOK       DuplicatePolicy = "ok"
	DuplicateConflict DuplicatePolicy = "conflict"
)

func ParseDuplicatePolicy(raw string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(strings.ToLower(strings.TrimSpace(raw))); p {
	case "", DuplicateOK:
		return DuplicateOK, nil
	case DuplicateConflict:
		return DuplicateConflict, nil
	default:
		return "", fmt.Errorf("unknown duplicate status %q (want %q or %q)", raw, DuplicateOK, DuplicateConflict)
	}
}

const internalMessage = "internal server error"

// Mapper turns service errors into HTTP responses.
type Mapper struct {
	Duplicates DuplicatePolicy
	// ExposeInternal puts the underlying message of 5xx failures in the body.
	ExposeInternal bool
}

func (m Mapper) Status(err error) int {
	switch apperr.CodeOf(err) {
	case apperr.CodeValidation, apperr.CodeInvalidIdentifier:
		return http.StatusBadRequest
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeDuplicateKey:
		if m.Duplicates == DuplicateConflict {
			return http.StatusConflict
		}
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

func (m Mapper) Respond(c *gin.Context, err error) {
	status := m.Status(err)
	code := apperr.CodeOf(err)
	if code == "" {
		code = apperr.CodeInternal
	}
	c.Set(ErrorCodeKey, string(code))

	if code == apperr.CodeDuplicateKey && status == http.StatusOK {
		c.JSON(status, DuplicateNotice{
			Msg:       apperr.MessageOf(err),
			Code:      string(code),
			RequestID: requestID(c),
		})
		return
	}

	msg := apperr.MessageOf(err)
	if status >= http.StatusInternalServerError {
		if m.ExposeInternal {
			msg = rootMessage(err)
		} else {
			msg = internalMessage
		}
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message:    msg,
			Code:       string(code),
			Violations: apperr.ViolationsOf(err),
			RequestID:  requestID(c),
		},
	})
}

// rootMessage prefers the driver's own text over the classification wrapper.
func rootMessage(err error) string {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Cause != nil {
		return appErr.Cause.Error()
	}
	return apperr.MessageOf(err)
}
