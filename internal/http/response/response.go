package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
	"github.com/yungbote/contacts-backend/internal/pkg/ctxutil"
)

// ErrorCodeKey is the gin context key under which the answered error code is
// left for the access log.
const ErrorCodeKey = "error_code"

type APIError struct {
	Message    string             `json:"message"`
	Code       string             `json:"code,omitempty"`
	Violations []apperr.Violation `json:"violations,omitempty"`
	RequestID  string             `json:"requestId,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// DuplicateNotice is the success-shaped body for a rejected duplicate when
// the duplicate policy is DuplicateOK.
type DuplicateNotice struct {
	Msg       string `json:"msg"`
	Code      string `json:"code"`
	RequestID string `json:"requestId,omitempty"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.Set(ErrorCodeKey, code)
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message:   msg,
			Code:      code,
			RequestID: requestID(c),
		},
	})
}

func requestID(c *gin.Context) string {
	if c.Request == nil {
		return ""
	}
	return ctxutil.RequestIDsFrom(c.Request.Context()).RequestID
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
