package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contacts-backend/internal/http/response"
)

// bindBody decodes a JSON body into dst. A missing body decodes as the zero
// value so field validation reports every missing field instead of a parse
// error. It writes the 400 itself and returns false on malformed JSON.
func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return false
	}
	return true
}
