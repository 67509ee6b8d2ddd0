package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/contacts-backend/internal/http/response"
	"github.com/yungbote/contacts-backend/internal/services"
	"github.com/yungbote/contacts-backend/internal/validation"
)

type GroupHandler struct {
	groups services.GroupService
	errs   response.Mapper
}

func NewGroupHandler(groups services.GroupService, errs response.Mapper) *GroupHandler {
	return &GroupHandler{groups: groups, errs: errs}
}

// GET /groups
func (h *GroupHandler) List(c *gin.Context) {
	out, err := h.groups.List(c.Request.Context())
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /groups/:groupId
func (h *GroupHandler) Get(c *gin.Context) {
	g, err := h.groups.Get(c.Request.Context(), c.Param("groupId"))
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	response.RespondOK(c, g)
}

// POST /groups
// body: { "name": "..." }
func (h *GroupHandler) Create(c *gin.Context) {
	var req validation.GroupInput
	if !bindBody(c, &req) {
		return
	}
	g, err := h.groups.Create(c.Request.Context(), req)
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	response.RespondOK(c, gin.H{"msg": "Groups is Created", "group": g})
}
