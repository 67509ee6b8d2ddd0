package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/contacts-backend/internal/http/response"
	"github.com/yungbote/contacts-backend/internal/services"
	"github.com/yungbote/contacts-backend/internal/validation"
)

type ContactHandler struct {
	contacts services.ContactService
	errs     response.Mapper
}

func NewContactHandler(contacts services.ContactService, errs response.Mapper) *ContactHandler {
	return &ContactHandler{contacts: contacts, errs: errs}
}

// GET /contacts
func (h *ContactHandler) List(c *gin.Context) {
	out, err := h.contacts.List(c.Request.Context())
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /contacts/:contactId
func (h *ContactHandler) Get(c *gin.Context) {
	ct, err := h.contacts.Get(c.Request.Context(), c.Param("contactId"))
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	response.RespondOK(c, ct)
}

// POST /contacts
// body: { "name", "company", "email", "title", "mobile", "imageUrl", "groupId" }
func (h *ContactHandler) Create(c *gin.Context) {
	var req validation.ContactInput
	if !bindBody(c, &req) {
		return
	}
	ct, err := h.contacts.Create(c.Request.Context(), req)
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	response.RespondOK(c, ct)
}

// PUT /contacts/:contactId
// Full replacement; every field is required.
func (h *ContactHandler) Replace(c *gin.Context) {
	var req validation.ContactInput
	if !bindBody(c, &req) {
		return
	}
	ct, err := h.contacts.Replace(c.Request.Context(), c.Param("contactId"), req)
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	response.RespondOK(c, ct)
}

// DELETE /contacts/:contactId
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contacts.Delete(c.Request.Context(), c.Param("contactId")); err != nil {
		h.errs.Respond(c, err)
		return
	}
	response.RespondOK(c, gin.H{})
}
