package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"alumet/api/internal/service"
)

type createContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	InquiryType string `json:"inquiryType"`
	Message     string `json:"message"`
}

func (h HandlerSet) CreateContactMessage(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	msg, err := h.contacts.Create(c.Request.Context(), service.CreateContactInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		InquiryType: req.InquiryType,
		Message:     req.Message,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h HandlerSet) ListContactMessages(c *gin.Context) {
	status := c.Query("status")
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	messages, err := h.contacts.List(c.Request.Context(), status, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h HandlerSet) UpdateContactMessage(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, _ := body["id"].(string)
	msg, err := h.contacts.Update(c.Request.Context(), id, body)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

func (h HandlerSet) DeleteContactMessage(c *gin.Context) {
	if err := h.contacts.Delete(c.Request.Context(), c.Query("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
