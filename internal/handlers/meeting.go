package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"alumet/api/internal/service"
)

type createMeetingRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Company       string `json:"company"`
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
}

func (h HandlerSet) CreateMeetingRequest(c *gin.Context) {
	var req createMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	meeting, err := h.meetings.Create(c.Request.Context(), service.CreateMeetingInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		ProductID:     req.ProductID,
		ProductName:   req.ProductName,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

func (h HandlerSet) ListMeetingRequests(c *gin.Context) {
	status := c.Query("status")
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	meetings, err := h.meetings.List(c.Request.Context(), status, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meetings)
}

func (h HandlerSet) UpdateMeetingRequest(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, _ := body["id"].(string)
	meeting, err := h.meetings.Update(c.Request.Context(), id, body)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meeting)
}

func (h HandlerSet) DeleteMeetingRequest(c *gin.Context) {
	if err := h.meetings.Delete(c.Request.Context(), c.Query("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
