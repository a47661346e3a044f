package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type sendUserMessageRequest struct {
	SenderName string `json:"sender_name" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// SendUserMessage handles POST /api/v1/stacks/:id/chat.
func (s *Server) SendUserMessage(c *gin.Context) {
	var req sendUserMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sender_name and content are required"})
		return
	}

	um, err := s.chat.SendUserMessage(c.Request.Context(), c.Param("id"), req.SenderName, req.Content)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, um)
}

// GetChatHistory handles GET /api/v1/stacks/:id/chat.
func (s *Server) GetChatHistory(c *gin.Context) {
	entries, err := s.chat.GetChatHistory(c.Request.Context(), c.Param("id"), queryInt(c, "limit"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// queryInt parses an integer query parameter, returning 0 (use the service
// default) when absent or malformed.
func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
