package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type createStackRequest struct {
	ParticipantName string `json:"participant_name" binding:"required"`
}

// CreateStack handles POST /api/v1/stacks.
func (s *Server) CreateStack(c *gin.Context) {
	var req createStackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "participant_name is required"})
		return
	}

	st, err := s.stacks.CreateStack(c.Request.Context(), req.ParticipantName)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// ListStacks handles GET /api/v1/stacks.
func (s *Server) ListStacks(c *gin.Context) {
	stacks, err := s.stacks.ListStacks(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stacks": stacks})
}

// GetStack handles GET /api/v1/stacks/:id.
func (s *Server) GetStack(c *gin.Context) {
	st, err := s.stacks.GetStack(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// DeleteStack handles DELETE /api/v1/stacks/:id.
func (s *Server) DeleteStack(c *gin.Context) {
	if err := s.stacks.DeleteStack(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// StartExecution handles POST /api/v1/stacks/:id/start.
func (s *Server) StartExecution(c *gin.Context) {
	s.applyTransition(c, s.stacks.StartExecution)
}

// PauseExecution handles POST /api/v1/stacks/:id/pause.
func (s *Server) PauseExecution(c *gin.Context) {
	s.applyTransition(c, s.stacks.PauseExecution)
}

// ResumeExecution handles POST /api/v1/stacks/:id/resume.
func (s *Server) ResumeExecution(c *gin.Context) {
	s.applyTransition(c, s.stacks.ResumeExecution)
}

// StopExecution handles POST /api/v1/stacks/:id/stop.
func (s *Server) StopExecution(c *gin.Context) {
	s.applyTransition(c, s.stacks.StopExecution)
}

func (s *Server) applyTransition(c *gin.Context, transition func(ctx context.Context, stackID string) error) {
	stackID := c.Param("id")
	if err := transition(c.Request.Context(), stackID); err != nil {
		mapServiceError(c, err)
		return
	}

	status, err := s.stacks.GetExecutionStatus(c.Request.Context(), stackID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetExecutionStatus handles GET /api/v1/stacks/:id/execution.
func (s *Server) GetExecutionStatus(c *gin.Context) {
	status, err := s.stacks.GetExecutionStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
