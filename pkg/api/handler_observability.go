package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// defaultStatsRange is the stats window when range_ms is not given.
const defaultStatsRange = time.Hour

// GetRecentTraces handles GET /api/v1/stacks/:id/traces.
func (s *Server) GetRecentTraces(c *gin.Context) {
	traces, err := s.obs.GetRecentTraces(c.Request.Context(), c.Param("id"), queryInt(c, "limit"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"traces": traces})
}

// GetRecentExecutions handles GET /api/v1/stacks/:id/executions.
func (s *Server) GetRecentExecutions(c *gin.Context) {
	executions, err := s.obs.GetRecentExecutions(c.Request.Context(), c.Param("id"), queryInt(c, "limit"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"executions": executions})
}

// GetExecutionGraphs handles GET /api/v1/stacks/:id/graphs.
func (s *Server) GetExecutionGraphs(c *gin.Context) {
	graphs, err := s.obs.GetExecutionGraphs(c.Request.Context(), c.Param("id"), queryInt(c, "limit"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"graphs": graphs})
}

// GetWorkDetectionStatus handles GET /api/v1/stacks/:id/work-status.
func (s *Server) GetWorkDetectionStatus(c *gin.Context) {
	status, err := s.obs.GetWorkDetectionStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetOrchestrationStats handles GET /api/v1/stacks/:id/stats.
func (s *Server) GetOrchestrationStats(c *gin.Context) {
	timeRange := defaultStatsRange
	if ms := queryInt(c, "range_ms"); ms > 0 {
		timeRange = time.Duration(ms) * time.Millisecond
	}

	stats, err := s.obs.GetOrchestrationStats(c.Request.Context(), c.Param("id"), timeRange)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
