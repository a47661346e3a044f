// Package api exposes the admin, observability, and visitor chat surface
// over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hackfleet/hackfleet/pkg/database"
	"github.com/hackfleet/hackfleet/pkg/scheduler"
	"github.com/hackfleet/hackfleet/pkg/services"
	"github.com/hackfleet/hackfleet/pkg/version"
)

// Server wires the service layer to the HTTP routes.
type Server struct {
	db        *database.Client
	stacks    *services.StackService
	chat      *services.ChatService
	obs       *services.ObservabilityService
	scheduler *scheduler.Scheduler
}

// NewServer creates a new API server.
func NewServer(db *database.Client, stacks *services.StackService, chat *services.ChatService, obs *services.ObservabilityService, sched *scheduler.Scheduler) *Server {
	return &Server{
		db:        db,
		stacks:    stacks,
		chat:      chat,
		obs:       obs,
		scheduler: sched,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())

	router.GET("/health", s.Health)
	router.GET("/version", s.Version)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/stacks", s.CreateStack)
		v1.GET("/stacks", s.ListStacks)
		v1.GET("/stacks/:id", s.GetStack)
		v1.DELETE("/stacks/:id", s.DeleteStack)

		v1.POST("/stacks/:id/start", s.StartExecution)
		v1.POST("/stacks/:id/pause", s.PauseExecution)
		v1.POST("/stacks/:id/resume", s.ResumeExecution)
		v1.POST("/stacks/:id/stop", s.StopExecution)
		v1.GET("/stacks/:id/execution", s.GetExecutionStatus)

		v1.GET("/stacks/:id/traces", s.GetRecentTraces)
		v1.GET("/stacks/:id/executions", s.GetRecentExecutions)
		v1.GET("/stacks/:id/graphs", s.GetExecutionGraphs)
		v1.GET("/stacks/:id/work-status", s.GetWorkDetectionStatus)
		v1.GET("/stacks/:id/stats", s.GetOrchestrationStats)

		v1.POST("/stacks/:id/chat", s.SendUserMessage)
		v1.GET("/stacks/:id/chat", s.GetChatHistory)

		v1.GET("/scheduler/health", s.SchedulerHealth)
	}

	return router
}

// Health reports database connectivity and scheduler liveness.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	resp := gin.H{
		"status":   "healthy",
		"database": dbHealth,
		"version":  version.Full(),
	}
	if s.scheduler != nil {
		resp["scheduler"] = s.scheduler.Health()
	}
	c.JSON(http.StatusOK, resp)
}

// SchedulerHealth reports the scheduler's tick and cycle state.
func (s *Server) SchedulerHealth(c *gin.Context) {
	if s.scheduler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scheduler not running"})
		return
	}
	c.JSON(http.StatusOK, s.scheduler.Health())
}

// Version reports build version info.
func (s *Server) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":     version.AppName,
		"commit":  version.GitCommit,
		"version": version.Full(),
	})
}
