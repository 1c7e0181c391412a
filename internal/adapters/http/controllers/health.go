package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type HealthResponse struct {
	Status   string            `json:"status" example:"ok"`
	Services map[string]string `json:"services" example:"store:ok,redis:ok,broker:ok"`
}

// HealthChecker probes one dependency. A nil Check is skipped.
type HealthChecker struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthController struct {
	timeout  time.Duration
	checkers []HealthChecker
}

func NewHealthController(timeout time.Duration, checkers ...HealthChecker) *HealthController {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	active := make([]HealthChecker, 0, len(checkers))
	for _, checker := range checkers {
		if checker.Check != nil {
			active = append(active, checker)
		}
	}
	return &HealthController{timeout: timeout, checkers: active}
}

// Health godoc
// @Summary     Health check
// @Description Probes the store, the cache and the broker concurrently
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     503 {object} HealthResponse
// @Router      /api/v1/health [get]
func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	results := make([]string, len(h.checkers))
	var g errgroup.Group
	for i, checker := range h.checkers {
		g.Go(func() error {
			if err := checker.Check(ctx); err != nil {
				results[i] = err.Error()
				return err
			}
			results[i] = "ok"
			return nil
		})
	}

	status, code := "ok", http.StatusOK
	if err := g.Wait(); err != nil {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	services := make(map[string]string, len(h.checkers))
	for i, checker := range h.checkers {
		services[checker.Name] = results[i]
	}

	c.JSON(code, HealthResponse{Status: status, Services: services})
}
