package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billtracker/internal/common"
	"billtracker/internal/repository"
)

func (s *Service) handleInsights(c *gin.Context) {
	report, err := s.repo.GetInsights(c.Request.Context())
	if err != nil {
		s.logger.Error("insights failed", "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": "Failed to fetch insights"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Service) handleHealth(c *gin.Context) {
	if err := repository.HealthCheck(c.Request.Context(), s.db, 0, s.logger); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
