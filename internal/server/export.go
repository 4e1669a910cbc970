package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Service) handleExportBills(c *gin.Context) {
	data, err := s.exporter.ExportBillsXLSX(c.Request.Context())
	if err != nil {
		s.logger.Error("export bills failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export bills"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bills.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
