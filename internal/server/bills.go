package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"billtracker/internal/common"
	"billtracker/internal/repository"
)

type createBillRequest struct {
	Vendor    string  `json:"vendor"`
	Category  string  `json:"category"`
	Date      string  `json:"date"`
	Amount    float64 `json:"amount" binding:"gt=0"`
	ImagePath string  `json:"image_path"`
}

func (s *Service) handleCreateBill(c *gin.Context) {
	var req createBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := "invalid request body"
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			msg = "Amount must be a positive number"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	bill, err := s.repo.Insert(c.Request.Context(), repository.CreateBillRequest{
		Date:      req.Date,
		Vendor:    req.Vendor,
		Category:  req.Category,
		Amount:    req.Amount,
		ImagePath: req.ImagePath,
	})
	if err != nil {
		s.logger.Error("create bill failed", "vendor", req.Vendor, "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": "Failed to save bill"})
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (s *Service) handleListBills(c *gin.Context) {
	bills, err := s.repo.ListAll(c.Request.Context())
	if err != nil {
		s.logger.Error("list bills failed", "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": "Failed to fetch bills"})
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (s *Service) handleDeleteBill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bill id must be an integer"})
		return
	}

	deleted, err := s.repo.Delete(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("delete bill failed", "id", id, "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": "Failed to delete bill"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}
