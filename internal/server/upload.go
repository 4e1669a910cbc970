package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billtracker/constants"
	"billtracker/internal/entity"
)

type uploadResponse struct {
	ImagePath string `json:"image_path"`
	entity.ExtractionResult
}

// handleUpload stores the image, runs extraction, and returns the
// candidate fields for review. Nothing is persisted here; the client
// submits the reviewed bill via POST /bills. An extraction failure is
// still a 200 with extraction_success=false. If persistence later fails,
// the written image is left behind as an accepted inconsistency.
func (s *Service) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	ext := constants.NormalizeExt(filepath.Ext(file.Filename))
	if _, ok := constants.AllowedImageExtensions[ext]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Allowed: jpg, jpeg, png, gif, webp"})
		return
	}

	filename := uuid.New().String() + "." + ext
	dst := filepath.Join(s.uploads.Dir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		s.logger.Error("failed to save uploaded image", "filename", file.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}
	s.logger.Info("image stored", "path", dst, "size", file.Size)

	result := s.extractor.ExtractBill(c.Request.Context(), dst)

	c.JSON(http.StatusOK, uploadResponse{
		ImagePath:        s.uploads.Prefix + "/" + filename,
		ExtractionResult: result,
	})
}
