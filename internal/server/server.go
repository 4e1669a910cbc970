// Package server exposes the bill-tracking HTTP surface. Handlers are
// thin: validation at the boundary, then a single repository or
// extractor call. Each store operation is independently atomic; no
// handler spans a multi-operation transaction.
package server

import (
	"database/sql"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"billtracker/internal/common"
	"billtracker/internal/export"
	"billtracker/internal/llm"
	"billtracker/internal/repository"
)

type Service struct {
	repo      repository.BillRepository
	extractor llm.BillExtractor
	exporter  *export.Service
	db        *sql.DB
	uploads   common.UploadsConfig
	logger    *slog.Logger
}

func NewService(repo repository.BillRepository, extractor llm.BillExtractor, exporter *export.Service, db *sql.DB, uploads common.UploadsConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:      repo,
		extractor: extractor,
		exporter:  exporter,
		db:        db,
		uploads:   uploads,
		logger:    logger,
	}
}

// Router builds the gin engine with CORS, static image serving and all
// API routes registered.
func (s *Service) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	// Uploaded images stay addressable under the same prefix that is
	// stored on bills as image_path.
	r.Static(s.uploads.Prefix, s.uploads.Dir)

	r.POST("/upload", s.handleUpload)
	r.POST("/bills", s.handleCreateBill)
	r.GET("/bills", s.handleListBills)
	r.GET("/bills/export", s.handleExportBills)
	r.DELETE("/bills/:id", s.handleDeleteBill)
	r.GET("/insights", s.handleInsights)
	r.GET("/healthz", s.handleHealth)

	return r
}
