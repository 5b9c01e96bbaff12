package http

import (
	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/service"
	"github.com/mgavrilov/blackraven/internal/utils"
)

type Handler struct {
	services *service.Services

	// version is the application version reported by /api/version.
	version string

	// traceIDs issues the per-request trace identifiers attached by
	// withTraceID.
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
