package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/api/dto"
	"github.com/spec-kit/employee-directory/internal/repository"
	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

// VisitorsHandler exposes the visitor log to admins.
type VisitorsHandler struct {
	visitors repository.VisitorLogRepository
	logger   *zap.Logger
}

// NewVisitorsHandler constructs handler.
func NewVisitorsHandler(visitors repository.VisitorLogRepository, logger *zap.Logger) *VisitorsHandler {
	return &VisitorsHandler{visitors: visitors, logger: logger}
}

// List handles GET /visitors.
func (h *VisitorsHandler) List(c *fiber.Ctx) error {
	entries, err := h.visitors.List(c.Context())
	if err != nil {
		h.logger.Error("list visitor log", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewVisitorLogEntryResponses(entries)})
}
