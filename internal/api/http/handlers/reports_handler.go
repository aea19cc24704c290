package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/service"
)

// ReportsHandler exposes the admin dashboard.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// Dashboard handles GET /dashboard.
func (h *ReportsHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.reports.Dashboard(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}
