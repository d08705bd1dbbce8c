package handlers

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/internal/api/presenters"
	"FarmToFork-Backend/pkg/dashboard"
	"FarmToFork-Backend/pkg/scan"

	"github.com/gofiber/fiber/v2"
)

type (
	DashboardHandler interface {
		GetDashboard(c *fiber.Ctx) error
		GetRegulatorReport(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		dashboardService dashboard.DashboardService
		scanService      scan.ScanService
	}
)

func NewDashboardHandler(dashboardService dashboard.DashboardService, scanService scan.ScanService) DashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
		scanService:      scanService,
	}
}

func (h *dashboardHandler) GetDashboard(c *fiber.Ctx) error {
	res, err := h.dashboardService.GetDashboard(c.Context(), currentUser(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *dashboardHandler) GetRegulatorReport(c *fiber.Ctx) error {
	report, err := h.dashboardService.GetRegulatorReport(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetReport, err)
	}

	payload, err := h.scanService.EncodeReport(report)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateScan, err)
	}
	report.ScanPayload = payload.Payload

	return presenters.SuccessResponse(c, report, fiber.StatusOK, domain.MessageSuccessGetReport)
}
