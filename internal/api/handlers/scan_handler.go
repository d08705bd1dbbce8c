package handlers

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/internal/api/presenters"
	"FarmToFork-Backend/pkg/scan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		DecodeScan(c *fiber.Ctx) error
		GetProfileQR(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

// DecodeScan always answers 200 once the body is valid; a payload that cannot be read
// is reported through the error field of the result.
func (h *scanHandler) DecodeScan(c *fiber.Ctx) error {
	req := new(domain.DecodeScanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDecodeScan, err)
	}

	res := h.scanService.Resolve(c.Context(), req.Payload)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDecodeScan)
}

func (h *scanHandler) GetProfileQR(c *fiber.Ctx) error {
	res, err := h.scanService.EncodeProfile(currentUser(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGenerateScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateScan)
}
