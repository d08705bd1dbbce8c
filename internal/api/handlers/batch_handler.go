package handlers

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/internal/api/presenters"
	"FarmToFork-Backend/pkg/batch"
	"FarmToFork-Backend/pkg/scan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BatchHandler interface {
		CreateBatch(c *fiber.Ctx) error
		GetBatches(c *fiber.Ctx) error
		GetBatchByID(c *fiber.Ctx) error
		TransferBatch(c *fiber.Ctx) error
		UpdateBatchStatus(c *fiber.Ctx) error
		GetBatchInsights(c *fiber.Ctx) error
		GetBatchQR(c *fiber.Ctx) error
	}

	batchHandler struct {
		batchService batch.BatchService
		scanService  scan.ScanService
		validator    *validator.Validate
	}
)

func NewBatchHandler(batchService batch.BatchService, scanService scan.ScanService, validator *validator.Validate) BatchHandler {
	return &batchHandler{
		batchService: batchService,
		scanService:  scanService,
		validator:    validator,
	}
}

func (h *batchHandler) CreateBatch(c *fiber.Ctx) error {
	req := new(domain.CreateBatchRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBatch, err)
	}

	res, err := h.batchService.CreateBatch(c.Context(), *req, currentUser(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateBatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBatch)
}

func (h *batchHandler) GetBatches(c *fiber.Ctx) error {
	filter := domain.BatchFilter{
		Status:   c.Query("status", "all"),
		FarmerID: c.Query("farmer_id"),
		Owner:    c.Query("owner"),
	}

	batches, err := h.batchService.GetBatches(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetBatches, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"batches": batches,
		"total":   len(batches),
	}, fiber.StatusOK, domain.MessageSuccessGetBatches)
}

func (h *batchHandler) GetBatchByID(c *fiber.Ctx) error {
	res, err := h.batchService.GetBatchByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetBatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBatch)
}

func (h *batchHandler) TransferBatch(c *fiber.Ctx) error {
	req := new(domain.TransferBatchRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTransferBatch, err)
	}

	res, err := h.batchService.TransferBatch(c.Context(), c.Params("id"), *req, currentUser(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedTransferBatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessTransferBatch)
}

func (h *batchHandler) UpdateBatchStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateBatchStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBatchStatus, err)
	}

	res, err := h.batchService.UpdateBatchStatus(c.Context(), c.Params("id"), *req, currentUser(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateBatchStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateBatchStatus)
}

func (h *batchHandler) GetBatchInsights(c *fiber.Ctx) error {
	res, err := h.batchService.GetBatchInsights(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetInsights, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInsights)
}

// GetBatchQR encodes the batch with the envelope type of the caller's role.
func (h *batchHandler) GetBatchQR(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	res, err := h.scanService.EncodeBatchByID(c.Context(), role, c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGenerateScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateScan)
}
