package domain

import (
	"errors"
)

const (
	StatusHarvested   = "harvested"
	StatusDistributed = "distributed"
	StatusRetail      = "retail"
	StatusSold        = "sold"

	TransferStatusCompleted = "completed"

	HarvestDateLayout = "2006-01-02"
)

var (
	MessageSuccessCreateBatch       = "batch created successfully"
	MessageSuccessGetBatches        = "batches retrieved successfully"
	MessageSuccessGetBatch          = "batch retrieved successfully"
	MessageSuccessTransferBatch     = "batch transferred successfully"
	MessageSuccessUpdateBatchStatus = "batch status updated successfully"

	MessageFailedCreateBatch       = "failed to create batch"
	MessageFailedGetBatches        = "failed to retrieve batches"
	MessageFailedGetBatch          = "failed to retrieve batch"
	MessageFailedTransferBatch     = "failed to transfer batch"
	MessageFailedUpdateBatchStatus = "failed to update batch status"

	ErrBatchNotFound       = errors.New("batch not found")
	ErrInvalidHarvestDate  = errors.New("invalid harvest date")
	ErrInvalidBatchStatus  = errors.New("invalid batch status")
	ErrInvalidTransferRole = errors.New("transfer role must be distributor or retailer")
)

type (
	CreateBatchRequest struct {
		CropType    string  `json:"crop_type" validate:"required"`
		HarvestDate string  `json:"harvest_date" validate:"required,datetime=2006-01-02"`
		Quantity    float64 `json:"quantity" validate:"required,gt=0"`
		Price       float64 `json:"price" validate:"required,gt=0"`
		Location    string  `json:"location" validate:"required"`
	}

	TransferBatchRequest struct {
		To       string `json:"to" validate:"required"`
		Location string `json:"location" validate:"required"`
		// ToRole overrides the owner-name heuristic when set.
		ToRole string `json:"to_role" validate:"omitempty,oneof=distributor retailer"`
	}

	UpdateBatchStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=harvested distributed retail sold"`
	}

	BatchFilter struct {
		Status   string
		FarmerID string
		Owner    string
	}

	TransferResponse struct {
		ID        string `json:"id"`
		From      string `json:"from"`
		To        string `json:"to"`
		Timestamp string `json:"timestamp"`
		Location  string `json:"location"`
		Status    string `json:"status"`
	}

	BatchResponse struct {
		ID           string             `json:"id"`
		CropType     string             `json:"crop_type"`
		HarvestDate  string             `json:"harvest_date"`
		Quantity     float64            `json:"quantity"`
		Price        float64            `json:"price"`
		FarmerID     string             `json:"farmer_id"`
		FarmerName   string             `json:"farmer_name"`
		Status       string             `json:"status"`
		CurrentOwner string             `json:"current_owner"`
		Location     string             `json:"location"`
		Transfers    []TransferResponse `json:"transfers"`
	}
)
