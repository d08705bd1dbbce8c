package domain

import (
	"errors"
	"time"
)

const (
	ScanTypeFarmerBatch        = "farmer-batch"
	ScanTypeDistributorBatch   = "distributor-batch"
	ScanTypeRetailerBatch      = "retailer-batch"
	ScanTypeConsumerProfile    = "consumer-profile"
	ScanTypeDistributorProfile = "distributor-profile"
	ScanTypeFarmerProfile      = "farmer-profile"
	ScanTypeRegulatorProfile   = "regulator-profile"
	ScanTypeRegulatorReport    = "regulator-report"
)

var (
	MessageSuccessDecodeScan   = "scan payload decoded"
	MessageSuccessGenerateScan = "scan payload generated"

	MessageFailedDecodeScan   = "failed to decode scan payload"
	MessageFailedGenerateScan = "failed to generate scan payload"

	MessageInvalidScanFormat = "Invalid QR code format"
	MessageScanBatchMissing  = "Batch not found in registry"

	ErrUnsupportedScanType = errors.New("unsupported scan payload type")
)

type (
	DecodeScanRequest struct {
		Payload string `json:"payload" validate:"required"`
	}

	BatchScanPayload struct {
		BatchID      string  `json:"batchId" validate:"required"`
		CropType     string  `json:"cropType" validate:"required"`
		FarmerName   string  `json:"farmerName,omitempty"`
		HarvestDate  string  `json:"harvestDate,omitempty"`
		Quantity     float64 `json:"quantity,omitempty"`
		Price        float64 `json:"price,omitempty"`
		Status       string  `json:"status,omitempty"`
		CurrentOwner string  `json:"currentOwner,omitempty"`
		Location     string  `json:"location,omitempty"`
	}

	ProfileScanPayload struct {
		UserID string `json:"userId" validate:"required"`
		Name   string `json:"name" validate:"required"`
		Email  string `json:"email,omitempty"`
		Role   string `json:"role,omitempty"`
	}

	ReportScanPayload struct {
		ReportID       string    `json:"reportId" validate:"required"`
		GeneratedAt    time.Time `json:"generatedAt"`
		TotalBatches   int       `json:"totalBatches"`
		FlaggedBatches int       `json:"flaggedBatches"`
	}

	// ScanResult is what a decoded scan resolves to. Error is set instead of failing.
	ScanResult struct {
		Type     string              `json:"type,omitempty"`
		Batch    *BatchScanPayload   `json:"batch,omitempty"`
		Profile  *ProfileScanPayload `json:"profile,omitempty"`
		Report   *ReportScanPayload  `json:"report,omitempty"`
		Trace    *BatchResponse      `json:"trace,omitempty"`
		Insights *MLInsights         `json:"insights,omitempty"`
		Error    string              `json:"error,omitempty"`
	}

	ScanPayloadResponse struct {
		Type    string `json:"type"`
		Payload string `json:"payload"`
	}
)
