package domain

import (
	"time"
)

var (
	MessageSuccessGetDashboard = "dashboard retrieved successfully"
	MessageSuccessGetReport    = "regulator report generated successfully"

	MessageFailedGetDashboard = "failed to retrieve dashboard"
	MessageFailedGetReport    = "failed to generate regulator report"
)

type (
	DashboardStats struct {
		TotalBatches   int            `json:"total_batches"`
		TotalQuantity  float64        `json:"total_quantity"`
		EstimatedValue float64        `json:"estimated_value"`
		ByStatus       map[string]int `json:"by_status"`
	}

	BatchSummary struct {
		BatchResponse
		QualityGrade string `json:"quality_grade"`
		RiskLevel    string `json:"risk_level"`
	}

	LedgerEventResponse struct {
		TxID    string         `json:"tx_id"`
		Kind    string         `json:"kind"`
		BatchID string         `json:"batch_id"`
		Actor   string         `json:"actor"`
		At      time.Time      `json:"at"`
		Details map[string]any `json:"details,omitempty"`
	}

	DashboardResponse struct {
		Role         string                `json:"role"`
		User         UserResponse          `json:"user"`
		Stats        DashboardStats        `json:"stats"`
		Batches      []BatchSummary        `json:"batches"`
		Available    []BatchSummary        `json:"available,omitempty"`
		RiskCounts   map[string]int        `json:"risk_counts,omitempty"`
		RecentEvents []LedgerEventResponse `json:"recent_events,omitempty"`
	}

	RegulatorReport struct {
		ReportID       string         `json:"report_id"`
		GeneratedAt    time.Time      `json:"generated_at"`
		TotalBatches   int            `json:"total_batches"`
		FlaggedBatches int            `json:"flagged_batches"`
		RiskCounts     map[string]int `json:"risk_counts"`
		Flagged        []BatchSummary `json:"flagged"`
		ScanPayload    string         `json:"scan_payload,omitempty"`
	}
)
