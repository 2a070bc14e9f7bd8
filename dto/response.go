package dto

import "errors"

// Custom errors
var (
	ErrEmptyDocument   = errors.New("no text could be extracted from the document")
	ErrUnsupportedFile = errors.New("unsupported file type: expected .txt, .pdf or an image")
	ErrNoQRCode        = errors.New("no readable QR code found on the card image")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// AppraisalResponse bundles everything derived from one application document.
type AppraisalResponse struct {
	Customers   []CustomerData         `json:"customers"`
	Primary     CustomerData           `json:"primary_customer"`
	Financial   FinancialData          `json:"financial"`
	Collateral  CollateralData         `json:"collateral"`
	Schedule    []PaymentScheduleEntry `json:"schedule"`
	Summary     ScheduleSummary        `json:"summary"`
	Metrics     FinancialMetrics       `json:"metrics"`
	Found       []string               `json:"found_fields"`
	Warnings    []string               `json:"warnings,omitempty"`
	ProcessedAt string                 `json:"processed_at"`
}

// ScheduleResponse is the standalone calculator output.
type ScheduleResponse struct {
	Schedule []PaymentScheduleEntry `json:"schedule"`
	Summary  ScheduleSummary        `json:"summary"`
}

// RecordsResponse returns the merged records plus recomputed artifacts.
type RecordsResponse struct {
	Customer   CustomerData           `json:"customer"`
	Financial  FinancialData          `json:"financial"`
	Collateral CollateralData         `json:"collateral"`
	Schedule   []PaymentScheduleEntry `json:"schedule"`
	Summary    ScheduleSummary        `json:"summary"`
	Metrics    FinancialMetrics       `json:"metrics"`
}

// IDCardVerifyResponse reports the decoded card and how well it matches the
// expected customer name.
type IDCardVerifyResponse struct {
	Card           IDCardData `json:"card"`
	ExpectedName   string     `json:"expected_name,omitempty"`
	NameMatch      bool       `json:"name_match"`
	NameSimilarity float64    `json:"name_similarity"`
}
