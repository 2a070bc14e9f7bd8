package dto

// ScheduleRequest computes a repayment schedule without a document, e.g.
// after an officer has corrected the extracted figures.
type ScheduleRequest struct {
	Financial FinancialData `json:"financial" binding:"required"`
}

// MetricsRequest computes the appraisal ratios from explicit records.
type MetricsRequest struct {
	Financial  FinancialData  `json:"financial" binding:"required"`
	Collateral CollateralData `json:"collateral"`
}

// RecordsRequest merges officer patches into an extraction snapshot and
// recomputes the derived artifacts.
type RecordsRequest struct {
	Extraction ExtractionResult `json:"extraction" binding:"required"`
	Customer   *CustomerPatch   `json:"customer,omitempty"`
	Financial  *FinancialPatch  `json:"financial,omitempty"`
	Collateral *CollateralPatch `json:"collateral,omitempty"`
}
