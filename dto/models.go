package dto

// Field names recognized by the extractor. This is the full vocabulary;
// anything else in a document is ignored.
const (
	FieldFullName           = "full_name"
	FieldIDNumber           = "id_number"
	FieldAddress            = "address"
	FieldPhone              = "phone"
	FieldTotalCapitalNeeded = "total_capital_needed"
	FieldOwnerCapital       = "owner_capital"
	FieldOwnerCapitalRatio  = "owner_capital_ratio"
	FieldLoanAmount         = "loan_amount"
	FieldInterestRate       = "interest_rate_annual_pct"
	FieldTermMonths         = "term_months"
	FieldPurpose            = "purpose"
	FieldAssetType          = "asset_type"
	FieldMarketValue        = "market_value"
	FieldAssetAddress       = "asset_address"
	FieldLoanToValue        = "loan_to_value_pct"
	FieldLegalDocuments     = "legal_documents"
)

// CustomerData holds identity fields for one borrower. A document may list
// several borrowers; the first one is the primary customer.
type CustomerData struct {
	FullName string `json:"full_name"`
	IDNumber string `json:"id_number"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// FinancialData holds the loan request figures. Amounts are VND.
type FinancialData struct {
	TotalCapitalNeeded float64 `json:"total_capital_needed"`
	OwnerCapital       float64 `json:"owner_capital"`
	OwnerCapitalRatio  float64 `json:"owner_capital_ratio"`
	LoanAmount         float64 `json:"loan_amount"`
	AnnualInterestRate float64 `json:"interest_rate_annual_pct"`
	TermMonths         int     `json:"term_months"`
	Purpose            string  `json:"purpose"`
}

// CollateralData holds the secured-asset figures.
type CollateralData struct {
	AssetType      string  `json:"asset_type"`
	MarketValue    float64 `json:"market_value"`
	AssetAddress   string  `json:"asset_address"`
	LoanToValuePct float64 `json:"loan_to_value_pct"`
	LegalDocuments string  `json:"legal_documents"`
}

// ExtractionResult is the best-effort output of one parsing pass over a
// document. Fields that did not match keep their zero value; Found lists the
// field names that actually matched so consumers can tell a defaulted zero
// from an extracted one. Warnings carries data-quality diagnostics such as
// matched-but-unparseable numbers.
type ExtractionResult struct {
	Customers  []CustomerData `json:"customers"`
	Financial  FinancialData  `json:"financial"`
	Collateral CollateralData `json:"collateral"`
	Found      []string       `json:"found_fields"`
	Warnings   []string       `json:"warnings,omitempty"`
}

// Has reports whether the named field matched during extraction.
func (r *ExtractionResult) Has(field string) bool {
	for _, f := range r.Found {
		if f == field {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, so holders of the original snapshot are immune
// to later mutation by callers.
func (r *ExtractionResult) Clone() ExtractionResult {
	out := *r
	out.Customers = append([]CustomerData(nil), r.Customers...)
	out.Found = append([]string(nil), r.Found...)
	out.Warnings = append([]string(nil), r.Warnings...)
	return out
}

// PaymentScheduleEntry is one month of the repayment plan. Monetary values
// are whole VND, rounded at emission.
type PaymentScheduleEntry struct {
	Period           int   `json:"period"`
	PrincipalPayment int64 `json:"principal_payment"`
	InterestPayment  int64 `json:"interest_payment"`
	TotalPayment     int64 `json:"total_payment"`
	RemainingBalance int64 `json:"remaining_balance"`
}

// ScheduleSummary aggregates a schedule for reporting.
type ScheduleSummary struct {
	TotalPrincipal int64 `json:"total_principal"`
	TotalInterest  int64 `json:"total_interest"`
	TotalPayment   int64 `json:"total_payment"`
}

// FinancialMetrics holds the appraisal ratios. A nil field means the ratio
// was not computable from the available inputs, never that it is zero.
type FinancialMetrics struct {
	MonthlyPayment      *float64 `json:"monthly_payment,omitempty"`
	LoanToValuePct      *float64 `json:"loan_to_value_pct,omitempty"`
	DebtServiceRatioPct *float64 `json:"debt_service_ratio_pct,omitempty"`
	SafetyMarginPct     *float64 `json:"safety_margin_pct,omitempty"`
}

// IDCardData is the identity payload read from a citizen ID card, either
// from its QR code or from OCR text.
type IDCardData struct {
	IDNumber    string `json:"id_number"`
	OldIDNumber string `json:"old_id_number,omitempty"`
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Address     string `json:"address,omitempty"`
	IssueDate   string `json:"issue_date,omitempty"`
	Source      string `json:"source"` // "qr" or "ocr"
}

// CustomerPatch carries officer corrections to a customer record. Nil fields
// are left untouched by the merge.
type CustomerPatch struct {
	FullName *string `json:"full_name,omitempty"`
	IDNumber *string `json:"id_number,omitempty"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// FinancialPatch carries officer corrections to the financial record.
type FinancialPatch struct {
	TotalCapitalNeeded *float64 `json:"total_capital_needed,omitempty"`
	OwnerCapital       *float64 `json:"owner_capital,omitempty"`
	OwnerCapitalRatio  *float64 `json:"owner_capital_ratio,omitempty"`
	LoanAmount         *float64 `json:"loan_amount,omitempty"`
	AnnualInterestRate *float64 `json:"interest_rate_annual_pct,omitempty"`
	TermMonths         *int     `json:"term_months,omitempty"`
	Purpose            *string  `json:"purpose,omitempty"`
}

// CollateralPatch carries officer corrections to the collateral record.
type CollateralPatch struct {
	AssetType      *string  `json:"asset_type,omitempty"`
	MarketValue    *float64 `json:"market_value,omitempty"`
	AssetAddress   *string  `json:"asset_address,omitempty"`
	LoanToValuePct *float64 `json:"loan_to_value_pct,omitempty"`
	LegalDocuments *string  `json:"legal_documents,omitempty"`
}
