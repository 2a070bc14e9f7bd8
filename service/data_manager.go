package service

import "github.com/dungle2901/loan-appraisal/dto"

// DataManager owns the three record groups for one appraisal session plus
// the untouched extraction snapshot kept for audit. Accessors hand out
// copies, so callers can never mutate manager state from outside. One
// instance serves one session; there is no package-level state.
type DataManager struct {
	customer   dto.CustomerData
	financial  dto.FinancialData
	collateral dto.CollateralData
	original   dto.ExtractionResult
}

func NewDataManager() *DataManager {
	return &DataManager{}
}

// ApplyExtraction seeds the records from an extraction pass. The first
// recovered customer becomes the primary one. Fields the extractor did not
// find keep their zero value, so the records are always fully populated.
func (m *DataManager) ApplyExtraction(res dto.ExtractionResult) {
	m.original = res.Clone()

	if len(res.Customers) > 0 {
		m.customer = res.Customers[0]
	} else {
		m.customer = dto.CustomerData{}
	}
	m.financial = res.Financial
	m.collateral = res.Collateral
}

func (m *DataManager) Customer() dto.CustomerData {
	return m.customer
}

func (m *DataManager) Financial() dto.FinancialData {
	return m.financial
}

func (m *DataManager) Collateral() dto.CollateralData {
	return m.collateral
}

// Original returns the pristine extraction snapshot as recovered from the
// document, before any officer corrections.
func (m *DataManager) Original() dto.ExtractionResult {
	return m.original.Clone()
}

// PatchCustomer merges officer corrections into the customer record. Nil
// patch fields leave the current value untouched.
func (m *DataManager) PatchCustomer(p dto.CustomerPatch) {
	if p.FullName != nil {
		m.customer.FullName = *p.FullName
	}
	if p.IDNumber != nil {
		m.customer.IDNumber = *p.IDNumber
	}
	if p.Address != nil {
		m.customer.Address = *p.Address
	}
	if p.Phone != nil {
		m.customer.Phone = *p.Phone
	}
}

// PatchFinancial merges officer corrections into the financial record.
func (m *DataManager) PatchFinancial(p dto.FinancialPatch) {
	if p.TotalCapitalNeeded != nil {
		m.financial.TotalCapitalNeeded = *p.TotalCapitalNeeded
	}
	if p.OwnerCapital != nil {
		m.financial.OwnerCapital = *p.OwnerCapital
	}
	if p.OwnerCapitalRatio != nil {
		m.financial.OwnerCapitalRatio = *p.OwnerCapitalRatio
	}
	if p.LoanAmount != nil {
		m.financial.LoanAmount = *p.LoanAmount
	}
	if p.AnnualInterestRate != nil {
		m.financial.AnnualInterestRate = *p.AnnualInterestRate
	}
	if p.TermMonths != nil {
		m.financial.TermMonths = *p.TermMonths
	}
	if p.Purpose != nil {
		m.financial.Purpose = *p.Purpose
	}
}

// PatchCollateral merges officer corrections into the collateral record.
func (m *DataManager) PatchCollateral(p dto.CollateralPatch) {
	if p.AssetType != nil {
		m.collateral.AssetType = *p.AssetType
	}
	if p.MarketValue != nil {
		m.collateral.MarketValue = *p.MarketValue
	}
	if p.AssetAddress != nil {
		m.collateral.AssetAddress = *p.AssetAddress
	}
	if p.LoanToValuePct != nil {
		m.collateral.LoanToValuePct = *p.LoanToValuePct
	}
	if p.LegalDocuments != nil {
		m.collateral.LegalDocuments = *p.LegalDocuments
	}
}
