package service

import (
	"math"

	"github.com/dungle2901/loan-appraisal/dto"
)

// FinancialCalculator derives the repayment schedule and appraisal ratios
// from a financial record. Reference income and expense are placeholder
// borrower cash-flow figures taken from configuration; DSR and safety margin
// are computed against them until real income data is available.
type FinancialCalculator struct {
	refMonthlyIncome  float64
	refMonthlyExpense float64
}

func NewFinancialCalculator(refMonthlyIncome, refMonthlyExpense float64) *FinancialCalculator {
	return &FinancialCalculator{
		refMonthlyIncome:  refMonthlyIncome,
		refMonthlyExpense: refMonthlyExpense,
	}
}

// PaymentSchedule computes the equal-total-payment (annuity) repayment plan.
// An unusable loan amount or term yields an empty schedule, meaning
// "insufficient data", not a zero-length loan. A zero rate falls back to
// straight-line principal with no interest.
func (c *FinancialCalculator) PaymentSchedule(fin dto.FinancialData) []dto.PaymentScheduleEntry {
	if fin.LoanAmount <= 0 || fin.TermMonths <= 0 || fin.AnnualInterestRate < 0 {
		return nil
	}

	monthlyRate := fin.AnnualInterestRate / 100 / 12
	payment := monthlyPayment(fin.LoanAmount, monthlyRate, fin.TermMonths)

	schedule := make([]dto.PaymentScheduleEntry, 0, fin.TermMonths)
	remaining := fin.LoanAmount

	for month := 1; month <= fin.TermMonths; month++ {
		interest := remaining * monthlyRate
		principal := payment - interest
		remaining -= principal

		// The last period absorbs all accumulated rounding drift so the
		// balance lands on exactly zero.
		if month == fin.TermMonths {
			principal += remaining
			remaining = 0
		}

		balance := int64(math.Round(remaining))
		if balance < 0 {
			balance = 0
		}

		schedule = append(schedule, dto.PaymentScheduleEntry{
			Period:           month,
			PrincipalPayment: int64(math.Round(principal)),
			InterestPayment:  int64(math.Round(interest)),
			TotalPayment:     int64(math.Round(principal + interest)),
			RemainingBalance: balance,
		})
	}

	return schedule
}

// Summarize totals a schedule for reporting.
func (c *FinancialCalculator) Summarize(schedule []dto.PaymentScheduleEntry) dto.ScheduleSummary {
	var s dto.ScheduleSummary
	for _, e := range schedule {
		s.TotalPrincipal += e.PrincipalPayment
		s.TotalInterest += e.InterestPayment
		s.TotalPayment += e.TotalPayment
	}
	return s
}

// Metrics derives the appraisal ratios whose preconditions hold. A ratio
// whose inputs are missing is left nil rather than emitted with a
// meaningless value.
func (c *FinancialCalculator) Metrics(fin dto.FinancialData, coll dto.CollateralData) dto.FinancialMetrics {
	var m dto.FinancialMetrics

	if fin.LoanAmount > 0 && fin.AnnualInterestRate > 0 && fin.TermMonths > 0 {
		monthlyRate := fin.AnnualInterestRate / 100 / 12
		mp := monthlyPayment(fin.LoanAmount, monthlyRate, fin.TermMonths)
		m.MonthlyPayment = &mp
	}

	if coll.MarketValue > 0 {
		ltv := fin.LoanAmount / coll.MarketValue * 100
		m.LoanToValuePct = &ltv
	}

	if m.MonthlyPayment != nil && c.refMonthlyIncome > 0 {
		dsr := *m.MonthlyPayment / c.refMonthlyIncome * 100
		m.DebtServiceRatioPct = &dsr
	}

	if m.MonthlyPayment != nil {
		disposable := c.refMonthlyIncome - c.refMonthlyExpense
		if disposable > 0 {
			margin := (disposable - *m.MonthlyPayment) / disposable * 100
			m.SafetyMarginPct = &margin
		}
	}

	return m
}

// monthlyPayment is the annuity formula
// P * r * (1+r)^n / ((1+r)^n - 1), with a straight-line fallback when the
// rate is zero.
func monthlyPayment(amount, monthlyRate float64, termMonths int) float64 {
	if monthlyRate == 0 {
		return amount / float64(termMonths)
	}
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	return amount * monthlyRate * factor / (factor - 1)
}
