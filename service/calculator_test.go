package service

import (
	"testing"

	"github.com/dungle2901/loan-appraisal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCalculator() *FinancialCalculator {
	return NewFinancialCalculator(100_000_000, 45_000_000)
}

func TestPaymentSchedule(t *testing.T) {
	calc := testCalculator()
	fin := dto.FinancialData{
		LoanAmount:         120_000_000,
		AnnualInterestRate: 12,
		TermMonths:         12,
	}

	schedule := calc.PaymentSchedule(fin)
	require.Len(t, schedule, 12)

	// monthly rate 1%: first interest is exactly 1.2M and the annuity
	// payment is constant.
	assert.Equal(t, int64(1_200_000), schedule[0].InterestPayment)
	assert.InDelta(t, 10_661_855, float64(schedule[0].TotalPayment), 2)

	// Balance decreases monotonically and ends at exactly zero.
	prev := int64(120_000_000)
	for _, entry := range schedule {
		assert.LessOrEqual(t, entry.RemainingBalance, prev)
		assert.GreaterOrEqual(t, entry.PrincipalPayment, int64(0))
		assert.GreaterOrEqual(t, entry.InterestPayment, int64(0))
		prev = entry.RemainingBalance
	}
	assert.Equal(t, int64(0), schedule[11].RemainingBalance)

	// Principal sums back to the loan amount within rounding units.
	var totalPrincipal int64
	for _, entry := range schedule {
		totalPrincipal += entry.PrincipalPayment
	}
	assert.InDelta(t, 120_000_000, float64(totalPrincipal), 12)

	// Periods are 1-based and consecutive.
	for i, entry := range schedule {
		assert.Equal(t, i+1, entry.Period)
	}
}

func TestPaymentScheduleZeroRate(t *testing.T) {
	calc := testCalculator()
	fin := dto.FinancialData{
		LoanAmount: 120_000_000,
		TermMonths: 12,
	}

	schedule := calc.PaymentSchedule(fin)
	require.Len(t, schedule, 12)

	for _, entry := range schedule {
		assert.Equal(t, int64(10_000_000), entry.PrincipalPayment)
		assert.Equal(t, int64(0), entry.InterestPayment)
	}
	assert.Equal(t, int64(0), schedule[11].RemainingBalance)
}

func TestPaymentScheduleInsufficientData(t *testing.T) {
	calc := testCalculator()

	assert.Empty(t, calc.PaymentSchedule(dto.FinancialData{TermMonths: 12, AnnualInterestRate: 12}))
	assert.Empty(t, calc.PaymentSchedule(dto.FinancialData{LoanAmount: 1_000_000, AnnualInterestRate: 12}))
	assert.Empty(t, calc.PaymentSchedule(dto.FinancialData{LoanAmount: 1_000_000, TermMonths: -1}))
	assert.Empty(t, calc.PaymentSchedule(dto.FinancialData{LoanAmount: 1_000_000, TermMonths: 12, AnnualInterestRate: -5}))
}

func TestPaymentScheduleLongTermDrift(t *testing.T) {
	calc := testCalculator()
	fin := dto.FinancialData{
		LoanAmount:         987_654_321,
		AnnualInterestRate: 9.7,
		TermMonths:         240,
	}

	schedule := calc.PaymentSchedule(fin)
	require.Len(t, schedule, 240)
	assert.Equal(t, int64(0), schedule[239].RemainingBalance)

	var totalPrincipal int64
	prev := schedule[0].RemainingBalance
	for i, entry := range schedule {
		totalPrincipal += entry.PrincipalPayment
		if i > 0 {
			assert.LessOrEqual(t, entry.RemainingBalance, prev)
			prev = entry.RemainingBalance
		}
	}
	assert.InDelta(t, 987_654_321, float64(totalPrincipal), 240)
}

func TestSummarize(t *testing.T) {
	calc := testCalculator()
	schedule := calc.PaymentSchedule(dto.FinancialData{
		LoanAmount: 120_000_000,
		TermMonths: 12,
	})

	summary := calc.Summarize(schedule)
	assert.Equal(t, int64(120_000_000), summary.TotalPrincipal)
	assert.Equal(t, int64(0), summary.TotalInterest)
	assert.Equal(t, int64(120_000_000), summary.TotalPayment)

	assert.Equal(t, dto.ScheduleSummary{}, calc.Summarize(nil))
}

func TestMetrics(t *testing.T) {
	calc := testCalculator()
	fin := dto.FinancialData{
		LoanAmount:         120_000_000,
		AnnualInterestRate: 12,
		TermMonths:         12,
	}
	coll := dto.CollateralData{MarketValue: 300_000_000}

	m := calc.Metrics(fin, coll)

	require.NotNil(t, m.MonthlyPayment)
	assert.InDelta(t, 10_661_855, *m.MonthlyPayment, 2)

	require.NotNil(t, m.LoanToValuePct)
	assert.InDelta(t, 40.0, *m.LoanToValuePct, 1e-9)

	require.NotNil(t, m.DebtServiceRatioPct)
	assert.InDelta(t, 10.66, *m.DebtServiceRatioPct, 0.01)

	// disposable = 55M, margin = (55M - payment) / 55M * 100
	require.NotNil(t, m.SafetyMarginPct)
	assert.InDelta(t, 80.6, *m.SafetyMarginPct, 0.1)
}

func TestMetricsAbsentWhenIncomputable(t *testing.T) {
	calc := testCalculator()

	// No rate: no monthly payment, hence no DSR or safety margin.
	m := calc.Metrics(dto.FinancialData{LoanAmount: 120_000_000, TermMonths: 12}, dto.CollateralData{})
	assert.Nil(t, m.MonthlyPayment)
	assert.Nil(t, m.DebtServiceRatioPct)
	assert.Nil(t, m.SafetyMarginPct)
	assert.Nil(t, m.LoanToValuePct)

	// Zero market value: LTV absent rather than infinite.
	m = calc.Metrics(
		dto.FinancialData{LoanAmount: 120_000_000, AnnualInterestRate: 12, TermMonths: 12},
		dto.CollateralData{MarketValue: 0},
	)
	assert.Nil(t, m.LoanToValuePct)
	assert.NotNil(t, m.MonthlyPayment)
}

func TestMetricsNoDisposableIncome(t *testing.T) {
	calc := NewFinancialCalculator(45_000_000, 45_000_000)
	fin := dto.FinancialData{
		LoanAmount:         120_000_000,
		AnnualInterestRate: 12,
		TermMonths:         12,
	}

	m := calc.Metrics(fin, dto.CollateralData{})
	assert.NotNil(t, m.MonthlyPayment)
	assert.NotNil(t, m.DebtServiceRatioPct)
	assert.Nil(t, m.SafetyMarginPct)
}
