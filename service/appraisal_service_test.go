package service

import (
	"testing"
	"time"

	"github.com/dungle2901/loan-appraisal/dto"
	"github.com/dungle2901/loan-appraisal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleApplicationText = `1. Họ và tên: Nguyen Van A - Sinh năm 1985
CMND/CCCD/hộ chiếu: 123456789
Nơi cư trú: 123 Đường Lê Lợi, Quận 1, TP.HCM
Số điện thoại: 0901234567
Tổng nhu cầu vốn: 200.000.000 đồng
Vốn đối ứng tham gia (vốn tự có): 80.000.000 đồng
Vốn vay Agribank số tiền: 120.000.000 đồng
Mục đích vay: Kinh doanh cửa hàng tạp hóa
Thời hạn vay: 12 tháng
Lãi suất: 12%/năm
Tài sản 1: Quyền sử dụng đất
Giá trị thị trường: 300.000.000 đồng
Địa chỉ tài sản: 123 Đường Lê Lợi, Quận 1, TP.HCM
`

func newTestAppraisalService(cache repository.CacheRepository) *AppraisalService {
	return NewAppraisalService(nil, nil, NewFinancialCalculator(100_000_000, 45_000_000), cache, time.Hour)
}

func TestAnalyzeText(t *testing.T) {
	svc := newTestAppraisalService(nil)

	resp := svc.AnalyzeText(sampleApplicationText)

	require.Len(t, resp.Customers, 1)
	assert.Equal(t, "Nguyen Van A", resp.Primary.FullName)
	assert.Equal(t, 120_000_000.0, resp.Financial.LoanAmount)
	assert.InDelta(t, 40.0, resp.Collateral.LoanToValuePct, 1e-9)

	require.Len(t, resp.Schedule, 12)
	assert.Equal(t, int64(1_200_000), resp.Schedule[0].InterestPayment)
	assert.Equal(t, int64(0), resp.Schedule[11].RemainingBalance)
	assert.Equal(t, int64(120_000_000), resp.Summary.TotalPrincipal)

	require.NotNil(t, resp.Metrics.MonthlyPayment)
	require.NotNil(t, resp.Metrics.LoanToValuePct)
	assert.NotEmpty(t, resp.ProcessedAt)
}

func TestAnalyzeTextBestEffort(t *testing.T) {
	svc := newTestAppraisalService(nil)

	resp := svc.AnalyzeText("completely unrelated text")

	assert.Empty(t, resp.Customers)
	assert.Empty(t, resp.Schedule)
	assert.Nil(t, resp.Metrics.MonthlyPayment)
	assert.Equal(t, dto.FinancialData{}, resp.Financial)
}

func TestAnalyzeDocumentPlainText(t *testing.T) {
	cache := repository.NewMockCache()
	svc := newTestAppraisalService(cache)

	resp, err := svc.AnalyzeDocument("application.txt", []byte(sampleApplicationText))
	require.NoError(t, err)
	assert.Equal(t, "Nguyen Van A", resp.Primary.FullName)
	assert.Equal(t, 1, cache.SetCalls)

	// Second upload of the same bytes is served from cache.
	again, err := svc.AnalyzeDocument("renamed.txt", []byte(sampleApplicationText))
	require.NoError(t, err)
	assert.Equal(t, resp.Financial, again.Financial)
	assert.Equal(t, resp.Schedule, again.Schedule)
	assert.Equal(t, 1, cache.SetCalls)
	assert.Equal(t, 2, cache.GetCalls)
}

func TestAnalyzeDocumentUnsupportedType(t *testing.T) {
	svc := newTestAppraisalService(nil)

	_, err := svc.AnalyzeDocument("application.docx", []byte("irrelevant"))
	assert.ErrorIs(t, err, dto.ErrUnsupportedFile)
}

func TestAnalyzeDocumentEmptyText(t *testing.T) {
	svc := newTestAppraisalService(nil)

	_, err := svc.AnalyzeDocument("blank.txt", []byte("   \n  \n"))
	assert.ErrorIs(t, err, dto.ErrEmptyDocument)
}

func TestMergeRecords(t *testing.T) {
	svc := newTestAppraisalService(nil)

	extraction := dto.ExtractionResult{
		Customers: []dto.CustomerData{{FullName: "Nguyen Van A"}},
		Financial: dto.FinancialData{
			LoanAmount:         120_000_000,
			AnnualInterestRate: 12,
			TermMonths:         12,
		},
	}

	amount := 60_000_000.0
	resp := svc.MergeRecords(dto.RecordsRequest{
		Extraction: extraction,
		Financial:  &dto.FinancialPatch{LoanAmount: &amount},
	})

	assert.Equal(t, 60_000_000.0, resp.Financial.LoanAmount)
	require.Len(t, resp.Schedule, 12)
	// First-month interest follows the corrected amount: 60M * 1%.
	assert.Equal(t, int64(600_000), resp.Schedule[0].InterestPayment)
	require.NotNil(t, resp.Metrics.MonthlyPayment)
}
