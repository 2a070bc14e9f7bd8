package utils

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/dungle2901/loan-appraisal/dto"
)

// fieldSpec binds one vocabulary field to its label pattern and normalizer.
// The first match in document order wins. Patterns compiled with (?s) scan
// past newlines, for labels whose value is separated from them by
// intervening text.
type fieldSpec struct {
	name    string
	pattern *regexp.Regexp
	assign  func(res *dto.ExtractionResult, raw string) error
}

var financialSchema = []fieldSpec{
	{
		name:    dto.FieldTotalCapitalNeeded,
		pattern: regexp.MustCompile(`Tổng nhu cầu vốn:\s*([\d.,]+)`),
		assign: func(res *dto.ExtractionResult, raw string) error {
			v, err := NormalizeCurrency(raw)
			res.Financial.TotalCapitalNeeded = v
			return err
		},
	},
	{
		name:    dto.FieldOwnerCapital,
		pattern: regexp.MustCompile(`(?s)Vốn đối ứng tham gia.*?:\s*([\d.,]+)`),
		assign: func(res *dto.ExtractionResult, raw string) error {
			v, err := NormalizeCurrency(raw)
			res.Financial.OwnerCapital = v
			return err
		},
	},
	{
		name:    dto.FieldLoanAmount,
		pattern: regexp.MustCompile(`Vốn vay Agribank số tiền:\s*([\d.,]+)`),
		assign: func(res *dto.ExtractionResult, raw string) error {
			v, err := NormalizeCurrency(raw)
			res.Financial.LoanAmount = v
			return err
		},
	},
	{
		name:    dto.FieldPurpose,
		pattern: regexp.MustCompile(`Mục đích vay:\s*([^\n]+)`),
		assign: func(res *dto.ExtractionResult, raw string) error {
			res.Financial.Purpose = raw
			return nil
		},
	},
	{
		name:    dto.FieldTermMonths,
		pattern: regexp.MustCompile(`Thời hạn vay:\s*(\d+)`),
		assign: func(res *dto.ExtractionResult, raw string) error {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("unparseable term %q", raw)
			}
			res.Financial.TermMonths = v
			return nil
		},
	},
	{
		name:    dto.FieldInterestRate,
		pattern: regexp.MustCompile(`Lãi suất:\s*([\d.,]+)%`),
		assign: func(res *dto.ExtractionResult, raw string) error {
			v, err := NormalizeRate(raw)
			res.Financial.AnnualInterestRate = v
			return err
		},
	},
}

var collateralSchema = []fieldSpec{
	{
		name:    dto.FieldMarketValue,
		pattern: regexp.MustCompile(`(?s)Tài sản \d+.*?Giá trị.*?:\s*([\d.,]+)`),
		assign: func(res *dto.ExtractionResult, raw string) error {
			v, err := NormalizeCurrency(raw)
			res.Collateral.MarketValue = v
			return err
		},
	},
	{
		name:    dto.FieldAssetAddress,
		pattern: regexp.MustCompile(`Địa chỉ.*?:\s*([^\n]+)`),
		assign: func(res *dto.ExtractionResult, raw string) error {
			res.Collateral.AssetAddress = raw
			return nil
		},
	},
	{
		name:    dto.FieldLegalDocuments,
		pattern: regexp.MustCompile(`Giấy tờ pháp lý:\s*([^\n]+)`),
		assign: func(res *dto.ExtractionResult, raw string) error {
			res.Collateral.LegalDocuments = raw
			return nil
		},
	},
}

// Customer blocks start at a numbered name label. Within a block the
// remaining identity fields use plain single-match patterns.
var (
	customerBlockRe = regexp.MustCompile(`\d+\. Họ và tên:`)
	customerIDRe    = regexp.MustCompile(`CMND/CCCD/hộ chiếu:\s*([^\n]+)`)
	customerAddrRe  = regexp.MustCompile(`Nơi cư trú:\s*([^\n]+)`)
	customerPhoneRe = regexp.MustCompile(`Số điện thoại:\s*([^\n]+)`)
)

// ParseLoanApplication runs the full extraction pass over a loan-application
// text: customer blocks, financial fields, collateral fields, and the
// derived ratios, all from this single pass. It never fails; text that
// matches nothing yields an empty result.
func ParseLoanApplication(text string) dto.ExtractionResult {
	var res dto.ExtractionResult

	res.Customers = extractCustomers(text)
	if len(res.Customers) > 0 {
		markPrimaryFields(&res)
	}

	for _, fs := range financialSchema {
		applyField(&res, fs, text)
	}
	for _, fs := range collateralSchema {
		applyField(&res, fs, text)
	}

	deriveFields(&res)
	return res
}

// extractCustomers splits the text on the numbered name marker. The preamble
// before the first marker is discarded; each remaining segment becomes a
// customer only if at least one field matched inside it.
func extractCustomers(text string) []dto.CustomerData {
	blocks := customerBlockRe.Split(text, -1)
	if len(blocks) < 2 {
		return nil
	}

	var customers []dto.CustomerData
	for _, block := range blocks[1:] {
		var c dto.CustomerData
		matched := false

		// Name is whatever precedes the first hyphen on the block's
		// first line.
		firstLine := block
		if i := strings.IndexByte(block, '\n'); i >= 0 {
			firstLine = block[:i]
		}
		name := firstLine
		if i := strings.IndexByte(firstLine, '-'); i >= 0 {
			name = firstLine[:i]
		}
		if name = strings.TrimSpace(name); name != "" {
			c.FullName = name
			matched = true
		}

		if m := customerIDRe.FindStringSubmatch(block); len(m) > 1 {
			c.IDNumber = strings.TrimSpace(m[1])
			matched = true
		}
		if m := customerAddrRe.FindStringSubmatch(block); len(m) > 1 {
			c.Address = strings.TrimSpace(m[1])
			matched = true
		}
		if m := customerPhoneRe.FindStringSubmatch(block); len(m) > 1 {
			c.Phone = strings.TrimSpace(m[1])
			matched = true
		}

		if matched {
			customers = append(customers, c)
		}
	}
	return customers
}

func markPrimaryFields(res *dto.ExtractionResult) {
	primary := res.Customers[0]
	if primary.FullName != "" {
		res.Found = append(res.Found, dto.FieldFullName)
	}
	if primary.IDNumber != "" {
		res.Found = append(res.Found, dto.FieldIDNumber)
	}
	if primary.Address != "" {
		res.Found = append(res.Found, dto.FieldAddress)
	}
	if primary.Phone != "" {
		res.Found = append(res.Found, dto.FieldPhone)
	}
}

func applyField(res *dto.ExtractionResult, fs fieldSpec, text string) {
	m := fs.pattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return
	}
	if err := fs.assign(res, strings.TrimSpace(m[1])); err != nil {
		msg := fmt.Sprintf("field %s: %v", fs.name, err)
		log.Printf("Warning: %s", msg)
		res.Warnings = append(res.Warnings, msg)
	}
	res.Found = append(res.Found, fs.name)
}

// deriveFields computes the ratios that are never parsed from text. Both are
// fed from this extraction pass, so the loan amount used for LTV is the one
// already in hand.
func deriveFields(res *dto.ExtractionResult) {
	if res.Has(dto.FieldTotalCapitalNeeded) && res.Has(dto.FieldOwnerCapital) &&
		res.Financial.TotalCapitalNeeded > 0 {
		res.Financial.OwnerCapitalRatio =
			res.Financial.OwnerCapital / res.Financial.TotalCapitalNeeded * 100
		res.Found = append(res.Found, dto.FieldOwnerCapitalRatio)
	}

	if res.Has(dto.FieldMarketValue) {
		res.Collateral.AssetType = "Bất động sản"
		res.Found = append(res.Found, dto.FieldAssetType)

		if res.Collateral.MarketValue > 0 {
			res.Collateral.LoanToValuePct =
				res.Financial.LoanAmount / res.Collateral.MarketValue * 100
			res.Found = append(res.Found, dto.FieldLoanToValue)
		}
	}
}
