package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dungle2901/loan-appraisal/client"
	"github.com/dungle2901/loan-appraisal/dto"
	"github.com/dungle2901/loan-appraisal/repository"
	"github.com/dungle2901/loan-appraisal/utils"
)

type AppraisalService struct {
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
	calculator      *FinancialCalculator
	cache           repository.CacheRepository
	cacheTTL        time.Duration
}

func NewAppraisalService(
	tesseractClient *client.TesseractClient,
	pdfProcessor PDFProcessor,
	calculator *FinancialCalculator,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
) *AppraisalService {
	return &AppraisalService{
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
		calculator:      calculator,
		cache:           cache,
		cacheTTL:        cacheTTL,
	}
}

// AnalyzeDocument runs the full pipeline on an uploaded application file:
// bytes -> text -> extraction -> records -> schedule + metrics. Results are
// cached by content digest so a re-uploaded document is not parsed or OCRed
// twice.
func (s *AppraisalService) AnalyzeDocument(filename string, data []byte) (*dto.AppraisalResponse, error) {
	digest := sha256.Sum256(data)
	key := "appraisal:" + hex.EncodeToString(digest[:])

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			var resp dto.AppraisalResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				log.Printf("Cache hit for %s", filename)
				return &resp, nil
			}
		}
	}

	text, err := s.extractText(filename, data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, dto.ErrEmptyDocument
	}

	resp := s.AnalyzeText(text)

	if s.cache != nil {
		if encoded, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(key, string(encoded), s.cacheTTL); err != nil {
				log.Printf("Warning: failed to cache appraisal result: %v", err)
			}
		}
	}

	return resp, nil
}

// AnalyzeText appraises already-decoded application text. Extraction is
// best-effort; text that matches nothing yields empty records, an empty
// schedule and no metrics, never an error.
func (s *AppraisalService) AnalyzeText(text string) *dto.AppraisalResponse {
	manager := NewDataManager()
	manager.ApplyExtraction(utils.ParseLoanApplication(text))

	schedule := s.calculator.PaymentSchedule(manager.Financial())
	original := manager.Original()

	return &dto.AppraisalResponse{
		Customers:   original.Customers,
		Primary:     manager.Customer(),
		Financial:   manager.Financial(),
		Collateral:  manager.Collateral(),
		Schedule:    schedule,
		Summary:     s.calculator.Summarize(schedule),
		Metrics:     s.calculator.Metrics(manager.Financial(), manager.Collateral()),
		Found:       original.Found,
		Warnings:    original.Warnings,
		ProcessedAt: time.Now().Format(time.RFC3339),
	}
}

// Schedule computes a repayment plan from an explicit financial record, e.g.
// after officer corrections.
func (s *AppraisalService) Schedule(fin dto.FinancialData) ([]dto.PaymentScheduleEntry, dto.ScheduleSummary) {
	schedule := s.calculator.PaymentSchedule(fin)
	return schedule, s.calculator.Summarize(schedule)
}

// MetricsFor computes the appraisal ratios from explicit records.
func (s *AppraisalService) MetricsFor(fin dto.FinancialData, coll dto.CollateralData) dto.FinancialMetrics {
	return s.calculator.Metrics(fin, coll)
}

// MergeRecords applies officer patches on top of an extraction snapshot and
// recomputes the derived artifacts from the merged records.
func (s *AppraisalService) MergeRecords(req dto.RecordsRequest) *dto.RecordsResponse {
	manager := NewDataManager()
	manager.ApplyExtraction(req.Extraction)

	if req.Customer != nil {
		manager.PatchCustomer(*req.Customer)
	}
	if req.Financial != nil {
		manager.PatchFinancial(*req.Financial)
	}
	if req.Collateral != nil {
		manager.PatchCollateral(*req.Collateral)
	}

	schedule := s.calculator.PaymentSchedule(manager.Financial())

	return &dto.RecordsResponse{
		Customer:   manager.Customer(),
		Financial:  manager.Financial(),
		Collateral: manager.Collateral(),
		Schedule:   schedule,
		Summary:    s.calculator.Summarize(schedule),
		Metrics:    s.calculator.Metrics(manager.Financial(), manager.Collateral()),
	}
}

func (s *AppraisalService) extractText(filename string, data []byte) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".txt":
		return string(data), nil
	case ".pdf":
		return s.extractPDFText(filename, data)
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return s.ocrImageBytes(data, ext)
	default:
		return "", dto.ErrUnsupportedFile
	}
}

// extractPDFText tries the embedded text layer first and falls back to
// page-image OCR for scanned applications.
func (s *AppraisalService) extractPDFText(filename string, data []byte) (string, error) {
	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		log.Printf("PDF text extraction failed for %s: %v", filename, err)
	}
	if len(strings.TrimSpace(text)) >= 20 {
		return text, nil
	}

	log.Printf("PDF %s has little embedded text, attempting page-image OCR", filename)
	images, imgErr := s.pdfProcessor.ExtractPageImages(data)
	if imgErr != nil {
		return text, fmt.Errorf("failed to extract page images: %w", imgErr)
	}

	var combined strings.Builder
	for _, img := range images {
		pageText, ocrErr := s.tesseractClient.ExtractTextFromImage(img)
		if ocrErr != nil {
			log.Printf("Warning: OCR failed for a page of %s: %v", filename, ocrErr)
			continue
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}

	if combined.Len() > 0 {
		return combined.String(), nil
	}
	return text, nil
}

func (s *AppraisalService) ocrImageBytes(data []byte, ext string) (string, error) {
	tempFile, err := os.CreateTemp("", "appraisal-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	tempFile.Close()

	text, conf, err := s.tesseractClient.ExtractTextAndQuality(tempFile.Name())
	if err != nil {
		return "", fmt.Errorf("image OCR failed: %w", err)
	}
	log.Printf("Image OCR confidence: %.1f", conf)
	return text, nil
}
