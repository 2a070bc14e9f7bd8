package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/dungle2901/loan-appraisal/dto"
	"github.com/dungle2901/loan-appraisal/service"

	"github.com/gin-gonic/gin"
)

type AppraisalHandler struct {
	appraisalService *service.AppraisalService
	maxFileSize      int64
}

func NewAppraisalHandler(appraisalService *service.AppraisalService, maxFileSize int64) *AppraisalHandler {
	return &AppraisalHandler{
		appraisalService: appraisalService,
		maxFileSize:      maxFileSize,
	}
}

// Analyze handles POST /appraisal/analyze: one uploaded application
// document in, full appraisal out.
func (h *AppraisalHandler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}
	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		h.sendError(c, http.StatusRequestEntityTooLarge, "File too large", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to open file", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read file", err)
		return
	}

	log.Printf("Analyzing application document %s (%d bytes)", fileHeader.Filename, len(data))

	response, err := h.appraisalService.AnalyzeDocument(fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrUnsupportedFile):
			h.sendError(c, http.StatusBadRequest, "Unsupported file type", err)
		case errors.Is(err, dto.ErrEmptyDocument):
			h.sendError(c, http.StatusUnprocessableEntity, "Document contains no readable text", err)
		default:
			h.sendError(c, http.StatusInternalServerError, "Failed to analyze document", err)
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// Schedule handles POST /appraisal/schedule: explicit financial record in,
// repayment plan out. An empty schedule means insufficient data.
func (h *AppraisalHandler) Schedule(c *gin.Context) {
	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	schedule, summary := h.appraisalService.Schedule(req.Financial)
	c.JSON(http.StatusOK, dto.ScheduleResponse{
		Schedule: schedule,
		Summary:  summary,
	})
}

// Metrics handles POST /appraisal/metrics.
func (h *AppraisalHandler) Metrics(c *gin.Context) {
	var req dto.MetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	c.JSON(http.StatusOK, h.appraisalService.MetricsFor(req.Financial, req.Collateral))
}

// Records handles POST /appraisal/records: extraction snapshot plus officer
// patches in, merged records and recomputed artifacts out.
func (h *AppraisalHandler) Records(c *gin.Context) {
	var req dto.RecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	c.JSON(http.StatusOK, h.appraisalService.MergeRecords(req))
}

// sendError sends a structured error response
func (h *AppraisalHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "APPRAISAL_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
