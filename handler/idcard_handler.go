package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/dungle2901/loan-appraisal/dto"
	"github.com/dungle2901/loan-appraisal/service"

	"github.com/gin-gonic/gin"
)

type IDCardHandler struct {
	idcardService *service.IDCardService
}

func NewIDCardHandler(idcardService *service.IDCardService) *IDCardHandler {
	return &IDCardHandler{
		idcardService: idcardService,
	}
}

// Verify handles POST /idcard/verify: a card image plus the expected
// customer name, returning the decoded card and the name match score.
func (h *IDCardHandler) Verify(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	expectedName := c.PostForm("expected_name")

	log.Printf("Verifying ID card %s against %q", fileHeader.Filename, expectedName)

	response, err := h.idcardService.Verify(fileHeader, expectedName)
	if err != nil {
		if errors.Is(err, dto.ErrNoQRCode) {
			h.sendError(c, http.StatusUnprocessableEntity, "Card could not be read", err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "Failed to verify ID card", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *IDCardHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "IDCARD_VERIFICATION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
