package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"mime/multipart"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/dungle2901/loan-appraisal/client"
	"github.com/dungle2901/loan-appraisal/dto"
	"github.com/dungle2901/loan-appraisal/utils"
)

// IDCardService reads citizen ID cards uploaded as images, QR code first
// with OCR as fallback, and cross-checks the card against the customer
// identity extracted from the application.
type IDCardService struct {
	tesseractClient *client.TesseractClient
}

func NewIDCardService(tesseractClient *client.TesseractClient) *IDCardService {
	return &IDCardService{
		tesseractClient: tesseractClient,
	}
}

// Verify extracts identity data from a card image and scores it against the
// expected customer name.
func (s *IDCardService) Verify(fileHeader *multipart.FileHeader, expectedName string) (*dto.IDCardVerifyResponse, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	card, err := s.extractFromQR(img)
	if err != nil {
		log.Printf("QR extraction failed for %s (%v), falling back to OCR", fileHeader.Filename, err)
		card, err = s.extractFromOCR(img)
		if err != nil {
			return nil, err
		}
	}

	resp := &dto.IDCardVerifyResponse{
		Card:         *card,
		ExpectedName: expectedName,
	}
	if expectedName != "" && card.FullName != "" {
		resp.NameMatch = utils.CompareNames(expectedName, card.FullName)
		resp.NameSimilarity = utils.NameSimilarity(expectedName, card.FullName)
	}

	return resp, nil
}

func (s *IDCardService) extractFromQR(img image.Image) (*dto.IDCardData, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	qrReader := qrcode.NewQRCodeReader()
	result, err := qrReader.Decode(bmp, nil)
	if err != nil {
		return nil, dto.ErrNoQRCode
	}

	card, err := utils.ParseIDCardQR(result.GetText())
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *IDCardService) extractFromOCR(img image.Image) (*dto.IDCardData, error) {
	text, err := s.tesseractClient.ExtractTextFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("OCR extraction failed: %w", err)
	}

	card := utils.ParseIDCardText(text)
	if card.IDNumber == "" && card.FullName == "" {
		return nil, fmt.Errorf("could not extract meaningful identity data from OCR text")
	}
	return &card, nil
}
