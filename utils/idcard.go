package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dungle2901/loan-appraisal/dto"
)

// Chip-based CCCD cards carry a pipe-separated QR payload:
//
//	id|old id|full name|ddmmyyyy birth|gender|address|ddmmyyyy issued
//
// Older cards omit the trailing fields, so only the first three are required.

// ParseIDCardQR decodes the QR payload of a citizen ID card.
func ParseIDCardQR(payload string) (dto.IDCardData, error) {
	parts := strings.Split(payload, "|")
	if len(parts) < 3 {
		return dto.IDCardData{}, fmt.Errorf("unexpected QR payload with %d fields", len(parts))
	}

	card := dto.IDCardData{
		IDNumber:    strings.TrimSpace(parts[0]),
		OldIDNumber: strings.TrimSpace(parts[1]),
		FullName:    strings.TrimSpace(parts[2]),
		Source:      "qr",
	}
	if len(parts) > 3 {
		card.DateOfBirth = formatCardDate(parts[3])
	}
	if len(parts) > 4 {
		card.Gender = strings.TrimSpace(parts[4])
	}
	if len(parts) > 5 {
		card.Address = strings.TrimSpace(parts[5])
	}
	if len(parts) > 6 {
		card.IssueDate = formatCardDate(parts[6])
	}

	if card.IDNumber == "" || card.FullName == "" {
		return dto.IDCardData{}, fmt.Errorf("QR payload missing id number or name")
	}
	return card, nil
}

// formatCardDate turns the card's compact ddmmyyyy form into dd/mm/yyyy.
// Anything of unexpected length is passed through untouched.
func formatCardDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) != 8 {
		return raw
	}
	return raw[:2] + "/" + raw[2:4] + "/" + raw[4:]
}

var (
	cardNumberRe = regexp.MustCompile(`(?i)(?:Số|So)\s*[:/]?\s*(\d{9,12})`)
	cardNameRe   = regexp.MustCompile(`(?i)(?:Họ và tên|Ho va ten|Full name)\s*[:/]?\s*([^\n]+)`)
	cardDOBRe    = regexp.MustCompile(`(?i)(?:Ngày sinh|Ngay sinh|Date of birth)\s*[:/]?\s*(\d{2}[/-]\d{2}[/-]\d{4})`)
	cardAddrRe   = regexp.MustCompile(`(?i)(?:Nơi thường trú|Noi thuong tru|Place of residence)\s*[:/]?\s*([^\n]+)`)
)

// ParseIDCardText is the OCR fallback for cards whose QR code cannot be
// read. Best effort: fields that do not match stay empty.
func ParseIDCardText(text string) dto.IDCardData {
	card := dto.IDCardData{Source: "ocr"}

	if m := cardNumberRe.FindStringSubmatch(text); len(m) > 1 {
		card.IDNumber = m[1]
	}
	if m := cardNameRe.FindStringSubmatch(text); len(m) > 1 {
		card.FullName = strings.TrimSpace(m[1])
	}
	if m := cardDOBRe.FindStringSubmatch(text); len(m) > 1 {
		card.DateOfBirth = strings.ReplaceAll(m[1], "-", "/")
	}
	if m := cardAddrRe.FindStringSubmatch(text); len(m) > 1 {
		card.Address = strings.TrimSpace(m[1])
	}

	return card
}
