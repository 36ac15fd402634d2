package qrcode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"bazaar/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const cardType = "marketplace_card"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// CardCodeData is the payload encoded in a card share code
type CardCodeData struct {
	CardID string `json:"card_id"`
	Type   string `json:"type"`
	URL    string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance. baseURL, when set,
// is the marketplace page the code links to.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateCardQR generates a PNG share code for a marketplace card
func (s *qrcodeService) GenerateCardQR(cardID int64) ([]byte, error) {
	if cardID <= 0 {
		return nil, fmt.Errorf("invalid card ID: %d", cardID)
	}

	data := CardCodeData{
		CardID: strconv.FormatInt(cardID, 10),
		Type:   cardType,
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/marketplace?card=%d", s.baseURL, cardID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCardQR parses QR code data and returns the card ID
func (s *qrcodeService) ParseCardQR(qrData string) (int64, error) {
	var data CardCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != cardType {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	cardID, err := strconv.ParseInt(data.CardID, 10, 64)
	if err != nil || cardID <= 0 {
		return 0, fmt.Errorf("invalid card ID: %q", data.CardID)
	}

	return cardID, nil
}
