package service

// QRCodeService defines the interface for marketplace card share codes
type QRCodeService interface {
	// GenerateCardQR renders a PNG QR code linking to the card
	GenerateCardQR(cardID int64) ([]byte, error)

	// ParseCardQR parses QR code data and returns the card ID
	ParseCardQR(qrData string) (int64, error)
}
