package service

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateURLQR renders the given URL as a PNG QR code.
	GenerateURLQR(url string) ([]byte, error)
}
