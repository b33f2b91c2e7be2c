package service

// QRCodeService renders QR codes for wallet deep links
type QRCodeService interface {
	// GeneratePNG renders content as a PNG QR code
	GeneratePNG(content string) ([]byte, error)

	// GenerateDataURI renders content as a base64 PNG data URI
	GenerateDataURI(content string) (string, error)
}
