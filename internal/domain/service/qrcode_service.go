package service

// QRCodeService renders content into a QR code image. Used for on-site job
// check-in codes.
type QRCodeService interface {
	// Generate returns the PNG bytes of a QR code encoding content.
	Generate(content string) ([]byte, error)
}
