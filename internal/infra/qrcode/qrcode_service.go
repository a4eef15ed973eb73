// Package qrcode renders QR code images.
package qrcode

import (
	"wrench/config"
	"wrench/internal/domain/service"

	"github.com/pkg/errors"
	qr "github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size  int
	level qr.RecoveryLevel
}

// NewQRCodeService creates the QR renderer from configuration.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qr.Medium
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		switch cfg.QRCode.ErrorCorrectionLevel {
		case "low":
			level = qr.Low
		case "high":
			level = qr.High
		case "highest":
			level = qr.Highest
		}
	}

	return &qrcodeService{size: size, level: level}
}

// Generate returns the PNG bytes of a QR code encoding content.
func (s *qrcodeService) Generate(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr content must not be empty")
	}

	png, err := qr.Encode(content, s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode qr code")
	}

	return png, nil
}
