// Package qrcode renders checkout URLs as scannable PNG images.
package qrcode

import (
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"matrimony/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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
	}
}

// EncodeURL renders the given URL as a PNG image.
func (s *qrcodeService) EncodeURL(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code")
	}

	return png, nil
}
