package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const (
	MinSize     = 128
	MaxSize     = 1024
	DefaultSize = 256
)

// QRService renders gift card redemption links as PNG QR codes.
type QRService struct {
	level qrcode.RecoveryLevel
}

func NewQRService() *QRService {
	return &QRService{level: qrcode.Medium}
}

// GenerateQRCode encodes content as a size x size PNG. Out of range sizes
// are clamped.
func (s *QRService) GenerateQRCode(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if size < MinSize {
		size = MinSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	png, err := qrcode.Encode(content, s.level, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}
