package service

import (
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate() ([]byte, error)
}

// SiteQRGenerator encodes the public site URL, for printing on the truck.
type SiteQRGenerator struct {
	SiteURL string
	Size    int
}

func (g SiteQRGenerator) Generate() ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(g.SiteURL, qrcode.Medium, size)
}
