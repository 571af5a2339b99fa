package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int, amount int64) ([]byte, error)
}

// DefaultQRGenerator encodes a simulated QRIS payment payload as a PNG.
type DefaultQRGenerator struct {
	MerchantName string
}

func (g DefaultQRGenerator) Generate(orderID int, amount int64) ([]byte, error) {
	payload := fmt.Sprintf("QRIS|merchant=%s|order=%d|amount=%d", g.MerchantName, orderID, amount)
	return qrcode.Encode(payload, qrcode.Medium, 256)
}
