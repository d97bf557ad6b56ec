package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProductQR generates a PNG QR code linking to a product page
	GenerateProductQR(merchantID, productID string) ([]byte, error)

	// ParseProductQR returns the merchant and product encoded in a product link
	ParseProductQR(link string) (merchantID, productID string, err error)
}
