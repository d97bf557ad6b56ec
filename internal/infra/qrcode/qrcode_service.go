package qrcode

import (
	"net/url"
	"strings"

	"pabw/config"
	"pabw/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://127.0.0.1:5173"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	size, levelName, base := defaultSize, "M", defaultBaseURL
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			levelName = cfg.QRCode.ErrorCorrectionLevel
		}
		if cfg.QRCode.BaseURL != "" {
			base = cfg.QRCode.BaseURL
		}
	}

	baseURL, err := url.Parse(strings.TrimSuffix(base, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid qrcode base url")
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch levelName {
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
		baseURL:              baseURL,
	}, nil
}

// GenerateProductQR generates a QR code for the public product page
func (s *qrcodeService) GenerateProductQR(merchantID, productID string) ([]byte, error) {
	if merchantID == "" || productID == "" {
		return nil, errors.New("merchant and product ids are required")
	}

	link := s.baseURL.JoinPath(merchantID, productID)

	qrCode, err := qrcode.New(link.String(), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProductQR parses a scanned product link back into its ids
func (s *qrcodeService) ParseProductQR(link string) (string, string, error) {
	parsed, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", "", errors.Wrap(err, "failed to parse QR code link")
	}

	if parsed.Host != s.baseURL.Host {
		return "", "", errors.Errorf("QR code points to foreign host: %s", parsed.Host)
	}

	rest := strings.TrimPrefix(parsed.Path, s.baseURL.Path)
	segments := strings.Split(strings.Trim(rest, "/"), "/")
	if len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		return "", "", errors.Errorf("not a product link: %s", parsed.Path)
	}

	return segments[0], segments[1], nil
}
