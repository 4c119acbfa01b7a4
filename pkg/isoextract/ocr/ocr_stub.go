//go:build !ocr

// Package ocr reads text from a fixed pixel region of rendered drawing pages.
//
// This is the stub used when the "ocr" build tag is not set. Recognition
// returns ErrOCRNotEnabled. To enable it, rebuild with:
//
//	go build -tags ocr
package ocr

// Client is a stub OCR client.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns ErrOCRNotEnabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}
