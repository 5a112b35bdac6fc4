// Package service defines domain-level capability interfaces implemented by
// the infrastructure layer.
package service

// QRCodeService renders a checkout URL as a scannable PNG.
type QRCodeService interface {
	// EncodeURL renders the given URL as a PNG image.
	EncodeURL(url string) ([]byte, error)
}
