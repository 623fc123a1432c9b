package imaging

import "image"

// Scaler decodes encoded image bytes and fills dst, stretching to dst's bounds.
type Scaler interface {
	Scale(dst *image.RGBA, data []byte) error
}

// NewScaler returns the scaler selected at build time.
func NewScaler() Scaler {
	return newScaler()
}
