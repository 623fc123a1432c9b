//go:build !opencv

package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

type drawScaler struct {
	interpolator draw.Interpolator
}

func newScaler() Scaler {
	return drawScaler{interpolator: draw.CatmullRom}
}

func (s drawScaler) Scale(dst *image.RGBA, data []byte) error {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	s.interpolator.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return nil
}
