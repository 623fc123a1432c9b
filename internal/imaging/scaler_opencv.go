//go:build opencv

package imaging

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

type cvScaler struct{}

func newScaler() Scaler {
	return cvScaler{}
}

func (cvScaler) Scale(dst *image.RGBA, data []byte) error {
	src, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	defer src.Close()
	if src.Empty() {
		return errors.New("decode image: unsupported format")
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(src, &resized, image.Pt(dst.Rect.Dx(), dst.Rect.Dy()), 0, 0, gocv.InterpolationArea)

	rgba := gocv.NewMat()
	defer rgba.Close()
	gocv.CvtColor(resized, &rgba, gocv.ColorBGRToRGBA)

	pix := rgba.ToBytes()
	if len(pix) != len(dst.Pix) {
		return fmt.Errorf("scale image: got %d bytes, want %d", len(pix), len(dst.Pix))
	}
	copy(dst.Pix, pix)
	return nil
}
