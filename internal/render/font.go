package render

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"labelstrip/internal/services"
)

// loadFace builds the label text face. Go Bold is embedded with the binary so
// label output does not depend on host font configuration; thermal printers
// reproduce heavy strokes more cleanly than regular weights.
func loadFace(size int) (font.Face, error) {
	parsed, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, services.Wrap(services.ErrResource, "render", "font", "parse embedded Go Bold", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, services.Wrap(services.ErrResource, "render", "font", "build face", err)
	}
	return face, nil
}
