package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"labelstrip/internal/assetid"
	"labelstrip/internal/services"
)

// Spec describes one label to render: the human-readable text and the URL the
// matrix code encodes. Specs are ephemeral; they exist only for the duration
// of a render call.
type Spec struct {
	Text    string
	Payload string
}

// NewSpec derives the label spec for an asset ID. The payload URL follows the
// inventory server's route format: https://{domain}/{itemPath}/{GGG-SSS}.
func NewSpec(domain, itemPath string, id assetid.ID) Spec {
	return Spec{
		Text:    id.String(),
		Payload: fmt.Sprintf("https://%s/%s/%s", domain, itemPath, id),
	}
}

// Options holds label cell and strip geometry. All dimensions are pixels.
type Options struct {
	TapeHeight   int
	ElementGap   int
	LabelGap     int
	FontSize     int
	QRModuleSize int
	QRQuietZone  bool
	LabelsPerRow int
}

// Renderer composes label cells and strips. Construction loads the text face
// once; rendering itself is pure computation with no caching between calls.
type Renderer struct {
	opts Options
	face font.Face
}

// New builds a Renderer for the given geometry.
func New(opts Options) (*Renderer, error) {
	if opts.TapeHeight <= 0 {
		return nil, services.Wrap(services.ErrValidation, "render", "new", "tape height must be positive", nil)
	}
	if opts.FontSize <= 0 {
		return nil, services.Wrap(services.ErrValidation, "render", "new", "font size must be positive", nil)
	}
	if opts.QRModuleSize <= 0 {
		return nil, services.Wrap(services.ErrValidation, "render", "new", "QR module size must be positive", nil)
	}
	face, err := loadFace(opts.FontSize)
	if err != nil {
		return nil, err
	}
	return &Renderer{opts: opts, face: face}, nil
}

// Cell renders a single label: matrix code on the left, the ID text stacked
// in two lines on the right, both vertically centered on a white background
// of the configured tape height.
func (r *Renderer) Cell(spec Spec) (image.Image, error) {
	qrImg, err := r.matrixCode(spec.Payload)
	if err != nil {
		return nil, err
	}
	textImg := r.textBlock(spec.Text)

	qrWidth := qrImg.Bounds().Dx()
	qrHeight := qrImg.Bounds().Dy()
	textWidth := textImg.Bounds().Dx()
	textHeight := textImg.Bounds().Dy()

	cellWidth := qrWidth + r.opts.ElementGap + textWidth
	cell := image.NewRGBA(image.Rect(0, 0, cellWidth, r.opts.TapeHeight))
	draw.Draw(cell, cell.Bounds(), image.White, image.Point{}, draw.Src)

	qrTop := (r.opts.TapeHeight - qrHeight) / 2
	draw.Draw(cell, image.Rect(0, qrTop, qrWidth, qrTop+qrHeight), qrImg, qrImg.Bounds().Min, draw.Src)

	textLeft := qrWidth + r.opts.ElementGap
	textTop := (r.opts.TapeHeight - textHeight) / 2
	draw.Draw(cell, image.Rect(textLeft, textTop, textLeft+textWidth, textTop+textHeight), textImg, image.Point{}, draw.Src)

	return cell, nil
}

// Strip renders every spec and composes the cells in order, left to right.
// LabelsPerRow > 0 wraps onto additional rows; 0 keeps a single row. Cell
// order matches the physical order the labels will be cut and applied.
func (r *Renderer) Strip(specs []Spec) (image.Image, error) {
	if len(specs) == 0 {
		return nil, services.Wrap(services.ErrValidation, "render", "strip", "no labels to render", nil)
	}

	cells := make([]image.Image, 0, len(specs))
	for _, spec := range specs {
		cell, err := r.Cell(spec)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}

	perRow := r.opts.LabelsPerRow
	if perRow <= 0 {
		perRow = len(cells)
	}

	var rows [][]image.Image
	for start := 0; start < len(cells); start += perRow {
		end := start + perRow
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, cells[start:end])
	}

	stripWidth := 0
	for _, row := range rows {
		width := 0
		for i, cell := range row {
			if i > 0 {
				width += r.opts.LabelGap
			}
			width += cell.Bounds().Dx()
		}
		if width > stripWidth {
			stripWidth = width
		}
	}
	stripHeight := len(rows)*r.opts.TapeHeight + (len(rows)-1)*r.opts.LabelGap

	strip := image.NewRGBA(image.Rect(0, 0, stripWidth, stripHeight))
	draw.Draw(strip, strip.Bounds(), image.White, image.Point{}, draw.Src)

	y := 0
	for _, row := range rows {
		x := 0
		for _, cell := range row {
			bounds := cell.Bounds()
			draw.Draw(strip, image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy()), cell, bounds.Min, draw.Src)
			x += bounds.Dx() + r.opts.LabelGap
		}
		y += r.opts.TapeHeight + r.opts.LabelGap
	}

	return strip, nil
}

func (r *Renderer) matrixCode(payload string) (image.Image, error) {
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, services.Wrap(services.ErrEncoding, "render", "qr",
			fmt.Sprintf("payload %q", payload), err)
	}
	qr.DisableBorder = !r.opts.QRQuietZone

	// Negative size asks go-qrcode for a fixed number of pixels per module.
	img := qr.Image(-r.opts.QRModuleSize)
	if img.Bounds().Dy() > r.opts.TapeHeight {
		return nil, services.Wrap(services.ErrEncoding, "render", "qr",
			fmt.Sprintf("code is %dpx tall but the tape is %dpx; shorten the payload or reduce qr_module_size",
				img.Bounds().Dy(), r.opts.TapeHeight), nil)
	}
	return img, nil
}

// textBlock draws the label text as stacked lines, one per hyphen-separated
// component, sized exactly to the rendered glyphs.
func (r *Renderer) textBlock(text string) image.Image {
	lines := strings.Split(text, "-")

	metrics := r.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()

	width := 0
	for _, line := range lines {
		if w := font.MeasureString(r.face, line).Ceil(); w > width {
			width = w
		}
	}
	height := lineHeight * len(lines)

	block := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(block, block.Bounds(), image.White, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  block,
		Src:  image.NewUniform(color.Black),
		Face: r.face,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(0, ascent+i*lineHeight)
		drawer.DrawString(line)
	}
	return block
}
