package render_test

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"labelstrip/internal/assetid"
	"labelstrip/internal/render"
	"labelstrip/internal/services"
)

func testOptions() render.Options {
	return render.Options{
		TapeHeight:   76,
		ElementGap:   6,
		LabelGap:     1,
		FontSize:     32,
		QRModuleSize: 2,
		QRQuietZone:  true,
		LabelsPerRow: 0,
	}
}

func mustID(t *testing.T, value string) assetid.ID {
	t.Helper()
	id, err := assetid.Parse(value)
	if err != nil {
		t.Fatalf("Parse(%q): %v", value, err)
	}
	return id
}

func TestNewSpecPayloadContainsID(t *testing.T) {
	spec := render.NewSpec("box.example.com", "a", mustID(t, "001-086"))
	if spec.Payload != "https://box.example.com/a/001-086" {
		t.Fatalf("unexpected payload: %q", spec.Payload)
	}
	if spec.Text != "001-086" {
		t.Fatalf("unexpected text: %q", spec.Text)
	}
}

func TestCellGeometry(t *testing.T) {
	renderer, err := render.New(testOptions())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	cell, err := renderer.Cell(render.NewSpec("box.example.com", "a", mustID(t, "004-012")))
	if err != nil {
		t.Fatalf("Cell returned error: %v", err)
	}
	if cell.Bounds().Dy() != 76 {
		t.Fatalf("cell height %d, want tape height 76", cell.Bounds().Dy())
	}
	if cell.Bounds().Dx() <= 0 {
		t.Fatalf("cell width %d, want positive", cell.Bounds().Dx())
	}
	if !hasInk(cell) {
		t.Fatal("expected rendered cell to contain dark pixels")
	}
}

func TestStripSingleRowWidth(t *testing.T) {
	opts := testOptions()
	renderer, err := render.New(opts)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	specs := []render.Spec{
		render.NewSpec("box.example.com", "a", mustID(t, "001-086")),
		render.NewSpec("box.example.com", "a", mustID(t, "001-087")),
	}
	var cellWidth [2]int
	for i, spec := range specs {
		cell, err := renderer.Cell(spec)
		if err != nil {
			t.Fatalf("Cell returned error: %v", err)
		}
		cellWidth[i] = cell.Bounds().Dx()
	}

	strip, err := renderer.Strip(specs)
	if err != nil {
		t.Fatalf("Strip returned error: %v", err)
	}
	if strip.Bounds().Dy() != opts.TapeHeight {
		t.Fatalf("strip height %d, want %d", strip.Bounds().Dy(), opts.TapeHeight)
	}
	wantWidth := cellWidth[0] + opts.LabelGap + cellWidth[1]
	if strip.Bounds().Dx() != wantWidth {
		t.Fatalf("strip width %d, want %d", strip.Bounds().Dx(), wantWidth)
	}
}

func TestStripWrapsRows(t *testing.T) {
	opts := testOptions()
	opts.LabelsPerRow = 2
	renderer, err := render.New(opts)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ids, err := assetid.Range("001-001", "001-003")
	if err != nil {
		t.Fatalf("Range returned error: %v", err)
	}
	specs := make([]render.Spec, 0, len(ids))
	for _, id := range ids {
		specs = append(specs, render.NewSpec("box.example.com", "a", id))
	}

	strip, err := renderer.Strip(specs)
	if err != nil {
		t.Fatalf("Strip returned error: %v", err)
	}
	wantHeight := 2*opts.TapeHeight + opts.LabelGap
	if strip.Bounds().Dy() != wantHeight {
		t.Fatalf("strip height %d, want %d for two rows", strip.Bounds().Dy(), wantHeight)
	}
}

func TestStripRejectsEmptyInput(t *testing.T) {
	renderer, err := render.New(testOptions())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := renderer.Strip(nil); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCellRejectsOversizedPayload(t *testing.T) {
	renderer, err := render.New(testOptions())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	spec := render.Spec{
		Text:    "001-001",
		Payload: "https://" + strings.Repeat("very-long-domain.", 20) + "example.com/a/001-001",
	}
	if _, err := renderer.Cell(spec); !errors.Is(err, services.ErrEncoding) {
		t.Fatalf("expected encoding error for oversized payload, got %v", err)
	}
}

func TestCellRejectsPayloadBeyondQRCapacity(t *testing.T) {
	renderer, err := render.New(testOptions())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	spec := render.Spec{Text: "001-001", Payload: strings.Repeat("x", 4000)}
	if _, err := renderer.Cell(spec); !errors.Is(err, services.ErrEncoding) {
		t.Fatalf("expected encoding error beyond QR capacity, got %v", err)
	}
}

func TestNewRejectsBadGeometry(t *testing.T) {
	opts := testOptions()
	opts.TapeHeight = 0
	if _, err := render.New(opts); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for zero tape height, got %v", err)
	}
}

func hasInk(img image.Image) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if gray.Y < 128 {
				return true
			}
		}
	}
	return false
}
