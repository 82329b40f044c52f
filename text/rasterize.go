package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"
)

// Span is a horizontal run of pixels with equal coverage.
// Coordinates are relative to the pen position on the baseline, y down.
// The run covers [X0, X1) on row Y.
type Span struct {
	X0, X1 int32
	Y      int32
	Alpha  uint8
}

// Mask is the rasterized coverage of one glyph.
type Mask struct {
	Spans  []Span
	Bounds image.Rectangle
}

// Rasterize renders the outline of glyph gid of font fontID at size pixels
// per em into coverage spans. Glyphs without an outline yield an empty mask.
func (fs *FontSystem) Rasterize(fontID uint64, gid uint16, size float32) (*Mask, error) {
	e, err := fs.font(fontID)
	if err != nil {
		return nil, err
	}

	var buf sfnt.Buffer
	segments, err := e.sfnt.LoadGlyph(&buf, sfnt.GlyphIndex(gid), floatToFixed(size), nil)
	if err != nil {
		return nil, fmt.Errorf("text: load glyph %d: %w", gid, err)
	}
	if len(segments) == 0 {
		return &Mask{}, nil
	}

	b := segments.Bounds()
	bounds := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	if bounds.Empty() {
		return &Mask{}, nil
	}

	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	for i, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if i > 0 {
				z.ClosePath()
			}
			z.MoveTo(fixedToFloat(a[0].X)-ox, fixedToFloat(a[0].Y)-oy)
		case sfnt.SegmentOpLineTo:
			z.LineTo(fixedToFloat(a[0].X)-ox, fixedToFloat(a[0].Y)-oy)
		case sfnt.SegmentOpQuadTo:
			z.QuadTo(
				fixedToFloat(a[0].X)-ox, fixedToFloat(a[0].Y)-oy,
				fixedToFloat(a[1].X)-ox, fixedToFloat(a[1].Y)-oy,
			)
		case sfnt.SegmentOpCubeTo:
			z.CubeTo(
				fixedToFloat(a[0].X)-ox, fixedToFloat(a[0].Y)-oy,
				fixedToFloat(a[1].X)-ox, fixedToFloat(a[1].Y)-oy,
				fixedToFloat(a[2].X)-ox, fixedToFloat(a[2].Y)-oy,
			)
		}
	}
	z.ClosePath()

	alpha := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	z.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	return &Mask{Spans: coverageSpans(alpha, bounds.Min), Bounds: bounds}, nil
}

// coverageSpans merges runs of equal non-zero coverage per row.
func coverageSpans(a *image.Alpha, origin image.Point) []Span {
	var spans []Span
	w, h := a.Rect.Dx(), a.Rect.Dy()
	for y := 0; y < h; y++ {
		row := a.Pix[y*a.Stride : y*a.Stride+w]
		for x := 0; x < w; {
			c := row[x]
			if c == 0 {
				x++
				continue
			}
			start := x
			for x < w && row[x] == c {
				x++
			}
			spans = append(spans, Span{
				X0:    int32(origin.X + start),
				X1:    int32(origin.X + x),
				Y:     int32(origin.Y + y),
				Alpha: c,
			})
		}
	}
	return spans
}
