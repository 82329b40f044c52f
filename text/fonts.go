package text

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// fontEntry is one registered font parsed for both shaping engines.
// sfnt.Font and go-text font.Font are read-only after parsing and safe for
// concurrent use.
type fontEntry struct {
	id     uint64
	attrs  Attrs
	sfnt   *opentype.Font
	gotext *gtfont.Font
}

// FontSystem holds registered fonts and lays out text with them.
//
// FontSystem is safe for concurrent use. HarfBuzz shapers are pooled since
// they carry mutable state.
type FontSystem struct {
	mu     sync.RWMutex
	byAttr map[Attrs]*fontEntry
	byID   map[uint64]*fontEntry
	nextID uint64

	shaperPool sync.Pool
}

// NewFontSystem creates a FontSystem with the Go font family registered:
// sans regular, bold, italic, bold italic, and mono regular and bold.
func NewFontSystem() (*FontSystem, error) {
	fs := &FontSystem{
		byAttr: make(map[Attrs]*fontEntry),
		byID:   make(map[uint64]*fontEntry),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
	builtin := []struct {
		attrs Attrs
		data  []byte
	}{
		{Attrs{}, goregular.TTF},
		{Attrs{Weight: WeightBold}, gobold.TTF},
		{Attrs{Style: StyleItalic}, goitalic.TTF},
		{Attrs{Weight: WeightBold, Style: StyleItalic}, gobolditalic.TTF},
		{Attrs{Family: FamilyMono}, gomono.TTF},
		{Attrs{Family: FamilyMono, Weight: WeightBold}, gomonobold.TTF},
	}
	for _, b := range builtin {
		if _, err := fs.Register(b.attrs, b.data); err != nil {
			return nil, err
		}
	}
	return fs, nil
}

// Register parses a TrueType/OpenType font and makes it the font used for
// attrs, replacing any previous registration. It returns the font id.
func (fs *FontSystem) Register(attrs Attrs, data []byte) (uint64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyFontData
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.nextID++
	e := &fontEntry{id: fs.nextID, attrs: attrs, sfnt: sf, gotext: face.Font}
	fs.byAttr[attrs] = e
	fs.byID[e.id] = e
	return e.id, nil
}

// FontID returns the id of the font used for attrs after fallback.
func (fs *FontSystem) FontID(attrs Attrs) uint64 {
	if e := fs.resolve(attrs); e != nil {
		return e.id
	}
	return 0
}

// resolve finds the font for attrs, falling back to the regular face of the
// family and then to regular sans.
func (fs *FontSystem) resolve(attrs Attrs) *fontEntry {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if e, ok := fs.byAttr[attrs]; ok {
		return e
	}
	if e, ok := fs.byAttr[Attrs{Family: attrs.Family}]; ok {
		return e
	}
	return fs.byAttr[Attrs{}]
}

func (fs *FontSystem) font(id uint64) (*fontEntry, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	e, ok := fs.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, id)
	}
	return e, nil
}

// Layout implements Shaper.
//
// Paragraphs are split on '\n' and wrapped greedily to req.Width. Lines whose
// top lies at or below req.Height are dropped.
func (fs *FontSystem) Layout(req LayoutRequest) *Buffer {
	b := &Buffer{Metrics: req.Metrics, Width: req.Width, Height: req.Height}
	e := fs.resolve(req.Attrs)
	if e == nil || req.Text == "" || req.Metrics.FontSize <= 0 {
		return b
	}
	b.FontID = e.id

	size := req.Metrics.FontSize
	lineHeight := req.Metrics.LineHeight
	if lineHeight <= 0 {
		lineHeight = size
	}
	ascent := e.ascent(size)

	for _, para := range strings.Split(req.Text, "\n") {
		var glyphs []shapedGlyph
		if req.Shaping == ShapingAdvanced {
			glyphs = fs.shapeAdvanced(e, []rune(para), size)
		} else {
			glyphs = e.shapeBasic([]rune(para), size)
		}
		for _, run := range wrap(glyphs, req.Width) {
			top := float32(len(b.Lines)) * lineHeight
			if req.Height > 0 && top >= req.Height {
				return b
			}
			b.Lines = append(b.Lines, placeLine(run, top+ascent))
		}
	}
	return b
}

func placeLine(run []shapedGlyph, baseline float32) Line {
	line := Line{
		Glyphs:   make([]Glyph, len(run)),
		Width:    lineWidth(run),
		Baseline: baseline,
	}
	var pen float32
	for i, g := range run {
		line.Glyphs[i] = Glyph{
			ID:      g.id,
			Rune:    g.r,
			X:       pen + g.xOff,
			Y:       baseline - g.yOff,
			Advance: g.advance,
		}
		pen += g.advance
	}
	return line
}

// ascent returns the font ascent in pixels at size.
func (e *fontEntry) ascent(size float32) float32 {
	var buf sfnt.Buffer
	m, err := e.sfnt.Metrics(&buf, floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return size
	}
	return fixedToFloat(m.Ascent)
}

// floatToFixed converts a float32 pixel size to fixed.Int26_6.
func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
