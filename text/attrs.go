package text

// Family selects a font family.
type Family uint8

const (
	FamilySans Family = iota
	FamilyMono
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilySans:
		return "sans"
	case FamilyMono:
		return "mono"
	default:
		return "unknown"
	}
}

// Weight selects a font weight.
type Weight uint8

const (
	WeightNormal Weight = iota
	WeightBold
)

// Style selects a font style.
type Style uint8

const (
	StyleNormal Style = iota
	StyleItalic
)

// Attrs describes which registered font a run of text uses.
// The zero value is regular sans.
type Attrs struct {
	Family Family
	Weight Weight
	Style  Style
}

// DefaultAttrs returns regular sans attributes.
func DefaultAttrs() Attrs {
	return Attrs{}
}

// Bold returns a copy of a with bold weight.
func (a Attrs) Bold() Attrs {
	a.Weight = WeightBold
	return a
}

// Italic returns a copy of a with italic style.
func (a Attrs) Italic() Attrs {
	a.Style = StyleItalic
	return a
}

// Shaping selects how text is converted to glyphs.
type Shaping uint8

const (
	// ShapingBasic maps each rune to one glyph and applies pair kerning.
	ShapingBasic Shaping = iota

	// ShapingAdvanced runs full OpenType shaping (ligatures, marks, bidi).
	ShapingAdvanced
)

// String returns the shaping mode name.
func (s Shaping) String() string {
	switch s {
	case ShapingBasic:
		return "basic"
	case ShapingAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// Metrics are the pixel sizes used to lay out a buffer.
type Metrics struct {
	FontSize   float32
	LineHeight float32
}
