package build

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/npillmayer/mathbox/metrics"
)

// BaseSize is the size index of \normalsize.
const BaseSize = 6

// sizeStyleMap maps a user size (1-based) through a style size class
// (0 display/text, 1 script, 2 scriptscript) to the effective size.
var sizeStyleMap = [11][3]int{
	{1, 1, 1},
	{2, 1, 1},
	{3, 1, 1},
	{4, 2, 1},
	{5, 2, 1},
	{6, 3, 1},
	{7, 4, 2},
	{8, 6, 3},
	{9, 7, 6},
	{10, 8, 7},
	{11, 10, 9},
}

var sizeMultipliers = [11]float64{
	0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 1.2, 1.44, 1.728, 2.074, 2.488,
}

func sizeAtStyle(size int, style Style) int {
	if style.Size < 2 {
		return size
	}
	return sizeStyleMap[size-1][style.Size-1]
}

// Options carries the state threaded through the builders: current
// style, size, color, font selection and layout limits. Options values
// are immutable; the Having* and With* methods return modified copies.
type Options struct {
	Style      Style
	Color      string
	Size       int
	TextSize   int
	Phantom    bool
	Font       string
	FontFamily string
	FontWeight string
	FontShape  string

	SizeMultiplier   float64
	MaxSize          float64
	MinRuleThickness float64
}

// NewOptions builds the initial options of a render run.
func NewOptions(style Style, maxSize, minRuleThickness float64, color string) Options {
	return Options{
		Style:            style,
		Color:            color,
		Size:             BaseSize,
		TextSize:         BaseSize,
		SizeMultiplier:   sizeMultipliers[BaseSize-1],
		MaxSize:          maxSize,
		MinRuleThickness: minRuleThickness,
	}
}

// HavingStyle returns options in the given style, adjusting the size to
// the style's size class.
func (o Options) HavingStyle(style Style) Options {
	if o.Style.ID == style.ID {
		return o
	}
	o.Style = style
	o.Size = sizeAtStyle(o.TextSize, style)
	o.SizeMultiplier = sizeMultipliers[o.Size-1]
	return o
}

// HavingCrampedStyle returns options in the cramped variant of the
// current style.
func (o Options) HavingCrampedStyle() Options {
	return o.HavingStyle(o.Style.CrampedStyle())
}

// HavingSize returns options with the given user size, kept through
// style changes as the text size.
func (o Options) HavingSize(size int) Options {
	if o.Size == size && o.TextSize == size {
		return o
	}
	o.Style = o.Style.Text()
	o.Size = sizeAtStyle(size, o.Style)
	o.TextSize = size
	o.SizeMultiplier = sizeMultipliers[o.Size-1]
	return o
}

// HavingBaseStyle returns options in the given style at the base size
// of that style.
func (o Options) HavingBaseStyle(style Style) Options {
	wantSize := sizeAtStyle(BaseSize, style)
	if o.Size == wantSize && o.TextSize == BaseSize && o.Style.ID == style.ID {
		return o
	}
	o.Style = style
	o.Size = wantSize
	o.TextSize = BaseSize
	o.SizeMultiplier = sizeMultipliers[o.Size-1]
	return o
}

// HavingBaseSizing returns options sized for delimiter construction in
// the current style, ignoring the user size.
func (o Options) HavingBaseSizing() Options {
	var size int
	switch o.Style.ID {
	case 4, 5:
		size = 3 // normalsize in scriptstyle
	case 6, 7:
		size = 1 // normalsize in scriptscriptstyle
	default:
		size = 6
	}
	o.Size = size
	o.TextSize = size
	o.SizeMultiplier = sizeMultipliers[size-1]
	return o
}

// WithColor returns options with the given color.
func (o Options) WithColor(color string) Options {
	o.Color = color
	return o
}

// WithPhantom returns options flagged as phantom; phantom content keeps
// its metrics but is not painted.
func (o Options) WithPhantom() Options {
	o.Phantom = true
	return o
}

// WithFont returns options with the given math font.
func (o Options) WithFont(font string) Options {
	o.Font = font
	return o
}

// WithTextFontFamily returns options with the given text font family.
func (o Options) WithTextFontFamily(family string) Options {
	o.FontFamily = family
	o.Font = ""
	return o
}

// WithTextFontWeight returns options with the given text font weight.
func (o Options) WithTextFontWeight(weight string) Options {
	o.FontWeight = weight
	o.Font = ""
	return o
}

// WithTextFontShape returns options with the given text font shape.
func (o Options) WithTextFontShape(shape string) Options {
	o.FontShape = shape
	o.Font = ""
	return o
}

// SizingClasses are the CSS classes that change the rendering size from
// oldOptions' size to this size.
func (o Options) SizingClasses(oldOptions Options) []string {
	if oldOptions.Size == o.Size {
		return nil
	}
	return []string{
		"sizing",
		"reset-size" + strconv.Itoa(oldOptions.Size),
		"size" + strconv.Itoa(o.Size),
	}
}

// BaseSizingClasses are the CSS classes that reset the rendering size
// to the base size.
func (o Options) BaseSizingClasses() []string {
	if o.Size == BaseSize {
		return nil
	}
	return []string{
		"sizing",
		"reset-size" + strconv.Itoa(o.Size),
		"size" + strconv.Itoa(BaseSize),
	}
}

// FontMetrics looks up the font parameters for the current size. Sizes
// five and up measure as textstyle, three and four as scriptstyle, the
// rest as scriptscriptstyle.
func (o Options) FontMetrics() *metrics.FontParams {
	switch {
	case o.Size >= 5:
		return metrics.ParamsForSize(0)
	case o.Size >= 3:
		return metrics.ParamsForSize(1)
	default:
		return metrics.ParamsForSize(2)
	}
}

// Color resolved for painting; "transparent" when the content is a phantom.
func (o Options) PaintColor() string {
	if o.Phantom {
		return "transparent"
	}
	return o.Color
}

