package metrics

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// FontParams collects the TeX font-dimension parameters (the σ values
// of the math symbol font, the ξ values of the math extension font,
// plus a handful of LaTeX lengths) for one metric size class. All
// values are in em unless noted.
type FontParams struct {
	CssEmPerMu float64

	Slant      float64 // σ1
	Space      float64 // σ2
	Stretch    float64 // σ3
	Shrink     float64 // σ4
	XHeight    float64 // σ5
	Quad       float64 // σ6
	ExtraSpace float64 // σ7
	Num1       float64 // σ8
	Num2       float64 // σ9
	Num3       float64 // σ10
	Denom1     float64 // σ11
	Denom2     float64 // σ12
	Sup1       float64 // σ13
	Sup2       float64 // σ14
	Sup3       float64 // σ15
	Sub1       float64 // σ16
	Sub2       float64 // σ17
	SupDrop    float64 // σ18
	SubDrop    float64 // σ19
	Delim1     float64 // σ20
	Delim2     float64 // σ21
	AxisHeight float64 // σ22

	DefaultRuleThickness float64 // ξ8
	BigOpSpacing1        float64 // ξ9
	BigOpSpacing2        float64 // ξ10
	BigOpSpacing3        float64 // ξ11
	BigOpSpacing4        float64 // ξ12
	BigOpSpacing5        float64 // ξ13

	SqrtRuleThickness float64
	PtPerEm           float64
	DoubleRuleSep     float64
	ArrayRuleWidth    float64
	FBoxSep           float64 // \fboxsep, em
	FBoxRule          float64 // \fboxrule, em
}

// The three metric size classes: textstyle (index 0), scriptstyle (1),
// scriptscriptstyle (2).
var fontParams = [3]FontParams{
	{ // textstyle
		CssEmPerMu: 0.05555555555555555,
		Slant:      0.250, Space: 0, Stretch: 0, Shrink: 0,
		XHeight: 0.431, Quad: 1.0, ExtraSpace: 0,
		Num1: 0.677, Num2: 0.394, Num3: 0.444,
		Denom1: 0.686, Denom2: 0.345,
		Sup1: 0.413, Sup2: 0.363, Sup3: 0.289,
		Sub1: 0.150, Sub2: 0.247,
		SupDrop: 0.386, SubDrop: 0.050,
		Delim1: 2.390, Delim2: 1.010, AxisHeight: 0.250,
		DefaultRuleThickness: 0.040,
		BigOpSpacing1:        0.111, BigOpSpacing2: 0.166, BigOpSpacing3: 0.2,
		BigOpSpacing4: 0.6, BigOpSpacing5: 0.1,
		SqrtRuleThickness: 0.040, PtPerEm: 10.0, DoubleRuleSep: 0.2,
		ArrayRuleWidth: 0.04, FBoxSep: 0.3, FBoxRule: 0.04,
	},
	{ // scriptstyle
		CssEmPerMu: 0.06505555555555556,
		Slant:      0.250, Space: 0, Stretch: 0, Shrink: 0,
		XHeight: 0.431, Quad: 1.171, ExtraSpace: 0,
		Num1: 0.732, Num2: 0.384, Num3: 0.471,
		Denom1: 0.752, Denom2: 0.344,
		Sup1: 0.503, Sup2: 0.431, Sup3: 0.286,
		Sub1: 0.143, Sub2: 0.286,
		SupDrop: 0.353, SubDrop: 0.071,
		Delim1: 1.700, Delim2: 1.157, AxisHeight: 0.250,
		DefaultRuleThickness: 0.049,
		BigOpSpacing1:        0.111, BigOpSpacing2: 0.166, BigOpSpacing3: 0.2,
		BigOpSpacing4: 0.611, BigOpSpacing5: 0.143,
		SqrtRuleThickness: 0.040, PtPerEm: 10.0, DoubleRuleSep: 0.2,
		ArrayRuleWidth: 0.04, FBoxSep: 0.3, FBoxRule: 0.04,
	},
	{ // scriptscriptstyle
		CssEmPerMu: 0.08177777777777778,
		Slant:      0.250, Space: 0, Stretch: 0, Shrink: 0,
		XHeight: 0.431, Quad: 1.472, ExtraSpace: 0,
		Num1: 0.925, Num2: 0.387, Num3: 0.504,
		Denom1: 1.025, Denom2: 0.532,
		Sup1: 0.504, Sup2: 0.404, Sup3: 0.294,
		Sub1: 0.200, Sub2: 0.400,
		SupDrop: 0.494, SubDrop: 0.100,
		Delim1: 1.980, Delim2: 1.420, AxisHeight: 0.250,
		DefaultRuleThickness: 0.049,
		BigOpSpacing1:        0.111, BigOpSpacing2: 0.166, BigOpSpacing3: 0.2,
		BigOpSpacing4: 0.611, BigOpSpacing5: 0.143,
		SqrtRuleThickness: 0.040, PtPerEm: 10.0, DoubleRuleSep: 0.2,
		ArrayRuleWidth: 0.04, FBoxSep: 0.3, FBoxRule: 0.04,
	},
}

// ParamsForSize returns the font parameters for a metric size class
// index (0, 1 or 2).
func ParamsForSize(sizeIndex int) *FontParams {
	if sizeIndex < 0 {
		sizeIndex = 0
	}
	if sizeIndex > 2 {
		sizeIndex = 2
	}
	return &fontParams[sizeIndex]
}
