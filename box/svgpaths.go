package box

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// PathData maps path names to SVG path strings in glyph coordinates
// (1000 units per em). The dictionary covers the stretchy constructs:
// arrows, braces and the wide accents; surd shapes are generated by
// SqrtPath because their vertical extent varies.
var PathData = map[string]string{
	"leftarrow": "M400000 241H110l3-3c68.7-52.7 113.7-120 135-202 4-14.7 6-23 6-25 0" +
		"-7.3-7-11-21-11-8 0-13.2.8-15.5 2.5-2.3 1.7-4.2 5.8-5.5 12.5-1.3 4.7-2.7 " +
		"10.3-4 17-12 48.7-34.8 92-68.5 130S65.3 228.3 18 247c-10 4-16 7.7-18 11 0 " +
		"8.7 6 14.3 18 17 47.3 18.7 87.8 47 121.5 85S196 441.3 208 490c.7 2 1.3 5 2" +
		" 9s1.2 6.7 1.5 8c.3 1.3 1 3.3 2 6s2.2 4.5 3.5 5.5c1.3 1 3.3 1.8 6 2.5s6 1" +
		" 10 1c14 0 21-3.7 21-11 0-2-2-10.3-6-25-20-79.3-65-146.7-135-202l-3-3h399" +
		"890zM100 241v40h399900v-40z",
	"rightarrow": "M0 241v40h399891c-47.3 35.3-84 78-110 128-16.7 32-27.7 63.7-33 95 0" +
		" 1.3-.2 2.7-.5 4-.3 1.3-.5 2.3-.5 3 0 7.3 6.7 11 20 11 8 0 13.2-.8 15.5-2" +
		".5 2.3-1.7 4.2-5.5 5.5-11.5 2-13.3 5.7-27 11-41 14.7-44.7 39-84.5 73-119." +
		"5s73.7-60.2 119-75.5c6-2 9-5.7 9-11s-3-9-9-11c-45.3-15.3-85-40.5-119-75.5" +
		"s-58.3-74.8-73-119.5c-4.7-14-8.3-27.3-11-40-1.3-6.7-3.2-10.8-5.5-12.5-2.3" +
		"-1.7-7.5-2.5-15.5-2.5-14 0-21 3.7-21 11 0 2 2 10.3 6 25 20.7 83.3 67 151." +
		"7 139 205zm0 0v40h399900v-40z",
	"leftharpoon": "M0 267c.7 5.3 3 10 7 14s9 6 15 6c10 0 16.7-2 20-6 3.3-4 6-9.3 8-1" +
		"6 2-6.7 4.7-14.3 8-23 21.3-56.7 54.3-100 99-130-6-2-12-2.7-18-2h-18c-58.7" +
		" 46.7-98.7 89.7-120 129-6.7 13.3-7 20-1 28zm100-26v40h399900v-40z",
	"rightharpoon": "M0 241v40h399993c4.7-4.7 7-9.3 7-14 0-9.3-3.7-15.3-11-18-92.7-56" +
		".7-159-133.7-199-231-3.3-9.3-6-14.7-8-16-2-1.3-7-2-15-2-10.7 0-16.7 2-18 " +
		"6-2 2.7-1 9.7 3 21 15.3 42 36.7 81.8 64 119.5 27.3 37.7 58 69.2 92 94.5z",
	"doublerightarrow": "M399738 392l-4 4-4 4c-.7.7-.7 1.7 0 3l6 8c.7 1 1.3 1.5 2 1.5" +
		"s1.7-.5 3-1.5c8.7-7.3 17.3-14.7 26-22 80-66.7 160-132.7 240-198-80-65.3-1" +
		"60-131.3-240-198-8.7-7.3-17.3-14.7-26-22-1.3-1-2.3-1.5-3-1.5s-1.3.5-2 1.5" +
		"l-6 8c-.7 1.3-.7 2.3 0 3l4 4 4 4c60.7 49.3 121.3 98.7 182 148H0v40h399668" +
		"c-60.7 49.3-121.3 98.7-182 148z",
	"doubleleftarrow": "M262 392c-1.3 1-2.3 1.5-3 1.5s-1.3-.5-2-1.5l-6-8c-.7-1.3-.7-" +
		"2.3 0-3l4-4 4-4c60.7-49.3 121.3-98.7 182-148H441v-40h-.7c-60.7-49.3-121.3" +
		"-98.7-182-148l-4-4-4-4c-.7-.7-.7-1.7 0-3l6-8c.7-1 1.3-1.5 2-1.5s1.7.5 3 1" +
		".5c8.7 7.3 17.3 14.7 26 22 80 66.7 160 132.7 240 198-80 65.3-160 131.3-24" +
		"0 198-8.7 7.3-17.3 14.7-26 22z",
	"leftbrace": "M6 548l-6-6v-35l6-11c56-104 135.3-181.3 238-232 57.3-28.7 117-45 1" +
		"79-50h399577v120H403c-43.3 7-81 15-113 26-100.7 33-179.7 91-237 174-2.7 5" +
		"-6 9-10 13-.7 1-7.3 1-20 1H6z",
	"midbrace": "M200428 334c-100.7-8.3-195.3-44-280-108-55.3-42-101.7-93-139-153l-9" +
		"-14c-2.7 4-5.7 8.7-9 14-53.3 86.7-123.7 153-211 199-66.7 36-137.3 56.3-21" +
		"2 62H0V214h199568c121.3 0 219.3-40.3 294-121 28-30.7 49.3-65.7 64-105l9-2" +
		"5c10.7 21.3 16 33 16 35q0 1 9 25c14.7 39.3 36 74.3 64 105 56 60.7 124.7 9" +
		"7.7 206 111 23.3 3.3 52.7 5 88 5h199572v120z",
	"rightbrace": "M400000 542l-6 6h-17c-12.7 0-19.3-.3-20-1-4-4-7.3-8.3-10-13-35.3-" +
		"51.3-80.8-93.8-136.5-127.5s-117.2-55.8-184.5-66.5c-.7 0-2-.3-4-1-18.7-2.7" +
		"-76-4.3-172-5H0V214h399571l6 1c124.7 8 235 61.7 331 161 31.3 33.3 59.7 72" +
		".7 85 118l7 13v35z",
	"leftbraceunder": "M0 6l6-6h17c12.688 0 19.313.3 20 1 4 4 7.313 8.3 10 13 35.31" +
		"3 51.3 80.813 93.8 136.5 127.5 55.688 33.7 117.188 55.8 184.5 66.5.688 0 " +
		"2 .3 4 1 18.688 2.7 76 4.3 172 5h399450v120H429l-6-1c-124.688-8-235-61.7-" +
		"331-161C60.687 138.7 32.312 99.3 7 54L0 41V6z",
	"midbraceunder": "M199572 214c100.7 8.3 195.3 44 280 108 55.3 42 101.7 93 139 15" +
		"3l9 14c2.7-4 5.7-8.7 9-14 53.3-86.7 123.7-153 211-199 66.7-36 137.3-56.3 " +
		"212-62h199568v120H200432c-178.3 11.7-311.7 78.3-400 200-6.7 8-12.7 16.3-1" +
		"8 25-10.7-16.7-16-25.3-16-26l-9-14c-53.3-86.7-123.7-153-211-199-66.7-36-1" +
		"37.3-56.3-212-62H0V214z",
	"rightbraceunder": "M399994 0l6 6v35l-6 11c-56 104-135.3 181.3-238 232-57.3 28.7" +
		"-117 45-179 50H-300V214h399897c43.3-7 81-15 113-26 100.7-33 179.7-91 237-" +
		"174 2.7-5 6-9 10-13 .7-1 7.3-1 20-1h17z",
	"widehat1": "M529 0h5l519 115c5 1 9 5 9 10 0 1-1 2-1 3l-4 22c-1 5-5 9-11 9h-2L53" +
		"2 67 19 159h-2c-5 0-9-4-11-9l-5-22c-1-6 2-12 8-13z",
	"widehat2": "M1181 0h2l1171 176c6 0 10 5 10 11l-2 23c-1 6-5 10-11 10h-1L1182 67 " +
		"12 220h-1c-6 0-10-4-11-10l-2-23c-1-6 4-11 10-11z",
	"widehat3": "M1181 0h2l1171 236c6 0 10 5 10 11l-2 23c-1 6-5 10-11 10h-1L1182 67 " +
		"12 280h-1c-6 0-10-4-11-10l-2-23c-1-6 4-11 10-11z",
	"widehat4": "M1181 0h2l1171 296c6 0 10 5 10 11l-2 23c-1 6-5 10-11 10h-1L1182 67 " +
		"12 340h-1c-6 0-10-4-11-10l-2-23c-1-6 4-11 10-11z",
	"widecheck1": "M529,159h5l519,-115c5,-1,9,-5,9,-10c0,-1,-1,-2,-1,-3l-4,-22c-1,-5" +
		",-5,-9,-11,-9h-2l-512,92l-513,-92h-2c-5,0,-9,4,-11,9l-5,22c-1,6,2,12,8,13z",
	"widecheck2": "M1181,220h2l1171,-176c6,0,10,-5,10,-11l-2,-23c-1,-6,-5,-10,-11,-1" +
		"0h-1l-1168,153l-1167,-153h-1c-6,0,-10,4,-11,10l-2,23c-1,6,4,11,10,11z",
	"widecheck3": "M1181,280h2l1171,-236c6,0,10,-5,10,-11l-2,-23c-1,-6,-5,-10,-11,-1" +
		"0h-1l-1168,213l-1167,-213h-1c-6,0,-10,4,-11,10l-2,23c-1,6,4,11,10,11z",
	"widecheck4": "M1181,340h2l1171,-296c6,0,10,-5,10,-11l-2,-23c-1,-6,-5,-10,-11,-1" +
		"0h-1l-1168,273l-1167,-273h-1c-6,0,-10,4,-11,10l-2,23c-1,6,4,11,10,11z",
	"tilde1": "M200 55.538c-77 0-168 73.953-177 73.953-3 0-7-2.175-9-5.437L2 97c-1-2" +
		"-2-4-2-6 0-4 2-7 5-9l20-12C116 12 171 0 207 0c86 0 114 68 191 68 78 0 168" +
		"-68 177-68 4 0 7 2 9 5l12 19c1 2.175 2 4.35 2 6.525 0 4.35-2 7.613-5 9.78" +
		"8l-19 10.88C526 108 475 124 439 124c-86 0-113-68.438-239-68.462z",
	"tilde2": "M344 55.266c-142 0-300.638 81.316-311.5 86.418-8.01 3.762-22.5 10.91-" +
		"23.5 5.562L1 120c-1-2-1-3.94-1-5.94 0-4 2-7 5.5-8.5C23 93 45 77.558 104 5" +
		"8c101.24-33.45 153.57-58 211-58 72.16 0 99.186 38.457 215.225 37.862 127." +
		"05-.652 154.775-37.862 283.775-37.862z",
	"tilde3": "M786 59C457 59 32 175.242 13 175.242c-6 0-10-3.457-11-10.366L.15 138c" +
		"-1-7 3-12 10-13 271.229-26.72 476.256-125.902 785-126 319 0 516.239 124.4" +
		"95 775 126 6.273.036 9 5 9 10l-.3 23c-1 7-5 10-11 10-307 0-453.5-109-782." +
		"85-109z",
	"tilde4": "M786 58C457 58 32 158.004 13 158.004c-6 0-10-3.457-11-10.366L.15 120c" +
		"-1-7 3-12 10-13 271.229-24.741 476.256-116.558 785-116.735 319-.18 516.23" +
		"9 115.293 775 116.735 6.273.035 9 5 9 10l-.3 21c-1 7-5 10-11 10-307 0-453" +
		".5-98-782.85-98z",
	"vec": "M377 20c0-5.333 1.833-10 5.5-14S391 0 397 0c4.667 0 8.667 1.667 12 5 3." +
		"333 2.667 6.667 9 10 19 6.667 24.667 20.333 43.667 41 57 7.333 4.667 11 1" +
		"0.667 11 18 0 6-1 10-3 12s-6.667 5-14 9c-28.667 14.667-53.667 35.667-75 6" +
		"3-1.333 1.333-3.167 3.5-5.5 6.5s-4 4.833-5 5.5c-1 .667-2.5 1.333-4.5 2s-4" +
		".333 1-7 1c-4.667 0-8.167-1.333-10.5-4s-3.5-6-3.5-10c0-2 .667-4.667 2-8s5" +
		".333-9.333 12-18c4.667-6.667 9.333-12.333 14-17 2.667-2.667 4-5.667 4-9H2" +
		"6c-6 0-10-1.333-13-4S8 60 8 54c0-9 4.333-14.333 13-16 2-.667 5.333-1 10-1" +
		"h352c0-6 0-10-.333-12s-1.667-4.667-4-8c-2.333-3.333-3.667-6.333-4-9z",
	"phase": "M400000 0 H0 L100000 400000 v-175000 H400000z",
}

// SqrtPath generates the surd path for a size class, stretched to
// viewBoxHeight glyph units. extraVinculum thickens the top rule when
// the minimum rule thickness demands it.
func SqrtPath(size string, extraVinculum, viewBoxHeight float64) string {
	switch size {
	case "sqrtMain":
		return sqrtMain(extraVinculum, hLinePad)
	case "sqrtSize1":
		return sqrtSize1(extraVinculum, hLinePad)
	case "sqrtSize2":
		return sqrtSize2(extraVinculum, hLinePad)
	case "sqrtSize3":
		return sqrtSize3(extraVinculum, hLinePad)
	case "sqrtSize4":
		return sqrtSize4(extraVinculum, hLinePad)
	case "sqrtTall":
		return sqrtTall(extraVinculum, hLinePad, viewBoxHeight)
	}
	return ""
}

// hLinePad keeps the top rule inside the viewBox.
const hLinePad = 80.0

func sqrtMain(extraVinculum, hLinePad float64) string {
	return fmt.Sprintf("M95,%v\nc-2.7,0,-7.17,-2.7,-13.5,-8c-5.8,-5.3,-9.5,"+
		"-10,-9.5,-14\nc0,-2,0.3,-3.3,1,-4c1.3,-2.7,23.83,-20.7,67.5,-54\n"+
		"c44.2,-33.3,65.8,-50.3,66.5,-51c1.3,-1.3,3,-2,5,-2c4.7,0,8.7,3.3,12,10\n"+
		"s173,378,173,378c0.7,0,35.3,-71,104,-213c68.7,-142,137.5,-285,206.5,-429\n"+
		"c69,-144,104.5,-217.7,106.5,-221\nl%v -%v\nc5.3,-9.3,12,-14,20,-14\n"+
		"H400000v%v\nH845.2724\ns-225.272,467,-225.272,467s-235,486,-235,486c-2.7,4.7,-9,7,-19,7\n"+
		"c-6,0,-10,-1,-12,-3s-194,-422,-194,-422s-65,47,-65,47z\nM%v %vh400000v%vz",
		622+extraVinculum+hLinePad,
		extraVinculum/2.075, extraVinculum,
		40+extraVinculum,
		834+extraVinculum, 80+extraVinculum, 40+extraVinculum)
}

func sqrtSize1(extraVinculum, hLinePad float64) string {
	return fmt.Sprintf("M263,%v c0.7,0,18,39.7,52,119\nc34,79.3,68.167,158.7,102.5,238c34.3,"+
		"79.3,51.8,119.3,52.5,120\nc340,-704.7,510.7,-1060.3,512,-1067\n"+
		"l%v -%v\nc4.7,-7.3,11,-11,19,-11\nH40000v%v\nH1012.3\n"+
		"s-271.3,567,-271.3,567c-38.7,80.7,-84,175,-136,283c-52,108,-89.167,185.3,-111.5,232\n"+
		"c-22.3,46.7,-33.8,70.3,-34.5,71c-4.7,4.7,-12.3,7,-23,7s-12,-1,-12,-1\n"+
		"s-109,-253,-109,-253c-72.7,-168,-109.3,-252,-110,-252c-10.7,8,-22,16.7,-34,26\n"+
		"c-22,17.3,-33.3,26,-34,26s-26,-26,-26,-26s76,-59,76,-59s76,-60,76,-60z\n"+
		"M%v %vh400000v%vz",
		601+extraVinculum+hLinePad,
		extraVinculum/2.084, extraVinculum,
		40+extraVinculum,
		1001+extraVinculum, 80+extraVinculum, 40+extraVinculum)
}

func sqrtSize2(extraVinculum, hLinePad float64) string {
	return fmt.Sprintf("M983 %v\nl%v -%v\nc4,-6.7,10,-10,18,-10 H400000v%v\n"+
		"H1013.1s-83.4,268,-264.1,840c-180.7,572,-277,876.3,-289,913c-4.7,4.7,-12.7,7,-24,7\n"+
		"s-12,0,-12,0c-1.3,-3.3,-3.7,-11.7,-7,-25c-35.3,-125.3,-106.7,-373.3,-214,-744\n"+
		"c-10,12,-21,25,-33,39s-32,39,-32,39c-6,-5.3,-15,-14,-27,-26s25,-30,25,-30\n"+
		"c26.7,-32.7,52,-63,76,-91s52,-60,52,-60s208,722,208,722\nc56,-175.3,126.3,-397.3,211,-666\n"+
		"c84.7,-268.7,153.8,-488.2,207.5,-658.5\nc53.7,-170.3,84.5,-266.8,92.5,-289.5z\n"+
		"M%v %vh400000v%vz",
		10+extraVinculum+hLinePad,
		extraVinculum/3.13, extraVinculum,
		40+extraVinculum,
		1001+extraVinculum, 80+extraVinculum, 40+extraVinculum)
}

func sqrtSize3(extraVinculum, hLinePad float64) string {
	return fmt.Sprintf("M424,%v\nc-1.3,-0.7,-38.5,-172,-111.5,-514c-73,-342,-109.8,-513.3,-110.5,-514\n"+
		"c0,-2,-10.7,14.3,-32,49c-4.7,7.3,-9.8,15.7,-15.5,25c-5.7,9.3,-9.8,16,-12.5,20\n"+
		"s-5,7,-5,7c-4,-3.3,-8.3,-7.7,-13,-13s-13,-13,-13,-13s76,-122,76,-122s77,-121,77,-121\n"+
		"s209,968,209,968c0,-2,84.7,-361.7,254,-1079c169.3,-717.3,254.7,-1077.7,256,-1081\n"+
		"l%v -%v\nc4,-6.7,10,-10,18,-10 H400000\nv%v H1014.6\ns-87.3,378.7,-272.6,1166c-185.3,787.3,-279.3,1182.3,-282,1185\n"+
		"c-2,6,-10,9,-24,9\nc-8,0,-12,-0.7,-12,-2z M%v %v\nh400000v%vz",
		2398+extraVinculum+hLinePad,
		extraVinculum/4.223, extraVinculum,
		40+extraVinculum,
		1001+extraVinculum, 80+extraVinculum, 40+extraVinculum)
}

func sqrtSize4(extraVinculum, hLinePad float64) string {
	return fmt.Sprintf("M473,%v\nc339.3,-1799.3,509.3,-2700,510,-2702 l%v -%v\n"+
		"c3.3,-7.3,9.3,-11,18,-11 H400000v%v H1017.7\ns-90.5,478,-276.2,1466c-185.7,988,-279.5,1483,-281.5,1485c-2,6,-10,9,-24,9\n"+
		"c-8,0,-12,-0.7,-12,-2c0,-1.3,-5.3,-32,-16,-92c-50.7,-293.3,-119.7,-693.3,-207,-1200\n"+
		"c0,-1.3,-5.3,8.7,-16,30c-10.7,21.3,-21.3,42.7,-32,64s-16,33,-16,33s-26,-26,-26,-26\n"+
		"s76,-153,76,-153s77,-151,77,-151c0.7,0.7,35.7,202,105,604c67.3,400.7,102,602.7,104,\n"+
		"606zM%v %vh400000v%vz",
		2713+extraVinculum+hLinePad,
		extraVinculum/5.298, extraVinculum,
		40+extraVinculum,
		1001+extraVinculum, 80+extraVinculum, 40+extraVinculum)
}

// sqrtTall is used for extents beyond the largest size class; the
// straight descender is stretched to the requested viewBox height.
func sqrtTall(extraVinculum, hLinePad, viewBoxHeight float64) string {
	vertSegment := viewBoxHeight - 54 - hLinePad - extraVinculum
	return fmt.Sprintf("M702 %v H400000v%v\nH742v%v\nl-4 4-4 4c-.667.7 -2 1.5-4 2.5s-4.167 "+
		"1.833-6.5 2.5-5.5 1-9.5 1\nh-12l-28-84c-16.667-52-96.667 -294.333-240-727l-212 -643 -85 "+
		"170\nc-4-3.333-8.333-7.667-13 -13l-13-13l77-155 77-156c66 199.333 139 419.667\n219 661 "+
		"l218 661zM702 %v H400000v%vH742z",
		hLinePad+extraVinculum, 40+extraVinculum, vertSegment,
		hLinePad, 40+extraVinculum)
}
