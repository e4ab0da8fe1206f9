package build

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/mathbox/tex"
)

// The eight inter-atom spacing classes of the layout algorithm. These
// double as the leading CSS class of the boxes the builders emit.
var atomTypes = map[string]bool{
	"mord": true, "mop": true, "mbin": true, "mrel": true,
	"mopen": true, "mclose": true, "mpunct": true, "minner": true,
}

var (
	thinspace  = tex.Measurement{Number: 3, Unit: "mu"}
	mediumspace = tex.Measurement{Number: 4, Unit: "mu"}
	thickspace = tex.Measurement{Number: 5, Unit: "mu"}
)

// spacings is the inter-atom spacing table for display and text styles,
// keyed by the left then the right atom type. Missing entries mean no
// space.
var spacings = map[string]map[string]tex.Measurement{
	"mord": {
		"mop": thinspace, "mbin": mediumspace, "mrel": thickspace, "minner": thinspace,
	},
	"mop": {
		"mord": thinspace, "mop": thinspace, "mrel": thickspace, "minner": thinspace,
	},
	"mbin": {
		"mord": mediumspace, "mop": mediumspace, "mopen": mediumspace, "minner": mediumspace,
	},
	"mrel": {
		"mord": thickspace, "mop": thickspace, "mopen": thickspace, "minner": thickspace,
	},
	"mopen": {},
	"mclose": {
		"mop": thinspace, "mbin": mediumspace, "mrel": thickspace, "minner": thinspace,
	},
	"mpunct": {
		"mord": thinspace, "mop": thinspace, "mrel": thickspace, "mopen": thinspace,
		"mclose": thinspace, "mpunct": thinspace, "minner": thinspace,
	},
	"minner": {
		"mord": thinspace, "mop": thinspace, "mbin": mediumspace, "mrel": thickspace,
		"mopen": thinspace, "mpunct": thinspace, "minner": thinspace,
	},
}

// tightSpacings replaces spacings in script and scriptscript styles,
// where only the thin space next to operators survives.
var tightSpacings = map[string]map[string]tex.Measurement{
	"mord":   {"mop": thinspace},
	"mop":    {"mord": thinspace, "mop": thinspace},
	"mclose": {"mop": thinspace},
	"minner": {"mop": thinspace},
}
