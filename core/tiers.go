package core

// Shared classification tables used by more than one product-type scorer.
// All tables are ordered: the first match wins, so specific patterns sit
// above the generic brand they belong to. The point values are hand
// calibrated against the catalog and must not be re-derived.

// batteryCellTiers ranks battery cell manufacturers. Matched against the
// lowercased concatenation of cell brand and cell model.
var batteryCellTiers = []tier{
	{"lg", 15},
	{"samsung", 15},
	{"panasonic", 14},
	{"sanyo", 14},
	{"molicel", 14},
	{"eve", 12},
	{"catl", 12},
	{"bak", 10},
	{"lishen", 10},
	{"dynavolt", 8},
	{"chins", 6},
}

// tireTypeTiers ranks tire constructions for ride quality. Self-healing
// pneumatics ride like pneumatics without the flat risk, so they outrank
// plain tubeless; honeycomb and solid trade comfort for zero maintenance.
var tireTypeTiers = []tier{
	{"self-healing", 25},
	{"self healing", 25},
	{"tubeless", 23},
	{"pneumatic", 21},
	{"air", 21},
	{"honeycomb", 14},
	{"never-flat", 13},
	{"solid", 10},
	{"rubber", 10},
}

// waterResistanceTiers ranks ingress-protection ratings. Specific dual-digit
// ratings precede the single-digit IPX family they would substring-match.
var waterResistanceTiers = []tier{
	{"ip67", 25},
	{"ip66", 24},
	{"ip65", 22},
	{"ipx7", 22},
	{"ipx6", 20},
	{"ip55", 18},
	{"ipx5", 17},
	{"ip54", 15},
	{"ipx4", 12},
	{"ip34", 8},
}

// suspensionTiers ranks suspension setups common across scooters and boards.
var suspensionTiers = []tier{
	{"full hydraulic", 30},
	{"dual hydraulic", 30},
	{"hydraulic", 27},
	{"full suspension", 26},
	{"dual spring", 22},
	{"front and rear", 22},
	{"swingarm", 20},
	{"spring", 16},
	{"rubber", 12},
	{"front", 14},
	{"rear", 14},
	{"none", 0},
}

// brakeTypeTiers ranks braking hardware quality, used where the full
// brake-adequacy routine does not apply (e-bikes, maintenance scoring).
var brakeTypeTiers = []tier{
	{"hydraulic disc", 25},
	{"hydraulic", 24},
	{"mechanical disc", 18},
	{"disc", 17},
	{"drum", 14},
	{"regenerative", 10},
	{"regen", 10},
	{"rim", 8},
	{"foot", 4},
}
