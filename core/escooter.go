package core

import (
	"github.com/eridehero/ridescore/schema"
)

// escooterScorer scores electric scooters. Scooters are the oldest product
// family in the catalog and the only one that ever shipped the legacy flat
// specification shape, so this scorer carries a flat fallback table.
type escooterScorer struct {
	specs specAccessor
}

// escooterFlatFallback maps modern dotted paths to the historical flat field
// names. Kept verbatim for backward compatibility with pre-migration specs.
var escooterFlatFallback = map[string]string{
	"motor.power_nominal":        "nominal_motor_wattage",
	"motor.power_peak":           "peak_motor_wattage",
	"motor.dual_motor":           "dual_motor",
	"motor.climb_angle":          "climb_angle",
	"performance.zero_to_15":     "0_15_mph_time",
	"battery.capacity":           "battery_capacity",
	"battery.voltage":            "battery_voltage",
	"battery.range":              "manufacturer_range",
	"battery.charge_time":        "charge_time",
	"battery.cells":              "battery_cells",
	"tires.size":                 "tire_size",
	"tires.type":                 "tire_type",
	"suspension.type":            "suspension",
	"brakes.front":               "front_brake",
	"brakes.rear":                "rear_brake",
	"brakes.regenerative":        "regenerative_braking",
	"dimensions.weight":          "weight",
	"dimensions.max_load":        "weight_limit",
	"dimensions.deck_length":     "deck_length",
	"dimensions.deck_width":      "deck_width",
	"dimensions.handlebar_width": "handlebar_width",
	"dimensions.folded_length":   "folded_length",
	"dimensions.folded_width":    "folded_width",
	"dimensions.folded_height":   "folded_height",
	"lights.front":               "front_light",
	"lights.rear":                "rear_light",
	"lights.turn_signals":        "turn_signals",
}

var escooterWeights = []categoryWeight{
	{schema.CategoryMotor, 0.20},
	{schema.CategoryBattery, 0.20},
	{schema.CategoryRideQuality, 0.20},
	{schema.CategoryPortability, 0.15},
	{schema.CategorySafety, 0.10},
	{schema.CategoryFeatures, 0.10},
	{schema.CategoryMaintenance, 0.05},
}

func newEScooterScorer() *escooterScorer {
	return &escooterScorer{specs: newSpecAccessor(schema.EScooter, escooterFlatFallback)}
}

func (s *escooterScorer) productType() schema.ProductType   { return schema.EScooter }
func (s *escooterScorer) categoryWeights() []categoryWeight { return escooterWeights }

func (s *escooterScorer) calculate(rec schema.SpecRecord) schema.ScoreRecord {
	out := schema.ScoreRecord{
		schema.CategoryMotor:       s.motorScore(rec),
		schema.CategoryBattery:     s.batteryScore(rec),
		schema.CategoryRideQuality: s.rideQualityScore(rec),
		schema.CategoryPortability: s.portabilityScore(rec),
		schema.CategorySafety:      s.safetyScore(rec),
		schema.CategoryFeatures:    s.featuresScore(rec),
		schema.CategoryMaintenance: s.maintenanceScore(rec),
	}
	return finishRecord(escooterWeights, out)
}

func (s *escooterScorer) motorScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		logScale(s.specs.topLevel(rec, "manufacturer_top_speed"), 8, 60, 25, false),
		logScale(s.specs.resolve(rec, "motor.power_nominal"), 250, 7000, 25, false),
		logScale(s.specs.resolve(rec, "motor.power_peak"), 350, 10000, 15, false),
		booleanScore(s.specs.resolve(rec, "motor.dual_motor"), 10, 0),
		linearScale(s.specs.resolve(rec, "motor.climb_angle"), 5, 45, 10, false),
		linearScale(s.specs.resolve(rec, "performance.zero_to_15"), 1.5, 10, 15, true),
	})
}

func (s *escooterScorer) batteryScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		logScale(s.specs.resolve(rec, "battery.range"), 8, 100, 30, false),
		logScale(s.specs.resolve(rec, "battery.capacity"), 150, 3000, 25, false),
		linearScale(s.specs.resolve(rec, "battery.voltage"), 24, 84, 10, false),
		linearScale(s.specs.resolve(rec, "battery.charge_time"), 2, 20, 10, true),
		tierScore(s.specs.resolve(rec, "battery.cells"), batteryCellTiers, 15, 5),
		booleanScore(s.specs.resolve(rec, "brakes.regenerative"), 5, 0),
	})
}

func (s *escooterScorer) rideQualityScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		linearScale(s.specs.resolve(rec, "tires.size"), 6, 13, 20, false),
		tierScore(s.specs.resolve(rec, "tires.type"), tireTypeTiers, 25, 8),
		tierScore(s.specs.resolve(rec, "suspension.type"), suspensionTiers, 30, 10),
		linearScale(s.specs.resolve(rec, "dimensions.deck_length"), 14, 24, 10, false),
		linearScale(s.specs.resolve(rec, "dimensions.max_load"), 220, 400, 15, false),
	})
}

// portabilityScore is gated on the product weight: a portability score with
// no weight figure is meaningless, so the whole category is unscored.
func (s *escooterScorer) portabilityScore(rec schema.SpecRecord) *int {
	weight := s.specs.resolve(rec, "dimensions.weight")
	if w, ok := asFloat(weight); !ok || w <= 0 {
		return nil
	}
	return categoryScore([]schema.Factor{
		logScale(weight, 20, 120, 50, true),
		s.foldedVolumeFactor(rec),
		booleanScore(s.specs.resolve(rec, "folding.foldable"), 10, 0),
		booleanScore(s.specs.resolve(rec, "folding.folding_handlebars"), 5, 0),
	})
}

// foldedVolumeFactor scores the folded footprint in cubic feet, derived from
// the three folded dimensions (inches). All three must be present.
func (s *escooterScorer) foldedVolumeFactor(rec schema.SpecRecord) schema.Factor {
	l, okL := asFloat(s.specs.resolve(rec, "dimensions.folded_length"))
	w, okW := asFloat(s.specs.resolve(rec, "dimensions.folded_width"))
	h, okH := asFloat(s.specs.resolve(rec, "dimensions.folded_height"))
	if !okL || !okW || !okH || l <= 0 || w <= 0 || h <= 0 {
		return schema.NoFactor()
	}
	cubicFeet := l * w * h / 1728
	return linearScale(cubicFeet, 2.5, 12, 20, true)
}

// brakeSafeSpeeds maps brake hardware to the per-wheel speed (mph) it can
// safely scrub. Empirically tuned; the combined front+rear figure is what the
// adequacy bands below consume (dual hydraulic discs land in the 80-90 band,
// dual drums in 22-28).
var brakeSafeSpeeds = []tier{
	{"semi-hydraulic", 35},
	{"semi hydraulic", 35},
	{"hydraulic", 42},
	{"mechanical disc", 30},
	{"disc", 30},
	{"drum", 12},
	{"regenerative", 8},
	{"regen", 8},
	{"electronic", 8},
	{"foot", 5},
	{"none", 0},
}

// safeBrakingSpeed computes the speed this brake setup can safely handle.
func safeBrakingSpeed(front, rear string, regen, dualMotor bool) float64 {
	speed := brakeWheelSpeed(front) + brakeWheelSpeed(rear)
	if speed == 0 {
		return 0
	}
	if regen {
		speed += 4
		if dualMotor {
			// Regen on both wheels.
			speed += 2
		}
	}
	return speed
}

func brakeWheelSpeed(brake string) float64 {
	f := tierScore(brake, brakeSafeSpeeds, 50, 0)
	if f.Score == nil {
		return 0
	}
	return *f.Score
}

// brakeAdequacyFactor scores the ratio of safe braking speed to the claimed
// top speed into five discrete bands out of 50 points.
func brakeAdequacyFactor(safeSpeed, topSpeed float64) schema.Factor {
	if topSpeed <= 0 {
		return schema.NoFactor()
	}
	ratio := safeSpeed / topSpeed
	switch {
	case ratio >= 1.3:
		return schema.NewFactor(50, 50)
	case ratio >= 1.0:
		return schema.NewFactor(45, 50)
	case ratio >= 0.8:
		return schema.NewFactor(30, 50)
	case ratio >= 0.6:
		return schema.NewFactor(15, 50)
	default:
		return schema.NewFactor(5, 50)
	}
}

// safetyScore combines brake adequacy, visibility, tire safety and stability.
// The category is unscored without a claimed top speed, since every sub-score
// is judged relative to how fast the scooter actually goes.
func (s *escooterScorer) safetyScore(rec schema.SpecRecord) *int {
	topSpeed, ok := asFloat(s.specs.topLevel(rec, "manufacturer_top_speed"))
	if !ok || topSpeed <= 0 {
		return nil
	}

	front := asString(s.specs.resolve(rec, "brakes.front"))
	rear := asString(s.specs.resolve(rec, "brakes.rear"))
	regen, _ := asBool(s.specs.resolve(rec, "brakes.regenerative"))
	dualMotor, _ := asBool(s.specs.resolve(rec, "motor.dual_motor"))

	var braking schema.Factor
	if front == "" && rear == "" {
		braking = schema.NoFactor()
	} else {
		braking = brakeAdequacyFactor(safeBrakingSpeed(front, rear, regen, dualMotor), topSpeed)
	}

	return categoryScore([]schema.Factor{
		braking,
		s.visibilityFactor(rec),
		s.tireSafetyFactor(rec),
		s.stabilityFactor(rec),
	})
}

// visibilityFactor awards front light, rear light and a turn-signal bonus.
func (s *escooterScorer) visibilityFactor(rec schema.SpecRecord) schema.Factor {
	front, okF := asBool(s.specs.resolve(rec, "lights.front"))
	rear, okR := asBool(s.specs.resolve(rec, "lights.rear"))
	signals, okS := asBool(s.specs.resolve(rec, "lights.turn_signals"))
	if !okF && !okR && !okS {
		return schema.NoFactor()
	}
	var pts float64
	if okF && front {
		pts += 10
	}
	if okR && rear {
		pts += 10
	}
	if okS && signals {
		pts += 5
	}
	return schema.NewFactor(pts, 25)
}

// safetyTireTiers ranks tire constructions by grip and blowout behavior,
// which is not the same ordering as ride comfort.
var safetyTireTiers = []tier{
	{"self-healing", 25},
	{"self healing", 25},
	{"tubeless", 23},
	{"pneumatic", 21},
	{"air", 21},
	{"honeycomb", 15},
	{"solid", 12},
	{"rubber", 12},
}

// tireSafetyFactor blends tire type (25) and tire size (15) into 40 points.
func (s *escooterScorer) tireSafetyFactor(rec schema.SpecRecord) schema.Factor {
	typeFactor := tierScore(s.specs.resolve(rec, "tires.type"), safetyTireTiers, 25, 8)
	sizeFactor := linearScale(s.specs.resolve(rec, "tires.size"), 6, 13, 15, false)
	if typeFactor.Score == nil && sizeFactor.Score == nil {
		return schema.NoFactor()
	}
	var pts float64
	if typeFactor.Score != nil {
		pts += *typeFactor.Score
	}
	if sizeFactor.Score != nil {
		pts += *sizeFactor.Score
	}
	return schema.NewFactor(pts, 40)
}

// stabilityFactor blends handlebar width (5) and deck dimensions (5).
func (s *escooterScorer) stabilityFactor(rec schema.SpecRecord) schema.Factor {
	handlebar := linearScale(s.specs.resolve(rec, "dimensions.handlebar_width"), 16, 28, 5, false)
	deckLength := linearScale(s.specs.resolve(rec, "dimensions.deck_length"), 14, 22, 3, false)
	deckWidth := linearScale(s.specs.resolve(rec, "dimensions.deck_width"), 6, 10, 2, false)
	if handlebar.Score == nil && deckLength.Score == nil && deckWidth.Score == nil {
		return schema.NoFactor()
	}
	var pts float64
	for _, f := range []schema.Factor{handlebar, deckLength, deckWidth} {
		if f.Score != nil {
			pts += *f.Score
		}
	}
	return schema.NewFactor(pts, 10)
}

func (s *escooterScorer) featuresScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		tierScore(s.specs.topLevel(rec, "water_resistance"), waterResistanceTiers, 25, 5),
		booleanScore(s.specs.resolve(rec, "smart_features.app"), 10, 0),
		booleanScore(s.specs.resolve(rec, "smart_features.display"), 10, 0),
		booleanScore(s.specs.resolve(rec, "lights.turn_signals"), 10, 0),
		booleanScore(s.specs.resolve(rec, "smart_features.cruise_control"), 5, 0),
		booleanScore(s.specs.resolve(rec, "smart_features.lock"), 5, 0),
	})
}

// maintenanceTireTiers inverts the comfort ordering: solid tires never go
// flat, pneumatics need the most attention.
var maintenanceTireTiers = []tier{
	{"solid", 20},
	{"rubber", 20},
	{"honeycomb", 18},
	{"self-healing", 16},
	{"self healing", 16},
	{"tubeless", 12},
	{"pneumatic", 8},
	{"air", 8},
}

// maintenanceBrakeTiers favors sealed, adjustment-free brake hardware.
var maintenanceBrakeTiers = []tier{
	{"drum", 15},
	{"regenerative", 14},
	{"regen", 14},
	{"electronic", 14},
	{"hydraulic", 10},
	{"mechanical disc", 8},
	{"disc", 8},
	{"foot", 6},
}

func (s *escooterScorer) maintenanceScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		tierScore(s.specs.resolve(rec, "tires.type"), maintenanceTireTiers, 20, 10),
		tierScore(s.specs.resolve(rec, "brakes.front"), maintenanceBrakeTiers, 15, 8),
	})
}
