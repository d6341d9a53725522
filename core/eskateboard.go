package core

import (
	"regexp"

	"github.com/eridehero/ridescore/schema"
)

// eskateboardScorer scores electric skateboards.
type eskateboardScorer struct {
	specs specAccessor
}

var eskateboardWeights = []categoryWeight{
	{schema.CategoryMotor, 0.25},
	{schema.CategoryBattery, 0.25},
	{schema.CategoryRideQuality, 0.25},
	{schema.CategoryPortability, 0.15},
	{schema.CategoryFeatures, 0.10},
}

func newESkateboardScorer() *eskateboardScorer {
	return &eskateboardScorer{specs: newSpecAccessor(schema.ESkateboard, nil)}
}

func (s *eskateboardScorer) productType() schema.ProductType   { return schema.ESkateboard }
func (s *eskateboardScorer) categoryWeights() []categoryWeight { return eskateboardWeights }

func (s *eskateboardScorer) calculate(rec schema.SpecRecord) schema.ScoreRecord {
	out := schema.ScoreRecord{
		schema.CategoryMotor:       s.motorScore(rec),
		schema.CategoryBattery:     s.batteryScore(rec),
		schema.CategoryRideQuality: s.rideQualityScore(rec),
		schema.CategoryPortability: s.portabilityScore(rec),
		schema.CategoryFeatures:    s.featuresScore(rec),
	}
	return finishRecord(eskateboardWeights, out)
}

// motorSizeTiers classifies outrunner motor size codes (diameter x length in
// mm). The can codes appear verbatim in spec sheets, so they are matched as
// anchored numbers, largest first.
var motorSizeTiers = []regexTier{
	{regexp.MustCompile(`63[67]4|6880`), 15},
	{regexp.MustCompile(`6355|6368`), 13},
	{regexp.MustCompile(`5465|5255`), 10},
	{regexp.MustCompile(`50[56]5`), 8},
}

// driveTypeTiers ranks drive systems. Belt and gear drives out-torque hubs
// and allow real urethane wheels; direct drive splits the difference.
var driveTypeTiers = []tier{
	{"gear", 15},
	{"belt", 14},
	{"direct", 11},
	{"hub", 8},
}

func (s *eskateboardScorer) motorScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		logScale(s.specs.topLevel(rec, "manufacturer_top_speed"), 12, 35, 20, false),
		logScale(s.specs.resolve(rec, "motor.power_total"), 500, 6000, 25, false),
		regexTierScore(s.specs.resolve(rec, "motor.size"), motorSizeTiers, 15, 6),
		tierScore(s.specs.resolve(rec, "motor.drive_type"), driveTypeTiers, 15, 8),
		linearScale(s.specs.resolve(rec, "motor.hill_grade"), 10, 35, 10, false),
	})
}

func (s *eskateboardScorer) batteryScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		logScale(s.specs.resolve(rec, "battery.range"), 6, 40, 30, false),
		logScale(s.specs.resolve(rec, "battery.capacity"), 90, 1000, 25, false),
		linearScale(s.specs.resolve(rec, "battery.voltage"), 24, 50.4, 10, false),
		tierScore(s.specs.resolve(rec, "battery.cells"), batteryCellTiers, 15, 5),
		booleanScore(s.specs.resolve(rec, "battery.swappable"), 10, 0),
	})
}

// deckMaterialTiers ranks deck constructions by flex quality and durability.
var deckMaterialTiers = []tier{
	{"carbon", 20},
	{"fiberglass", 18},
	{"bamboo", 18},
	{"composite", 15},
	{"maple", 13},
	{"plastic", 6},
}

func (s *eskateboardScorer) rideQualityScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		tierScore(s.specs.resolve(rec, "deck.material"), deckMaterialTiers, 20, 10),
		linearScale(s.specs.resolve(rec, "wheels.size"), 80, 175, 20, false),
		tierScore(s.specs.resolve(rec, "wheels.type"), tireTypeTiers, 15, 8),
		linearScale(s.specs.resolve(rec, "deck.length"), 28, 42, 10, false),
		linearScale(s.specs.resolve(rec, "dimensions.max_load"), 200, 330, 10, false),
	})
}

// portabilityScore is gated on the board weight, same rule as scooters.
func (s *eskateboardScorer) portabilityScore(rec schema.SpecRecord) *int {
	weight := s.specs.resolve(rec, "dimensions.weight")
	if w, ok := asFloat(weight); !ok || w <= 0 {
		return nil
	}
	return categoryScore([]schema.Factor{
		logScale(weight, 10, 35, 50, true),
		booleanScore(s.specs.resolve(rec, "deck.kicktail"), 10, 0),
		booleanScore(s.specs.resolve(rec, "deck.handle"), 5, 0),
	})
}

func (s *eskateboardScorer) featuresScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		tierScore(s.specs.topLevel(rec, "water_resistance"), waterResistanceTiers, 25, 5),
		booleanScore(s.specs.resolve(rec, "smart_features.app"), 10, 0),
		booleanScore(s.specs.resolve(rec, "smart_features.regen_braking"), 10, 0),
		booleanScore(s.specs.resolve(rec, "remote.display"), 5, 0),
		booleanScore(s.specs.resolve(rec, "lights.integrated"), 5, 0),
	})
}
