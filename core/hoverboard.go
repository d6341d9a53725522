package core

import (
	"github.com/eridehero/ridescore/schema"
)

// hoverboardScorer scores hoverboards. The buyer base skews toward kids and
// casual riders, so certification and carryability matter as much as output.
type hoverboardScorer struct {
	specs specAccessor
}

var hoverboardWeights = []categoryWeight{
	{schema.CategoryMotor, 0.25},
	{schema.CategoryBattery, 0.25},
	{schema.CategoryPortability, 0.20},
	{schema.CategoryRideComfort, 0.15},
	{schema.CategoryFeatures, 0.15},
}

func newHoverboardScorer() *hoverboardScorer {
	return &hoverboardScorer{specs: newSpecAccessor(schema.Hoverboard, nil)}
}

func (s *hoverboardScorer) productType() schema.ProductType   { return schema.Hoverboard }
func (s *hoverboardScorer) categoryWeights() []categoryWeight { return hoverboardWeights }

func (s *hoverboardScorer) calculate(rec schema.SpecRecord) schema.ScoreRecord {
	out := schema.ScoreRecord{
		schema.CategoryMotor:       s.motorScore(rec),
		schema.CategoryBattery:     s.batteryScore(rec),
		schema.CategoryPortability: s.portabilityScore(rec),
		schema.CategoryRideComfort: s.rideComfortScore(rec),
		schema.CategoryFeatures:    s.featuresScore(rec),
	}
	return finishRecord(hoverboardWeights, out)
}

func (s *hoverboardScorer) motorScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		logScale(s.specs.resolve(rec, "motor.power_total"), 200, 800, 30, false),
		logScale(s.specs.topLevel(rec, "manufacturer_top_speed"), 6, 12, 20, false),
		linearScale(s.specs.resolve(rec, "motor.climb_angle"), 5, 30, 10, false),
	})
}

// batteryScore includes the UL 2272 certification, the single most important
// line on a hoverboard spec sheet after the fire recalls of 2016.
func (s *hoverboardScorer) batteryScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		booleanScore(s.specs.resolve(rec, "battery.ul2272"), 25, 0),
		logScale(s.specs.resolve(rec, "battery.range"), 3, 12, 25, false),
		logScale(s.specs.resolve(rec, "battery.capacity"), 70, 300, 15, false),
		linearScale(s.specs.resolve(rec, "battery.charge_time"), 1.5, 6, 10, true),
	})
}

// portabilityScore is gated on the board weight, same rule as scooters.
func (s *hoverboardScorer) portabilityScore(rec schema.SpecRecord) *int {
	weight := s.specs.resolve(rec, "dimensions.weight")
	if w, ok := asFloat(weight); !ok || w <= 0 {
		return nil
	}
	return categoryScore([]schema.Factor{
		logScale(weight, 12, 35, 50, true),
		booleanScore(s.specs.resolve(rec, "features.carry_handle"), 10, 0),
	})
}

func (s *hoverboardScorer) rideComfortScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		linearScale(s.specs.resolve(rec, "tires.size"), 6.5, 10, 20, false),
		tierScore(s.specs.resolve(rec, "tires.type"), tireTypeTiers, 15, 8),
		linearScale(s.specs.resolve(rec, "dimensions.max_load"), 150, 300, 15, false),
		booleanScore(s.specs.resolve(rec, "features.self_balancing"), 10, 0),
	})
}

func (s *hoverboardScorer) featuresScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		tierScore(s.specs.topLevel(rec, "water_resistance"), waterResistanceTiers, 20, 5),
		booleanScore(s.specs.resolve(rec, "smart_features.app"), 10, 0),
		booleanScore(s.specs.resolve(rec, "smart_features.speakers"), 8, 0),
		booleanScore(s.specs.resolve(rec, "lights.led"), 7, 0),
		booleanScore(s.specs.resolve(rec, "smart_features.ride_modes"), 5, 0),
	})
}
