package core

import (
	"github.com/eridehero/ridescore/schema"
)

// eunicycleScorer scores electric unicycles. Range anxiety dominates EUC
// buying decisions, so battery carries the largest weight of any category
// across all product types.
type eunicycleScorer struct {
	specs specAccessor
}

var eunicycleWeights = []categoryWeight{
	{schema.CategoryMotor, 0.20},
	{schema.CategoryBattery, 0.25},
	{schema.CategoryRideQuality, 0.20},
	{schema.CategorySafety, 0.15},
	{schema.CategoryPortability, 0.12},
	{schema.CategoryFeatures, 0.08},
}

func newEUnicycleScorer() *eunicycleScorer {
	return &eunicycleScorer{specs: newSpecAccessor(schema.EUnicycle, nil)}
}

func (s *eunicycleScorer) productType() schema.ProductType   { return schema.EUnicycle }
func (s *eunicycleScorer) categoryWeights() []categoryWeight { return eunicycleWeights }

func (s *eunicycleScorer) calculate(rec schema.SpecRecord) schema.ScoreRecord {
	out := schema.ScoreRecord{
		schema.CategoryMotor:       s.motorScore(rec),
		schema.CategoryBattery:     s.batteryScore(rec),
		schema.CategoryRideQuality: s.rideQualityScore(rec),
		schema.CategorySafety:      s.safetyScore(rec),
		schema.CategoryPortability: s.portabilityScore(rec),
		schema.CategoryFeatures:    s.featuresScore(rec),
	}
	return finishRecord(eunicycleWeights, out)
}

func (s *eunicycleScorer) motorScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		logScale(s.specs.resolve(rec, "motor.power_nominal"), 500, 4000, 30, false),
		logScale(s.specs.resolve(rec, "motor.power_peak"), 800, 10000, 15, false),
		logScale(s.specs.topLevel(rec, "manufacturer_top_speed"), 12, 45, 25, false),
		linearScale(s.specs.resolve(rec, "motor.torque"), 50, 250, 15, false),
	})
}

func (s *eunicycleScorer) batteryScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		logScale(s.specs.resolve(rec, "battery.range"), 15, 120, 30, false),
		logScale(s.specs.resolve(rec, "battery.capacity"), 300, 3600, 25, false),
		linearScale(s.specs.resolve(rec, "battery.voltage"), 67.2, 151.2, 10, false),
		linearScale(s.specs.resolve(rec, "battery.charge_time"), 3, 14, 10, true),
		tierScore(s.specs.resolve(rec, "battery.cells"), batteryCellTiers, 15, 5),
	})
}

// eucSuspensionTiers ranks EUC suspension implementations.
var eucSuspensionTiers = []tier{
	{"air", 30},
	{"hydraulic", 28},
	{"spring", 20},
	{"none", 0},
}

func (s *eunicycleScorer) rideQualityScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		linearScale(s.specs.resolve(rec, "tires.size"), 14, 22, 20, false),
		linearScale(s.specs.resolve(rec, "tires.width"), 2.125, 4, 10, false),
		tierScore(s.specs.resolve(rec, "suspension.type"), eucSuspensionTiers, 30, 10),
		linearScale(s.specs.resolve(rec, "dimensions.pedal_height"), 5, 8.5, 10, false),
		linearScale(s.specs.resolve(rec, "dimensions.max_load"), 220, 330, 10, false),
	})
}

// safetyScore is dominated by the headroom margin: the gap between the top
// speed the firmware allows and the speed the motor can actually sustain is
// what prevents cutouts. Unscored without both speed figures.
func (s *eunicycleScorer) safetyScore(rec schema.SpecRecord) *int {
	topSpeed, okTop := asFloat(s.specs.topLevel(rec, "manufacturer_top_speed"))
	if !okTop || topSpeed <= 0 {
		return nil
	}

	var headroom schema.Factor
	liftSpeed, okLift := asFloat(s.specs.resolve(rec, "performance.lift_speed"))
	if okLift && liftSpeed > topSpeed {
		headroom = linearScale((liftSpeed-topSpeed)/topSpeed, 0.05, 0.5, 40, false)
	} else if okLift {
		headroom = schema.NewFactor(0, 40)
	} else {
		headroom = schema.NoFactor()
	}

	return categoryScore([]schema.Factor{
		headroom,
		booleanScore(s.specs.resolve(rec, "safety.tiltback"), 15, 0),
		booleanScore(s.specs.resolve(rec, "safety.speed_alarm"), 10, 0),
		booleanScore(s.specs.resolve(rec, "lights.integrated"), 15, 0),
		booleanScore(s.specs.resolve(rec, "lights.brake_light"), 10, 0),
	})
}

// portabilityScore is gated on the wheel weight, same rule as scooters.
func (s *eunicycleScorer) portabilityScore(rec schema.SpecRecord) *int {
	weight := s.specs.resolve(rec, "dimensions.weight")
	if w, ok := asFloat(weight); !ok || w <= 0 {
		return nil
	}
	return categoryScore([]schema.Factor{
		logScale(weight, 25, 90, 50, true),
		booleanScore(s.specs.resolve(rec, "features.trolley_handle"), 15, 0),
		booleanScore(s.specs.resolve(rec, "features.kickstand"), 5, 0),
	})
}

func (s *eunicycleScorer) featuresScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		tierScore(s.specs.topLevel(rec, "water_resistance"), waterResistanceTiers, 25, 5),
		booleanScore(s.specs.resolve(rec, "smart_features.app"), 10, 0),
		booleanScore(s.specs.resolve(rec, "smart_features.display"), 8, 0),
		booleanScore(s.specs.resolve(rec, "smart_features.speakers"), 4, 0),
		booleanScore(s.specs.resolve(rec, "features.adjustable_pedals"), 5, 0),
	})
}
