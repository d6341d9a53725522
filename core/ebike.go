package core

import (
	"regexp"

	"github.com/eridehero/ridescore/schema"
)

// ebikeScorer scores electric bikes. Bikes are judged less on raw motor
// output (class limits cap that anyway) and more on drive system pedigree
// and component quality.
type ebikeScorer struct {
	specs specAccessor
}

var ebikeWeights = []categoryWeight{
	{schema.CategoryMotor, 0.25},
	{schema.CategoryBattery, 0.20},
	{schema.CategoryComponents, 0.25},
	{schema.CategoryComfort, 0.15},
	{schema.CategoryPracticality, 0.15},
}

func newEBikeScorer() *ebikeScorer {
	return &ebikeScorer{specs: newSpecAccessor(schema.EBike, nil)}
}

func (s *ebikeScorer) productType() schema.ProductType   { return schema.EBike }
func (s *ebikeScorer) categoryWeights() []categoryWeight { return ebikeWeights }

func (s *ebikeScorer) calculate(rec schema.SpecRecord) schema.ScoreRecord {
	out := schema.ScoreRecord{
		schema.CategoryMotor:        s.motorScore(rec),
		schema.CategoryBattery:      s.batteryScore(rec),
		schema.CategoryComponents:   s.componentsScore(rec),
		schema.CategoryComfort:      s.comfortScore(rec),
		schema.CategoryPracticality: s.practicalityScore(rec),
	}
	return finishRecord(ebikeWeights, out)
}

// motorBrandTiers ranks e-bike drive system manufacturers. The premium
// mid-drive makers sit well above generic hub motor suppliers.
var motorBrandTiers = []tier{
	{"bosch", 25},
	{"yamaha", 20},
	{"shimano", 20},
	{"brose", 18},
	{"specialized", 18},
	{"fazua", 16},
	{"mahle", 15},
	{"bafang", 12},
	{"tongsheng", 10},
	{"ananda", 8},
	{"aikema", 8},
}

// motorMountTiers ranks the motor position. Mid-drives center the mass and
// use the bike's gearing; hub drives do neither.
var motorMountTiers = []tier{
	{"mid-drive", 15},
	{"mid drive", 15},
	{"middrive", 15},
	{"rear hub", 9},
	{"front hub", 6},
	{"hub", 8},
}

func (s *ebikeScorer) motorScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		tierScore(s.specs.resolve(rec, "motor.brand"), motorBrandTiers, 25, 5),
		linearScale(s.specs.resolve(rec, "motor.torque"), 30, 120, 25, false),
		tierScore(s.specs.resolve(rec, "motor.type"), motorMountTiers, 15, 6),
		logScale(s.specs.resolve(rec, "motor.power_nominal"), 250, 1500, 15, false),
		logScale(s.specs.resolve(rec, "motor.power_peak"), 350, 2500, 10, false),
	})
}

func (s *ebikeScorer) batteryScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		logScale(s.specs.resolve(rec, "battery.range"), 15, 120, 30, false),
		logScale(s.specs.resolve(rec, "battery.capacity"), 250, 1500, 25, false),
		linearScale(s.specs.resolve(rec, "battery.charge_time"), 2, 12, 10, true),
		tierScore(s.specs.resolve(rec, "battery.cells"), batteryCellTiers, 15, 5),
		booleanScore(s.specs.resolve(rec, "battery.removable"), 10, 0),
	})
}

// drivetrainTiers ranks groupsets by their market position. Model lines are
// anchored regexes so "deore xt" cannot fall through to plain "deore".
var drivetrainTiers = []regexTier{
	{regexp.MustCompile(`xtr|dura.?ace|red|xx1`), 30},
	{regexp.MustCompile(`deore\s?xt|ultegra|force|x01|gx\s?eagle`), 27},
	{regexp.MustCompile(`slx|105|rival|nx\s?eagle`), 24},
	{regexp.MustCompile(`deore|tiagra|apex|sx\s?eagle`), 20},
	{regexp.MustCompile(`alivio|sora|cues`), 16},
	{regexp.MustCompile(`acera|claris`), 13},
	{regexp.MustCompile(`altus|tourney`), 10},
	{regexp.MustCompile(`shimano|sram|microshift`), 12},
	{regexp.MustCompile(`single\s?speed|belt`), 14},
}

func (s *ebikeScorer) componentsScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		regexTierScore(s.specs.resolve(rec, "components.drivetrain"), drivetrainTiers, 30, 8),
		tierScore(s.specs.resolve(rec, "brakes.type"), brakeTypeTiers, 25, 8),
		linearScale(s.specs.resolve(rec, "components.gears"), 1, 12, 10, false),
		linearScale(s.specs.resolve(rec, "brakes.rotor_size"), 140, 203, 10, false),
		tierScore(s.specs.resolve(rec, "components.fork"), suspensionForkTiers, 15, 5),
	})
}

// suspensionForkTiers ranks front suspension hardware for e-bikes.
var suspensionForkTiers = []tier{
	{"air", 15},
	{"fox", 15},
	{"rockshox", 14},
	{"coil", 10},
	{"suntour", 9},
	{"rigid", 4},
	{"none", 4},
}

func (s *ebikeScorer) comfortScore(rec schema.SpecRecord) *int {
	return categoryScore([]schema.Factor{
		linearScale(s.specs.resolve(rec, "components.suspension_travel"), 40, 160, 25, false),
		linearScale(s.specs.resolve(rec, "tires.width"), 1.5, 4.5, 20, false),
		booleanScore(s.specs.resolve(rec, "components.seatpost_suspension"), 10, 0),
		booleanScore(s.specs.resolve(rec, "components.step_through"), 10, 0),
	})
}

// ebikeWeightBounds returns the acceptable weight window (lb) for a bike
// based on its category tags. A 70 lb cargo bike is normal; a 70 lb folder
// defeats its own purpose.
func ebikeWeightBounds(category string) (minLb, maxLb float64) {
	switch {
	case containsFold(category, "cargo"):
		return 65, 110
	case containsFold(category, "folding"), containsFold(category, "foldable"):
		return 35, 65
	default:
		return 38, 75
	}
}

func (s *ebikeScorer) practicalityScore(rec schema.SpecRecord) *int {
	minLb, maxLb := ebikeWeightBounds(asString(s.specs.topLevel(rec, "category")))
	return categoryScore([]schema.Factor{
		linearScale(s.specs.resolve(rec, "dimensions.weight"), minLb, maxLb, 25, true),
		linearScale(s.specs.resolve(rec, "dimensions.max_load"), 220, 440, 15, false),
		booleanScore(s.specs.resolve(rec, "accessories.rack"), 10, 0),
		booleanScore(s.specs.resolve(rec, "accessories.fenders"), 5, 0),
		booleanScore(s.specs.resolve(rec, "accessories.lights"), 10, 0),
		tierScore(s.specs.topLevel(rec, "water_resistance"), waterResistanceTiers, 15, 5),
	})
}
