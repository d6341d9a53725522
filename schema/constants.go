package schema

// Custom string types for type safety.
type (
	// ProductType discriminates the supported e-mobility product families.
	ProductType string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the score cache.
	DatabaseBackend string
)

// All product types supported by the scoring engine.
const (
	EScooter    ProductType = "Electric Scooter"
	EBike       ProductType = "Electric Bike"
	ESkateboard ProductType = "Electric Skateboard"
	EUnicycle   ProductType = "Electric Unicycle"
	Hoverboard  ProductType = "Hoverboard"
)

// Category keys used across the per-type score records. Each product type
// exposes a fixed subset of these plus CategoryOverall; downstream consumers
// depend on the exact strings, so renaming any of them is a breaking change.
const (
	CategoryOverall      = "overall"
	CategoryMotor        = "motor"
	CategoryBattery      = "battery"
	CategoryRideQuality  = "ride_quality"
	CategoryPortability  = "portability"
	CategorySafety       = "safety"
	CategoryFeatures     = "features"
	CategoryMaintenance  = "maintenance"
	CategoryComponents   = "components"
	CategoryComfort      = "comfort"
	CategoryPracticality = "practicality"
	CategoryRideComfort  = "ride_comfort"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllProductTypes lists every supported product type in display order.
var AllProductTypes = []ProductType{EScooter, EBike, ESkateboard, EUnicycle, Hoverboard}

// ValidProductTypes lists all valid product types.
var ValidProductTypes = map[ProductType]struct{}{
	EScooter:    {},
	EBike:       {},
	ESkateboard: {},
	EUnicycle:   {},
	Hoverboard:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// GroupKey returns the nested group key under which a product type's modern
// specification shape stores its sub-groups (e.g. "e-scooters.motor.power_nominal").
// An empty string means the type has no group-prefixed shape.
func GroupKey(pt ProductType) string {
	switch pt {
	case EScooter:
		return "e-scooters"
	case EBike:
		return "e-bikes"
	case ESkateboard:
		return "e-skateboards"
	case EUnicycle:
		return "electric-unicycles"
	case Hoverboard:
		return "hoverboards"
	default:
		return ""
	}
}
