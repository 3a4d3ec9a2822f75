package models

// UnitSystem identifies a measurement unit family.
type UnitSystem string

const (
	UnitSystemEU UnitSystem = "EU"
	UnitSystemUS UnitSystem = "US"
)

// Unit describes a single measurement unit with its short and long labels.
type Unit struct {
	Code  string
	Short string
	Long  string
}

// The catalog order is significant: the first EU entry is the default unit
// assigned to newly added ingredient rows.
var euUnits = []Unit{
	{Code: "g", Short: "g", Long: "grams"},
	{Code: "kg", Short: "kg", Long: "kilograms"},
	{Code: "l", Short: "l", Long: "liters"},
	{Code: "ml", Short: "ml", Long: "milliliters"},
	{Code: "cup", Short: "cup", Long: "cups"},
	{Code: "tbsp", Short: "tbsp", Long: "tablespoons"},
	{Code: "tsp", Short: "tsp", Long: "teaspoons"},
}

// US units are defined for completeness but the recipe form only offers the
// EU set; there is no unit-system toggle end to end.
var usUnits = []Unit{
	{Code: "oz", Short: "oz", Long: "ounces"},
	{Code: "lb", Short: "lb", Long: "pounds"},
	{Code: "gal", Short: "gal", Long: "gallons"},
	{Code: "pt", Short: "pt", Long: "pints"},
	{Code: "qt", Short: "qt", Long: "quarts"},
	{Code: "flOz", Short: "fl oz", Long: "fluid ounces"},
	{Code: "tbsp", Short: "tbsp", Long: "tablespoons"},
	{Code: "tsp", Short: "tsp", Long: "teaspoons"},
}

// Units returns the catalog entries for the requested system in their
// canonical order. The returned slice is a copy and safe to mutate.
func Units(system UnitSystem) []Unit {
	var source []Unit
	switch system {
	case UnitSystemUS:
		source = usUnits
	default:
		source = euUnits
	}
	result := make([]Unit, len(source))
	copy(result, source)
	return result
}

// DefaultUnitCode returns the unit assigned to a freshly added ingredient row.
func DefaultUnitCode() string {
	return euUnits[0].Code
}

// UnitShort resolves a unit code to its short label, falling back to the code
// itself for unknown values so stored recipes always render something.
func UnitShort(code string) string {
	if unit, ok := lookupUnit(code); ok {
		return unit.Short
	}
	return code
}

// UnitLong resolves a unit code to its long label, falling back to the code.
func UnitLong(code string) string {
	if unit, ok := lookupUnit(code); ok {
		return unit.Long
	}
	return code
}

func lookupUnit(code string) (Unit, bool) {
	for _, unit := range euUnits {
		if unit.Code == code {
			return unit, true
		}
	}
	for _, unit := range usUnits {
		if unit.Code == code {
			return unit, true
		}
	}
	return Unit{}, false
}
