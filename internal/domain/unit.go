package domain

// Dimension is the physical quantity kind of a unit. Units convert directly
// only within the same dimension.
type Dimension string

const (
	DimensionVolume Dimension = "volume"
	DimensionWeight Dimension = "weight"
	DimensionCount  Dimension = "count"
)

// Base units per dimension: milliliters for volume, grams for weight,
// single items for count.
const (
	BaseUnitVolume = "milliliter"
	BaseUnitWeight = "gram"
	BaseUnitCount  = "each"
)

// Unit is a measurement unit from the catalog.
type Unit struct {
	Name         string    `json:"name"`         // canonical singular name, e.g. "tablespoon"
	Abbreviation string    `json:"abbreviation"` // primary short form, e.g. "tbsp"; may be empty
	Aliases      []string  `json:"aliases,omitempty"`
	Dimension    Dimension `json:"dimension"`
	ToBase       float64   `json:"toBase"` // factor to the dimension's base unit
}

// IsZero reports whether the unit is the empty value.
func (u Unit) IsZero() bool {
	return u.Name == ""
}
