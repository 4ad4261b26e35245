package domain

// USDAFood represents a food item from the USDA FoodData Central API
type USDAFood struct {
	FdcID       int64             `json:"fdcId"`
	Description string            `json:"description"`
	DataType    string            `json:"dataType"`
	FoodClass   string            `json:"foodClass,omitempty"`
	Portions    []USDAFoodPortion `json:"foodPortions,omitempty"`
}

// USDAFoodPortion represents a single foodPortions entry from USDA data.
// Survey (FNDDS) records describe household measures ("1 cup, sliced")
// together with their gram weight, which is exactly the reference data the
// portion-factor table is built from.
type USDAFoodPortion struct {
	ID             int64           `json:"id"`
	Amount         float64         `json:"amount"`
	Modifier       string          `json:"modifier,omitempty"`
	PortionDesc    string          `json:"portionDescription,omitempty"`
	GramWeight     float64         `json:"gramWeight"`
	MeasureUnit    USDAMeasureUnit `json:"measureUnit"`
	SequenceNumber int             `json:"sequenceNumber,omitempty"`
}

// USDAMeasureUnit is the measure-unit object nested in a food portion
type USDAMeasureUnit struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// USDASearchResponse represents the response from USDA search API
type USDASearchResponse struct {
	Foods       []USDAFood `json:"foods"`
	TotalHits   int        `json:"totalHits"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
}
