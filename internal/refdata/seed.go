package refdata

import "github.com/pantrychef/backend/internal/domain"

// SeedVersion identifies the built-in curated tables. Refreshes derive their
// snapshot version from this plus the enrichment source.
const SeedVersion = "seed-2025.2"

// seedUnits is the built-in unit catalog. Base units: milliliter (volume),
// gram (weight), each (count). Gallon's short form is reserved as "gal" so
// that "g" always resolves to gram.
var seedUnits = []domain.Unit{
	// Volume
	{Name: "milliliter", Abbreviation: "ml", Aliases: []string{"millilitre", "mls"}, Dimension: domain.DimensionVolume, ToBase: 1},
	{Name: "liter", Abbreviation: "l", Aliases: []string{"litre"}, Dimension: domain.DimensionVolume, ToBase: 1000},
	{Name: "teaspoon", Abbreviation: "tsp", Dimension: domain.DimensionVolume, ToBase: 4.92892},
	{Name: "tablespoon", Abbreviation: "tbsp", Aliases: []string{"tbs", "tbl"}, Dimension: domain.DimensionVolume, ToBase: 14.7868},
	{Name: "fluid ounce", Abbreviation: "fl oz", Aliases: []string{"floz", "fluid oz"}, Dimension: domain.DimensionVolume, ToBase: 29.5735},
	{Name: "cup", Dimension: domain.DimensionVolume, ToBase: 236.588},
	{Name: "pint", Abbreviation: "pt", Dimension: domain.DimensionVolume, ToBase: 473.176},
	{Name: "quart", Abbreviation: "qt", Dimension: domain.DimensionVolume, ToBase: 946.353},
	{Name: "gallon", Abbreviation: "gal", Dimension: domain.DimensionVolume, ToBase: 3785.41},

	// Weight
	{Name: "milligram", Abbreviation: "mg", Dimension: domain.DimensionWeight, ToBase: 0.001},
	{Name: "gram", Abbreviation: "g", Aliases: []string{"gm"}, Dimension: domain.DimensionWeight, ToBase: 1},
	{Name: "kilogram", Abbreviation: "kg", Aliases: []string{"kilo"}, Dimension: domain.DimensionWeight, ToBase: 1000},
	{Name: "ounce", Abbreviation: "oz", Dimension: domain.DimensionWeight, ToBase: 28.3495},
	{Name: "pound", Abbreviation: "lb", Aliases: []string{"lbs"}, Dimension: domain.DimensionWeight, ToBase: 453.592},

	// Count
	{Name: "each", Abbreviation: "ea", Aliases: []string{"item", "piece", "pc", "unit", "whole"}, Dimension: domain.DimensionCount, ToBase: 1},
	{Name: "dozen", Abbreviation: "doz", Dimension: domain.DimensionCount, ToBase: 12},
	{Name: "bunch", Dimension: domain.DimensionCount, ToBase: 1},
	{Name: "clove", Dimension: domain.DimensionCount, ToBase: 1},
	{Name: "slice", Dimension: domain.DimensionCount, ToBase: 1},
}

// seedCategories is the curated category rule table. Allowed lists are
// ordered with the preferred unit first. Units in neither list validate
// with a warning (generically valid, no explicit rule).
var seedCategories = []domain.FoodCategory{
	{
		ID:           "produce",
		Name:         "Produce",
		AllowedUnits: []string{"pound", "each", "ounce", "gram", "kilogram", "bunch"},
		ForbiddenUnits: []string{
			"milliliter", "liter", "fluid ounce", "cup", "pint", "quart", "gallon",
		},
		Notes: "fruit and vegetables are sold by weight or count, never by volume",
	},
	{
		ID:           "dairy",
		Name:         "Dairy",
		AllowedUnits: []string{"cup", "fluid ounce", "milliliter", "liter", "gallon", "tablespoon", "ounce", "pound", "gram", "kilogram"},
		Notes:        "mixed dimension: fluid dairy by volume, cheese and butter by weight",
	},
	{
		ID:           "meat",
		Name:         "Meat & Poultry",
		AllowedUnits: []string{"pound", "ounce", "gram", "kilogram", "each"},
		ForbiddenUnits: []string{
			"milliliter", "liter", "fluid ounce", "cup", "pint", "quart", "gallon",
		},
		Notes: "meat is sold by weight; whole birds may be counted",
	},
	{
		ID:           "seafood",
		Name:         "Seafood",
		AllowedUnits: []string{"pound", "ounce", "gram", "kilogram", "each"},
		ForbiddenUnits: []string{
			"milliliter", "liter", "fluid ounce", "cup", "pint", "quart", "gallon",
		},
		Notes: "seafood is sold by weight; whole fish may be counted",
	},
	{
		ID:             "eggs",
		Name:           "Eggs",
		AllowedUnits:   []string{"dozen", "each"},
		ForbiddenUnits: []string{"pound", "ounce", "gram", "kilogram", "milligram"},
		Notes:          "eggs go by dozen or each, never by weight",
	},
	{
		ID:             "bakery",
		Name:           "Bakery",
		AllowedUnits:   []string{"each", "slice", "pound", "ounce", "gram"},
		ForbiddenUnits: []string{"milliliter", "liter", "gallon"},
		Notes:          "loaves and rolls by count or slice, some goods by weight",
	},
	{
		ID:             "beverages",
		Name:           "Beverages",
		AllowedUnits:   []string{"fluid ounce", "liter", "milliliter", "gallon", "cup", "pint", "quart", "each"},
		ForbiddenUnits: []string{"pound", "kilogram"},
		Notes:          "drinks by volume or by container count",
	},
	{
		ID:           "soups",
		Name:         "Soups & Broths",
		AllowedUnits: []string{"cup", "fluid ounce", "milliliter", "liter", "quart", "each"},
		Notes:        "liquids measured by volume; cans and cartons may be counted",
	},
	{
		ID:           "condiments",
		Name:         "Condiments & Sauces",
		AllowedUnits: []string{"tablespoon", "teaspoon", "fluid ounce", "cup", "milliliter", "ounce", "gram"},
		Notes:        "small volume measures or weight",
	},
	{
		ID:           "drygoods",
		Name:         "Dry Goods & Pasta",
		AllowedUnits: []string{"pound", "ounce", "gram", "kilogram", "cup"},
		Notes:        "staples by weight; cups acceptable for recipe amounts",
	},
	{
		ID:             "spices",
		Name:           "Spices & Seasonings",
		AllowedUnits:   []string{"teaspoon", "tablespoon", "ounce", "gram"},
		ForbiddenUnits: []string{"gallon", "quart", "pint"},
		Notes:          "small measures only",
	},
	{
		ID:           "frozen",
		Name:         "Frozen Foods",
		AllowedUnits: []string{"ounce", "pound", "gram", "kilogram", "each", "cup"},
		Notes:        "packaged frozen goods by weight or package count",
	},
	{
		ID:           domain.CategoryOther,
		Name:         "Other",
		AllowedUnits: []string{"each", "gram", "ounce", "pound", "kilogram", "milliliter", "liter", "cup", "fluid ounce", "tablespoon", "teaspoon"},
		Notes:        "fallback category: any generically valid unit is accepted",
	},
}

// seedAliases maps common food names to categories. Keys are written in
// singular form; NormalizeFoodName is applied at load so plural or
// punctuated variants of these resolve identically.
var seedAliases = []domain.CategoryAlias{
	// Produce
	{Alias: "strawberry", Category: "produce"},
	{Alias: "blueberry", Category: "produce"},
	{Alias: "raspberry", Category: "produce"},
	{Alias: "apple", Category: "produce"},
	{Alias: "banana", Category: "produce"},
	{Alias: "orange", Category: "produce"},
	{Alias: "grape", Category: "produce"},
	{Alias: "lemon", Category: "produce"},
	{Alias: "lime", Category: "produce"},
	{Alias: "avocado", Category: "produce"},
	{Alias: "onion", Category: "produce"},
	{Alias: "garlic", Category: "produce"},
	{Alias: "tomato", Category: "produce"},
	{Alias: "potato", Category: "produce"},
	{Alias: "carrot", Category: "produce"},
	{Alias: "lettuce", Category: "produce"},
	{Alias: "spinach", Category: "produce"},
	{Alias: "broccoli", Category: "produce"},
	{Alias: "cucumber", Category: "produce"},
	{Alias: "bell pepper", Category: "produce"},
	{Alias: "mushroom", Category: "produce"},
	{Alias: "celery", Category: "produce"},
	{Alias: "cilantro", Category: "produce"},

	// Dairy
	{Alias: "milk", Category: "dairy"},
	{Alias: "whole milk", Category: "dairy"},
	{Alias: "skim milk", Category: "dairy"},
	{Alias: "cheese", Category: "dairy"},
	{Alias: "cheddar cheese", Category: "dairy"},
	{Alias: "shredded cheese", Category: "dairy"},
	{Alias: "cream cheese", Category: "dairy"},
	{Alias: "yogurt", Category: "dairy"},
	{Alias: "butter", Category: "dairy"},
	{Alias: "cream", Category: "dairy"},
	{Alias: "sour cream", Category: "dairy"},
	{Alias: "heavy cream", Category: "dairy"},

	// Meat & Poultry
	{Alias: "chicken", Category: "meat"},
	{Alias: "chicken breast", Category: "meat"},
	{Alias: "chicken thigh", Category: "meat"},
	{Alias: "beef", Category: "meat"},
	{Alias: "ground beef", Category: "meat"},
	{Alias: "steak", Category: "meat"},
	{Alias: "pork", Category: "meat"},
	{Alias: "bacon", Category: "meat"},
	{Alias: "ham", Category: "meat"},
	{Alias: "sausage", Category: "meat"},
	{Alias: "turkey", Category: "meat"},
	{Alias: "lamb", Category: "meat"},

	// Seafood
	{Alias: "salmon", Category: "seafood"},
	{Alias: "tuna", Category: "seafood"},
	{Alias: "shrimp", Category: "seafood"},
	{Alias: "cod", Category: "seafood"},
	{Alias: "tilapia", Category: "seafood"},
	{Alias: "crab", Category: "seafood"},

	// Eggs
	{Alias: "egg", Category: "eggs"},
	{Alias: "egg white", Category: "eggs"},

	// Bakery
	{Alias: "bread", Category: "bakery"},
	{Alias: "white bread", Category: "bakery"},
	{Alias: "bagel", Category: "bakery"},
	{Alias: "tortilla", Category: "bakery"},
	{Alias: "bun", Category: "bakery"},
	{Alias: "croissant", Category: "bakery"},
	{Alias: "muffin", Category: "bakery"},

	// Beverages
	{Alias: "juice", Category: "beverages"},
	{Alias: "orange juice", Category: "beverages"},
	{Alias: "apple juice", Category: "beverages"},
	{Alias: "soda", Category: "beverages"},
	{Alias: "coffee", Category: "beverages"},
	{Alias: "tea", Category: "beverages"},
	{Alias: "sparkling water", Category: "beverages"},
	{Alias: "beer", Category: "beverages"},
	{Alias: "wine", Category: "beverages"},

	// Soups & Broths
	{Alias: "soup", Category: "soups"},
	{Alias: "broth", Category: "soups"},
	{Alias: "stock", Category: "soups"},
	{Alias: "chicken broth", Category: "soups"},
	{Alias: "beef broth", Category: "soups"},
	{Alias: "vegetable broth", Category: "soups"},
	{Alias: "chicken stock", Category: "soups"},
	{Alias: "beef stock", Category: "soups"},
	{Alias: "tomato soup", Category: "soups"},

	// Condiments & Sauces
	{Alias: "ketchup", Category: "condiments"},
	{Alias: "mustard", Category: "condiments"},
	{Alias: "mayonnaise", Category: "condiments"},
	{Alias: "soy sauce", Category: "condiments"},
	{Alias: "hot sauce", Category: "condiments"},
	{Alias: "olive oil", Category: "condiments"},
	{Alias: "vegetable oil", Category: "condiments"},
	{Alias: "vinegar", Category: "condiments"},
	{Alias: "salsa", Category: "condiments"},
	{Alias: "honey", Category: "condiments"},
	{Alias: "maple syrup", Category: "condiments"},
	{Alias: "salad dressing", Category: "condiments"},

	// Dry Goods & Pasta
	{Alias: "rice", Category: "drygoods"},
	{Alias: "pasta", Category: "drygoods"},
	{Alias: "spaghetti", Category: "drygoods"},
	{Alias: "flour", Category: "drygoods"},
	{Alias: "sugar", Category: "drygoods"},
	{Alias: "brown sugar", Category: "drygoods"},
	{Alias: "oat", Category: "drygoods"},
	{Alias: "cereal", Category: "drygoods"},
	{Alias: "bean", Category: "drygoods"},
	{Alias: "black bean", Category: "drygoods"},
	{Alias: "lentil", Category: "drygoods"},
	{Alias: "quinoa", Category: "drygoods"},

	// Spices & Seasonings
	{Alias: "salt", Category: "spices"},
	{Alias: "black pepper", Category: "spices"},
	{Alias: "cinnamon", Category: "spices"},
	{Alias: "cumin", Category: "spices"},
	{Alias: "paprika", Category: "spices"},
	{Alias: "oregano", Category: "spices"},
	{Alias: "basil", Category: "spices"},
	{Alias: "chili powder", Category: "spices"},
	{Alias: "garlic powder", Category: "spices"},

	// Frozen Foods
	{Alias: "ice cream", Category: "frozen"},
	{Alias: "frozen pizza", Category: "frozen"},
	{Alias: "frozen vegetable", Category: "frozen"},
}

// seedPortions holds curated food-specific conversion factors, derived from
// USDA FoodData Central household-measure portions. A food missing here (and
// not enriched at refresh time) simply cannot convert across dimensions.
var seedPortions = []domain.PortionFactor{
	{FoodKey: "strawberry", GramsPerML: 0.70, GramsPerCount: 12, Source: "curated/USDA FNDDS"}, // 1 cup sliced ≈ 166 g
	{FoodKey: "flour", GramsPerML: 0.53, Source: "curated/USDA FNDDS"},                         // 1 cup ≈ 125 g
	{FoodKey: "sugar", GramsPerML: 0.85, Source: "curated/USDA FNDDS"},                         // 1 cup ≈ 200 g
	{FoodKey: "brown sugar", GramsPerML: 0.93, Source: "curated/USDA FNDDS"},                   // 1 cup packed ≈ 220 g
	{FoodKey: "butter", GramsPerML: 0.96, Source: "curated/USDA FNDDS"},                        // 1 cup ≈ 227 g
	{FoodKey: "milk", GramsPerML: 1.03, Source: "curated/USDA FNDDS"},                          // 1 cup ≈ 244 g
	{FoodKey: "shredded cheese", GramsPerML: 0.48, Source: "curated/USDA FNDDS"},               // 1 cup ≈ 113 g
	{FoodKey: "rice", GramsPerML: 0.78, Source: "curated/USDA FNDDS"},                          // 1 cup dry ≈ 185 g
	{FoodKey: "honey", GramsPerML: 1.42, Source: "curated/USDA FNDDS"},                         // 1 cup ≈ 336 g
	{FoodKey: "olive oil", GramsPerML: 0.92, Source: "curated/USDA FNDDS"},                     // 1 cup ≈ 216 g
	{FoodKey: "egg", GramsPerCount: 50, Source: "curated/USDA FNDDS"},                          // 1 large egg
	{FoodKey: "banana", GramsPerCount: 118, Source: "curated/USDA FNDDS"},                      // 1 medium
	{FoodKey: "apple", GramsPerCount: 182, Source: "curated/USDA FNDDS"},                       // 1 medium
	{FoodKey: "onion", GramsPerML: 0.68, GramsPerCount: 110, Source: "curated/USDA FNDDS"},     // chopped / 1 medium
	{FoodKey: "garlic", GramsPerCount: 5, Source: "curated/USDA FNDDS"},                        // 1 clove
}

// enrichmentFoods are foods the refresh process asks USDA for household
// portions on, to fill gaps in the curated portion table.
var enrichmentFoods = []string{
	"tomato", "potato", "carrot", "spinach", "broccoli",
	"yogurt", "sour cream", "oat", "pasta", "ketchup", "mayonnaise",
}

// SeedData returns a copy of the curated reference tables.
func SeedData() SnapshotData {
	return SnapshotData{
		Version:    SeedVersion,
		Units:      append([]domain.Unit(nil), seedUnits...),
		Categories: append([]domain.FoodCategory(nil), seedCategories...),
		Aliases:    append([]domain.CategoryAlias(nil), seedAliases...),
		Portions:   append([]domain.PortionFactor(nil), seedPortions...),
	}
}

// EnrichmentFoods returns the foods eligible for USDA portion enrichment.
func EnrichmentFoods() []string {
	return append([]string(nil), enrichmentFoods...)
}

// SeedSnapshot builds a snapshot from the built-in curated tables alone.
func SeedSnapshot() (*Snapshot, error) {
	return NewSnapshot(SeedData())
}
