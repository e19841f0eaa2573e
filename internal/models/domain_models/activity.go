package domain_models

// Category is the fixed set of activity categories the planner understands.
type Category string

const (
	CategorySights    Category = "SIGHTS"
	CategoryFood      Category = "FOOD"
	CategoryOutdoor   Category = "OUTDOOR"
	CategoryNightlife Category = "NIGHTLIFE"
	CategoryShopping  Category = "SHOPPING"
	CategoryCulture   Category = "CULTURE"
)

// Categories returns every category in a fixed order. Pool iteration and
// the no-interest default fetch both rely on this order being stable.
func Categories() []Category {
	return []Category{
		CategorySights,
		CategoryFood,
		CategoryOutdoor,
		CategoryNightlife,
		CategoryShopping,
		CategoryCulture,
	}
}

// PriceTier is a coarse affordability bucket.
type PriceTier string

const (
	PriceFree     PriceTier = "Free"
	PriceCheap    PriceTier = "$"
	PriceModerate PriceTier = "$$"
	PricePricey   PriceTier = "$$$"
	PriceLuxury   PriceTier = "$$$$"
	PriceUnknown  PriceTier = "Unknown"
)

// Location is a geographic point with a display address. A nil *Location on
// a candidate means the provider did not return coordinates.
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// ActivityCandidate is an identity-free description of a place, as produced
// by an activity source. The engine never mutates one; scheduling copies its
// fields into a ScheduledActivity instead.
type ActivityCandidate struct {
	Name        string
	Description string
	Destination string
	Category    Category
	Location    *Location
	Rating      *float64
	ReviewCount *int
	PriceRange  PriceTier
	WebsiteURL  string
	ImageURLs   []string
	Tags        []string
	IsPopular   bool
}
