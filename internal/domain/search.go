package domain

// Search results are ephemeral: they are produced by one search, rendered,
// and never stored. Their ids are scoped to the batch that produced them,
// not globally unique.

// CabinClass is the fare class of a flight result.
type CabinClass string

const (
	ClassEconomy  CabinClass = "economy"
	ClassBusiness CabinClass = "business"
	ClassFirst    CabinClass = "first"
)

// Valid reports whether c is one of the known cabin classes.
func (c CabinClass) Valid() bool {
	switch c {
	case ClassEconomy, ClassBusiness, ClassFirst:
		return true
	}
	return false
}

// Flight is a single flight search result.
type Flight struct {
	ID         string     `json:"id"`
	Airline    string     `json:"airline"`
	From       string     `json:"from"`
	To         string     `json:"to"`
	DepartTime string     `json:"departTime"`
	ArriveTime string     `json:"arriveTime"`
	Duration   string     `json:"duration"` // e.g. "14h 15m"
	Stops      int        `json:"stops"`
	Price      float64    `json:"price"`
	Class      CabinClass `json:"class"`
}

// Hotel is a single hotel search result.
type Hotel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Rating        float64  `json:"rating"` // review score, 0-5
	Stars         int      `json:"stars"`  // star class, 1-5
	PricePerNight float64  `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
}

// PriceLevel is a restaurant's cost bracket, "$" through "$$$$".
type PriceLevel string

const (
	PriceCheap     PriceLevel = "$"
	PriceModerate  PriceLevel = "$$"
	PriceExpensive PriceLevel = "$$$"
	PriceLuxury    PriceLevel = "$$$$"
)

// Valid reports whether l is one of the known price levels.
func (l PriceLevel) Valid() bool {
	switch l {
	case PriceCheap, PriceModerate, PriceExpensive, PriceLuxury:
		return true
	}
	return false
}

// Restaurant is a single restaurant search result.
type Restaurant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Cuisine     string     `json:"cuisine"`
	Location    string     `json:"location"`
	Rating      float64    `json:"rating"`
	PriceLevel  PriceLevel `json:"priceLevel"`
	Description string     `json:"description"`
	MustTry     string     `json:"mustTry,omitempty"`
}
