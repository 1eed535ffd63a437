// internal/models/property.go
package models

// PropertyType is the closed set of listing types the analyzer understands.
type PropertyType string

const (
	PropertyTypeSingleFamily PropertyType = "Single Family"
	PropertyTypeMultiFamily  PropertyType = "Multi Family"
	PropertyTypeCondo        PropertyType = "Condo"
	PropertyTypeTownhouse    PropertyType = "Townhouse"
	PropertyTypeLand         PropertyType = "Land"
)

// PropertyTypes lists every concrete listing type.
var PropertyTypes = []PropertyType{
	PropertyTypeSingleFamily,
	PropertyTypeMultiFamily,
	PropertyTypeCondo,
	PropertyTypeTownhouse,
	PropertyTypeLand,
}

type Address struct {
	Street  string  `json:"street"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	ZipCode string  `json:"zipCode"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type Specs struct {
	Bedrooms  int          `json:"bedrooms"`
	Bathrooms float64      `json:"bathrooms"`
	Sqft      int          `json:"sqft"`
	LotSize   int          `json:"lotSize"` // in sqft
	YearBuilt int          `json:"yearBuilt"`
	Type      PropertyType `json:"type"`
}

type Financials struct {
	HOAMonthly        float64 `json:"hoaMonthly"`
	PropertyTaxAnnual float64 `json:"propertyTaxAnnual"`
	RentEstimate      float64 `json:"rentEstimate"` // estimated monthly rent
}

type Details struct {
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	DaysOnMarket int      `json:"daysOnMarket"`
	ListingAgent string   `json:"listingAgent,omitempty"`
	Source       string   `json:"source"`
}

// Property is a listing record as returned by the listing provider.
// The analysis engine never mutates it.
type Property struct {
	ID         string     `json:"id"`
	Address    Address    `json:"address"`
	Price      float64    `json:"price"`
	Specs      Specs      `json:"specs"`
	Financials Financials `json:"financials"`
	Details    Details    `json:"details"`
}
