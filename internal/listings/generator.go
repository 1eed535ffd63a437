// internal/listings/generator.go
package listings

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"

	"deal-analyzer/internal/models"
)

// metro holds the market profile a synthetic listing is drawn from.
type metro struct {
	City      string
	State     string
	Zip       string
	BasePrice float64
	Lat       float64
	Lng       float64
}

var metros = []metro{
	{City: "Austin", State: "TX", Zip: "78701", BasePrice: 450000, Lat: 30.2672, Lng: -97.7431},
	{City: "Dallas", State: "TX", Zip: "75201", BasePrice: 350000, Lat: 32.7767, Lng: -96.7970},
	{City: "Nashville", State: "TN", Zip: "37203", BasePrice: 400000, Lat: 36.1627, Lng: -86.7816},
	{City: "Atlanta", State: "GA", Zip: "30308", BasePrice: 380000, Lat: 33.7490, Lng: -84.3880},
	{City: "Phoenix", State: "AZ", Zip: "85001", BasePrice: 420000, Lat: 33.4484, Lng: -112.0740},
}

var streetNames = []string{"Maple", "Oak", "Pine", "Cedar", "Elm", "Washington", "Main", "Highland", "Park", "Lake"}

// listingTypes excludes Land: the simulated feed only carries
// rentable structures.
var listingTypes = []models.PropertyType{
	models.PropertyTypeSingleFamily,
	models.PropertyTypeMultiFamily,
	models.PropertyTypeCondo,
	models.PropertyTypeTownhouse,
}

// Generator produces synthetic listings that mimic the shape of a
// scraped Realtor.com feed. A fixed seed makes runs reproducible.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Page generates a page of listings. IDs encode page and offset so a
// listing keeps its identity across cache layers.
func (g *Generator) Page(page, limit int) []models.Property {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]models.Property, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, g.property(page*1000+i))
	}
	return out
}

func (g *Generator) property(id int) models.Property {
	loc := metros[g.rng.Intn(len(metros))]
	propType := listingTypes[g.rng.Intn(len(listingTypes))]

	bedrooms := g.rng.Intn(4) + 2
	bathrooms := float64(g.rng.Intn(3) + 1)
	sqft := 1000 + g.rng.Intn(2500)

	// Price varies with square footage plus market noise, rounded to
	// the nearest thousand like real listing prices.
	price := math.Floor((loc.BasePrice+float64(sqft)*150+g.rng.Float64()*100000-50000)/1000) * 1000

	// Rent rule of thumb roughly 0.7% - 1.2% of price.
	rentRatio := 0.006 + g.rng.Float64()*0.005
	rent := math.Floor(price * rentRatio)

	annualTax := math.Floor(price * 0.012)

	var hoa float64
	if propType == models.PropertyTypeCondo {
		hoa = float64(350 + g.rng.Intn(200))
	}

	lotSize := sqft
	if propType == models.PropertyTypeSingleFamily {
		lotSize = sqft * 4
	}

	latOffset := (g.rng.Float64() - 0.5) * 0.1
	lngOffset := (g.rng.Float64() - 0.5) * 0.1

	return models.Property{
		ID: fmt.Sprintf("prop-%d", id),
		Address: models.Address{
			Street:  fmt.Sprintf("%d %s St", g.rng.Intn(9999), streetNames[g.rng.Intn(len(streetNames))]),
			City:    loc.City,
			State:   loc.State,
			ZipCode: loc.Zip,
			Lat:     loc.Lat + latOffset,
			Lng:     loc.Lng + lngOffset,
		},
		Price: price,
		Specs: models.Specs{
			Bedrooms:  bedrooms,
			Bathrooms: bathrooms,
			Sqft:      sqft,
			LotSize:   lotSize,
			YearBuilt: 1950 + g.rng.Intn(74),
			Type:      propType,
		},
		Financials: models.Financials{
			HOAMonthly:        hoa,
			PropertyTaxAnnual: annualTax,
			RentEstimate:      rent,
		},
		Details: models.Details{
			Description: fmt.Sprintf(
				"Beautiful %s located in the heart of %s. Features updated amenities, spacious living areas, and great potential for investors. Recently renovated kitchen with granite countertops. Walking distance to local parks and shops.",
				strings.ToLower(string(propType)), loc.City,
			),
			Images: []string{
				fmt.Sprintf("https://picsum.photos/800/600?random=%d", id),
				fmt.Sprintf("https://picsum.photos/800/600?random=%d", id+100),
				fmt.Sprintf("https://picsum.photos/800/600?random=%d", id+200),
			},
			DaysOnMarket: g.rng.Intn(120),
			ListingAgent: "Realtor.com Verified Agent",
			Source:       "Realtor.com",
		},
	}
}
