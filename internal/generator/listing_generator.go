// Package generator produces synthetic listings for seeding dev
// environments and building test fixtures.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/domain"
)

var (
	streetNames = []string{
		"Main", "1st", "2nd", "3rd", "Park", "Oak", "Maple", "Washington",
		"Cedar", "Walnut", "Sunset", "Church", "Lincoln", "Adams", "Cherry",
		"Marshall", "Airy", "Hill", "Forest", "Spruce", "Lafayette", "Ridge",
		"Markley", "Johnson", "Wilson", "Germantown", "Broad", "Jefferson",
		"Whitehall", "4th", "5th", "6th", "West", "East", "Burnside", "Sharon",
	}
	streetTypes = []string{"Street", "Avenue", "Boulevard", "Circle", "Lane", "Drive", "Way"}
	cities      = []string{
		"Springfield", "Franklin", "Clinton", "Greenville", "Bristol",
		"Fairview", "Salem", "Madison", "Georgetown", "Arlington",
	}
	states = []string{
		"Alabama", "Arizona", "Colorado", "Georgia", "Illinois", "Kansas",
		"Michigan", "Nevada", "Ohio", "Oregon", "Pennsylvania", "Texas",
		"Vermont", "Virginia", "Washington",
	}
	bathroomCounts = []float64{1.0, 1.5, 2.0, 2.5, 3.0, 3.5}
	lotSizes       = []float64{
		0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0,
		1.2, 1.3, 1.4, 1.5, 1.6, 1.7, 1.8, 1.9, 2.0,
	}
)

type ListingGenerator struct {
	rand *rand.Rand
}

func NewListingGenerator(seed int64) *ListingGenerator {
	return &ListingGenerator{rand: rand.New(rand.NewSource(seed))}
}

// Generate returns a random listing that always passes create
// validation: price is at least 1 and the status is one of the four
// labels.
func (g *ListingGenerator) Generate() domain.Listing {
	address := fmt.Sprintf("%d %s %s, %s, %s, %05d",
		g.rand.Intn(10000),
		streetNames[g.rand.Intn(len(streetNames))],
		streetTypes[g.rand.Intn(len(streetTypes))],
		cities[g.rand.Intn(len(cities))],
		states[g.rand.Intn(len(states))],
		g.rand.Intn(100000),
	)

	statuses := domain.StatusLabels()
	return domain.Listing{
		ListingNumber: uuid.NewString(),
		Address:       address,
		SquareFootage: g.rand.Intn(10000-500) + 500,
		Price:         g.rand.Intn(1500000) + 1,
		BedroomCount:  g.rand.Intn(7) + 1,
		BathroomCount: bathroomCounts[g.rand.Intn(len(bathroomCounts))],
		LotSize:       lotSizes[g.rand.Intn(len(lotSizes))],
		Status:        statuses[g.rand.Intn(len(statuses))],
	}
}
