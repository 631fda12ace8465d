package tests

import (
	"math/rand"
	"time"

	"github.com/samber/lo"

	"insurance_predict/pkg/rest"
)

const (
	minAge, maxAge                   = 18, 100
	maxRegionCode                    = 52
	maxAnnualPremium                 = 540165
	minSalesChannel, maxSalesChannel = 1, 163
	maxVintage                       = 300
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	// IntRange returns a value in [low, high].
	IntRange func(low, high int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64:  random.Float64,
		Bool:     func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		IntRange: func(low, high int) int { return low + random.Intn(high-low+1) },
	}
}

// PredictionRequest builds a request whose every field is inside the form
// widget ranges.
func (r Randomizer) PredictionRequest() rest.PredictionRequest {
	gender := "Male"
	if r.Bool() {
		gender = "Female"
	}

	flag := func() *int { return lo.ToPtr(r.IntRange(0, 1)) }

	return rest.PredictionRequest{
		Gender:               gender,
		Age:                  lo.ToPtr(r.IntRange(minAge, maxAge)),
		DrivingLicense:       flag(),
		RegionCode:           lo.ToPtr(r.IntRange(0, maxRegionCode)),
		PreviouslyInsured:    flag(),
		AnnualPremium:        lo.ToPtr(r.IntRange(0, maxAnnualPremium)),
		PolicySalesChannel:   lo.ToPtr(r.IntRange(minSalesChannel, maxSalesChannel)),
		Vintage:              lo.ToPtr(r.IntRange(0, maxVintage)),
		VehicleAgeLtOneYear:  flag(),
		VehicleAgeGtTwoYears: flag(),
		VehicleDamageYes:     flag(),
	}
}
