package pricing

import "math"

// Base prices per service tier, CAD.
var basePrices = map[string]int{
	"residential-basic":   599,
	"residential-premium": 899,
	"residential-deluxe":  1499,
	"commercial-basic":    1299,
	"commercial-premium":  2199,
	"commercial-deluxe":   3499,
	"custom":              1199,
}

var sizeMultipliers = map[string]float64{
	"small":       1.0,
	"medium":      1.3,
	"large":       1.6,
	"extra-large": 2.0,
}

const (
	defaultBasePrice = 599
	Currency         = "CAD"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// CalculatePrice maps a service tier and optional property size to an
// estimated price. Unknown service types fall back to the cheapest base
// price and unknown sizes to a 1.0 multiplier; the storefront only sends
// known keys, so lenient defaults stand in for hard validation here.
func (s *Service) CalculatePrice(serviceType, propertySize string) int {
	base, ok := basePrices[serviceType]
	if !ok {
		base = defaultBasePrice
	}

	multiplier := 1.0
	if propertySize != "" {
		if m, ok := sizeMultipliers[propertySize]; ok {
			multiplier = m
		}
	}

	return int(math.Round(float64(base) * multiplier))
}

// Breakdown splits a total into the 70/20/10 display decomposition shown on
// the quote page. It has no effect on the stored price.
func (s *Service) Breakdown(total int) PriceBreakdown {
	return PriceBreakdown{
		BaseService:  int(math.Round(float64(total) * 0.7)),
		Installation: int(math.Round(float64(total) * 0.2)),
		Materials:    int(math.Round(float64(total) * 0.1)),
	}
}
