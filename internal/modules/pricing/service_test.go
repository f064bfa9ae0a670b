package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_CalculatePrice_Matrix(t *testing.T) {
	s := NewService()

	bases := map[string]int{
		"residential-basic":   599,
		"residential-premium": 899,
		"residential-deluxe":  1499,
		"commercial-basic":    1299,
		"commercial-premium":  2199,
		"commercial-deluxe":   3499,
		"custom":              1199,
	}
	multipliers := map[string]float64{
		"small":       1.0,
		"medium":      1.3,
		"large":       1.6,
		"extra-large": 2.0,
	}

	for serviceType, base := range bases {
		for size, mult := range multipliers {
			expected := int(math.Round(float64(base) * mult))
			assert.Equal(t, expected, s.CalculatePrice(serviceType, size),
				"%s / %s", serviceType, size)
		}
	}
}

func TestService_CalculatePrice_PremiumMedium(t *testing.T) {
	s := NewService()

	total := s.CalculatePrice("residential-premium", "medium")
	assert.Equal(t, 1169, total) // round(899 * 1.3)

	b := s.Breakdown(total)
	assert.Equal(t, 818, b.BaseService)
	assert.Equal(t, 234, b.Installation)
	assert.Equal(t, 117, b.Materials)
}

func TestService_CalculatePrice_UnknownServiceType(t *testing.T) {
	s := NewService()

	assert.Equal(t, 599, s.CalculatePrice("residental-basic", ""))
	assert.Equal(t, 599, s.CalculatePrice("", ""))
	assert.Equal(t, int(math.Round(599*1.3)), s.CalculatePrice("nonsense", "medium"))
}

func TestService_CalculatePrice_UnknownPropertySize(t *testing.T) {
	s := NewService()

	assert.Equal(t, 899, s.CalculatePrice("residential-premium", "gigantic"))
	assert.Equal(t, 899, s.CalculatePrice("residential-premium", ""))
}

func TestService_Breakdown_SumsToTotal(t *testing.T) {
	s := NewService()

	for serviceType := range basePrices {
		for size := range sizeMultipliers {
			total := s.CalculatePrice(serviceType, size)
			b := s.Breakdown(total)
			sum := b.BaseService + b.Installation + b.Materials
			assert.InDelta(t, total, sum, 2, "%s / %s: total=%d sum=%d",
				serviceType, size, total, sum)
		}
	}
}
