package insight

import (
	"FarmToFork-Backend/domain"
)

var priceMultipliers = map[string]float64{
	"Organic Tomatoes": 1.10,
	"Fresh Spinach":    1.15,
	"Sweet Corn":       0.85,
	"Basmati Rice":     1.05,
	"Organic Apples":   1.20,
	"Red Onions":       0.95,
	"Green Chillies":   1.08,
}

var marketTrends = map[string]string{
	"Organic Tomatoes": domain.TrendRising,
	"Fresh Spinach":    domain.TrendStable,
	"Sweet Corn":       domain.TrendDeclining,
	"Basmati Rice":     domain.TrendRising,
	"Organic Apples":   domain.TrendRising,
	"Red Onions":       domain.TrendDeclining,
	"Green Chillies":   domain.TrendRising,
}

// PriceMultiplier is keyed by exact crop name; unknown crops return 1.
func PriceMultiplier(cropType string) float64 {
	if m, ok := priceMultipliers[cropType]; ok {
		return m
	}
	return 1.0
}

func MarketTrend(cropType string) string {
	if t, ok := marketTrends[cropType]; ok {
		return t
	}
	return domain.TrendStable
}
