package insight

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/entities"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	organicBasePrice  = 35.0
	standardBasePrice = 25.0

	locationCheckRate = 0.10

	FactorOrganic       = "Organic certification"
	FactorRecent        = "Recently harvested"
	FactorFresh         = "Fresh produce"
	FactorPremiumRegion = "Premium growing region"
	FactorStorage       = "Optimal storage conditions"

	FlagPriceAnomaly  = "Price significantly above market average"
	FlagStorage       = "Extended storage period"
	FlagLargeQuantity = "Large quantity for small farm"
	FlagLocation      = "Location verification needed"
	FlagAllClear      = "All checks passed"
)

var recommendations = map[string]string{
	domain.RiskLow:    "Batch appears legitimate. Standard verification recommended.",
	domain.RiskMedium: "Additional verification recommended before purchase.",
	domain.RiskHigh:   "High risk detected. Thorough investigation required.",
}

type (
	// Random is the source behind the sampled parts of an insight. *rand.Rand satisfies it.
	Random interface {
		Float64() float64
	}

	InsightService interface {
		Generate(batch entities.ProduceBatch) domain.MLInsights
	}

	insightService struct {
		mu  sync.Mutex
		rng Random
		now func() time.Time
	}
)

func NewInsightService(rng Random, now func() time.Time) InsightService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &insightService{rng: rng, now: now}
}

// Generate never fails. Malformed batches produce well-typed, if meaningless, output.
func (s *insightService) Generate(batch entities.ProduceBatch) domain.MLInsights {
	days := DaysSinceHarvest(batch.HarvestDate, s.now())
	organic := isOrganic(batch.CropType)

	s.mu.Lock()
	qualityDraw := s.rng.Float64()
	locationDraw := s.rng.Float64()
	fraudDraw := s.rng.Float64()
	s.mu.Unlock()

	return domain.MLInsights{
		Quality: quality(batch, days, organic, qualityDraw),
		Pricing: pricing(batch),
		Fraud:   fraud(batch, days, organic, locationDraw, fraudDraw),
	}
}

// DaysSinceHarvest rounds the elapsed span up to whole days and clamps future dates to zero.
// An unparseable date yields NaN.
func DaysSinceHarvest(harvestDate string, now time.Time) float64 {
	harvested, ok := parseHarvestDate(harvestDate)
	if !ok {
		return math.NaN()
	}
	return math.Max(0, math.Ceil(now.Sub(harvested).Hours()/24))
}

func parseHarvestDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, domain.HarvestDateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isOrganic(cropType string) bool {
	return strings.Contains(strings.ToLower(cropType), "organic")
}

func grade(days float64, organic bool) string {
	switch {
	case (organic && days <= 3) || days <= 7:
		return domain.GradeA
	case days <= 14:
		return domain.GradeB
	default:
		return domain.GradeC
	}
}

func quality(batch entities.ProduceBatch, days float64, organic bool, draw float64) domain.QualityInsight {
	g := grade(days, organic)

	factors := make([]string, 0, 4)
	if organic {
		factors = append(factors, FactorOrganic)
	}
	if days <= 3 {
		factors = append(factors, FactorRecent)
	} else if days <= 7 {
		factors = append(factors, FactorFresh)
	}
	if strings.Contains(batch.Location, "Punjab") || strings.Contains(batch.Location, "Haryana") {
		factors = append(factors, FactorPremiumRegion)
	}
	if g == domain.GradeA {
		factors = append(factors, FactorStorage)
	}

	return domain.QualityInsight{
		Grade:      g,
		Confidence: 0.7 + draw*0.3,
		Factors:    factors,
	}
}

func pricing(batch entities.ProduceBatch) domain.PricingInsight {
	suggested := toDecimal(batch.Price).Mul(decimal.NewFromFloat(PriceMultiplier(batch.CropType))).Round(2)

	return domain.PricingInsight{
		SuggestedPrice: suggested.InexactFloat64(),
		PriceRange: domain.PriceRange{
			Min: suggested.Mul(decimal.NewFromFloat(0.85)).Round(2).InexactFloat64(),
			Max: suggested.Mul(decimal.NewFromFloat(1.15)).Round(2).InexactFloat64(),
		},
		MarketTrend: MarketTrend(batch.CropType),
	}
}

func fraud(batch entities.ProduceBatch, days float64, organic bool, locationDraw, confidenceDraw float64) domain.FraudInsight {
	base := standardBasePrice
	if organic {
		base = organicBasePrice
	}

	score := 0
	flags := make([]string, 0, 4)
	if batch.Price > base*2 {
		score += 30
		flags = append(flags, FlagPriceAnomaly)
	}
	if days > 30 {
		score += 20
		flags = append(flags, FlagStorage)
	}
	if batch.Quantity > 500 {
		score += 15
		flags = append(flags, FlagLargeQuantity)
	}
	if locationDraw < locationCheckRate {
		score += 25
		flags = append(flags, FlagLocation)
	}
	if len(flags) == 0 {
		flags = append(flags, FlagAllClear)
	}

	level := RiskLevel(score)
	return domain.FraudInsight{
		RiskLevel:      level,
		Confidence:     0.8 + confidenceDraw*0.2,
		Flags:          flags,
		Recommendation: recommendations[level],
		RiskScore:      score,
	}
}

func RiskLevel(score int) string {
	switch {
	case score >= 50:
		return domain.RiskHigh
	case score >= 25:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// toDecimal maps non-finite values to zero since decimal cannot represent them.
func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
