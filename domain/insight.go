package domain

var (
	MessageSuccessGetInsights = "insights generated successfully"
	MessageFailedGetInsights  = "failed to generate insights"
)

const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"

	TrendRising    = "rising"
	TrendStable    = "stable"
	TrendDeclining = "declining"

	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

type (
	QualityInsight struct {
		Grade      string   `json:"grade"`
		Confidence float64  `json:"confidence"`
		Factors    []string `json:"factors"`
	}

	PriceRange struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}

	PricingInsight struct {
		SuggestedPrice float64    `json:"suggested_price"`
		PriceRange     PriceRange `json:"price_range"`
		MarketTrend    string     `json:"market_trend"`
	}

	FraudInsight struct {
		RiskLevel      string   `json:"risk_level"`
		Confidence     float64  `json:"confidence"`
		Flags          []string `json:"flags"`
		Recommendation string   `json:"recommendation"`
		// RiskScore is the accumulated 0-100 score behind RiskLevel.
		RiskScore int `json:"-"`
	}

	MLInsights struct {
		Quality QualityInsight `json:"quality"`
		Pricing PricingInsight `json:"pricing"`
		Fraud   FraudInsight   `json:"fraud"`
	}
)
