package insight

import "time"

// Сентинельные значения, по которым UI отличает деградировавшие данные от настоящих.
const (
	SentinelNoIndustry  = "No industry specified"
	SentinelError       = "Error occurred"
	SentinelPlaceholder = "Please set your industry"
)

// fallbackNoIndustry is returned when generation is requested without an
// industry: deterministic, no model call behind it.
func fallbackNoIndustry() Data {
	return Data{
		SalaryRanges: []SalaryRange{
			{Role: "Example Role", Min: 50000, Max: 100000, Median: 75000, Location: "General"},
		},
		GrowthRate:        0,
		DemandLevel:       DemandMedium,
		TopSkills:         []string{SentinelNoIndustry},
		MarketOutlook:     OutlookNeutral,
		KeyTrends:         []string{SentinelNoIndustry},
		RecommendedSkills: []string{SentinelNoIndustry},
	}
}

// fallbackError is returned when the model call or parsing failed. The
// sentinel text differs from the no-industry case on purpose.
func fallbackError() Data {
	return Data{
		SalaryRanges: []SalaryRange{
			{Role: SentinelError, Min: 0, Max: 0, Median: 0, Location: "N/A"},
		},
		GrowthRate:        0,
		DemandLevel:       DemandMedium,
		TopSkills:         []string{SentinelError},
		MarketOutlook:     OutlookNeutral,
		KeyTrends:         []string{SentinelError},
		RecommendedSkills: []string{SentinelError},
	}
}

// Placeholder — синтетическая запись для профиля без отрасли.
// Отдаётся наружу, но никогда не сохраняется.
func Placeholder(now time.Time) Insight {
	rec := Insight{
		Industry: "default",
		Data: Data{
			SalaryRanges: []SalaryRange{
				{Role: SentinelPlaceholder, Min: 0, Max: 0, Median: 0, Location: "N/A"},
			},
			GrowthRate:        0,
			DemandLevel:       DemandMedium,
			TopSkills:         []string{SentinelPlaceholder},
			MarketOutlook:     OutlookNeutral,
			KeyTrends:         []string{SentinelPlaceholder},
			RecommendedSkills: []string{SentinelPlaceholder},
		},
	}
	rec.Touch(now)
	return rec
}

// IsDegraded reports whether the record carries one of the known sentinels
// instead of real market data.
func (d Data) IsDegraded() bool {
	for _, s := range d.TopSkills {
		if s == SentinelNoIndustry || s == SentinelError || s == SentinelPlaceholder {
			return true
		}
	}
	return false
}
