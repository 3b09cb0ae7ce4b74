package insight

import "time"

// RefreshReason объясняет, почему (не) требуется перегенерация.
type RefreshReason string

const (
	ReasonNoRecord        RefreshReason = "no_record"
	ReasonIndustryChanged RefreshReason = "industry_changed"
	ReasonExpired         RefreshReason = "expired"
	ReasonFreshEnough     RefreshReason = "fresh_enough"
)

// Decision — результат проверки актуальности.
type Decision struct {
	Refresh bool
	Reason  RefreshReason
}

// Evaluate decides whether the stored record must be regenerated for the
// profile's declared industry. Pure function: no clock, storage or network —
// the caller supplies now.
//
// Precedence: missing record, then industry mismatch (regardless of age),
// then age in whole days (floor) >= 7.
func Evaluate(profileIndustry string, rec *Insight, now time.Time) Decision {
	if rec == nil {
		return Decision{Refresh: true, Reason: ReasonNoRecord}
	}
	if rec.Industry != profileIndustry {
		return Decision{Refresh: true, Reason: ReasonIndustryChanged}
	}
	days := int(now.Sub(rec.LastUpdated).Hours() / 24)
	if days >= 7 {
		return Decision{Refresh: true, Reason: ReasonExpired}
	}
	return Decision{Refresh: false, Reason: ReasonFreshEnough}
}
