package insight

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RefreshPeriod — период актуальности аналитики по отрасли.
// NextUpdate всегда равен LastUpdated + RefreshPeriod, никогда не задаётся отдельно.
const RefreshPeriod = 7 * 24 * time.Hour

// ErrNotFound возвращается, когда у пользователя ещё нет записи аналитики.
var ErrNotFound = errors.New("insight not found")

// DemandLevel — уровень спроса на специалистов в отрасли.
type DemandLevel string

const (
	DemandHigh    DemandLevel = "High"
	DemandMedium  DemandLevel = "Medium"
	DemandLow     DemandLevel = "Low"
	DemandUnknown DemandLevel = "Unknown"
)

// MarketOutlook — общий прогноз рынка.
type MarketOutlook string

const (
	OutlookPositive MarketOutlook = "Positive"
	OutlookNeutral  MarketOutlook = "Neutral"
	OutlookNegative MarketOutlook = "Negative"
	OutlookUnknown  MarketOutlook = "Unknown"
)

// ParseDemandLevel maps free-form model output onto the enum; anything
// unrecognized becomes Unknown rather than failing the whole record.
func ParseDemandLevel(s string) DemandLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return DemandHigh
	case "medium":
		return DemandMedium
	case "low":
		return DemandLow
	default:
		return DemandUnknown
	}
}

// ParseMarketOutlook maps free-form model output onto the enum.
func ParseMarketOutlook(s string) MarketOutlook {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive":
		return OutlookPositive
	case "neutral":
		return OutlookNeutral
	case "negative":
		return OutlookNegative
	default:
		return OutlookUnknown
	}
}

// SalaryRange — зарплатная вилка по одной роли.
type SalaryRange struct {
	Role     string  `json:"role"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Location string  `json:"location"`
}

// Data — сгенерированные моделью поля аналитики (без владельца и таймстемпов).
type Data struct {
	SalaryRanges      []SalaryRange `json:"salaryRanges"`
	GrowthRate        float64       `json:"growthRate"`
	DemandLevel       DemandLevel   `json:"demandLevel"`
	TopSkills         []string      `json:"topSkills"`
	MarketOutlook     MarketOutlook `json:"marketOutlook"`
	KeyTrends         []string      `json:"keyTrends"`
	RecommendedSkills []string      `json:"recommendedSkills"`
}

// Insight — запись рыночной аналитики по отрасли, принадлежащая одному профилю.
type Insight struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Industry    string    `json:"industry"`
	Data        Data      `json:"data"`
	LastUpdated time.Time `json:"lastUpdated"`
	NextUpdate  time.Time `json:"nextUpdate"`
}

// Touch stamps a successful generation: the two timestamps only ever move together.
func (i *Insight) Touch(now time.Time) {
	i.LastUpdated = now
	i.NextUpdate = now.Add(RefreshPeriod)
}

// Repository — порт доступа к записям аналитики.
type Repository interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (Insight, error)
	// Upsert creates the record for its owner or overwrites the existing one
	// (last-write-wins, keyed by owner).
	Upsert(ctx context.Context, rec Insight) (Insight, error)
	// ListDue returns records with next_update <= now, in store order.
	// limit <= 0 means no cap.
	ListDue(ctx context.Context, now time.Time, limit int) ([]Insight, error)
	// UpdateGenerated overwrites only the generated fields and timestamps;
	// it never touches the owning profile or the stored industry.
	UpdateGenerated(ctx context.Context, id uuid.UUID, d Data, lastUpdated, nextUpdate time.Time) error
}
