package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/akulikov/careerhub/pkg/llm"
	"github.com/akulikov/careerhub/pkg/logger"
)

const promptTemplate = `Analyze the current state of the %s industry and provide insights in ONLY the following JSON format without any additional notes or explanations:
{
  "salaryRanges": [
    { "role": "string", "min": number, "max": number, "median": number, "location": "string" }
  ],
  "growthRate": number,
  "demandLevel": "High" | "Medium" | "Low",
  "topSkills": ["skill1", "skill2"],
  "marketOutlook": "Positive" | "Neutral" | "Negative",
  "keyTrends": ["trend1", "trend2"],
  "recommendedSkills": ["skill1", "skill2"]
}

IMPORTANT: Return ONLY the JSON. No additional text, notes, or markdown formatting.
Include at least 5 common roles for salary ranges.
Growth rate should be a percentage.
Include at least 5 skills and trends.`

// Generator превращает название отрасли в структурированную аналитику,
// один исходящий вызов модели на обращение, без внутренних ретраев.
type Generator struct {
	llm llm.TextModel
}

func NewGenerator(model llm.TextModel) *Generator {
	return &Generator{llm: model}
}

// Generate never fails: an empty industry yields the no-industry fallback
// without calling the model, and any transport/parse error yields the error
// fallback. Callers can proceed without special-casing failures.
func (g *Generator) Generate(ctx context.Context, industry string) Data {
	if strings.TrimSpace(industry) == "" {
		logger.Error("industry is required for generating insights", nil)
		return fallbackNoIndustry()
	}
	d, err := g.GenerateStrict(ctx, industry)
	if err != nil {
		logger.Error("generating industry insights failed", err, "industry", industry)
		return fallbackError()
	}
	return d
}

// GenerateStrict runs the same pipeline but propagates errors. The batch
// sweep uses it so that a bad item can be skipped instead of silently
// overwritten with a fallback.
func (g *Generator) GenerateStrict(ctx context.Context, industry string) (Data, error) {
	prompt := fmt.Sprintf(promptTemplate, industry)
	raw, err := g.llm.GenerateText(ctx, prompt)
	if err != nil {
		return Data{}, fmt.Errorf("model call: %w", err)
	}
	return ParseReply(raw)
}

// ParseReply strips markdown fencing from a raw model reply and decodes the
// insight payload, normalizing enums and nil slices.
func ParseReply(raw string) (Data, error) {
	cleaned := llm.StripCodeFence(raw)

	var payload struct {
		SalaryRanges      []SalaryRange `json:"salaryRanges"`
		GrowthRate        float64       `json:"growthRate"`
		DemandLevel       string        `json:"demandLevel"`
		TopSkills         []string      `json:"topSkills"`
		MarketOutlook     string        `json:"marketOutlook"`
		KeyTrends         []string      `json:"keyTrends"`
		RecommendedSkills []string      `json:"recommendedSkills"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return Data{}, fmt.Errorf("decode model reply: %w", err)
	}

	d := Data{
		SalaryRanges:      payload.SalaryRanges,
		GrowthRate:        payload.GrowthRate,
		DemandLevel:       ParseDemandLevel(payload.DemandLevel),
		TopSkills:         payload.TopSkills,
		MarketOutlook:     ParseMarketOutlook(payload.MarketOutlook),
		KeyTrends:         payload.KeyTrends,
		RecommendedSkills: payload.RecommendedSkills,
	}
	// нормализуем nil-слайсы
	if d.SalaryRanges == nil {
		d.SalaryRanges = []SalaryRange{}
	}
	if d.TopSkills == nil {
		d.TopSkills = []string{}
	}
	if d.KeyTrends == nil {
		d.KeyTrends = []string{}
	}
	if d.RecommendedSkills == nil {
		d.RecommendedSkills = []string{}
	}
	return d, nil
}
