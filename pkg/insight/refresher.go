package insight

import (
	"context"
	"time"

	"github.com/akulikov/careerhub/pkg/logger"
)

// SweepStatus — итоговый статус прохода. Отказ отдельной записи не
// проваливает проход целиком; failed означает, что не удалась сама выборка
// и ни одна запись не обрабатывалась.
type SweepStatus string

const (
	SweepCompleted SweepStatus = "completed"
	SweepFailed    SweepStatus = "failed"
)

// SweepResult — агрегированный отчёт одного прохода.
type SweepResult struct {
	Status  SweepStatus `json:"status"`
	Updated int         `json:"updated"`
	Total   int         `json:"total"`
}

// Refresher periodically regenerates every insight record whose next-refresh
// time has elapsed. It only mutates records that already exist and never
// re-checks the owner's declared industry: that is the reconciler's job.
type Refresher struct {
	repo       Repository
	gen        *Generator
	batchLimit int
	now        func() time.Time
}

func NewRefresher(repo Repository, gen *Generator, batchLimit int) *Refresher {
	return &Refresher{
		repo:       repo,
		gen:        gen,
		batchLimit: batchLimit,
		now:        time.Now,
	}
}

// Sweep selects due records and regenerates each one independently,
// sequentially, in store order. A failed item is logged and skipped; the
// loop continues and the result reports counters only.
func (r *Refresher) Sweep(ctx context.Context) SweepResult {
	now := r.now().UTC()
	due, err := r.repo.ListDue(ctx, now, r.batchLimit)
	if err != nil {
		logger.Error("listing outdated insights failed", err)
		return SweepResult{Status: SweepFailed, Updated: 0, Total: 0}
	}
	logger.Info("found outdated insights to refresh", "count", len(due))

	updated := 0
	for _, rec := range due {
		d, err := r.gen.GenerateStrict(ctx, rec.Industry)
		if err != nil {
			logger.Error("refreshing insight failed, skipping", err,
				"industry", rec.Industry, "insight_id", rec.ID)
			continue
		}
		stamp := r.now().UTC()
		if err := r.repo.UpdateGenerated(ctx, rec.ID, d, stamp, stamp.Add(RefreshPeriod)); err != nil {
			logger.Error("persisting refreshed insight failed, skipping", err,
				"industry", rec.Industry, "insight_id", rec.ID)
			continue
		}
		updated++
	}

	res := SweepResult{Status: SweepCompleted, Updated: updated, Total: len(due)}
	logger.Info("insight sweep finished", "updated", res.Updated, "total", res.Total)
	return res
}
