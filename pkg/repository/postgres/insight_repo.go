package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akulikov/careerhub/pkg/insight"
)

// InsightRepository хранит записи рыночной аналитики (одна на профиль).
type InsightRepository struct {
	pool *pgxpool.Pool
}

func NewInsightRepository(pool *pgxpool.Pool) (*InsightRepository, error) {
	r := &InsightRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *InsightRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS industry_insights (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL UNIQUE REFERENCES profiles(id) ON DELETE CASCADE,
	industry TEXT NOT NULL,
	data JSONB NOT NULL,
	last_updated TIMESTAMPTZ NOT NULL,
	next_update TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_industry_insights_next_update ON industry_insights(next_update);
`)
	return err
}

func (r *InsightRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (insight.Insight, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, industry, data, last_updated, next_update
FROM industry_insights WHERE user_id = $1
`, ownerID)
	return scanInsight(row)
}

func (r *InsightRepository) Upsert(ctx context.Context, rec insight.Insight) (insight.Insight, error) {
	if err := upsertInsight(ctx, r.pool, rec); err != nil {
		return insight.Insight{}, err
	}
	return rec, nil
}

func (r *InsightRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]insight.Insight, error) {
	q := `
SELECT id, user_id, industry, data, last_updated, next_update
FROM industry_insights WHERE next_update <= $1
`
	args := []any{now}
	if limit > 0 {
		q += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []insight.Insight
	for rows.Next() {
		rec, err := scanInsight(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

func (r *InsightRepository) UpdateGenerated(ctx context.Context, id uuid.UUID, d insight.Data, lastUpdated, nextUpdate time.Time) error {
	dataJSON, err := json.Marshal(d)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE industry_insights
SET data = $2, last_updated = $3, next_update = $4
WHERE id = $1
`, id, dataJSON, lastUpdated, nextUpdate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return insight.ErrNotFound
	}
	return nil
}

// pgxExecutor покрывает и пул, и транзакцию, чтобы upsert переиспользовался
// внутри SaveReconciled.
type pgxExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func upsertInsight(ctx context.Context, ex pgxExecutor, rec insight.Insight) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	dataJSON, err := json.Marshal(rec.Data)
	if err != nil {
		return err
	}
	_, err = ex.Exec(ctx, `
INSERT INTO industry_insights (id, user_id, industry, data, last_updated, next_update)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE SET
	industry = EXCLUDED.industry,
	data = EXCLUDED.data,
	last_updated = EXCLUDED.last_updated,
	next_update = EXCLUDED.next_update
`, rec.ID, rec.UserID, rec.Industry, dataJSON, rec.LastUpdated, rec.NextUpdate)
	return err
}

func scanInsight(row pgx.Row) (insight.Insight, error) {
	var rec insight.Insight
	var dataBytes []byte
	var last, next time.Time
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.Industry, &dataBytes, &last, &next); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return insight.Insight{}, insight.ErrNotFound
		}
		return insight.Insight{}, err
	}
	_ = json.Unmarshal(dataBytes, &rec.Data)
	rec.LastUpdated = last.UTC()
	rec.NextUpdate = next.UTC()
	return rec, nil
}
