package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akulikov/careerhub/pkg/insight"
	"github.com/akulikov/careerhub/pkg/profile"
)

// ProfileRepository хранит карьерные профили и выполняет согласованную
// запись профиля вместе с его аналитикой.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	r := &ProfileRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS profiles (
	id UUID PRIMARY KEY,
	external_id TEXT NOT NULL UNIQUE,
	industry TEXT NOT NULL DEFAULT '',
	experience INT NOT NULL DEFAULT 0,
	bio TEXT NOT NULL DEFAULT '',
	skills JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *ProfileRepository) GetByExternalID(ctx context.Context, externalID string) (profile.Profile, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, external_id, industry, experience, bio, skills, created_at, updated_at
FROM profiles WHERE external_id = $1
`, externalID)
	return scanProfile(row)
}

func (r *ProfileRepository) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	skillsJSON, err := json.Marshal(skillsOrEmpty(p.Skills))
	if err != nil {
		return profile.Profile{}, err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO profiles (id, external_id, industry, experience, bio, skills, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, p.ID, p.ExternalID, p.Industry, p.Experience, p.Bio, skillsJSON, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

// SaveReconciled применяет мутацию профиля и (опционально) upsert аналитики
// одной транзакцией: частично применённого состояния снаружи не видно.
func (r *ProfileRepository) SaveReconciled(ctx context.Context, p profile.Profile, rec *insight.Insight) (profile.Profile, *insight.Insight, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return profile.Profile{}, nil, err
	}
	defer tx.Rollback(ctx)

	skillsJSON, err := json.Marshal(skillsOrEmpty(p.Skills))
	if err != nil {
		return profile.Profile{}, nil, err
	}
	tag, err := tx.Exec(ctx, `
UPDATE profiles
SET industry = $2, experience = $3, bio = $4, skills = $5, updated_at = $6
WHERE id = $1
`, p.ID, p.Industry, p.Experience, p.Bio, skillsJSON, p.UpdatedAt)
	if err != nil {
		return profile.Profile{}, nil, err
	}
	if tag.RowsAffected() == 0 {
		return profile.Profile{}, nil, profile.ErrNotFound
	}

	if rec != nil {
		if err := upsertInsight(ctx, tx, *rec); err != nil {
			return profile.Profile{}, nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return profile.Profile{}, nil, err
	}
	return p, rec, nil
}

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	var skillsBytes []byte
	var created, updated time.Time
	if err := row.Scan(&p.ID, &p.ExternalID, &p.Industry, &p.Experience, &p.Bio, &skillsBytes, &created, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	_ = json.Unmarshal(skillsBytes, &p.Skills)
	if p.Skills == nil {
		p.Skills = []string{}
	}
	p.CreatedAt = created.UTC()
	p.UpdatedAt = updated.UTC()
	return p, nil
}

func skillsOrEmpty(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
