package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/akulikov/careerhub/pkg/insight"
)

// ErrNotFound возвращается, когда за проверенной личностью нет профиля.
var ErrNotFound = errors.New("profile not found")

// ErrUnauthorized возвращается, когда в запросе нет проверенной личности.
var ErrUnauthorized = errors.New("unauthorized")

// Profile — карьерный профиль пользователя. Личность выдаёт внешний
// провайдер: ExternalID — его непрозрачный идентификатор (subject токена).
type Profile struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"externalId"`
	// Industry может кодировать пару «отрасль-подотрасль» через дефис,
	// например "tech-software-development". Это формат границы, а не
	// инвариант хранимой записи.
	Industry   string    `json:"industry"`
	Experience int       `json:"experience"`
	Bio        string    `json:"bio"`
	Skills     []string  `json:"skills"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Repository — порт доступа к профилям.
type Repository interface {
	GetByExternalID(ctx context.Context, externalID string) (Profile, error)
	Create(ctx context.Context, p Profile) (Profile, error)
	// SaveReconciled applies the profile mutation and, when rec is non-nil,
	// the insight upsert as a single all-or-nothing transaction.
	SaveReconciled(ctx context.Context, p Profile, rec *insight.Insight) (Profile, *insight.Insight, error)
}
