package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akulikov/careerhub/pkg/insight"
	"github.com/akulikov/careerhub/pkg/logger"
)

// DefaultReconcileTimeout — расширенный бюджет на согласование: внутри
// транзакции может случиться медленный вызов внешней модели, поэтому лимит
// заметно больше обычного таймаута на запись в хранилище.
const DefaultReconcileTimeout = 15 * time.Second

// UpdateInput — мутация профиля. nil-поля означают «не менять».
type UpdateInput struct {
	Industry   *string
	Experience *int
	Bio        *string
	Skills     []string
	// ReturnTo — подсказка навигации для вызывающего контекста;
	// пробрасывается в ответ без интерпретации.
	ReturnTo string
}

// ReconcileResult — результат согласования профиля и аналитики.
type ReconcileResult struct {
	Profile    Profile         `json:"profile"`
	Insight    insight.Insight `json:"insight"`
	RedirectTo string          `json:"redirectTo"`
}

// UseCase — сценарии работы с профилем и его аналитикой.
type UseCase interface {
	// Update atomically mutates the profile and, when the staleness policy
	// demands it, regenerates and upserts the owned insight record.
	Update(ctx context.Context, subject string, in UpdateInput) (ReconcileResult, error)
	// GetInsights returns the current insight record, refreshing it first
	// when it is missing, expired, or generated for another industry.
	GetInsights(ctx context.Context, subject string) (insight.Insight, error)
	Get(ctx context.Context, subject string) (Profile, error)
	// Provision creates an empty profile for a first-seen identity; it is
	// idempotent and returns the existing profile when one is already there.
	Provision(ctx context.Context, subject string) (Profile, error)
	IsOnboarded(ctx context.Context, subject string) (bool, error)
}

type service struct {
	repo             Repository
	insights         insight.Repository
	gen              *insight.Generator
	reconcileTimeout time.Duration
	now              func() time.Time
}

func NewService(repo Repository, insights insight.Repository, gen *insight.Generator, reconcileTimeout time.Duration) UseCase {
	if reconcileTimeout <= 0 {
		reconcileTimeout = DefaultReconcileTimeout
	}
	return &service{
		repo:             repo,
		insights:         insights,
		gen:              gen,
		reconcileTimeout: reconcileTimeout,
		now:              time.Now,
	}
}

func (s *service) resolve(ctx context.Context, subject string) (Profile, error) {
	if strings.TrimSpace(subject) == "" {
		return Profile{}, ErrUnauthorized
	}
	p, err := s.repo.GetByExternalID(ctx, subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, subject string, in UpdateInput) (ReconcileResult, error) {
	p, err := s.resolve(ctx, subject)
	if err != nil {
		return ReconcileResult{}, err
	}
	now := s.now().UTC()

	// Effective industry: the requested one if present, else the current one.
	// A blank request falls back to the current value: an industry can be
	// changed but never cleared, so a profile that owns a generated record
	// always declares the industry it was generated for.
	effective := p.Industry
	if in.Industry != nil {
		if v := strings.TrimSpace(*in.Industry); v != "" {
			effective = v
		}
	}

	p.Industry = effective
	if in.Experience != nil {
		p.Experience = *in.Experience
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.Skills != nil {
		p.Skills = in.Skills
	}
	p.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, s.reconcileTimeout)
	defer cancel()

	var rec *insight.Insight
	if effective != "" {
		existing, err := s.ownedInsight(ctx, p.ID)
		if err != nil {
			return ReconcileResult{}, fmt.Errorf("failed to update profile: %w", err)
		}
		if dec := insight.Evaluate(effective, existing, now); dec.Refresh {
			fresh := insight.Insight{
				ID:       uuid.New(),
				UserID:   p.ID,
				Industry: effective,
				Data:     s.gen.Generate(ctx, effective),
			}
			if existing != nil {
				fresh.ID = existing.ID
			}
			fresh.Touch(now)
			rec = &fresh
		}
	}

	savedProfile, savedInsight, err := s.repo.SaveReconciled(ctx, p, rec)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("failed to update profile: %w", err)
	}

	res := ReconcileResult{Profile: savedProfile, RedirectTo: in.ReturnTo}
	if res.RedirectTo == "" {
		res.RedirectTo = "/dashboard"
	}
	switch {
	case savedInsight != nil:
		res.Insight = *savedInsight
	default:
		// pass through whatever is stored; a profile without an industry
		// owns nothing, so absence here is not an error
		stored, err := s.ownedInsight(ctx, p.ID)
		if err != nil {
			logger.Error("reading stored insight after profile update failed", err,
				"profile_id", p.ID)
		} else if stored != nil {
			res.Insight = *stored
		}
	}
	return res, nil
}

func (s *service) GetInsights(ctx context.Context, subject string) (insight.Insight, error) {
	p, err := s.resolve(ctx, subject)
	if err != nil {
		return insight.Insight{}, err
	}
	now := s.now().UTC()

	// Профиль без отрасли никогда не владеет сохранённой аналитикой:
	// наружу уходит синтетическая заглушка.
	if p.Industry == "" {
		return insight.Placeholder(now), nil
	}

	existing, err := s.ownedInsight(ctx, p.ID)
	if err != nil {
		return insight.Insight{}, fmt.Errorf("failed to get industry insights: %w", err)
	}
	dec := insight.Evaluate(p.Industry, existing, now)
	if !dec.Refresh {
		return *existing, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.reconcileTimeout)
	defer cancel()

	fresh := insight.Insight{
		ID:       uuid.New(),
		UserID:   p.ID,
		Industry: p.Industry,
		Data:     s.gen.Generate(ctx, p.Industry),
	}
	if existing != nil {
		fresh.ID = existing.ID
	}
	fresh.Touch(now)

	// Только запись аналитики: профиль на этом пути не мутирует.
	saved, err := s.insights.Upsert(ctx, fresh)
	if err != nil {
		return insight.Insight{}, fmt.Errorf("failed to get industry insights: %w", err)
	}
	return saved, nil
}

func (s *service) Get(ctx context.Context, subject string) (Profile, error) {
	return s.resolve(ctx, subject)
}

func (s *service) Provision(ctx context.Context, subject string) (Profile, error) {
	if strings.TrimSpace(subject) == "" {
		return Profile{}, ErrUnauthorized
	}
	if p, err := s.repo.GetByExternalID(ctx, subject); err == nil {
		return p, nil
	} else if !errors.Is(err, ErrNotFound) {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	now := s.now().UTC()
	p := Profile{
		ID:         uuid.New(),
		ExternalID: subject,
		Skills:     []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return created, nil
}

func (s *service) IsOnboarded(ctx context.Context, subject string) (bool, error) {
	p, err := s.resolve(ctx, subject)
	if err != nil {
		return false, err
	}
	return p.Industry != "", nil
}

// ownedInsight loads the profile's record, translating "no record" into nil.
func (s *service) ownedInsight(ctx context.Context, ownerID uuid.UUID) (*insight.Insight, error) {
	rec, err := s.insights.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, insight.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
