package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulikov/careerhub/pkg/insight"
)

const marketReply = `{
  "salaryRanges": [
    {"role": "Backend Engineer", "min": 90000, "max": 180000, "median": 130000, "location": "Remote"}
  ],
  "growthRate": 5,
  "demandLevel": "High",
  "topSkills": ["Go"],
  "marketOutlook": "Positive",
  "keyTrends": ["AI tooling"],
  "recommendedSkills": ["Kubernetes"]
}`

type fakeModel struct {
	reply string
	err   error
	calls int
}

func (m *fakeModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// fakeProfileRepo keys profiles by external id.
type fakeProfileRepo struct {
	byExternal map[string]Profile
	insights   *fakeInsightRepo
	saveErr    error
	saveCalls  int
	lastSaved  *insight.Insight
}

func newFakeProfileRepo(insights *fakeInsightRepo) *fakeProfileRepo {
	return &fakeProfileRepo{byExternal: make(map[string]Profile), insights: insights}
}

func (r *fakeProfileRepo) GetByExternalID(ctx context.Context, externalID string) (Profile, error) {
	p, ok := r.byExternal[externalID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Create(ctx context.Context, p Profile) (Profile, error) {
	r.byExternal[p.ExternalID] = p
	return p, nil
}

func (r *fakeProfileRepo) SaveReconciled(ctx context.Context, p Profile, rec *insight.Insight) (Profile, *insight.Insight, error) {
	r.saveCalls++
	r.lastSaved = rec
	if r.saveErr != nil {
		return Profile{}, nil, r.saveErr
	}
	if _, ok := r.byExternal[p.ExternalID]; !ok {
		return Profile{}, nil, ErrNotFound
	}
	r.byExternal[p.ExternalID] = p
	if rec == nil {
		return p, nil, nil
	}
	saved, err := r.insights.Upsert(ctx, *rec)
	if err != nil {
		return Profile{}, nil, err
	}
	return p, &saved, nil
}

type fakeInsightRepo struct {
	byOwner     map[uuid.UUID]insight.Insight
	upsertCalls int
	getCalls    int
	// getErr is returned once getCalls exceeds getErrAfter, so a test can let
	// the first read succeed and fail a later one.
	getErr      error
	getErrAfter int
}

func newFakeInsightRepo() *fakeInsightRepo {
	return &fakeInsightRepo{byOwner: make(map[uuid.UUID]insight.Insight)}
}

func (r *fakeInsightRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (insight.Insight, error) {
	r.getCalls++
	if r.getErr != nil && r.getCalls > r.getErrAfter {
		return insight.Insight{}, r.getErr
	}
	rec, ok := r.byOwner[ownerID]
	if !ok {
		return insight.Insight{}, insight.ErrNotFound
	}
	return rec, nil
}

func (r *fakeInsightRepo) Upsert(ctx context.Context, rec insight.Insight) (insight.Insight, error) {
	r.upsertCalls++
	r.byOwner[rec.UserID] = rec
	return rec, nil
}

func (r *fakeInsightRepo) ListDue(ctx context.Context, now time.Time, limit int) ([]insight.Insight, error) {
	return nil, nil
}

func (r *fakeInsightRepo) UpdateGenerated(ctx context.Context, id uuid.UUID, d insight.Data, lastUpdated, nextUpdate time.Time) error {
	return nil
}

type fixture struct {
	svc      *service
	profiles *fakeProfileRepo
	insights *fakeInsightRepo
	model    *fakeModel
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	insights := newFakeInsightRepo()
	profiles := newFakeProfileRepo(insights)
	model := &fakeModel{reply: marketReply}
	uc := NewService(profiles, insights, insight.NewGenerator(model), 0)
	svc, ok := uc.(*service)
	require.True(t, ok)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return &fixture{svc: svc, profiles: profiles, insights: insights, model: model, now: now}
}

func (f *fixture) seedProfile(subject, industry string) Profile {
	p := Profile{
		ID:         uuid.New(),
		ExternalID: subject,
		Industry:   industry,
		Skills:     []string{},
		CreatedAt:  f.now.Add(-time.Hour),
		UpdatedAt:  f.now.Add(-time.Hour),
	}
	f.profiles.byExternal[subject] = p
	return p
}

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

func TestUpdate_EmptySubject(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Update(context.Background(), "", UpdateInput{})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdate_UnknownSubject(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Update(context.Background(), "user-1", UpdateInput{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_FirstIndustryCreatesInsight(t *testing.T) {
	f := newFixture(t)
	f.seedProfile("user-1", "")

	res, err := f.svc.Update(context.Background(), "user-1", UpdateInput{
		Industry:   strptr("tech-software-development"),
		Experience: intptr(5),
		Bio:        strptr("Backend developer"),
		Skills:     []string{"Go", "PostgreSQL"},
	})
	require.NoError(t, err)

	assert.Equal(t, "tech-software-development", res.Profile.Industry)
	assert.Equal(t, 5, res.Profile.Experience)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, res.Profile.Skills)
	assert.Equal(t, 1, f.model.calls)
	require.NotNil(t, f.profiles.lastSaved, "insight must go through the same save")
	assert.Equal(t, "tech-software-development", res.Insight.Industry)
	assert.Equal(t, f.now, res.Insight.LastUpdated)
	assert.Equal(t, f.now.Add(insight.RefreshPeriod), res.Insight.NextUpdate)
	assert.Equal(t, "/dashboard", res.RedirectTo)
}

func TestUpdate_FreshInsightNotRegenerated(t *testing.T) {
	f := newFixture(t)
	p := f.seedProfile("user-1", "tech-software")
	existing := insight.Insight{ID: uuid.New(), UserID: p.ID, Industry: "tech-software"}
	existing.Touch(f.now.Add(-24 * time.Hour))
	f.insights.byOwner[p.ID] = existing

	res, err := f.svc.Update(context.Background(), "user-1", UpdateInput{Bio: strptr("updated bio")})
	require.NoError(t, err)

	assert.Equal(t, 0, f.model.calls, "fresh record must not trigger generation")
	assert.Nil(t, f.profiles.lastSaved, "no insight write when nothing to refresh")
	assert.Equal(t, "updated bio", res.Profile.Bio)
	assert.Equal(t, existing.ID, res.Insight.ID, "stored record passed through in the result")
}

func TestUpdate_IndustryChangeReusesRecordID(t *testing.T) {
	f := newFixture(t)
	p := f.seedProfile("user-1", "finance")
	existing := insight.Insight{ID: uuid.New(), UserID: p.ID, Industry: "finance"}
	existing.Touch(f.now.Add(-time.Hour))
	f.insights.byOwner[p.ID] = existing

	res, err := f.svc.Update(context.Background(), "user-1", UpdateInput{Industry: strptr("tech-software")})
	require.NoError(t, err)

	assert.Equal(t, 1, f.model.calls, "mismatch regenerates even a fresh record")
	assert.Equal(t, existing.ID, res.Insight.ID, "one record per owner, id is stable")
	assert.Equal(t, "tech-software", res.Insight.Industry)
}

func TestUpdate_NilFieldsKeepValues(t *testing.T) {
	f := newFixture(t)
	p := f.seedProfile("user-1", "tech-software")
	p.Experience = 7
	p.Bio = "original"
	f.profiles.byExternal["user-1"] = p
	existing := insight.Insight{ID: uuid.New(), UserID: p.ID, Industry: "tech-software"}
	existing.Touch(f.now.Add(-time.Hour))
	f.insights.byOwner[p.ID] = existing

	res, err := f.svc.Update(context.Background(), "user-1", UpdateInput{Skills: []string{"Go"}})
	require.NoError(t, err)

	assert.Equal(t, 7, res.Profile.Experience)
	assert.Equal(t, "original", res.Profile.Bio)
	assert.Equal(t, "tech-software", res.Profile.Industry)
	assert.Equal(t, []string{"Go"}, res.Profile.Skills)
}

// Отрасль можно сменить, но нельзя очистить: пустая строка в запросе
// означает «не менять», иначе профиль без отрасли остался бы владельцем
// сгенерированной записи.
func TestUpdate_BlankIndustryKeepsCurrent(t *testing.T) {
	f := newFixture(t)
	p := f.seedProfile("user-1", "tech-software")
	existing := insight.Insight{ID: uuid.New(), UserID: p.ID, Industry: "tech-software"}
	existing.Touch(f.now.Add(-time.Hour))
	f.insights.byOwner[p.ID] = existing

	for _, blank := range []string{"", "   "} {
		res, err := f.svc.Update(context.Background(), "user-1", UpdateInput{Industry: strptr(blank)})
		require.NoError(t, err)

		assert.Equal(t, "tech-software", res.Profile.Industry, "industry must not be cleared")
		assert.Equal(t, 0, f.model.calls, "fresh record for the kept industry stays as is")
		assert.Equal(t, existing.ID, res.Insight.ID)
		assert.Equal(t, "tech-software", f.insights.byOwner[p.ID].Industry)
	}
}

func TestUpdate_ReturnToPassthrough(t *testing.T) {
	f := newFixture(t)
	f.seedProfile("user-1", "tech-software")

	res, err := f.svc.Update(context.Background(), "user-1", UpdateInput{ReturnTo: "/onboarding/done"})
	require.NoError(t, err)

	assert.Equal(t, "/onboarding/done", res.RedirectTo)
}

// A transient failure of the pass-through read must not fail the update that
// already committed; the result just carries no insight.
func TestUpdate_PassthroughReadFailureDoesNotFailUpdate(t *testing.T) {
	f := newFixture(t)
	p := f.seedProfile("user-1", "tech-software")
	existing := insight.Insight{ID: uuid.New(), UserID: p.ID, Industry: "tech-software"}
	existing.Touch(f.now.Add(-time.Hour))
	f.insights.byOwner[p.ID] = existing
	f.insights.getErr = errors.New("read timeout")
	f.insights.getErrAfter = 1 // staleness read succeeds, pass-through read fails

	res, err := f.svc.Update(context.Background(), "user-1", UpdateInput{Bio: strptr("x")})
	require.NoError(t, err)

	assert.Equal(t, "x", res.Profile.Bio)
	assert.Equal(t, uuid.Nil, res.Insight.ID, "no stale insight smuggled into the result")
	assert.Equal(t, 2, f.insights.getCalls)
}

func TestUpdate_SaveFailureWrapped(t *testing.T) {
	f := newFixture(t)
	f.seedProfile("user-1", "tech-software")
	f.profiles.saveErr = errors.New("deadlock detected")

	_, err := f.svc.Update(context.Background(), "user-1", UpdateInput{Bio: strptr("x")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update profile")
	assert.Contains(t, err.Error(), "deadlock detected")
}

func TestGetInsights_NoIndustryPlaceholder(t *testing.T) {
	f := newFixture(t)
	f.seedProfile("user-1", "")

	rec, err := f.svc.GetInsights(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "default", rec.Industry)
	assert.True(t, rec.Data.IsDegraded())
	assert.Equal(t, 0, f.model.calls)
	assert.Equal(t, 0, f.insights.upsertCalls, "placeholder is never persisted")
}

func TestGetInsights_FreshRecordPassthrough(t *testing.T) {
	f := newFixture(t)
	p := f.seedProfile("user-1", "tech-software")
	existing := insight.Insight{ID: uuid.New(), UserID: p.ID, Industry: "tech-software"}
	existing.Touch(f.now.Add(-2 * 24 * time.Hour))
	f.insights.byOwner[p.ID] = existing

	rec, err := f.svc.GetInsights(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, existing, rec)
	assert.Equal(t, 0, f.model.calls)
}

func TestGetInsights_MissingRecordGeneratedAndStored(t *testing.T) {
	f := newFixture(t)
	p := f.seedProfile("user-1", "tech-software")

	rec, err := f.svc.GetInsights(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, f.model.calls)
	assert.Equal(t, 1, f.insights.upsertCalls)
	assert.Equal(t, p.ID, rec.UserID)
	assert.Equal(t, "tech-software", rec.Industry)
	assert.Equal(t, f.now, rec.LastUpdated)
	assert.False(t, rec.Data.IsDegraded())
}

func TestGetInsights_ExpiredRecordRefreshed(t *testing.T) {
	f := newFixture(t)
	p := f.seedProfile("user-1", "tech-software")
	existing := insight.Insight{ID: uuid.New(), UserID: p.ID, Industry: "tech-software"}
	existing.Touch(f.now.Add(-10 * 24 * time.Hour))
	f.insights.byOwner[p.ID] = existing

	rec, err := f.svc.GetInsights(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, existing.ID, rec.ID)
	assert.Equal(t, f.now, rec.LastUpdated)
	assert.Equal(t, 1, f.insights.upsertCalls)
}

// Даже при недоступной модели чтение аналитики не падает: сохраняется
// запись с сентинельными данными.
func TestGetInsights_ModelFailureStoresDegradedRecord(t *testing.T) {
	f := newFixture(t)
	f.seedProfile("user-1", "tech-software")
	f.model.err = errors.New("model unavailable")

	rec, err := f.svc.GetInsights(context.Background(), "user-1")
	require.NoError(t, err)

	assert.True(t, rec.Data.IsDegraded())
	assert.Equal(t, 1, f.insights.upsertCalls)
}

func TestProvision_Idempotent(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.Provision(context.Background(), "user-1")
	require.NoError(t, err)
	second, err := f.svc.Provision(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "user-1", first.ExternalID)
	assert.NotNil(t, first.Skills)
}

func TestIsOnboarded(t *testing.T) {
	f := newFixture(t)
	f.seedProfile("user-1", "")
	f.seedProfile("user-2", "tech-software")

	ok, err := f.svc.IsOnboarded(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.svc.IsOnboarded(context.Background(), "user-2")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.svc.IsOnboarded(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
