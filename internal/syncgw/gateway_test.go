package syncgw

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skatetrack/internal/dashboard"
	"skatetrack/internal/domain"
	"skatetrack/internal/identity"
	"skatetrack/internal/remote"
	"skatetrack/internal/seed"
	"skatetrack/internal/tracker"
)

func seedState() tracker.State {
	return tracker.State{
		UserSports: seed.UserSports(),
		ShopSports: seed.Shop(),
		Trainings:  seed.Trainings(),
	}
}

func newTestGateway(t *testing.T) (*Gateway, *tracker.Tracker, *identity.Static) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := remote.NewRedisStore("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	trk := tracker.New(seedState())
	provider := identity.NewStatic()
	gw := New(store, trk, provider, seedState)
	t.Cleanup(gw.Close)
	return gw, trk, provider
}

func waitReady(t *testing.T, gw *Gateway) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, gw.WaitLoaded(ctx))
	require.Equal(t, StateReady, gw.State())
}

func flush(t *testing.T, gw *Gateway) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, gw.Flush(ctx))
}

func TestFirstTimeUserGetsSeedDefaults(t *testing.T) {
	gw, trk, provider := newTestGateway(t)

	provider.SignIn(identity.Identity{UID: "uid-1"})
	waitReady(t, gw)

	snap := trk.Snapshot()
	want := seedState()
	require.Len(t, snap.UserSports, len(want.UserSports))
	assert.Equal(t, want.UserSports[0].ID, snap.UserSports[0].ID)
	assert.Empty(t, snap.UserSports[0].Skills)
	assert.Empty(t, snap.Trainings)
}

func TestRoundTripAcrossSessions(t *testing.T) {
	gw, trk, provider := newTestGateway(t)

	provider.SignIn(identity.Identity{UID: "uid-1"})
	waitReady(t, gw)

	trk.AdoptSkill("sport-inline", "skill-1")
	progress := 4
	trk.UpdateSubSkill("sport-inline", "skill-1", "sub-1-1", dashboard.SubSkillUpdate{Progress: &progress})
	trk.AddTrainingSession(domain.TrainingSession{
		ID: "session-1", Title: "Treino de frenagem", Date: "2026-03-02", Time: "10:00", Duration: 60,
		Sections: []domain.TrainingSection{
			{ID: "sec-1", Name: "Principal", Exercises: []domain.TrainingExercise{
				{ID: "ex-1", SkillID: "skill-1", SubSkillID: "sub-1-1", Duration: 2700},
			}},
		},
	})
	flush(t, gw)

	// Sign out: stores reset to seed, nothing saved for the reset.
	provider.SignOut()
	assert.Equal(t, StateUnauthenticated, gw.State())
	assert.Empty(t, trk.Snapshot().UserSports[0].Skills)

	// Sign back in: the saved state comes back, untouched by migration.
	provider.SignIn(identity.Identity{UID: "uid-1"})
	waitReady(t, gw)

	snap := trk.Snapshot()
	require.Len(t, snap.UserSports[0].Skills, 1)
	assert.Equal(t, "skill-1", snap.UserSports[0].Skills[0].ID)
	assert.Equal(t, 4, snap.UserSports[0].Skills[0].SubSkills[0].Progress)
	require.Len(t, snap.Trainings, 1)
	assert.Equal(t, 2700, snap.Trainings[0].Sections[0].Exercises[0].Duration)
}

func TestLegacyDocumentMigratesOnLoad(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := remote.NewRedisStore("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	trk := tracker.New(seedState())
	provider := identity.NewStatic()
	gw := New(store, trk, provider, seedState)
	t.Cleanup(gw.Close)

	// A pre-sections document: no schemaVersion, flat exercises, minute
	// durations.
	legacy := &remote.UserDocument{
		Trainings: []domain.TrainingSession{
			{
				ID: "session-1", Title: "Treino antigo", Date: "2025-11-20", Duration: 60,
				Exercises: []domain.TrainingExercise{
					{ID: "ex-1", CustomName: "Slalom", Duration: 45},
					{ID: "ex-2", CustomName: "Sprint", Duration: 2700},
				},
			},
		},
	}
	raw, err := remote.MarshalDocument(legacy)
	require.NoError(t, err)
	require.NoError(t, mr.Set("users:uid-1", string(raw)))

	provider.SignIn(identity.Identity{UID: "uid-1"})
	waitReady(t, gw)

	snap := trk.Snapshot()
	require.Len(t, snap.Trainings, 1)
	s := snap.Trainings[0]
	require.Len(t, s.Sections, 1, "flat exercises folded into one section")
	assert.Empty(t, s.Exercises)
	assert.Equal(t, "10:00", s.Time)

	exs := s.Sections[0].Exercises
	require.Len(t, exs, 2)
	assert.Equal(t, 2700, exs[0].Duration, "45 legacy minutes become seconds")
	assert.Equal(t, 2700, exs[1].Duration, "values past the threshold stay put")
}

func TestSaveFailureIsLoggedNotFatal(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := remote.NewRedisStore("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	trk := tracker.New(seedState())
	provider := identity.NewStatic()

	var mu sync.Mutex
	var warnings []string
	gw := New(store, trk, provider, seedState, WithLogf(func(format string, args ...any) {
		mu.Lock()
		warnings = append(warnings, format)
		mu.Unlock()
	}))
	t.Cleanup(gw.Close)

	provider.SignIn(identity.Identity{UID: "uid-1"})
	waitReady(t, gw)

	mr.Close() // every save from here on fails

	trk.AdoptSkill("sport-inline", "skill-1")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = gw.Flush(ctx)

	assert.Error(t, gw.LastErr())
	// Local mutation still went through.
	assert.Len(t, trk.Snapshot().UserSports[0].Skills, 1)
	mu.Lock()
	assert.NotEmpty(t, warnings)
	mu.Unlock()
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	store := &slowStore{release: release, inner: map[string][]byte{}}

	trk := tracker.New(seedState())
	provider := identity.NewStatic()
	gw := New(store, trk, provider, seedState)
	t.Cleanup(gw.Close)

	provider.SignIn(identity.Identity{UID: "uid-1"})
	provider.SignOut()
	close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = gw.WaitLoaded(ctx)

	// The late load result targeted a signed-out identity and must not
	// promote the gateway or touch the stores.
	assert.Equal(t, StateUnauthenticated, gw.State())
	assert.Empty(t, trk.Snapshot().UserSports[0].Skills)
}

// slowStore blocks every Load until release is closed.
type slowStore struct {
	release chan struct{}
	mu      sync.Mutex
	inner   map[string][]byte
}

func (s *slowStore) Load(ctx context.Context, uid string) (*remote.UserDocument, error) {
	select {
	case <-s.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.inner[uid]
	if !ok {
		return nil, remote.ErrNotFound
	}
	return remote.UnmarshalDocument(raw)
}

func (s *slowStore) Save(ctx context.Context, uid string, doc *remote.UserDocument) error {
	raw, err := remote.MarshalDocument(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner[uid] = raw
	return nil
}

func (s *slowStore) Close() error { return nil }
