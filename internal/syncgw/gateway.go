// Package syncgw reconciles the in-memory tracker with the remote per-user
// document: a full load when an identity appears, a full-snapshot save after
// every committed mutation while signed in, and a reset to seed data on
// sign-out.
package syncgw

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"skatetrack/internal/identity"
	"skatetrack/internal/remote"
	"skatetrack/internal/tracker"
)

// State is the gateway lifecycle state for the current identity.
type State int

const (
	StateUnauthenticated State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

const saveTimeout = 15 * time.Second

// Gateway drives the load/save protocol. Saves run on a single worker
// goroutine and coalesce: when mutations outpace the network only the newest
// snapshot is written, which is safe because every save carries the full
// state.
type Gateway struct {
	store   remote.DocumentStore
	tracker *tracker.Tracker
	seed    func() tracker.State
	logf    func(format string, args ...any)

	mu       sync.Mutex
	state    State
	uid      string
	lastErr  error
	pending  *saveReq
	saving   bool
	loadDone chan struct{} // closed when the in-flight load finishes; tests only

	notify chan struct{}
	stop   chan struct{}
	wg     sync.WaitGroup
}

type saveReq struct {
	uid  string
	snap tracker.State
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogf overrides the warning sink (stderr by default).
func WithLogf(logf func(format string, args ...any)) Option {
	return func(g *Gateway) { g.logf = logf }
}

// New creates a gateway over the given store and tracker, subscribes to
// tracker commits, hooks identity changes, and starts the save worker. seed
// supplies the default state used before sign-in, for first-time users and
// after sign-out.
func New(store remote.DocumentStore, trk *tracker.Tracker, provider identity.Provider, seed func() tracker.State, opts ...Option) *Gateway {
	g := &Gateway{
		store:   store,
		tracker: trk,
		seed:    seed,
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
		notify: make(chan struct{}, 1),
		stop:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	trk.Subscribe(g.onCommit)
	provider.OnChange(g.onIdentity)

	g.wg.Add(1)
	go g.saveWorker()

	// Pick up an identity that signed in before the gateway existed.
	if id := provider.Current(); id != nil {
		g.onIdentity(id)
	}

	return g
}

// State returns the current lifecycle state.
func (g *Gateway) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// LastErr returns the most recent load or save failure, or nil. It is the
// generic "sync failed" signal; the gateway never retries on its own.
func (g *Gateway) LastErr() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastErr
}

// Close stops the save worker after draining any pending save.
func (g *Gateway) Close() {
	close(g.stop)
	g.wg.Wait()
}

// Flush blocks until no save is pending or ctx is done. The CLI calls it
// before exiting so the last mutation reaches the remote document.
func (g *Gateway) Flush(ctx context.Context) error {
	for {
		g.mu.Lock()
		idle := g.pending == nil && !g.saving
		g.mu.Unlock()
		if idle {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// onIdentity handles uid transitions from the identity provider.
func (g *Gateway) onIdentity(id *identity.Identity) {
	if id == nil {
		g.mu.Lock()
		g.state = StateUnauthenticated
		g.uid = ""
		g.pending = nil
		g.mu.Unlock()
		// The reset itself must not be saved; with the state already
		// Unauthenticated, onCommit drops its notification.
		g.tracker.Reset(g.seed())
		return
	}

	g.mu.Lock()
	g.state = StateLoading
	g.uid = id.UID
	g.pending = nil
	done := make(chan struct{})
	g.loadDone = done
	g.mu.Unlock()

	go func() {
		defer close(done)
		g.load(id.UID)
	}()
}

// load performs the two logically-parallel field reads, falls back to seed
// defaults where a field is absent, migrates, and promotes the gateway to
// Ready. If the identity changed while the load was in flight the result is
// discarded.
func (g *Gateway) load(uid string) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	var (
		wg        sync.WaitGroup
		skillsDoc *remote.UserDocument
		trainDoc  *remote.UserDocument
		skillsErr error
		trainErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		skillsDoc, skillsErr = g.store.Load(ctx, uid)
	}()
	go func() {
		defer wg.Done()
		trainDoc, trainErr = g.store.Load(ctx, uid)
	}()
	wg.Wait()

	seed := g.seed()
	state := tracker.State{
		UserSports: seed.UserSports,
		ShopSports: seed.ShopSports,
		Trainings:  seed.Trainings,
	}

	if skillsErr == nil {
		skillsDoc = MigrateDocument(skillsDoc)
		if skillsDoc.Skills != nil {
			state.UserSports = skillsDoc.Skills
		}
	} else if !errors.Is(skillsErr, remote.ErrNotFound) {
		g.logf("load skills for %s: %v", uid, skillsErr)
		g.setErr(skillsErr)
	}

	if trainErr == nil {
		trainDoc = MigrateDocument(trainDoc)
		if trainDoc.Trainings != nil {
			state.Trainings = trainDoc.Trainings
		}
	} else if !errors.Is(trainErr, remote.ErrNotFound) {
		g.logf("load trainings for %s: %v", uid, trainErr)
		g.setErr(trainErr)
	}

	g.mu.Lock()
	if g.uid != uid {
		// Identity changed while loading; this result is stale.
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	// Replace commits while the gateway is still Loading, so the loaded
	// snapshot itself is not saved back.
	g.tracker.Replace(state)

	g.mu.Lock()
	if g.uid == uid {
		g.state = StateReady
	}
	g.mu.Unlock()
}

// onCommit receives every tracker commit and enqueues a save when Ready.
func (g *Gateway) onCommit(snap tracker.State) {
	g.mu.Lock()
	if g.state != StateReady {
		g.mu.Unlock()
		return
	}
	g.pending = &saveReq{uid: g.uid, snap: snap}
	g.mu.Unlock()

	select {
	case g.notify <- struct{}{}:
	default:
	}
}

func (g *Gateway) saveWorker() {
	defer g.wg.Done()
	for {
		select {
		case <-g.stop:
			// Drain a last pending save before shutting down.
			g.saveLatest()
			return
		case <-g.notify:
			g.saveLatest()
		}
	}
}

func (g *Gateway) saveLatest() {
	g.mu.Lock()
	req := g.pending
	g.pending = nil
	if req != nil {
		g.saving = true
	}
	g.mu.Unlock()
	if req == nil {
		return
	}
	defer func() {
		g.mu.Lock()
		g.saving = false
		g.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	doc := &remote.UserDocument{
		SchemaVersion: remote.SchemaVersion,
		Skills:        req.snap.UserSports,
		Trainings:     req.snap.Trainings,
	}
	if err := g.store.Save(ctx, req.uid, doc); err != nil {
		// No retry: the document stays stale until the next mutation
		// triggers another save.
		g.logf("save user document for %s: %v", req.uid, err)
		g.setErr(err)
		return
	}
	g.setErr(nil)
}

func (g *Gateway) setErr(err error) {
	g.mu.Lock()
	g.lastErr = err
	g.mu.Unlock()
}

// WaitLoaded blocks until the in-flight load completes or ctx is done.
func (g *Gateway) WaitLoaded(ctx context.Context) error {
	g.mu.Lock()
	done := g.loadDone
	g.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
