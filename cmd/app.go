package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"skatetrack/internal/config"
	"skatetrack/internal/identity"
	"skatetrack/internal/remote"
	"skatetrack/internal/seed"
	"skatetrack/internal/syncgw"
	"skatetrack/internal/tracker"
)

// appEnv bundles the wired-up application: document store, state
// tracker and the sync gateway between them.
type appEnv struct {
	cfg     config.Config
	store   remote.DocumentStore
	tracker *tracker.Tracker
	gateway *syncgw.Gateway
}

// openAppEnv loads configuration, opens the configured backend, signs
// in the configured user and waits for the remote document to load.
func openAppEnv(cmd *cobra.Command) (*appEnv, error) {
	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.SQLitePath = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var store remote.DocumentStore
	var err error
	switch cfg.Store {
	case "redis":
		store, err = remote.NewRedisStore(cfg.RedisURL)
	default:
		store, err = remote.OpenSQLite(cfg.SQLitePath)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store, err)
	}

	trk := tracker.New(seedState())
	provider := identity.NewStatic()
	gw := syncgw.New(store, trk, provider, seedState, syncgw.WithLogf(logfFor(cmd)))

	provider.SignIn(identity.Identity{
		UID:         cfg.UID,
		DisplayName: cfg.DisplayName,
		Email:       cfg.Email,
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	if err := gw.WaitLoaded(ctx); err != nil {
		gw.Close()
		store.Close()
		return nil, fmt.Errorf("load user data: %w", err)
	}

	return &appEnv{
		cfg:     cfg,
		store:   store,
		tracker: trk,
		gateway: gw,
	}, nil
}

// Close flushes pending saves and releases the backend.
func (a *appEnv) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := a.gateway.Flush(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: some changes may not have been saved:", err)
	}
	a.gateway.Close()
	a.store.Close()
}

func seedState() tracker.State {
	return tracker.State{
		UserSports: seed.UserSports(),
		ShopSports: seed.Shop(),
		Trainings:  seed.Trainings(),
	}
}
