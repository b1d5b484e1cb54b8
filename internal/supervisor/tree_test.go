// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// blockingService runs until canceled and counts its starts.
type blockingService struct {
	starts  atomic.Int32
	started chan struct{}
}

func newBlockingService() *blockingService {
	return &blockingService{started: make(chan struct{}, 8)}
}

func (s *blockingService) Serve(ctx context.Context) error {
	s.starts.Add(1)
	s.started <- struct{}{}
	<-ctx.Done()
	return ctx.Err()
}

// flakyService fails on its first run and then blocks.
type flakyService struct {
	runs    atomic.Int32
	stable  chan struct{}
	stabled atomic.Bool
}

func (s *flakyService) Serve(ctx context.Context) error {
	if s.runs.Add(1) == 1 {
		return errors.New("first run fails")
	}
	if s.stabled.CompareAndSwap(false, true) {
		close(s.stable)
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestNewTreeDefaults(t *testing.T) {
	t.Parallel()

	tree := NewTree(quietLogger(), TreeConfig{})
	want := DefaultTreeConfig()
	if tree.config != want {
		t.Errorf("config = %+v, want %+v", tree.config, want)
	}
	if tree.Root() == nil {
		t.Error("Root() should not be nil")
	}

	custom := NewTree(quietLogger(), TreeConfig{FailureBackoff: time.Second})
	if custom.config.FailureBackoff != time.Second {
		t.Errorf("FailureBackoff = %v, want 1s", custom.config.FailureBackoff)
	}
	if custom.config.FailureThreshold != want.FailureThreshold {
		t.Errorf("FailureThreshold = %v", custom.config.FailureThreshold)
	}
}

func TestTreeRunsAndStopsServices(t *testing.T) {
	t.Parallel()

	tree := NewTree(quietLogger(), TreeConfig{ShutdownTimeout: 2 * time.Second})
	api := newBlockingService()
	data := newBlockingService()
	tree.AddAPIService(api)
	tree.AddDataService(data)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	for _, svc := range []*blockingService{api, data} {
		select {
		case <-svc.started:
		case <-time.After(5 * time.Second):
			t.Fatal("service did not start")
		}
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(5 * time.Second):
		t.Fatal("tree did not stop")
	}

	unstopped, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport() error = %v", err)
	}
	if len(unstopped) != 0 {
		t.Errorf("unstopped services: %v", unstopped)
	}
}

func TestTreeRestartsFailedService(t *testing.T) {
	t.Parallel()

	tree := NewTree(quietLogger(), TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	svc := &flakyService{stable: make(chan struct{})}
	tree.AddAPIService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	select {
	case <-svc.stable:
	case <-time.After(5 * time.Second):
		t.Fatalf("service was not restarted, runs = %d", svc.runs.Load())
	}

	cancel()
	<-errCh
	if svc.runs.Load() < 2 {
		t.Errorf("runs = %d, want >= 2", svc.runs.Load())
	}
}

func TestServeBackgroundDeliversOneValueAfterCancel(t *testing.T) {
	t.Parallel()

	tree := NewTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})
	svc := newBlockingService()
	tree.AddAPIService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	select {
	case <-svc.started:
	case <-time.After(5 * time.Second):
		t.Fatal("service did not start")
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("terminal error = %v, want nil or context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no terminal value after cancel")
	}

	// The channel stays open after its one value; a second receive must not
	// be relied on to return.
	select {
	case err, ok := <-errCh:
		t.Fatalf("unexpected second receive: err=%v open=%v", err, ok)
	case <-time.After(100 * time.Millisecond):
	}
}
