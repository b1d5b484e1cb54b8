// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// Compile-time interface checks.
var (
	_ suture.Service = (*HTTPServerService)(nil)
	_ suture.Service = (*CheckpointService)(nil)
	_ HTTPServer     = (*http.Server)(nil)
)

type mockHTTPServer struct {
	listenErr     error
	shutdownErr   error
	started       chan struct{}
	stopCh        chan struct{}
	shutdownCalls atomic.Int32
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{
		started: make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
	}
}

func (m *mockHTTPServer) ListenAndServe() error {
	m.started <- struct{}{}
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.stopCh
	return http.ErrServerClosed
}

func (m *mockHTTPServer) Shutdown(context.Context) error {
	m.shutdownCalls.Add(1)
	close(m.stopCh)
	return m.shutdownErr
}

func TestHTTPServerServiceGracefulShutdown(t *testing.T) {
	t.Parallel()

	server := newMockHTTPServer()
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	<-server.started
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return")
	}
	if server.shutdownCalls.Load() != 1 {
		t.Errorf("Shutdown called %d times, want 1", server.shutdownCalls.Load())
	}
}

func TestHTTPServerServiceListenError(t *testing.T) {
	t.Parallel()

	server := newMockHTTPServer()
	server.listenErr = errors.New("address already in use")
	svc := NewHTTPServerService(server, time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, server.listenErr) {
		t.Errorf("Serve() = %v, want wrapped listen error", err)
	}
	if server.shutdownCalls.Load() != 0 {
		t.Error("Shutdown should not be called when listen fails")
	}
}

func TestHTTPServerServiceShutdownError(t *testing.T) {
	t.Parallel()

	server := newMockHTTPServer()
	server.shutdownErr = context.DeadlineExceeded
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()
	<-server.started
	cancel()

	err := <-done
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want shutdown error", err)
	}
}

func TestHTTPServerServiceDefaults(t *testing.T) {
	t.Parallel()

	svc := NewHTTPServerService(newMockHTTPServer(), 0)
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("shutdownTimeout = %v, want 10s", svc.shutdownTimeout)
	}
	if svc.String() != "http-server" {
		t.Errorf("String() = %q", svc.String())
	}
}

type countingCheckpointer struct {
	calls atomic.Int32
	err   error
}

func (c *countingCheckpointer) Checkpoint(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestCheckpointServiceTicks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"successful checkpoints", nil},
		{"failures keep the service running", errors.New("io error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := &countingCheckpointer{err: tt.err}
			svc := NewCheckpointService(db, 5*time.Millisecond)

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- svc.Serve(ctx) }()

			deadline := time.After(5 * time.Second)
			for db.calls.Load() < 3 {
				select {
				case err := <-done:
					t.Fatalf("Serve() returned early: %v", err)
				case <-deadline:
					t.Fatalf("only %d checkpoints", db.calls.Load())
				case <-time.After(time.Millisecond):
				}
			}

			cancel()
			if err := <-done; !errors.Is(err, context.Canceled) {
				t.Errorf("Serve() = %v, want context.Canceled", err)
			}
		})
	}
}

func TestCheckpointServiceDefaults(t *testing.T) {
	t.Parallel()

	svc := NewCheckpointService(&countingCheckpointer{}, 0)
	if svc.interval != 5*time.Minute {
		t.Errorf("interval = %v, want 5m", svc.interval)
	}
	if svc.String() != "duckdb-checkpoint" {
		t.Errorf("String() = %q", svc.String())
	}
}
