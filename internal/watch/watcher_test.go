package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatcherTriggersAction(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "src")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	var runs atomic.Int32
	orch := NewOrchestrator(func(context.Context) error {
		runs.Add(1)
		return nil
	}, 50*time.Millisecond)

	watcher, err := NewWatcher(orch)
	if err != nil {
		t.Fatalf("NewWatcher() = %v", err)
	}
	if err := watcher.Add(dir); err != nil {
		t.Fatalf("Add() = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = watcher.Run(ctx) }()
	done := make(chan error, 1)
	go func() { done <- orch.Run(ctx) }()

	// Several writes in quick succession coalesce into one run.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(filepath.Join(sub, "main.shu"), []byte{byte('a' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	deadline := time.After(2 * time.Second)
	for runs.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("action never ran after file changes")
		case <-time.After(20 * time.Millisecond):
		}
	}

	time.Sleep(200 * time.Millisecond)
	if got := runs.Load(); got != 1 {
		t.Errorf("action ran %d times, want 1 coalesced run", got)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("orchestrator did not stop")
	}
}

func TestClassifyOp(t *testing.T) {
	tests := []struct {
		name       string
		ev         fsnotify.Event
		wantOp     Op
		qualifying bool
	}{
		{"write", fsnotify.Event{Name: "a.shu", Op: fsnotify.Write}, OpModified, true},
		{"create", fsnotify.Event{Name: "a.shu", Op: fsnotify.Create}, OpCreated, true},
		{"remove", fsnotify.Event{Name: "a.shu", Op: fsnotify.Remove}, OpRemoved, true},
		{"rename", fsnotify.Event{Name: "a.shu", Op: fsnotify.Rename}, OpRemoved, true},
		{"chmod only", fsnotify.Event{Name: "a.shu", Op: fsnotify.Chmod}, 0, false},
		{"editor backup", fsnotify.Event{Name: "a.shu~", Op: fsnotify.Write}, 0, false},
		{"vim swap", fsnotify.Event{Name: ".a.shu.swp", Op: fsnotify.Write}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := classifyOp(tt.ev)
			if ok != tt.qualifying {
				t.Fatalf("classifyOp(%v) qualifying = %v, want %v", tt.ev, ok, tt.qualifying)
			}
			if ok && op != tt.wantOp {
				t.Errorf("classifyOp(%v) = %v, want %v", tt.ev, op, tt.wantOp)
			}
		})
	}
}
