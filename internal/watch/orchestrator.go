package watch

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// State is the orchestrator's position in its lifecycle.
type State int32

const (
	// StateIdle means no event is pending and no action is running.
	StateIdle State = iota
	// StatePending means an event arrived and the debounce timer runs.
	StatePending
	// StateRunning means the configured action is in flight.
	StateRunning
	// StateStopping means interruption was requested.
	StateStopping
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Op is the kind of file-system change an event reports.
type Op int

const (
	OpCreated Op = iota
	OpModified
	OpRemoved
)

// Event is a timestamped file-system change notification. Events are
// ephemeral: consumed by the debouncer and discarded.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

// Action is the single configurable action invoked per settled change
// batch. It must respect ctx; a returned error is reported but does not
// stop the watch loop.
type Action func(ctx context.Context) error

// Orchestrator coalesces bursts of file events into debounced action
// runs. It guarantees at most one action invocation in flight at any
// time: events arriving during a run are deferred and trigger exactly
// one follow-up run after the current one completes.
type Orchestrator struct {
	action   Action
	debounce time.Duration

	// RunOnStart triggers a synthetic first run before any event.
	RunOnStart bool
	// OnError, when set, receives action failures. Failures are
	// non-fatal to the loop.
	OnError func(err error)

	events chan Event
	state  atomic.Int32
}

// NewOrchestrator creates an orchestrator invoking action after debounce
// of quiet time following the last qualifying event.
func NewOrchestrator(action Action, debounce time.Duration) *Orchestrator {
	return &Orchestrator{
		action:   action,
		debounce: debounce,
		events:   make(chan Event, 64),
	}
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State {
	return State(o.state.Load())
}

// Notify hands an event to the orchestrator. It never blocks: when the
// queue is full the event is dropped, which is safe because any queued
// event already guarantees a follow-up run.
func (o *Orchestrator) Notify(ev Event) {
	select {
	case o.events <- ev:
	default:
	}
}

// Run consumes events until ctx is cancelled. Cancellation is
// cooperative: an in-flight action is allowed to finish before Run
// returns. A clean interruption returns nil.
func (o *Orchestrator) Run(ctx context.Context) error {
	// The timer starts stopped; it is armed on the first event.
	timer := time.NewTimer(o.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	done := make(chan error, 1)
	running := false
	deferred := false

	start := func() {
		running = true
		o.state.Store(int32(StateRunning))
		go func() {
			done <- o.action(ctx)
		}()
	}

	o.state.Store(int32(StateIdle))
	if o.RunOnStart {
		start()
	}

	for {
		select {
		case <-ctx.Done():
			o.state.Store(int32(StateStopping))
			if running {
				// No forced kill: the action observes ctx itself.
				err := <-done
				o.reportResult(err)
			}
			return nil

		case ev := <-o.events:
			if running {
				deferred = true
				slog.Debug("event deferred during run", "path", ev.Path)
				continue
			}
			// Idle or Pending: (re)arm the debounce timer.
			if o.State() == StatePending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(o.debounce)
			o.state.Store(int32(StatePending))
			slog.Debug("change detected", "path", ev.Path, "state", o.State().String())

		case <-timer.C:
			start()

		case err := <-done:
			running = false
			o.reportResult(err)
			if deferred {
				// Changes arrived during the run; go straight back
				// to pending so nothing is lost.
				deferred = false
				timer.Reset(o.debounce)
				o.state.Store(int32(StatePending))
			} else {
				o.state.Store(int32(StateIdle))
			}
		}
	}
}

func (o *Orchestrator) reportResult(err error) {
	if err == nil {
		return
	}
	if o.OnError != nil {
		o.OnError(err)
		return
	}
	slog.Error("watch action failed", "error", err)
}
