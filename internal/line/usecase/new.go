// Package usecase implements the debounced parse orchestrator and the bulk
// commit path for lines.
package usecase

import (
	"context"
	"sync"
	"time"

	"quickentry/internal/intent"
	"quickentry/internal/line"
	"quickentry/internal/model"
	"quickentry/pkg/datemath"
	pkgLog "quickentry/pkg/log"
)

// lineState is one line plus its latest parse results. Mutated only while
// holding the usecase mutex.
type lineState struct {
	line    model.Line
	slots   []model.SlotPrediction
	summary string
	message string
}

type implUseCase struct {
	l         pkgLog.Logger
	model     intent.Model
	registry  *intent.Registry
	variables line.VariableSource
	calendar  line.Calendar
	resolver  *datemath.Resolver
	timings   line.Timings
	timezone  string

	// now is swapped in tests for deterministic clocks.
	now func() time.Time

	mu        sync.Mutex
	lines     map[string]*lineState
	order     []string
	overrides map[string]model.Override
	tasks     map[string]context.CancelFunc
	session   *model.WorkSession

	events chan line.Event

	baseCtx    context.Context
	baseCancel context.CancelFunc
}

// New creates a new line UseCase instance. calendar may be nil, in which
// case reminder/event commits skip the external write.
func New(
	l pkgLog.Logger,
	intentModel intent.Model,
	registry *intent.Registry,
	variables line.VariableSource,
	calendar line.Calendar,
	resolver *datemath.Resolver,
	timings line.Timings,
	timezone string,
) *implUseCase {
	if timings.Throttle <= 0 {
		timings.Throttle = line.DefaultTimings.Throttle
	}
	if timings.Settle <= 0 {
		timings.Settle = line.DefaultTimings.Settle
	}
	if timings.MinLength <= 0 {
		timings.MinLength = line.DefaultTimings.MinLength
	}

	baseCtx, baseCancel := context.WithCancel(context.Background())
	return &implUseCase{
		l:          l,
		model:      intentModel,
		registry:   registry,
		variables:  variables,
		calendar:   calendar,
		resolver:   resolver,
		timings:    timings,
		timezone:   timezone,
		now:        time.Now,
		lines:      make(map[string]*lineState),
		overrides:  make(map[string]model.Override),
		tasks:      make(map[string]context.CancelFunc),
		events:     make(chan line.Event, 64),
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
	}
}

// Events exposes the state-transition stream.
func (uc *implUseCase) Events() <-chan line.Event {
	return uc.events
}

// Close cancels every in-flight parse.
func (uc *implUseCase) Close() {
	uc.baseCancel()

	uc.mu.Lock()
	defer uc.mu.Unlock()
	for id, cancel := range uc.tasks {
		cancel()
		delete(uc.tasks, id)
	}
}

// emit publishes a transition without ever blocking the caller.
func (uc *implUseCase) emit(ev line.Event) {
	select {
	case uc.events <- ev:
	default:
	}
}
