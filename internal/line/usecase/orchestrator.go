package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"quickentry/internal/entry"
	"quickentry/internal/line"
	"quickentry/internal/model"
)

func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, text string) (line.View, error) {
	uc.mu.Lock()
	st := &lineState{
		line: model.Line{
			ID:       uuid.New().String(),
			Text:     "",
			Status:   model.LineStatusIdle,
			Position: len(uc.order),
		},
	}
	uc.lines[st.line.ID] = st
	uc.order = append(uc.order, st.line.ID)
	uc.mu.Unlock()

	if text == "" {
		return uc.view(st.line.ID)
	}
	return uc.UpdateText(ctx, sc, st.line.ID, text)
}

func (uc *implUseCase) UpdateText(ctx context.Context, sc model.Scope, id, text string) (line.View, error) {
	uc.mu.Lock()
	st, ok := uc.lines[id]
	if !ok {
		uc.mu.Unlock()
		return line.View{}, line.ErrLineNotFound
	}

	st.line.Text = text

	// Any mutation cancels the in-flight parse: at most one active task
	// per line, inserting a new handle cancels the old one first.
	if cancel, ok := uc.tasks[id]; ok {
		cancel()
		delete(uc.tasks, id)
	}

	// Resumed typing reverts a loading line to idle immediately.
	wasLoading := st.line.Status == model.LineStatusLoading
	st.line.Status = model.LineStatusIdle

	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < uc.timings.MinLength {
		st.slots = nil
		st.summary = ""
		st.message = ""
		uc.mu.Unlock()
		uc.emit(line.Event{LineID: id, Status: model.LineStatusIdle})
		return uc.view(id)
	}

	taskCtx, cancel := context.WithCancel(uc.baseCtx)
	uc.tasks[id] = cancel
	uc.mu.Unlock()

	if wasLoading {
		uc.emit(line.Event{LineID: id, Status: model.LineStatusIdle})
	}

	go uc.runParse(taskCtx, sc, id, text)

	return uc.view(id)
}

func (uc *implUseCase) Remove(ctx context.Context, sc model.Scope, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.lines[id]; !ok {
		return line.ErrLineNotFound
	}
	uc.dropLocked(id)
	return nil
}

// dropLocked removes a line and its task/override. Caller holds the mutex.
func (uc *implUseCase) dropLocked(id string) {
	if cancel, ok := uc.tasks[id]; ok {
		cancel()
		delete(uc.tasks, id)
	}
	delete(uc.lines, id)
	delete(uc.overrides, id)
	for i, lid := range uc.order {
		if lid == id {
			uc.order = append(uc.order[:i], uc.order[i+1:]...)
			break
		}
	}
	for i, lid := range uc.order {
		uc.lines[lid].line.Position = i
	}
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) []line.View {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	views := make([]line.View, 0, len(uc.order))
	for _, id := range uc.order {
		views = append(views, uc.viewLocked(id))
	}
	return views
}

func (uc *implUseCase) SetOverride(ctx context.Context, sc model.Scope, ov model.Override) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.lines[ov.LineID]; !ok {
		return line.ErrLineNotFound
	}
	uc.overrides[ov.LineID] = ov
	return nil
}

func (uc *implUseCase) OpenSession(ctx context.Context, sc model.Scope) (model.WorkSession, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.session == nil || uc.session.End != nil {
		return model.WorkSession{}, false
	}
	return *uc.session, true
}

func (uc *implUseCase) view(id string) (line.View, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.lines[id]; !ok {
		return line.View{}, line.ErrLineNotFound
	}
	return uc.viewLocked(id), nil
}

func (uc *implUseCase) viewLocked(id string) line.View {
	st := uc.lines[id]
	return line.View{
		Line:    st.line,
		Slots:   append([]model.SlotPrediction(nil), st.slots...),
		Summary: st.summary,
		Message: st.message,
	}
}

// runParse is the per-line background task: throttle, loading, settle,
// parse, staleness re-check, commit. Cancellation is observed at every
// suspension point.
func (uc *implUseCase) runParse(ctx context.Context, sc model.Scope, id, text string) {
	if !sleepCtx(ctx, uc.timings.Throttle) {
		return
	}

	uc.mu.Lock()
	st, ok := uc.lines[id]
	if !ok || st.line.Text != text || ctx.Err() != nil {
		uc.mu.Unlock()
		return
	}
	st.line.Status = model.LineStatusLoading
	uc.mu.Unlock()
	uc.emit(line.Event{LineID: id, Status: model.LineStatusLoading})

	if !sleepCtx(ctx, uc.timings.Settle) {
		return
	}

	slots, message := uc.parse(ctx, sc, id, text)
	if ctx.Err() != nil {
		return
	}

	status := model.LineStatusError
	if len(slots) > 0 && allValid(slots) {
		status = model.LineStatusSuccess
	}
	summary := ""
	if len(slots) > 0 {
		summary = entry.Summary(slots, text, uc.now())
	}

	uc.mu.Lock()
	st, ok = uc.lines[id]
	// Stale-result suppression: the line must still exist with unchanged
	// text, and this task must not have been cancelled meanwhile.
	if !ok || st.line.Text != text || ctx.Err() != nil {
		uc.mu.Unlock()
		return
	}
	st.line.Status = status
	st.slots = slots
	st.summary = summary
	st.message = message
	delete(uc.tasks, id)
	uc.mu.Unlock()

	uc.emit(line.Event{
		LineID:  id,
		Status:  status,
		Slots:   slots,
		Summary: summary,
		Message: message,
	})
}

func allValid(slots []model.SlotPrediction) bool {
	for _, s := range slots {
		if !s.Valid {
			return false
		}
	}
	return true
}

// sleepCtx waits d, returning false when ctx is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
