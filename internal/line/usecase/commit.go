package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"quickentry/internal/entry"
	"quickentry/internal/line"
	"quickentry/internal/model"
	"quickentry/pkg/gcalendar"
)

var (
	errSessionOpen   = errors.New("a work session is already open")
	errNoSession     = errors.New("no open work session to close")
	errNoPredictions = errors.New("line has no parse results")
)

// reminderSpan and eventSpan are the calendar block lengths for the two
// scheduled intents.
const (
	reminderSpan = 30 * time.Minute
	eventSpan    = time.Hour
)

func (uc *implUseCase) CommitAll(ctx context.Context, sc model.Scope) (line.CommitOutput, error) {
	type snapshot struct {
		id    string
		text  string
		slots []model.SlotPrediction
		ov    *model.Override
	}

	uc.mu.Lock()
	pending := make([]snapshot, 0, len(uc.order))
	for _, id := range uc.order {
		st := uc.lines[id]
		if strings.TrimSpace(st.line.Text) == "" {
			continue
		}
		snap := snapshot{
			id:    id,
			text:  st.line.Text,
			slots: append([]model.SlotPrediction(nil), st.slots...),
		}
		if ov, ok := uc.overrides[id]; ok {
			ovCopy := ov
			snap.ov = &ovCopy
		}
		pending = append(pending, snap)
	}
	uc.mu.Unlock()

	if len(pending) == 0 {
		return line.CommitOutput{}, line.ErrNothingToDo
	}

	var out line.CommitOutput
	for _, snap := range pending {
		e, err := uc.commitOne(ctx, snap.slots, snap.text, snap.ov)
		if err != nil {
			// A failure never rolls back earlier successes; the line is
			// retained for retry.
			uc.l.Warnf(ctx, "commit failed for line %s: %v", snap.id, err)
			out.Failed = append(out.Failed, line.CommitFailure{
				LineID: snap.id,
				Text:   snap.text,
				Reason: err.Error(),
			})
			if out.FocusLineID == "" {
				out.FocusLineID = snap.id
			}
			continue
		}
		out.Succeeded = append(out.Succeeded, e)

		uc.mu.Lock()
		uc.dropLocked(snap.id)
		uc.mu.Unlock()
	}

	return out, nil
}

// commitOne rebuilds the entry for one line and dispatches its side effect.
func (uc *implUseCase) commitOne(ctx context.Context, slots []model.SlotPrediction, text string, ov *model.Override) (model.ParsedEntry, error) {
	if len(slots) == 0 {
		return model.ParsedEntry{}, errNoPredictions
	}
	// Surface the most specific validator message over a generic failure.
	for _, s := range slots {
		if !s.Valid {
			if s.Message != "" {
				return model.ParsedEntry{}, errors.New(s.Message)
			}
			return model.ParsedEntry{}, line.ErrUnparseable
		}
	}

	e := entry.Convert(slots, text)
	e = entry.ApplyOverride(e, ov)

	switch e.Intent {
	case model.IntentReminder:
		return e, uc.writeCalendar(ctx, e, e.ReminderDay, e.ReminderTime, reminderSpan)
	case model.IntentEvent:
		return e, uc.writeCalendar(ctx, e, e.EventDay, e.EventTime, eventSpan)
	case model.IntentWorkStart:
		return e, uc.openSession(e)
	case model.IntentWorkEnd:
		return e, uc.closeSession(e)
	default:
		// Money, meal, activity, journal, and adjustment entries have no
		// external write here; downstream stores are out of scope.
		return e, nil
	}
}

func (uc *implUseCase) writeCalendar(ctx context.Context, e model.ParsedEntry, day, clock string, span time.Duration) error {
	if uc.calendar == nil {
		return nil
	}

	start, err := uc.resolver.Resolve(day, clock, uc.now())
	if err != nil {
		return err
	}

	summary := e.Subject
	if summary == "" {
		summary = e.OriginalText
	}

	_, err = uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     summary,
		Description: e.OriginalText,
		Location:    e.Location,
		URL:         e.URL,
		StartTime:   start,
		EndTime:     start.Add(span),
		Timezone:    uc.timezone,
	})
	return err
}

func (uc *implUseCase) openSession(e model.ParsedEntry) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.session != nil && uc.session.End == nil {
		return errSessionOpen
	}

	label := e.Subject
	if label == "" {
		label = e.OriginalText
	}
	uc.session = &model.WorkSession{
		Start: uc.sessionInstant(e),
		Label: label,
	}
	return nil
}

func (uc *implUseCase) closeSession(e model.ParsedEntry) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.session == nil || uc.session.End != nil {
		return errNoSession
	}
	end := uc.sessionInstant(e)
	uc.session.End = &end
	return nil
}

// sessionInstant picks the work mark: today at the entry's clock slot when
// one was parsed, else the current instant.
func (uc *implUseCase) sessionInstant(e model.ParsedEntry) time.Time {
	now := uc.now()
	clock := e.ReminderTime
	if clock == "" {
		clock = e.EventTime
	}
	if clock == "" {
		return now
	}
	at, err := uc.resolver.ResolveOpt("today", clock, now, true)
	if err != nil {
		return now
	}
	return at
}
