package http

import (
	"time"

	"quickentry/internal/line"
	"quickentry/internal/model"
)

// --- Request DTOs ---

type addReq struct {
	Text string `json:"text"`
}

type updateTextReq struct {
	ID   string `json:"-"` // populated from URI param
	Text string `json:"text"`
}

type overrideReq struct {
	ID      string     `json:"-"` // populated from URI param
	Subject *string    `json:"subject"`
	Instant *time.Time `json:"instant"` // RFC3339
}

func (r overrideReq) toOverride() model.Override {
	return model.Override{
		LineID:  r.ID,
		Subject: r.Subject,
		Instant: r.Instant,
	}
}

// --- Response DTOs ---

type slotResp struct {
	Field      string   `json:"field"`
	Value      string   `json:"value"`
	RawValue   string   `json:"raw_value,omitempty"`
	Valid      bool     `json:"valid"`
	Message    string   `json:"message,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Source     string   `json:"source"`
}

func newSlotResp(s model.SlotPrediction) slotResp {
	return slotResp{
		Field:      string(s.Field),
		Value:      s.Value,
		RawValue:   s.RawValue,
		Valid:      s.Valid,
		Message:    s.Message,
		Confidence: s.Confidence,
		Source:     string(s.Source),
	}
}

type lineResp struct {
	ID       string     `json:"id"`
	Text     string     `json:"text"`
	Status   string     `json:"status"`
	Position int        `json:"position"`
	Slots    []slotResp `json:"slots,omitempty"`
	Summary  string     `json:"summary,omitempty"`
	Message  string     `json:"message,omitempty"`
}

func newLineResp(v line.View) lineResp {
	slots := make([]slotResp, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = newSlotResp(s)
	}
	return lineResp{
		ID:       v.Line.ID,
		Text:     v.Line.Text,
		Status:   string(v.Line.Status),
		Position: v.Line.Position,
		Slots:    slots,
		Summary:  v.Summary,
		Message:  v.Message,
	}
}

type listResp struct {
	Lines []lineResp `json:"lines"`
}

func newListResp(views []line.View) listResp {
	lines := make([]lineResp, len(views))
	for i, v := range views {
		lines[i] = newLineResp(v)
	}
	return listResp{Lines: lines}
}

type entryResp struct {
	Intent       string  `json:"intent"`
	Subject      string  `json:"subject,omitempty"`
	ReminderDay  string  `json:"reminder_day,omitempty"`
	ReminderTime string  `json:"reminder_time,omitempty"`
	EventDay     string  `json:"event_day,omitempty"`
	EventTime    string  `json:"event_time,omitempty"`
	Amount       float64 `json:"amount,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	Calories     int     `json:"calories,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
	Distance     float64 `json:"distance,omitempty"`
	Location     string  `json:"location,omitempty"`
	URL          string  `json:"url,omitempty"`
	Mood         string  `json:"mood,omitempty"`
	OriginalText string  `json:"original_text"`
}

func newEntryResp(e model.ParsedEntry) entryResp {
	return entryResp{
		Intent:       string(e.Intent),
		Subject:      e.Subject,
		ReminderDay:  e.ReminderDay,
		ReminderTime: e.ReminderTime,
		EventDay:     e.EventDay,
		EventTime:    e.EventTime,
		Amount:       e.Amount,
		Currency:     e.Currency,
		Calories:     e.Calories,
		Duration:     e.Duration,
		Distance:     e.Distance,
		Location:     e.Location,
		URL:          e.URL,
		Mood:         e.Mood,
		OriginalText: e.OriginalText,
	}
}

type commitFailureResp struct {
	LineID string `json:"line_id"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

type commitResp struct {
	Succeeded   []entryResp         `json:"succeeded"`
	Failed      []commitFailureResp `json:"failed"`
	FocusLineID string              `json:"focus_line_id,omitempty"`
}

func newCommitResp(out line.CommitOutput) commitResp {
	succeeded := make([]entryResp, len(out.Succeeded))
	for i, e := range out.Succeeded {
		succeeded[i] = newEntryResp(e)
	}
	failed := make([]commitFailureResp, len(out.Failed))
	for i, f := range out.Failed {
		failed[i] = commitFailureResp{LineID: f.LineID, Text: f.Text, Reason: f.Reason}
	}
	return commitResp{
		Succeeded:   succeeded,
		Failed:      failed,
		FocusLineID: out.FocusLineID,
	}
}

type sessionResp struct {
	Open  bool       `json:"open"`
	Label string     `json:"label,omitempty"`
	Start *time.Time `json:"start,omitempty"`
}

func newSessionResp(s model.WorkSession, open bool) sessionResp {
	resp := sessionResp{Open: open}
	if open {
		resp.Label = s.Label
		start := s.Start
		resp.Start = &start
	}
	return resp
}

type eventResp struct {
	LineID  string     `json:"line_id"`
	Status  string     `json:"status"`
	Slots   []slotResp `json:"slots,omitempty"`
	Summary string     `json:"summary,omitempty"`
	Message string     `json:"message,omitempty"`
}

func newEventResp(ev line.Event) eventResp {
	slots := make([]slotResp, len(ev.Slots))
	for i, s := range ev.Slots {
		slots[i] = newSlotResp(s)
	}
	return eventResp{
		LineID:  ev.LineID,
		Status:  string(ev.Status),
		Slots:   slots,
		Summary: ev.Summary,
		Message: ev.Message,
	}
}
