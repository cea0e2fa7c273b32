package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"quickentry/internal/line"
	"quickentry/internal/middleware"
	"quickentry/internal/model"
	pkgResponse "quickentry/pkg/response"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

// mockUseCase records calls and returns canned results.
type mockUseCase struct {
	addText    string
	updateID   string
	updateText string
	removedID  string
	override   *model.Override

	view      line.View
	commitOut line.CommitOutput
	session   model.WorkSession
	open      bool
	err       error
	events    chan line.Event
}

func (m *mockUseCase) Add(ctx context.Context, sc model.Scope, text string) (line.View, error) {
	m.addText = text
	return m.view, m.err
}

func (m *mockUseCase) UpdateText(ctx context.Context, sc model.Scope, id, text string) (line.View, error) {
	m.updateID, m.updateText = id, text
	return m.view, m.err
}

func (m *mockUseCase) Remove(ctx context.Context, sc model.Scope, id string) error {
	m.removedID = id
	return m.err
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope) []line.View {
	return []line.View{m.view}
}

func (m *mockUseCase) SetOverride(ctx context.Context, sc model.Scope, ov model.Override) error {
	m.override = &ov
	return m.err
}

func (m *mockUseCase) CommitAll(ctx context.Context, sc model.Scope) (line.CommitOutput, error) {
	return m.commitOut, m.err
}

func (m *mockUseCase) OpenSession(ctx context.Context, sc model.Scope) (model.WorkSession, bool) {
	return m.session, m.open
}

func (m *mockUseCase) Events() <-chan line.Event { return m.events }
func (m *mockUseCase) Close()                    {}

func newTestRouter(uc line.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(nopLogger{}, "")
	h := New(nopLogger{}, uc)
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) pkgResponse.Resp {
	t.Helper()
	var resp pkgResponse.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestAddLine(t *testing.T) {
	uc := &mockUseCase{view: line.View{Line: model.Line{ID: "l1", Text: "coffee 50 try", Status: model.LineStatusIdle}}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/lines", `{"text":"coffee 50 try"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.addText != "coffee 50 try" {
		t.Errorf("add text = %q", uc.addText)
	}

	resp := decodeResp(t, w)
	data, _ := json.Marshal(resp.Data)
	var got lineResp
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if got.ID != "l1" || got.Status != "idle" {
		t.Errorf("line = %+v", got)
	}
}

func TestAddLineEmptyBody(t *testing.T) {
	uc := &mockUseCase{view: line.View{Line: model.Line{ID: "l1"}}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/lines", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.addText != "" {
		t.Errorf("empty body must create an empty line, got text %q", uc.addText)
	}
}

func TestUpdateText(t *testing.T) {
	uc := &mockUseCase{view: line.View{Line: model.Line{ID: "l1", Status: model.LineStatusIdle}}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPut, "/api/v1/lines/l1", `{"text":"lunch 300 kcal"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.updateID != "l1" || uc.updateText != "lunch 300 kcal" {
		t.Errorf("update call = (%q, %q)", uc.updateID, uc.updateText)
	}
}

func TestUpdateTextNotFound(t *testing.T) {
	uc := &mockUseCase{err: line.ErrLineNotFound}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPut, "/api/v1/lines/missing", `{"text":"x y z"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestRemoveLine(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/lines/l1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.removedID != "l1" {
		t.Errorf("removed id = %q", uc.removedID)
	}
}

func TestSetOverrideRequiresPayload(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPut, "/api/v1/lines/l1/override", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if uc.override != nil {
		t.Errorf("override must not reach the usecase")
	}

	w = doJSON(t, r, http.MethodPut, "/api/v1/lines/l1/override", `{"subject":"Dentist"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.override == nil || uc.override.LineID != "l1" || *uc.override.Subject != "Dentist" {
		t.Errorf("override = %+v", uc.override)
	}
}

func TestCommitAll(t *testing.T) {
	uc := &mockUseCase{commitOut: line.CommitOutput{
		Succeeded:   []model.ParsedEntry{{Intent: model.IntentExpense, Amount: 80, Currency: "TRY", OriginalText: "-80 try"}},
		Failed:      []line.CommitFailure{{LineID: "l2", Text: "???", Reason: "line has no parse results"}},
		FocusLineID: "l2",
	}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/lines/commit", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	resp := decodeResp(t, w)
	data, _ := json.Marshal(resp.Data)
	var got commitResp
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode commit: %v", err)
	}
	if len(got.Succeeded) != 1 || got.Succeeded[0].Intent != "expense" {
		t.Errorf("succeeded = %+v", got.Succeeded)
	}
	if len(got.Failed) != 1 || got.FocusLineID != "l2" {
		t.Errorf("failed = %+v focus = %q", got.Failed, got.FocusLineID)
	}
}

func TestCommitAllNothingToDo(t *testing.T) {
	uc := &mockUseCase{err: line.ErrNothingToDo}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/lines/commit", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestOpenSession(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodGet, "/api/v1/work/session", "")
	resp := decodeResp(t, w)
	data, _ := json.Marshal(resp.Data)
	var got sessionResp
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if got.Open {
		t.Errorf("session must be closed by default")
	}
}
