package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/assistant"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/simulator"
)

type echoAsker struct{}

func (echoAsker) Ask(_ context.Context, text string) assistant.Reply {
	return assistant.Reply{Text: "echo: " + text}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return New(blocks.NewEngine(nil), echoAsker{}, nil).Router([]string{"http://localhost:5173"})
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func place(t *testing.T, r http.Handler, templateID string) blockView {
	t.Helper()
	rec := do(t, r, http.MethodPost, "/api/workspace/blocks", map[string]any{"templateId": templateID})
	if rec.Code != http.StatusCreated {
		t.Fatalf("place %s: status=%d body=%s", templateID, rec.Code, rec.Body.String())
	}
	return decode[blockView](t, rec)
}

func TestPalette(t *testing.T) {
	r := newTestRouter(t)
	rec := do(t, r, http.MethodGet, "/api/palette", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	p := decode[paletteView](t, rec)
	if len(p.Templates) == 0 || len(p.PinLabels) != 17 || len(p.GenericChoices) != 5 {
		t.Fatalf("unexpected palette: %+v", p)
	}
}

func TestPlaceSetAndRun(t *testing.T) {
	r := newTestRouter(t)
	led := place(t, r, "led-on")
	wait := place(t, r, "wait")

	rec := do(t, r, http.MethodPut, "/api/workspace/blocks/"+led.InstanceID+"/pins/0", valueRequest{Value: "16"})
	if rec.Code != http.StatusOK {
		t.Fatalf("set pin: status=%d body=%s", rec.Code, rec.Body.String())
	}
	if got := decode[blockView](t, rec).Line; got != "Turn LED on P16" {
		t.Fatalf("line after pin: %q", got)
	}
	rec = do(t, r, http.MethodPut, "/api/workspace/blocks/"+wait.InstanceID+"/wait", valueRequest{Value: "500"})
	if rec.Code != http.StatusOK {
		t.Fatalf("set wait: status=%d", rec.Code)
	}

	rec = do(t, r, http.MethodPost, "/api/run", nil)
	run := decode[runView](t, rec)
	if run.Code != "Turn LED on P16\nWait 500 milliseconds" {
		t.Fatalf("code: %q", run.Code)
	}
	if len(run.Frames) != 2 {
		t.Fatalf("frames: %d", len(run.Frames))
	}

	rec = do(t, r, http.MethodPost, "/api/workspace/reorder", map[string]any{
		"source":      map[string]any{"list": "workspace", "index": 1},
		"destination": map[string]any{"list": "workspace", "index": 0},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("reorder: status=%d body=%s", rec.Code, rec.Body.String())
	}
	rec = do(t, r, http.MethodPost, "/api/run", nil)
	if got := decode[runView](t, rec).Code; got != "Wait 500 milliseconds\nTurn LED on P16" {
		t.Fatalf("code after reorder: %q", got)
	}
}

func TestReorder_CancelledAndFromPalette(t *testing.T) {
	r := newTestRouter(t)
	place(t, r, "led-on")

	rec := do(t, r, http.MethodPost, "/api/workspace/reorder", map[string]any{
		"source": map[string]any{"list": "workspace", "index": 0},
	})
	if got := decode[map[string]any](t, rec)["changed"]; got != false {
		t.Fatalf("cancelled drop changed workspace: %v", got)
	}

	rec = do(t, r, http.MethodPost, "/api/workspace/reorder", map[string]any{
		"source":      map[string]any{"list": "palette", "index": 0},
		"destination": map[string]any{"list": "workspace", "index": 0},
	})
	if got := decode[map[string]any](t, rec)["changed"]; got != true {
		t.Fatalf("palette drop did not place: %v", got)
	}
	ws := decode[workspaceView](t, do(t, r, http.MethodGet, "/api/workspace", nil))
	if len(ws.Blocks) != 2 || ws.Blocks[0].TemplateID != "function-setup" {
		t.Fatalf("workspace after drop: %+v", ws.Blocks)
	}

	rec = do(t, r, http.MethodPost, "/api/workspace/reorder", map[string]any{
		"source":      map[string]any{"list": "trash", "index": 0},
		"destination": map[string]any{"list": "workspace", "index": 0},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad list: status=%d", rec.Code)
	}
}

func TestErrors(t *testing.T) {
	r := newTestRouter(t)
	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"unknown template", http.MethodPost, "/api/workspace/blocks", map[string]any{"templateId": "nope"}, http.StatusNotFound, "unknown_template"},
		{"missing template", http.MethodPost, "/api/workspace/blocks", map[string]any{}, http.StatusBadRequest, "invalid_request"},
		{"unknown block pin", http.MethodPut, "/api/workspace/blocks/x-1/pins/0", valueRequest{Value: "1"}, http.StatusNotFound, "unknown_block"},
		{"bad slot", http.MethodPut, "/api/workspace/blocks/x-1/values/-1", valueRequest{Value: "1"}, http.StatusBadRequest, "invalid_slot"},
		{"unknown block delete", http.MethodDelete, "/api/workspace/blocks/x-1", nil, http.StatusNotFound, "unknown_block"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, r, tc.method, tc.path, tc.body)
			if rec.Code != tc.status {
				t.Fatalf("status: got %d want %d body=%s", rec.Code, tc.status, rec.Body.String())
			}
			if got := decode[ErrorEnvelope](t, rec).Error.Code; got != tc.code {
				t.Fatalf("code: got %q want %q", got, tc.code)
			}
		})
	}
}

func TestRemoveAndReset(t *testing.T) {
	r := newTestRouter(t)
	a := place(t, r, "set-value")
	place(t, r, "motor-stop")

	if rec := do(t, r, http.MethodDelete, "/api/workspace/blocks/"+a.InstanceID, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("remove: status=%d", rec.Code)
	}
	ws := decode[workspaceView](t, do(t, r, http.MethodGet, "/api/workspace", nil))
	if len(ws.Blocks) != 1 || ws.Blocks[0].Line != "Motor P0 stop" {
		t.Fatalf("after remove: %+v", ws.Blocks)
	}

	ws = decode[workspaceView](t, do(t, r, http.MethodDelete, "/api/workspace", nil))
	if len(ws.Blocks) != 0 {
		t.Fatalf("after reset: %+v", ws.Blocks)
	}
}

func TestChat(t *testing.T) {
	r := newTestRouter(t)
	rec := do(t, r, http.MethodPost, "/api/chat", chatRequest{Message: "hi"})
	got := decode[assistant.Reply](t, rec)
	if got.Text != "echo: hi" || got.Fallback {
		t.Fatalf("unexpected reply: %+v", got)
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/run", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow-origin: %q", got)
	}
}

func TestRunStartsFromOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := New(blocks.NewEngine(nil), echoAsker{}, nil)
	srv.scene = simulator.New(7)
	r := srv.Router(nil)
	place(t, r, "led-on")
	place(t, r, "led-off")

	// same seed, reset between runs
	ref := simulator.New(7)
	code := "Turn LED on P0\nTurn LED off P0"
	ref.Run(code)
	ref.Reset()
	want := ref.Run(code)

	do(t, r, http.MethodPost, "/api/run", nil)
	got := decode[runView](t, do(t, r, http.MethodPost, "/api/run", nil)).Frames
	if len(got) != len(want) {
		t.Fatalf("frames: got %d want %d", len(got), len(want))
	}
	for i, f := range want {
		if got[i].X != f.Pose.X || got[i].Z != f.Pose.Z || got[i].Heading != f.Pose.Heading {
			t.Fatalf("frame %d: got %+v, want %v", i, got[i], f.Pose)
		}
	}
}
