package e2e

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"suggestd/internal/generator"
	"suggestd/internal/httpapi"
	"suggestd/pkg/types"
)

// echoPipeline emulates a loaded model: each sample is derived from the
// prompt with a tiny artificial delay so timings are observable.
type echoPipeline struct {
	fail error
}

func (p *echoPipeline) Sample(prompt string, params generator.SampleParams) (string, error) {
	if p.fail != nil {
		return "", p.fail
	}
	time.Sleep(time.Millisecond)
	return "  groceries and milk ", nil
}

func (p *echoPipeline) Close() error { return nil }

func newServer(t *testing.T, p generator.Pipeline) http.Handler {
	t.Helper()
	svc := generator.NewService(p, "phi-2.gguf", zerolog.New(io.Discard))
	t.Cleanup(func() { _ = svc.Close() })
	return httpapi.NewMux(svc)
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestE2E_CompleteRoundTrip(t *testing.T) {
	h := newServer(t, &echoPipeline{})
	w := postJSON(t, h, "/api/complete", `{"text": "I need to buy"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp types.CompleteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(resp.Suggestions) != 3 {
		t.Fatalf("suggestions=%d, want default 3", len(resp.Suggestions))
	}
	for _, s := range resp.Suggestions {
		if s != "groceries and milk" {
			t.Fatalf("suggestion not trimmed: %q", s)
		}
	}
	if resp.ServerProcessingTimeMS <= 0 {
		t.Fatalf("generation time not measured: %+v", resp)
	}
	if resp.ServerProcessingTimeMS > resp.LatencyMS {
		t.Fatalf("generation %v exceeds total %v", resp.ServerProcessingTimeMS, resp.LatencyMS)
	}
}

func TestE2E_GenerationFailureSurfacesDetail(t *testing.T) {
	h := newServer(t, &echoPipeline{fail: errors.New("tensor shape mismatch")})
	w := postJSON(t, h, "/api/complete", `{"text": "hi"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", w.Code)
	}
	var er types.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Detail != "tensor shape mismatch" {
		t.Fatalf("detail=%q", er.Detail)
	}
}

func TestE2E_ReadyAfterLoadNotAfterClose(t *testing.T) {
	svc := generator.NewService(&echoPipeline{}, "phi-2.gguf", zerolog.New(io.Discard))
	h := httpapi.NewMux(svc)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz before close: %d", w.Code)
	}

	_ = svc.Close()
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz after close: %d", w.Code)
	}
}
