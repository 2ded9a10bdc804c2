package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"gradeplan/internal/optimizer"
	"gradeplan/internal/plan"
	"gradeplan/pkg/constants"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}
	return NewHandler(zap.NewNop(), cfg, &plan.SequenceGenerator{Prefix: "srv"}, "test")
}

func TestHandleOptimize(t *testing.T) {
	handler := newTestHandler(t)

	body := `{
		"completed": [{"id": "c1", "name": "Calculus", "credit": 4.5, "score": 88}],
		"planned": [
			{"id": "p1", "name": "Physics", "credit": 3, "min_score": 70, "max_score": 95, "difficulty": 0.7},
			{"id": "p2", "name": "History", "credit": 2.5, "min_score": 80, "max_score": 98, "difficulty": 0.3}
		],
		"targetScore": 85
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/optimize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Result   optimizer.Result `json:"result"`
		Duration string           `json:"duration"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Result.Feasible {
		t.Errorf("expected feasible result, got %+v", resp.Result)
	}
	if len(resp.Result.OptimizedScores) != 2 {
		t.Errorf("scores = %v, want 2 entries", resp.Result.OptimizedScores)
	}
	if resp.Duration == "" {
		t.Error("expected a duration")
	}
}

func TestHandleOptimizeMissingTarget(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/optimize", strings.NewReader(`{"planned": []}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("targetScore")) {
		t.Errorf("body = %s, want a targetScore error", rec.Body.String())
	}
}

func TestHandleOptimizeMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/optimize", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestHandlePlanExport(t *testing.T) {
	handler := newTestHandler(t)

	body := `{
		"completed": [{"name": "Calculus", "credit": 4, "score": 90}],
		"planned": [{"id": "p1", "name": "Physics", "credit": 3, "min_score": 70, "max_score": 95, "difficulty": 0.7}],
		"targetScore": 85
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/plan/export", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var doc plan.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if doc.Version != constants.PlanDocumentVersion {
		t.Errorf("version = %q, want %q", doc.Version, constants.PlanDocumentVersion)
	}
	if doc.Completed[0].ID == "" {
		t.Error("expected an id assigned to the completed course")
	}
	if doc.Planned[0].ID != "p1" {
		t.Errorf("planned id = %q, want p1 preserved", doc.Planned[0].ID)
	}
}

func TestHandleVersion(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["version"] != "test" {
		t.Errorf("version = %q, want test", payload["version"])
	}
}

func TestLoadConfigDefaultsAndFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must yield defaults, got %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("address = %q, want %q", cfg.Address, constants.DefaultServerAddress)
	}
	if cfg.MaxBodyBytes != constants.DefaultMaxBodyBytes {
		t.Errorf("maxBodyBytes = %d, want %d", cfg.MaxBodyBytes, constants.DefaultMaxBodyBytes)
	}

	path := filepath.Join(t.TempDir(), "server.yaml")
	content := "address: \":9090\"\nsolver:\n  tolerance: 0.01\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Address != ":9090" {
		t.Errorf("address = %q, want :9090", cfg.Address)
	}
	if cfg.Solver.Tolerance != 0.01 {
		t.Errorf("solver tolerance = %v, want 0.01", cfg.Solver.Tolerance)
	}
}
