// Package server exposes the optimization engine over HTTP for a
// presentation layer to call. The server holds no plan state; every request
// carries the full course lists.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"gradeplan/internal/config"
	"gradeplan/internal/optimizer"
	"gradeplan/internal/plan"
	"gradeplan/pkg/constants"
	"gradeplan/pkg/validation"
)

type handler struct {
	logger       *zap.Logger
	solver       config.SolverConfig
	ids          plan.IDGenerator
	maxBodyBytes int64
	version      string
}

// NewHandler constructs the HTTP handler that serves the optimization API.
func NewHandler(logger *zap.Logger, cfg *Config, ids plan.IDGenerator, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = &Config{}
		cfg.normalize()
	}
	if ids == nil {
		ids = plan.UUIDGenerator{}
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:       logger,
		solver:       cfg.Solver,
		ids:          ids,
		maxBodyBytes: cfg.MaxBodyBytes,
		version:      trimmedVersion,
	}

	mux := http.NewServeMux()

	// Optimization API endpoint
	mux.HandleFunc("/api/optimize", h.handleOptimize)

	// Plan normalization endpoint for export downloads
	mux.HandleFunc("/api/plan/export", h.handlePlanExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type optimizeRequest struct {
	Completed   []plan.CompletedCourse `json:"completed"`
	Planned     []plan.PlannedCourse   `json:"planned"`
	TargetScore *float64               `json:"targetScore"`
}

type optimizeResponse struct {
	Result   optimizer.Result `json:"result"`
	Warnings []string         `json:"warnings,omitempty"`
	Duration string           `json:"duration"`
}

func (h *handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode plan: %v", err), "server.handleOptimize")
		return
	}
	if req.TargetScore == nil {
		h.respondError(w, http.StatusBadRequest, "missing targetScore", "server.handleOptimize")
		return
	}

	warnings := validation.ValidatePlan(req.Completed, req.Planned)

	result := optimizer.OptimizeWithOptions(h.logger, req.Completed, req.Planned, *req.TargetScore,
		optimizer.Options{Tolerance: h.solver.Tolerance})

	elapsed := time.Since(start)
	h.logger.Info("optimization computed",
		zap.String("op", "server.handleOptimize"),
		zap.Bool("feasible", result.Feasible),
		zap.Int("planned", len(req.Planned)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, optimizeResponse{
		Result:   result,
		Warnings: warnings,
		Duration: elapsed.String(),
	})
}

func (h *handler) handlePlanExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	var doc plan.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode plan: %v", err), "server.handlePlanExport")
		return
	}

	doc.Version = constants.PlanDocumentVersion
	for i := range doc.Completed {
		if doc.Completed[i].ID == "" {
			doc.Completed[i].ID = h.ids.NewID()
		}
	}
	for i := range doc.Planned {
		if doc.Planned[i].ID == "" {
			doc.Planned[i].ID = h.ids.NewID()
		}
	}

	h.writeJSON(w, http.StatusOK, doc)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
