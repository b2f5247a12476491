// Package server exposes the comparison engine and scenario store over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/homecast/homecast/internal/comparison"
	"github.com/homecast/homecast/internal/config"
	"github.com/homecast/homecast/internal/scenario"
	"github.com/homecast/homecast/pkg/constants"
	"github.com/homecast/homecast/pkg/format"
	"github.com/homecast/homecast/pkg/mortgage"
	"github.com/homecast/homecast/pkg/output"
	"go.uber.org/zap"
)

// Handler serves the HTTP API.
type Handler struct {
	logger      *zap.Logger
	store       scenario.Store
	maxBodySize int64
	version     string
}

// NewHandler constructs the API handler and routes.
func NewHandler(logger *zap.Logger, store scenario.Store, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		logger:      logger,
		store:       store,
		maxBodySize: maxBodySize,
		version:     version,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/compare", h.handleCompare)
	mux.HandleFunc("/api/scenarios", h.handleScenarios)
	mux.HandleFunc("/api/scenarios/", h.handleScenarioByID)
	// Exact patterns take precedence over the id prefix route.
	mux.HandleFunc("/api/scenarios/export", h.handleExport)
	mux.HandleFunc("/api/scenarios/import", h.handleImport)
	mux.HandleFunc("/api/version", h.handleVersion)
	return mux
}

// affordabilitySummary is the display form of the affordability ratios,
// formatted server-side so any consumer renders identical strings.
type affordabilitySummary struct {
	HousingRatio string `json:"housingRatio"`
	DTIRatio     string `json:"dtiRatio"`
	Status       string `json:"status"`
	TotalPayment string `json:"totalPayment"`
}

// scenarioResponse is a stored record plus its derived affordability view.
type scenarioResponse struct {
	scenario.Record
	Affordability affordabilitySummary `json:"affordability"`
}

func newScenarioResponse(record scenario.Record) scenarioResponse {
	response := scenarioResponse{Record: record}
	if record.Payment == nil {
		return response
	}

	monthlyIncome := record.Financials.AnnualIncome / constants.MonthsPerYear
	ratios := mortgage.AffordabilityRatios(record.Payment.TotalPayment, monthlyIncome, record.Financials.MonthlyDebts)
	response.Affordability = affordabilitySummary{
		HousingRatio: format.Percent(ratios.HousingRatio),
		DTIRatio:     format.Percent(ratios.DTIRatio),
		Status:       ratios.Status,
		TotalPayment: format.Currency(record.Payment.TotalPayment),
	}
	return response
}

// compareResponse pairs the structured result with a CSV rendering so
// callers get both without a second round trip.
type compareResponse struct {
	Result comparison.Result `json:"result"`
	CSV    string            `json:"csv"`
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCompare"
	if r.Method != http.MethodPost {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", op)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	conf, err := config.LoadConfigurationFromReader(r.Body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid configuration: %v", err), op)
		return
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) > 0 {
		h.logger.Warn("configuration validation warnings",
			zap.String("op", op),
			zap.Strings("warnings", warnings),
		)
		h.respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":    "configuration failed validation",
			"warnings": warnings,
		})
		return
	}

	result, err := comparison.Run(h.logger, *conf)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondJSON(w, http.StatusOK, compareResponse{
		Result: result,
		CSV:    output.CsvString(result),
	})
}

func (h *Handler) handleScenarios(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleScenarios"
	switch r.Method {
	case http.MethodGet:
		records, err := h.store.List()
		if err != nil {
			h.respondError(w, http.StatusInternalServerError, "failed to list scenarios", op)
			return
		}
		h.respondJSON(w, http.StatusOK, records)
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
		var record scenario.Record
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid scenario payload: %v", err), op)
			return
		}
		if problems := scenario.Validate(record); len(problems) > 0 {
			h.respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":    "scenario failed validation",
				"problems": problems,
			})
			return
		}

		// Snapshot the payment breakdown alongside the terms it came from.
		loanAmount := record.Property.LoanAmount()
		pmi := mortgage.PMI(loanAmount, record.Property.PurchasePrice, record.Property.DownPaymentPercent)
		breakdown := mortgage.ComposePayment(loanAmount, record.Property.InterestRate, record.Property.LoanTermYears,
			record.Property.PropertyTax, record.Property.Insurance, record.Property.HOA, pmi)
		record.Payment = &breakdown

		id, err := h.store.Save(record)
		if err != nil {
			h.respondError(w, http.StatusInternalServerError, "failed to save scenario", op)
			return
		}
		saved, err := h.store.Load(id)
		if err != nil {
			h.respondError(w, http.StatusInternalServerError, "failed to load saved scenario", op)
			return
		}
		h.respondJSON(w, http.StatusCreated, newScenarioResponse(saved))
	default:
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", op)
	}
}

func (h *Handler) handleScenarioByID(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleScenarioByID"
	raw := strings.TrimPrefix(r.URL.Path, "/api/scenarios/")
	id, err := uuid.Parse(raw)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid scenario id %q", raw), op)
		return
	}

	switch r.Method {
	case http.MethodGet:
		record, err := h.store.Load(id)
		if err != nil {
			if errors.Is(err, scenario.ErrNotFound) {
				h.respondError(w, http.StatusNotFound, "scenario not found", op)
				return
			}
			h.respondError(w, http.StatusInternalServerError, "failed to load scenario", op)
			return
		}
		h.respondJSON(w, http.StatusOK, newScenarioResponse(record))
	case http.MethodDelete:
		deleted, err := h.store.Delete(id)
		if err != nil {
			h.respondError(w, http.StatusInternalServerError, "failed to delete scenario", op)
			return
		}
		if !deleted {
			h.respondError(w, http.StatusNotFound, "scenario not found", op)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", op)
	}
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"
	if r.Method != http.MethodGet {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", op)
		return
	}

	records, err := h.store.List()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to list scenarios", op)
		return
	}
	data, err := scenario.ExportJSON(records)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to export scenarios", op)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="scenarios.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write export response",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleImport"
	if r.Method != http.MethodPost {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", op)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "failed to read request body", op)
		return
	}

	result, err := scenario.ImportJSON(data, h.store)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("import failed: %v", err), op)
		return
	}

	h.logger.Info("imported scenarios",
		zap.String("op", op),
		zap.Int("imported", result.Imported),
		zap.Int("rejected", len(result.Rejected)),
	)
	h.respondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleVersion"
	if r.Method != http.MethodGet {
		h.respondError(w, http.StatusMethodNotAllowed, "method not allowed", op)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.respondJSON"),
			zap.Error(err),
		)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message, op string) {
	h.logger.Warn("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("message", message),
	)
	h.respondJSON(w, status, map[string]string{"error": message})
}
