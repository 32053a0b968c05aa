/*
handlers.go - HTTP handlers for the qualification engine

PURPOSE:
  The thin boundary between the presentation collaborator and the pure
  engine packages. Every handler decodes a caller-owned LoanFile (or a
  fragment), runs the relevant engine pipeline, and encodes the result.
  No handler holds evaluation state: the engine recomputes everything
  from the submitted file, so concurrent clients need no coordination.

PIPELINE (POST /api/evaluate):
  LoanFile -> income.Combine -> program.PITIComponents -> finance.DTI
           -> rules.Evaluate -> findings + checklist

EXPORT GATE:
  POST /api/export refuses with 409 while blocking findings are
  unresolved and no override reason is supplied.

SEE ALSO:
  - dto.go: request/response shapes
  - server.go: routing
  - scenarios.go: canned demo loan files
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/warp/prequal-engine/audit"
	"github.com/warp/prequal-engine/export"
	"github.com/warp/prequal-engine/factory"
	"github.com/warp/prequal-engine/finance"
	"github.com/warp/prequal-engine/income"
	"github.com/warp/prequal-engine/program"
	"github.com/warp/prequal-engine/qualify"
	"github.com/warp/prequal-engine/rules"
	"github.com/warp/prequal-engine/store/sqlite"
)

// Handler carries the API dependencies: the snapshot store, the audit
// log, the current pricing configuration, and the logger.
type Handler struct {
	store *sqlite.Store
	audit *audit.Log
	log   *logrus.Logger

	mu  sync.RWMutex
	cfg factory.Config
}

// NewHandler wires a handler with the stock pricing configuration.
// store may be nil; snapshot endpoints then report 503.
func NewHandler(store *sqlite.Store, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.New()
	}
	return &Handler{
		store: store,
		audit: audit.NewLog(),
		log:   log,
		cfg:   factory.Default(),
	}
}

func (h *Handler) config() factory.Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg
}

// =============================================================================
// EVALUATION PIPELINE
// =============================================================================

// evaluateFile runs the full pipeline over one loan file.
func (h *Handler) evaluateFile(file LoanFile) EvaluationDTO {
	cfg := h.config()

	incomes := income.Combine(file.combineInput())
	summary := income.Aggregate(incomes)

	piti := program.PITIComponents(file.Scenario, cfg.Tables)
	nonPI := piti.Taxes.Add(piti.Insurance).Add(piti.HOA).Add(piti.MortgageInsurance)

	otherLiabilities := file.otherLiabilities()
	fe, be := finance.DTI(piti.Total, piti.Total.Add(otherLiabilities), summary.TotalMonthlyIncome)

	targets := cfg.TargetsFor(file.Scenario.Program)
	findings := rules.Evaluate(rules.Facts{
		TotalIncome: summary.TotalMonthlyIncome,

		WageVariableIncludedShortHistory: summary.AnyWageVariableIncludedShort,
		WageDecliningVariable:            summary.AnyWageDecliningVariable,
		WageDecliningBase:                summary.AnyWageDecliningBase,
		ScheduleCDeclining:               summary.AnyScheduleCDeclining,
		K1Declining:                      summary.AnyK1Declining,
		CCorpDeclining:                   summary.AnyCCorpDeclining,
		RentalDeclining:                  summary.AnyRentalDeclining,

		UsesK1:                  len(file.K1) > 0,
		K1DistributionsVerified: file.Attestations.K1DistributionsVerified,
		K1LiquidityAnalyzed:     file.Attestations.K1LiquidityAnalyzed,

		UsesCCorp:                  len(file.CCorp) > 0,
		CCorpAnyBelowFullOwnership: income.AnyBelowFullOwnership(file.CCorp),

		UsesSupportIncome:    income.UsesSupportIncome(file.Other),
		SupportContinuanceOK: file.Attestations.SupportContinuanceOK,

		RentalMethodConflict: file.RentalMethodConflict,
		InvestmentProperty:   file.Scenario.InvestmentProperty,

		FrontEndRatio: fe,
		BackEndRatio:  be,
		Targets:       targets,

		PurchasePrice:     finance.ClipNZ(file.Scenario.PurchasePrice),
		NonPIMonthlyCosts: nonPI,
	})

	checklist := export.ApplyChecks(export.BuildChecklist(file.records()), file.ChecklistChecked)

	return EvaluationDTO{
		Incomes:     incomes,
		Summary:     summary,
		PITI:        piti,
		DTI:         DTIDTO{FrontEnd: fe, BackEnd: be},
		Findings:    findings,
		HasBlocking: rules.HasBlocking(findings),
		Checklist:   checklist,
	}
}

// =============================================================================
// ENGINE ENDPOINTS
// =============================================================================

// Evaluate runs the full pipeline: POST /api/evaluate.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var file LoanFile
	if !h.decode(w, r, &file) {
		return
	}
	h.writeJSON(w, http.StatusOK, h.evaluateFile(file))
}

// IncomeTable returns just the combined income table: POST /api/income.
func (h *Handler) IncomeTable(w http.ResponseWriter, r *http.Request) {
	var file LoanFile
	if !h.decode(w, r, &file) {
		return
	}
	rows := income.Combine(file.combineInput())
	h.writeJSON(w, http.StatusOK, map[string]any{
		"incomes": rows,
		"summary": income.Aggregate(rows),
	})
}

// PITI returns the proposed payment breakdown: POST /api/piti.
func (h *Handler) PITI(w http.ResponseWriter, r *http.Request) {
	var file LoanFile
	if !h.decode(w, r, &file) {
		return
	}
	h.writeJSON(w, http.StatusOK, program.PITIComponents(file.Scenario, h.config().Tables))
}

// Qualify solves for the maximum qualifying loan: POST /api/qualify.
func (h *Handler) Qualify(w http.ResponseWriter, r *http.Request) {
	var file LoanFile
	if !h.decode(w, r, &file) {
		return
	}
	cfg := h.config()

	rows := income.Combine(file.combineInput())
	summary := income.Aggregate(rows)
	piti := program.PITIComponents(file.Scenario, cfg.Tables)
	nonPI := piti.Taxes.Add(piti.Insurance).Add(piti.HOA).Add(piti.MortgageInsurance)

	result := qualify.MaxQualifyingLoan(qualify.LoanInput{
		TotalIncome:      summary.TotalMonthlyIncome,
		OtherLiabilities: file.otherLiabilities(),
		TaxesInsHOAMI:    nonPI,
		Targets:          cfg.TargetsFor(file.Scenario.Program),
		RatePct:          finance.NZ(file.Scenario.RatePct),
		TermYears:        file.Scenario.TermYears,
		DownPayment:      finance.ClipNZ(file.Scenario.DownPayment),
		Program:          file.Scenario.Program,
		Tables:           cfg.Tables,
		FinanceUpfront:   file.Scenario.FinanceUpfront,
		FirstUseVA:       file.Scenario.FirstUseVA,
		FICO:             program.BucketForScore(file.Scenario.FICOScore),
	})

	h.writeJSON(w, http.StatusOK, QualifyDTO{
		MaxPI:         finance.Cents(result.MaxPI),
		BaseLoan:      finance.Cents(result.BaseLoan),
		AdjustedLoan:  finance.Cents(result.AdjustedLoan),
		PurchasePrice: finance.Cents(result.PurchasePrice),
	})
}

// Export finalizes the export payload: POST /api/export. Responds 409
// while blocking findings are unresolved without an override reason.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var file LoanFile
	if !h.decode(w, r, &file) {
		return
	}
	eval := h.evaluateFile(file)

	payload, err := export.Finalize(eval.Findings, file.OverrideReason, eval.Checklist)
	if errors.Is(err, export.ErrOverrideRequired) {
		h.writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if payload.OverrideReason != "" {
		h.audit.Record("export", "override_reason", "", payload.OverrideReason)
	}
	h.writeJSON(w, http.StatusOK, payload)
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// GetConfig returns the active pricing configuration.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.config())
}

// SetConfig replaces the pricing configuration from a JSON document.
func (h *Handler) SetConfig(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if !h.decode(w, r, &body) {
		return
	}
	cfg, err := factory.Parse(body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.mu.Lock()
	h.cfg = cfg
	h.mu.Unlock()
	h.audit.Record("admin", "pricing_config", "", "replaced")
	h.writeJSON(w, http.StatusOK, cfg)
}

// =============================================================================
// AUDIT LOG
// =============================================================================

// ListAudit returns recorded field changes.
func (h *Handler) ListAudit(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.audit.Entries())
}

// RecordAudit records a field change submitted by the presentation layer.
func (h *Handler) RecordAudit(w http.ResponseWriter, r *http.Request) {
	var req AuditRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.audit.Record(req.User, req.Field, req.OldValue, req.NewValue)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SNAPSHOTS
// =============================================================================

// ListSnapshots returns stored snapshot names: GET /api/snapshots.
func (h *Handler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.writeError(w, http.StatusServiceUnavailable, "snapshot store not configured")
		return
	}
	infos, err := h.store.ListSnapshots(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, infos)
}

// SaveSnapshot stores the posted loan file under a name.
func (h *Handler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.writeError(w, http.StatusServiceUnavailable, "snapshot store not configured")
		return
	}
	name := chi.URLParam(r, "name")

	// Round-trip through LoanFile so malformed payloads are rejected at
	// save time, not discovered at restore time.
	var file LoanFile
	if !h.decode(w, r, &file) {
		return
	}
	payload, err := json.Marshal(file)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.store.SaveSnapshot(r.Context(), name, payload); err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.audit.Record("session", "snapshot:"+name, "", "saved")
	w.WriteHeader(http.StatusNoContent)
}

// LoadSnapshot returns a stored loan file.
func (h *Handler) LoadSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.writeError(w, http.StatusServiceUnavailable, "snapshot store not configured")
		return
	}
	name := chi.URLParam(r, "name")
	payload, _, err := h.store.LoadSnapshot(r.Context(), name)
	if errors.Is(err, sqlite.ErrSnapshotNotFound) {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// DeleteSnapshot removes a stored loan file.
func (h *Handler) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.writeError(w, http.StatusServiceUnavailable, "snapshot store not configured")
		return
	}
	if err := h.store.DeleteSnapshot(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.WithError(err).Warn("encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	if status >= http.StatusInternalServerError {
		h.log.WithField("status", status).Error(msg)
	}
	h.writeJSON(w, status, errorDTO{Error: msg})
}
