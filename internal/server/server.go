// Package server serves the web form and JSON API in front of the
// equilibrium solver.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/iwvelando/bimatrix-solver/pkg/constants"
	"github.com/iwvelando/bimatrix-solver/pkg/equilibrium"
	"github.com/iwvelando/bimatrix-solver/pkg/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

//go:embed templates/index.html
var templateFiles embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFiles, "templates/index.html"))

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
	metrics        *metrics
}

// NewHandler constructs the HTTP handler that serves the web form, the solve
// API and Prometheus metrics. A nil registry gets a private one.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string, registry *prometheus.Registry) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	h := &handler{
		logger:         logger,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
		metrics:        newMetrics(registry),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// Web form
	r.Get("/", h.handleIndex)
	r.Post("/", h.handleFormSolve)

	r.Route("/api", func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         60 * 15,
		}))
		api.Post("/solve", h.handleAPISolve)
		api.Get("/version", h.handleVersion)
	})

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}

// Form field names follow u<player><row><col>, e.g. uA12 is player A's payoff
// when A plays row 1 and B plays column 2.
func fieldName(player equilibrium.Player, row, col int) string {
	return fmt.Sprintf("u%s%d%d", player, row+1, col+1)
}

type pageData struct {
	Players []playerForm
	Errors  []string
	Result  *resultView
}

type playerForm struct {
	Name string
	Rows [][]inputField
}

type inputField struct {
	Field       string
	Placeholder string
	Value       string
}

type resultView struct {
	Cells [][]string
	Pure  string
	Mixed string
}

func newPageData(values map[string]string) pageData {
	var data pageData
	for _, player := range []equilibrium.Player{equilibrium.PlayerA, equilibrium.PlayerB} {
		form := playerForm{Name: string(player)}
		for i := 0; i < equilibrium.Size; i++ {
			row := make([]inputField, 0, equilibrium.Size)
			for j := 0; j < equilibrium.Size; j++ {
				name := fieldName(player, i, j)
				row = append(row, inputField{
					Field:       name,
					Placeholder: fmt.Sprintf("u%s%d,%d", player, i+1, j+1),
					Value:       values[name],
				})
			}
			form.Rows = append(form.Rows, row)
		}
		data.Players = append(data.Players, form)
	}
	return data
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, newPageData(nil), "server.handleIndex")
}

func (h *handler) handleFormSolve(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleFormSolve"
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	if err := r.ParseForm(); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err), op)
		return
	}

	values := make(map[string]string)
	matrices := make(map[equilibrium.Player][][]float64)
	var problems []string
	for _, player := range []equilibrium.Player{equilibrium.PlayerA, equilibrium.PlayerB} {
		m := make([][]float64, equilibrium.Size)
		for i := range m {
			m[i] = make([]float64, equilibrium.Size)
			for j := range m[i] {
				name := fieldName(player, i, j)
				raw := strings.TrimSpace(r.PostForm.Get(name))
				values[name] = raw
				v, err := validation.ParsePayoff(name, raw)
				if err != nil {
					problems = append(problems, err.Error())
					continue
				}
				m[i][j] = v
			}
		}
		matrices[player] = m
	}

	data := newPageData(values)
	if len(problems) > 0 {
		h.metrics.observe(sourceForm, outcomeInvalidInput, time.Since(start))
		h.logger.Info("rejected form input",
			zap.String("op", op),
			zap.Strings("problems", problems),
		)
		data.Errors = problems
		h.renderPage(w, http.StatusBadRequest, data, op)
		return
	}

	result, err := equilibrium.Solve(matrices[equilibrium.PlayerA], matrices[equilibrium.PlayerB])
	if err != nil {
		h.metrics.observe(sourceForm, outcomeInvalidShape, time.Since(start))
		data.Errors = []string{err.Error()}
		h.renderPage(w, http.StatusBadRequest, data, op)
		return
	}
	elapsed := time.Since(start)
	h.metrics.observe(sourceForm, outcomeSolved, elapsed)

	cells := make([][]string, equilibrium.Size)
	for i := range cells {
		cells[i] = make([]string, equilibrium.Size)
		for j := range cells[i] {
			cells[i][j] = fmt.Sprintf("(%s, %s)",
				values[fieldName(equilibrium.PlayerA, i, j)],
				values[fieldName(equilibrium.PlayerB, i, j)])
		}
	}
	data.Result = &resultView{
		Cells: cells,
		Pure:  result.PureString(),
		Mixed: result.MixedString(),
	}

	h.logger.Info("game solved",
		zap.String("op", op),
		zap.Int("pureEquilibria", len(result.Pure)),
		zap.Bool("mixedEquilibrium", result.HasMixedEquilibrium()),
		zap.Duration("duration", elapsed),
	)

	h.renderPage(w, http.StatusOK, data, op)
}

type solveRequest struct {
	PlayerA [][]float64 `json:"playerA"`
	PlayerB [][]float64 `json:"playerB"`
}

type solveResponse struct {
	Result   equilibrium.Result `json:"result"`
	Summary  solveSummary       `json:"summary"`
	Duration string             `json:"duration"`
}

type solveSummary struct {
	Pure  string `json:"pure"`
	Mixed string `json:"mixed"`
}

func (h *handler) handleAPISolve(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAPISolve"
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.observe(sourceAPI, outcomeInvalidInput, time.Since(start))
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	result, err := equilibrium.Solve(req.PlayerA, req.PlayerB)
	if err != nil {
		h.metrics.observe(sourceAPI, outcomeInvalidShape, time.Since(start))
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	elapsed := time.Since(start)
	h.metrics.observe(sourceAPI, outcomeSolved, elapsed)

	h.logger.Info("game solved",
		zap.String("op", op),
		zap.Int("pureEquilibria", len(result.Pure)),
		zap.Bool("mixedEquilibrium", result.HasMixedEquilibrium()),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, solveResponse{
		Result: result,
		Summary: solveSummary{
			Pure:  result.PureString(),
			Mixed: result.MixedString(),
		},
		Duration: elapsed.String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) renderPage(w http.ResponseWriter, status int, data pageData, op string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, data); err != nil {
		h.logger.Error("failed to render page",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("solve request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
