// Package httpapi exposes an Analyzer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/classify?word=<word>
//	POST /api/analyse        body: {"text":"..."} or {"lines":["...", ...]}
//	POST /api/validate       body: {"text":"..."}
//	GET  /api/conjugate?verb=<infinitive>
//	GET  /api/lexicon/stats
//	GET  /health
package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"github.com/gramatica-es/sintaxis"
	"github.com/gramatica-es/sintaxis/internal/config"
)

// ---- JSON response types ------------------------------------------------

type tokenJSON struct {
	Word       string   `json:"word"`
	Categories []string `json:"categories"`
}

type classifyResponse struct {
	tokenJSON
	Known bool `json:"known"`
}

type analyseResponse struct {
	Tokens []tokenJSON   `json:"tokens,omitempty"`
	Lines  [][]tokenJSON `json:"lines,omitempty"`
}

type violationJSON struct {
	Rule     string `json:"rule"`
	Token    string `json:"token,omitempty"`
	Position int    `json:"position"`
}

type sentenceJSON struct {
	Sentence  string         `json:"sentence"`
	Valid     bool           `json:"valid"`
	Violation *violationJSON `json:"violation,omitempty"`
}

type validateResponse struct {
	Valid     bool           `json:"valid"`
	Aborted   bool           `json:"aborted"`
	Sentences []sentenceJSON `json:"sentences"`
}

type conjugateResponse struct {
	Verb      string   `json:"verb"`
	Stem      string   `json:"stem"`
	Class     string   `json:"class"`
	Reflexive bool     `json:"reflexive"`
	Forms     []string `json:"forms"`
}

type statsResponse struct {
	Total      int            `json:"total"`
	Categories map[string]int `json:"categories"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toTokenJSON(t sintaxis.WordToken) tokenJSON {
	return tokenJSON{Word: t.Word, Categories: t.Labels()}
}

func toTokensJSON(tokens []sintaxis.WordToken) []tokenJSON {
	out := make([]tokenJSON, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, toTokenJSON(t))
	}
	return out
}

func toSentenceJSON(r sintaxis.SentenceResult) sentenceJSON {
	sj := sentenceJSON{Sentence: r.Sentence, Valid: r.Valid()}
	if r.Violation != nil {
		sj.Violation = &violationJSON{
			Rule:     r.Violation.Nonterminal,
			Token:    r.Violation.Token,
			Position: r.Violation.Position,
		}
	}
	return sj
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := sonic.ConfigStd.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

// Handler serves the API for one Analyzer.
type Handler struct {
	analyzer *sintaxis.Analyzer
	workers  int
	maxBody  int64
	version  string
	logger   *slog.Logger
}

// NewHandler creates a Handler. workers sizes the pool used for
// multi-line analysis.
func NewHandler(a *sintaxis.Analyzer, cfg config.Config, version string, logger *slog.Logger) *Handler {
	return &Handler{
		analyzer: a,
		workers:  cfg.Lexicon.Workers,
		maxBody:  cfg.Server.MaxBodyBytes,
		version:  version,
		logger:   logger,
	}
}

// Routes returns the API mux wrapped in the middleware chain.
func (h *Handler) Routes(cfg config.CORSConfig) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/classify", h.Classify)
	mux.HandleFunc("POST /api/analyse", h.Analyse)
	mux.HandleFunc("POST /api/validate", h.Validate)
	mux.HandleFunc("GET /api/conjugate", h.Conjugate)
	mux.HandleFunc("GET /api/lexicon/stats", h.Stats)
	mux.HandleFunc("GET /health", h.Health)

	return Chain(
		Recovery(h.logger),
		RequestID,
		Logger(h.logger),
		CORS(cfg),
	)(mux)
}

// Classify reports the categories of a single word.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	tok := h.analyzer.Classify(word)
	writeJSON(w, http.StatusOK, classifyResponse{tokenJSON: toTokenJSON(tok), Known: tok.Known()})
}

// Analyse classifies every word of a text, or of several lines.
func (h *Handler) Analyse(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text  string   `json:"text"`
		Lines []string `json:"lines"`
	}
	if err := h.decode(w, r, &body); err != nil || (body.Text == "" && len(body.Lines) == 0) {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' or 'lines' field")
		return
	}

	if len(body.Lines) == 0 {
		writeJSON(w, http.StatusOK, analyseResponse{Tokens: toTokensJSON(h.analyzer.AnalyseText(body.Text))})
		return
	}

	results, err := h.analyzer.AnalyseLines(r.Context(), body.Lines, h.workers)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "analyse lines", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	lines := make([][]tokenJSON, 0, len(results))
	for _, res := range results {
		lines = append(lines, toTokensJSON(res))
	}
	writeJSON(w, http.StatusOK, analyseResponse{Lines: lines})
}

// Validate checks every sentence of a text against the grammar. The
// response status is 200 when every sentence is valid and 422 otherwise.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := h.decode(w, r, &body); err != nil || body.Text == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return
	}

	report, err := h.analyzer.ValidateText(body.Text)
	if err != nil && !errors.Is(err, sintaxis.ErrGrammar) {
		h.logger.ErrorContext(r.Context(), "validate", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "validation failed")
		return
	}

	resp := validateResponse{
		Valid:     report.Invalid() == 0,
		Aborted:   err != nil,
		Sentences: make([]sentenceJSON, 0, len(report.Results)),
	}
	for _, res := range report.Results {
		resp.Sentences = append(resp.Sentences, toSentenceJSON(res))
	}
	status := http.StatusOK
	if !resp.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

// Conjugate returns the regular present forms of an infinitive.
func (h *Handler) Conjugate(w http.ResponseWriter, r *http.Request) {
	verb := r.URL.Query().Get("verb")
	if verb == "" {
		writeError(w, http.StatusBadRequest, "missing 'verb' query parameter")
		return
	}
	p, ok := sintaxis.ParseInfinitive(verb)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("%q is not a regular infinitive", verb))
		return
	}
	writeJSON(w, http.StatusOK, conjugateResponse{
		Verb:      verb,
		Stem:      p.Stem,
		Class:     string(p.Class),
		Reflexive: p.Reflexive,
		Forms:     p.Forms(),
	})
}

// Stats reports the number of forms per category.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	lx := h.analyzer.Lexicon()
	writeJSON(w, http.StatusOK, statsResponse{Total: lx.Total(), Categories: lx.Stats()})
}

// Health is the liveness probe. Always returns 200.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Version:   h.version,
		Timestamp: time.Now(),
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	return sonic.ConfigStd.NewDecoder(r.Body).Decode(v)
}

