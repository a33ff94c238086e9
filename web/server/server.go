package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-hemisphere-sampler/pkg/hemisphere"
	"github.com/df07/go-hemisphere-sampler/pkg/sequence"
)

// Step limits for /api/samples. Pairwise stats are quadratic in the direction count.
const (
	minSteps     = 1
	maxSteps     = 64
	defaultSteps = 7
	maxBins      = 100
)

// Server handles web requests for the hemisphere sampler
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// SampleRequest represents a sample request from the client
type SampleRequest struct {
	Strategy hemisphere.Strategy // Parsed strategy
	Steps    int                 // Grid resolution per axis
	Table    string              // Built-in table name, empty for the strategy default
	Bins     int                 // Elevation histogram bins
}

// SampleResponse is the JSON body returned by /api/samples
type SampleResponse struct {
	Strategy   string           `json:"strategy"`
	Steps      int              `json:"steps"`
	Table      string           `json:"table,omitempty"`
	Count      int              `json:"count"`
	Normalized bool             `json:"normalized"`
	Caveat     string           `json:"caveat,omitempty"`
	Directions []Direction      `json:"directions"`
	Stats      hemisphere.Stats `json:"stats"`
	ElapsedMs  int64            `json:"elapsedMs"`
}

// Direction is the JSON form of a sampled direction
type Direction struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// StrategyInfo describes one strategy for /api/strategies
type StrategyInfo struct {
	Name         string `json:"name"`
	Grid         bool   `json:"grid"`
	NeedsTable   bool   `json:"needsTable"`
	DefaultTable string `json:"defaultTable,omitempty"`
	MaxSteps     int    `json:"maxSteps"` // With the default table
	Normalized   bool   `json:"normalized"`
	Caveat       string `json:"caveat,omitempty"`
}

// Handler returns the API routes. Static files are not served.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/samples", s.handleSamples)
	mux.HandleFunc("/api/strategies", s.handleStrategies)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSamples generates a direction set and returns it with its statistics
func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseSampleRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	startTime := time.Now()

	params, err := hemisphere.NewParams(req.Strategy, req.Steps, req.Table)
	if err != nil {
		writeError(w, err)
		return
	}
	directions, err := hemisphere.Generate(req.Strategy, params)
	if err != nil {
		writeError(w, err)
		return
	}

	table := req.Table
	switch {
	case !req.Strategy.NeedsTable():
		table = ""
	case table == "":
		table = req.Strategy.DefaultTable()
	}

	response := SampleResponse{
		Strategy:   req.Strategy.String(),
		Steps:      req.Steps,
		Table:      table,
		Count:      len(directions),
		Normalized: req.Strategy.Normalizes(),
		Caveat:     req.Strategy.Caveat(),
		Directions: make([]Direction, len(directions)),
		Stats:      hemisphere.Analyze(directions, req.Bins),
	}
	for i, d := range directions {
		response.Directions[i] = Direction{X: d.X, Y: d.Y, Z: d.Z}
	}
	response.ElapsedMs = time.Since(startTime).Milliseconds()

	writeJSON(w, http.StatusOK, response)
}

// handleStrategies lists the available strategies and built-in tables
func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	strategies := make([]StrategyInfo, 0, len(hemisphere.Strategies()))
	for _, strategy := range hemisphere.Strategies() {
		strategies = append(strategies, StrategyInfo{
			Name:         strategy.String(),
			Grid:         strategy.Grid(),
			NeedsTable:   strategy.NeedsTable(),
			DefaultTable: strategy.DefaultTable(),
			MaxSteps:     maxStepsFor(strategy, ""),
			Normalized:   strategy.Normalizes(),
			Caveat:       strategy.Caveat(),
		})
	}

	tableMaxSteps := make(map[string]int)
	for _, table := range sequence.TableNames() {
		tableMaxSteps[table] = maxStepsFor(hemisphere.CosineWeightedFromTable, table)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"strategies":    strategies,
		"tables":        sequence.TableNames(),
		"tableMaxSteps": tableMaxSteps,
		"limits": map[string]interface{}{
			"steps": map[string]int{
				"min": minSteps,
				"max": maxSteps,
			},
			"bins": map[string]int{
				"min": 1,
				"max": maxBins,
			},
		},
	})
}

// parseSampleRequest parses request parameters
func (s *Server) parseSampleRequest(r *http.Request) (*SampleRequest, error) {
	query := r.URL.Query()
	req := &SampleRequest{}

	strategyName := query.Get("strategy")
	if strategyName == "" {
		strategyName = hemisphere.CosineWeighted.String() // Default strategy
	}
	strategy, err := hemisphere.ParseStrategy(strategyName)
	if err != nil {
		return nil, err
	}
	req.Strategy = strategy

	// Only built-in tables; the server never reads paths from the request
	if table := query.Get("table"); table != "" {
		if !sequence.IsBuiltin(table) {
			return nil, fmt.Errorf("unknown table: %s", table)
		}
		req.Table = table
	}

	if req.Steps, err = parseIntParam(query, "steps", defaultSteps, minSteps, maxSteps); err != nil {
		return nil, err
	}
	if limit := maxStepsFor(req.Strategy, req.Table); req.Steps > limit {
		table := req.Table
		if table == "" {
			table = req.Strategy.DefaultTable()
		}
		return nil, fmt.Errorf("steps must be at most %d with table %s, got: %d", limit, table, req.Steps)
	}
	if req.Bins, err = parseIntParam(query, "bins", hemisphere.DefaultHistogramBins, 1, maxBins); err != nil {
		return nil, err
	}

	return req, nil
}

// maxStepsFor returns the largest step count the strategy accepts with a table.
// An empty table means the strategy default.
func maxStepsFor(strategy hemisphere.Strategy, table string) int {
	if !strategy.NeedsTable() {
		return maxSteps
	}
	if table == "" {
		table = strategy.DefaultTable()
	}
	points := sequence.MaxPoints(table)
	if points == 0 {
		return maxSteps
	}
	// Grid strategies read (steps+1)² rows
	return min(maxSteps, int(math.Sqrt(float64(points)))-1)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// writeError maps sampler errors to a status code
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, hemisphere.ErrInvalidParameter) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeJSON writes a JSON body with CORS headers
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
