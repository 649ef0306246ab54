// SPDX-License-Identifier: MIT
// Package: ivivc/internal/server
//
// handlers.go — HTTP handlers for the analysis and validation endpoints.

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/katalvlaran/ivivc"
	"github.com/katalvlaran/ivivc/correlation"
	"github.com/katalvlaran/ivivc/profile"
)

// DefaultSeed is used when a request carries no seed parameter.
const DefaultSeed int64 = 1

// Scenario names accepted by /similarity.
const (
	ScenarioLevelA = "level-a"
	ScenarioLevelC = "level-c"
)

var errBadQuery = errors.New("bad query")

// scenarioQuery reads seed, dissolution_noise, pk_noise and rates.
func scenarioQuery(q url.Values) (profile.ScenarioConfig, int64, error) {
	sc := profile.DefaultScenarioConfig()
	seed := DefaultSeed
	var err error

	if v := q.Get("seed"); v != "" {
		if seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return sc, 0, fmt.Errorf("%w: seed %q", errBadQuery, v)
		}
	}
	if sc.DissolutionNoise, err = floatParam(q, "dissolution_noise"); err != nil {
		return sc, 0, err
	}
	if sc.PKNoise, err = floatParam(q, "pk_noise"); err != nil {
		return sc, 0, err
	}
	if v := q.Get("rates"); v != "" {
		sc.Rates = sc.Rates[:0]
		for _, part := range strings.Split(v, ",") {
			r, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return sc, 0, fmt.Errorf("%w: rates %q", errBadQuery, v)
			}
			sc.Rates = append(sc.Rates, r)
		}
	}

	return sc, seed, sc.Validate()
}

func floatParam(q url.Values, name string) (float64, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", errBadQuery, name, v)
	}

	return f, nil
}

func (s *Server) handleLevelA(w http.ResponseWriter, r *http.Request) {
	sc, seed, err := scenarioQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rep, err := s.engine.RunLevelA(sc, seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.recordResult(r, rep.Correlation)
	s.rec.RecordValidation(r.Context(), string(rep.Validation.Mode), rep.Validation.Verdict())
	s.writeJSON(w, r, rep)
}

func (s *Server) handleLevelB(w http.ResponseWriter, r *http.Request) {
	sc, seed, err := scenarioQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rep, err := s.engine.RunLevelB(sc, seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.recordResult(r, rep.Correlation)
	s.recordResult(r, rep.Pathological)
	s.writeJSON(w, r, rep)
}

func (s *Server) handleLevelC(w http.ResponseWriter, r *http.Request) {
	sc, seed, err := scenarioQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rep, err := s.engine.RunLevelC(sc, seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if rep.Best != nil {
		s.recordResult(r, rep.Best.Result)
	}
	s.writeJSON(w, r, rep)
}

func (s *Server) handleSimilarity(w http.ResponseWriter, r *http.Request) {
	sc, seed, err := scenarioQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var scenario profile.Scenario
	switch name := r.URL.Query().Get("scenario"); name {
	case "", ScenarioLevelC:
		scenario = profile.LevelCScenario(sc)
	case ScenarioLevelA:
		scenario = profile.LevelAScenario(sc)
	default:
		s.writeError(w, r, fmt.Errorf("%w: scenario %q", errBadQuery, name))
		return
	}
	b, err := scenario.Build(seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.engine.Similarity(b)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, res)
}

func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	sc, seed, err := scenarioQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rep, err := s.engine.RunLevelA(sc, seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.rec.RecordValidation(r.Context(), string(rep.Validation.Mode), rep.Validation.Verdict())
	s.writeJSON(w, r, rep.Validation)
}

// PairsRequest is the body of POST /api/v1/validation.
type PairsRequest struct {
	Predicted []float64 `json:"predicted"`
	Observed  []float64 `json:"observed"`
}

func (s *Server) handleValidatePairs(w http.ResponseWriter, r *http.Request) {
	var req PairsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: body: %v", errBadQuery, err))
		return
	}
	res, err := s.engine.Validate(req.Predicted, req.Observed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.rec.RecordValidation(r.Context(), string(res.Mode), res.Verdict())
	s.writeJSON(w, r, res)
}

func (s *Server) recordResult(r *http.Request, res correlation.Result) {
	if !res.Undefined {
		s.rec.RecordCorrelation(r.Context(), string(res.Level), res.R2, res.N)
	}
	for _, w := range res.Warnings {
		s.log.Warn("correlation warning",
			"level", string(res.Level), "code", string(w.Code), "subject", w.Subject, "detail", w.Detail)
	}
}

// statusOf maps the error taxonomy onto HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadQuery):
		return http.StatusBadRequest
	case errors.Is(err, ivivc.ErrDomain),
		errors.Is(err, ivivc.ErrInsufficientData),
		errors.Is(err, ivivc.ErrExtrapolation):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.log.Error("request failed", "path", r.URL.Path, "err", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorBody{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", "path", r.URL.Path, "err", err)
	}
}
