package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"

	"github.com/rshade/carbonfocus/internal/benchmark"
	"github.com/rshade/carbonfocus/internal/credits"
	"github.com/rshade/carbonfocus/internal/engine"
	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/greenops"
	"github.com/rshade/carbonfocus/internal/input"
	"github.com/rshade/carbonfocus/internal/report"
	"github.com/rshade/carbonfocus/internal/session"
	"github.com/rshade/carbonfocus/internal/strategies"
	"github.com/rshade/carbonfocus/internal/targets"
)

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.sendResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

type factorEntry struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Scope       string  `json:"scope"`
	Unit        string  `json:"unit"`
	Factor      float64 `json:"factor"`
	PassThrough bool    `json:"pass_through,omitempty"`
}

type regionEntry struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
}

func (s *Server) factorsHandler(w http.ResponseWriter, r *http.Request) {
	defs := factors.All()
	entries := make([]factorEntry, 0, len(defs))
	for _, d := range defs {
		entries = append(entries, factorEntry{
			Key:         d.Key,
			Label:       d.Label,
			Scope:       d.Scope.String(),
			Unit:        d.Unit,
			Factor:      d.Factor,
			PassThrough: d.PassThrough,
		})
	}
	regions := make([]regionEntry, 0, len(factors.Regions()))
	for _, reg := range factors.Regions() {
		regions = append(regions, regionEntry{Name: reg.String(), Factor: factors.ElectricityFactorFor(reg)})
	}

	s.sendResponse(w, r, http.StatusOK, map[string]any{
		"categories":          entries,
		"electricity_regions": regions,
	})
}

func (s *Server) frameworksHandler(w http.ResponseWriter, r *http.Request) {
	s.sendResponse(w, r, http.StatusOK, targets.Frameworks())
}

func (s *Server) industriesHandler(w http.ResponseWriter, r *http.Request) {
	s.sendResponse(w, r, http.StatusOK, benchmark.Industries())
}

type inventoryResponse struct {
	engine.Result
	Equivalencies greenops.Summary `json:"equivalencies"`
}

func (s *Server) inventoryHandler(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, r, http.StatusRequestEntityTooLarge, err)
			return
		}
		s.errorResponse(w, r, http.StatusBadRequest, err)
		return
	}

	res, err := s.engine.CalculateDocument(r.Context(), data, "api")
	if err != nil {
		var verr *input.ValidationError
		if errors.Is(err, input.ErrDecode) || errors.As(err, &verr) {
			s.errorResponse(w, r, http.StatusBadRequest, err)
			return
		}
		s.errorResponse(w, r, http.StatusInternalServerError, err)
		return
	}

	s.sendResponse(w, r, http.StatusOK, inventoryResponse{
		Result:        res,
		Equivalencies: greenops.FromSnapshot(res.Snapshot),
	})
}

// currentSession loads the saved session, writing a 404 when there is none.
func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.engine.Session(r.Context())
	switch {
	case err == nil:
		return sess, true
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrSessionExpired),
		errors.Is(err, session.ErrSessionDisabled):
		s.errorResponse(w, r, http.StatusNotFound,
			fmt.Errorf("%w: POST an activity document to /api/v1/inventory first", err))
	default:
		s.errorResponse(w, r, http.StatusInternalServerError, err)
	}
	return nil, false
}

func (s *Server) sessionHandler(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.currentSession(w, r); ok {
		s.sendResponse(w, r, http.StatusOK, sess)
	}
}

type targetRequest struct {
	BaseEmissions       *float64 `json:"base_emissions"`
	ReductionPercentage *float64 `json:"reduction_percentage"`
	BaseYear            int      `json:"base_year"`
	TargetYear          int      `json:"target_year"`
	Framework           string   `json:"framework"`
}

type targetResponse struct {
	targets.Target
	Framework string `json:"framework,omitempty"`
	Ambition  string `json:"ambition,omitempty"`
}

func (s *Server) targetsHandler(w http.ResponseWriter, r *http.Request) {
	var req targetRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	policy := targets.Policy{
		BaseYear:   orDefault(req.BaseYear, targets.DefaultBaseYear),
		TargetYear: orDefault(req.TargetYear, targets.MilestoneYear),
	}
	var frameworkName string
	if req.Framework != "" {
		fw, err := targets.ParseFramework(req.Framework)
		if err != nil {
			s.errorResponse(w, r, http.StatusBadRequest, err)
			return
		}
		frameworkName = fw.Name
		policy.ReductionPercentage = fw.ReductionBy2030
		if req.ReductionPercentage == nil && policy.TargetYear != targets.MilestoneYear {
			s.errorResponse(w, r, http.StatusBadRequest, fmt.Errorf("%w: %s sets %.0f%% by %d, got target_year %d",
				targets.ErrMilestoneMismatch, fw.Name, fw.ReductionBy2030, targets.MilestoneYear, policy.TargetYear))
			return
		}
	}
	if req.ReductionPercentage != nil {
		policy.ReductionPercentage = *req.ReductionPercentage
	} else if req.Framework == "" {
		s.errorResponse(w, r, http.StatusBadRequest,
			fmt.Errorf("%w: reduction_percentage or framework is required", targets.ErrInvalidPolicy))
		return
	}

	var industry string
	if req.BaseEmissions != nil {
		policy.BaseEmissions = *req.BaseEmissions
	} else {
		sess, ok := s.currentSession(w, r)
		if !ok {
			return
		}
		policy.BaseEmissions = sess.Snapshot.Total
		industry = sess.Organization.Industry
	}

	t, err := targets.ProjectCompounding(policy)
	if err != nil {
		s.errorResponse(w, r, http.StatusBadRequest, err)
		return
	}
	if req.BaseEmissions == nil {
		if err = s.engine.RecordTarget(r.Context(), t); err != nil {
			s.logger.Warn().Ctx(r.Context()).Err(err).Msg("could not record target in session")
		}
	}

	resp := targetResponse{Target: t, Framework: frameworkName}
	if policy.TargetYear == targets.MilestoneYear {
		resp.Ambition = targets.CompareAmbition(policy.ReductionPercentage, industry)
	}
	s.sendResponse(w, r, http.StatusOK, resp)
}

type pathwayRequest struct {
	BaseEmissions             *float64 `json:"base_emissions"`
	AnnualReductionPercentage *float64 `json:"annual_reduction_percentage"`
	StartYear                 int      `json:"start_year"`
	EndYear                   int      `json:"end_year"`
	NetZeroYear               int      `json:"net_zero_year"`
	Framework                 string   `json:"framework"`
}

func (s *Server) pathwayHandler(w http.ResponseWriter, r *http.Request) {
	var req pathwayRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	fw, err := targets.ParseFramework(orDefaultString(req.Framework, targets.FrameworkParis))
	if err != nil {
		s.errorResponse(w, r, http.StatusBadRequest, err)
		return
	}
	policy := fw.Pathway(0, orDefault(req.StartYear, targets.DefaultBaseYear))
	policy.EndYear = req.EndYear
	if req.NetZeroYear != 0 {
		policy.NetZeroYear = req.NetZeroYear
	}
	if req.AnnualReductionPercentage != nil {
		policy.AnnualReductionPercentage = *req.AnnualReductionPercentage
	}

	if req.BaseEmissions != nil {
		policy.BaseEmissions = *req.BaseEmissions
	} else {
		sess, ok := s.currentSession(w, r)
		if !ok {
			return
		}
		policy.BaseEmissions = sess.Snapshot.Total
	}

	points, err := targets.ProjectLinear(policy)
	if err != nil {
		s.errorResponse(w, r, http.StatusBadRequest, err)
		return
	}
	s.sendResponse(w, r, http.StatusOK, points)
}

func (s *Server) benchmarkHandler(w http.ResponseWriter, r *http.Request) {
	industry := httprouter.ParamsFromContext(r.Context()).ByName("industry")

	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}

	revenue := sess.Organization.Revenue
	employees := sess.Organization.Employees
	q := r.URL.Query()
	if v := q.Get("revenue"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.errorResponse(w, r, http.StatusBadRequest, fmt.Errorf("revenue: %w", err))
			return
		}
		revenue = f
	}
	if v := q.Get("employees"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.errorResponse(w, r, http.StatusBadRequest, fmt.Errorf("employees: %w", err))
			return
		}
		employees = n
	}

	s.sendResponse(w, r, http.StatusOK, benchmark.Compare(sess.Snapshot, industry, revenue, employees))
}

type strategiesResponse struct {
	DominantScope   string                `json:"dominant_scope"`
	Strategies      []strategies.Strategy `json:"strategies"`
	Industry        string                `json:"industry"`
	IndustryActions []string              `json:"industry_actions"`
}

func (s *Server) strategiesHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}
	industry := orDefaultString(r.URL.Query().Get("industry"), sess.Organization.Industry)

	s.sendResponse(w, r, http.StatusOK, strategiesResponse{
		DominantScope:   strategies.DominantScope(sess.Snapshot).String(),
		Strategies:      strategies.Recommend(sess.Snapshot),
		Industry:        industry,
		IndustryActions: strategies.IndustryRecommendations(industry),
	})
}

func (s *Server) reportHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}
	rep := report.Build(sess.Organization, sess.Snapshot, report.Options{Now: s.now, Target: sess.Target})

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" || format == report.FormatJSON {
		s.sendResponse(w, r, http.StatusOK, rep)
		return
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, rep, format, false); err != nil {
		s.errorResponse(w, r, http.StatusBadRequest, err)
		return
	}
	contentType := "text/plain; charset=utf-8"
	if format == report.FormatMarkdown || format == "md" {
		contentType = "text/markdown; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Error().Ctx(r.Context()).Err(err).Msg("failed to write report")
	}
}

func (s *Server) creditTypesHandler(w http.ResponseWriter, r *http.Request) {
	s.sendResponse(w, r, http.StatusOK, credits.Types())
}

func (s *Server) creditProjectsHandler(w http.ResponseWriter, r *http.Request) {
	if t := r.URL.Query().Get("type"); t != "" {
		if _, err := credits.TypeByName(t); err != nil {
			s.errorResponse(w, r, http.StatusBadRequest, err)
			return
		}
		s.sendResponse(w, r, http.StatusOK, credits.ProjectsOfType(t))
		return
	}
	s.sendResponse(w, r, http.StatusOK, credits.Projects())
}

type estimateResponse struct {
	Amount decimal.Decimal     `json:"amount"`
	Costs  []credits.CostRange `json:"costs"`
}

func (s *Server) creditEstimateHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var amount decimal.Decimal
	switch {
	case q.Get("amount") != "":
		a, err := decimal.NewFromString(q.Get("amount"))
		if err != nil {
			s.errorResponse(w, r, http.StatusBadRequest, fmt.Errorf("%w: %w", credits.ErrInvalidAmount, err))
			return
		}
		amount = a
	case q.Get("percentage") != "":
		pct, err := strconv.ParseFloat(q.Get("percentage"), 64)
		if err != nil {
			s.errorResponse(w, r, http.StatusBadRequest, fmt.Errorf("%w: %w", credits.ErrInvalidAmount, err))
			return
		}
		sess, ok := s.currentSession(w, r)
		if !ok {
			return
		}
		if amount, err = credits.OffsetAmount(sess.Snapshot.Total, pct); err != nil {
			s.errorResponse(w, r, http.StatusBadRequest, err)
			return
		}
	default:
		s.errorResponse(w, r, http.StatusBadRequest,
			fmt.Errorf("%w: amount or percentage is required", credits.ErrInvalidAmount))
		return
	}

	if amount.IsNegative() {
		s.errorResponse(w, r, http.StatusBadRequest, fmt.Errorf("%w: %s", credits.ErrInvalidAmount, amount))
		return
	}
	s.sendResponse(w, r, http.StatusOK, estimateResponse{Amount: amount, Costs: credits.CompareCosts(amount)})
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
