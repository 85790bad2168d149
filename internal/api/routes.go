package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (s *Server) routes() *httprouter.Router {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(s.notFound)
	router.MethodNotAllowed = http.HandlerFunc(s.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/api/v1/health", s.healthHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/factors", s.factorsHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/frameworks", s.frameworksHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/industries", s.industriesHandler)

	router.HandlerFunc(http.MethodPost, "/api/v1/inventory", s.inventoryHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/session", s.sessionHandler)

	router.HandlerFunc(http.MethodPost, "/api/v1/targets", s.targetsHandler)
	router.HandlerFunc(http.MethodPost, "/api/v1/pathway", s.pathwayHandler)

	router.HandlerFunc(http.MethodGet, "/api/v1/benchmark/:industry", s.benchmarkHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/strategies", s.strategiesHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/report", s.reportHandler)

	router.HandlerFunc(http.MethodGet, "/api/v1/credits/types", s.creditTypesHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/credits/projects", s.creditProjectsHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/credits/estimate", s.creditEstimateHandler)

	return router
}
