// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bloodbank/internal/delivery/api/middleware"
	"bloodbank/internal/delivery/api/router/handler"
	"bloodbank/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DonorHandler   *handler.DonorHandler
	PatientHandler *handler.PatientHandler
	MatchHandler   *handler.MatchHandler
	CheckHandler   *handler.CheckHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	donorHandler   *handler.DonorHandler
	patientHandler *handler.PatientHandler
	matchHandler   *handler.MatchHandler
	checkHandler   *handler.CheckHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		donorHandler:   params.DonorHandler,
		patientHandler: params.PatientHandler,
		matchHandler:   params.MatchHandler,
		checkHandler:   params.CheckHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Rule checks are open to any authenticated caller
	apiV1.POST("/eligibility/evaluate", r.checkHandler.EvaluateEligibility)
	apiV1.POST("/compatibility", r.checkHandler.CheckCompatibility)

	donorsGroup := apiV1.Group("/donors")
	{
		donorReaders := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleDonor)
		donorsGroup.GET("", r.donorHandler.ListDonors, donorReaders)
		donorsGroup.GET("/:id", r.donorHandler.GetDonor, donorReaders)
		donorsGroup.POST("", r.donorHandler.RegisterDonor, adminOnly)
		donorsGroup.PUT("/:id", r.donorHandler.UpdateDonor, adminOnly)
		donorsGroup.DELETE("/:id", r.donorHandler.DeleteDonor, adminOnly)
	}

	patientsGroup := apiV1.Group("/patients")
	{
		patientReaders := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RolePatient)
		patientsGroup.GET("", r.patientHandler.ListPatients, patientReaders)
		patientsGroup.GET("/:id", r.patientHandler.GetPatient, patientReaders)
		patientsGroup.POST("", r.patientHandler.RegisterPatient, adminOnly)
		patientsGroup.PUT("/:id", r.patientHandler.UpdatePatient, adminOnly)
		patientsGroup.DELETE("/:id", r.patientHandler.DeletePatient, adminOnly)
		patientsGroup.GET("/:id/candidates", r.patientHandler.GetCandidates, adminOnly)
	}

	// Matching and the match lifecycle are admin operations
	matchesGroup := apiV1.Group("/matches", adminOnly)
	{
		matchesGroup.GET("", r.matchHandler.ListMatches)
		matchesGroup.GET("/board", r.matchHandler.GetBoard)
		matchesGroup.GET("/:id", r.matchHandler.GetMatch)
		matchesGroup.POST("", r.matchHandler.ConfirmMatch)
		matchesGroup.DELETE("/:id", r.matchHandler.ReleaseMatch)
	}
}
