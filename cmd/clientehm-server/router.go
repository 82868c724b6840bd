package main

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/clientehm/api/internal/config"
	"github.com/clientehm/api/internal/domain/admin"
	"github.com/clientehm/api/internal/domain/clinical"
	"github.com/clientehm/api/internal/domain/doctor"
	"github.com/clientehm/api/internal/domain/patient"
	"github.com/clientehm/api/internal/platform/auth"
	"github.com/clientehm/api/internal/platform/db"
	"github.com/clientehm/api/internal/platform/envelope"
	"github.com/clientehm/api/internal/platform/events"
	"github.com/clientehm/api/internal/platform/middleware"
	"github.com/clientehm/api/internal/platform/validation"
)

const version = "0.1.0"

// services holds everything the HTTP layer dispatches to.
type services struct {
	tokens   *auth.TokenService
	admins   *admin.Service
	doctors  *doctor.Service
	patients *patient.Service
	clinical *clinical.Service
	emitter  events.Emitter
}

func newServices(cfg *config.Config, pool *pgxpool.Pool, emitter events.Emitter) *services {
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTTTL)
	hasher := auth.NewHasher(cfg.BcryptCost, cfg.PasswordMinLength)

	adminSvc := admin.NewService(admin.NewRepo(pool), hasher, tokens, emitter)
	doctorSvc := doctor.NewService(doctor.NewRepo(pool), emitter)
	patientSvc := patient.NewService(patient.NewRepo(pool), patient.NewRecordRepo(pool), db.NewPoolTx(pool), emitter)
	clinicalSvc := clinical.NewService(
		clinical.NewConsultationRepo(pool),
		clinical.NewProcedureRepo(pool),
		clinical.NewExamRepo(pool),
		patientSvc,
		doctorSvc,
		adminSvc,
		emitter,
	)

	return &services{
		tokens:   tokens,
		admins:   adminSvc,
		doctors:  doctorSvc,
		patients: patientSvc,
		clinical: clinicalSvc,
		emitter:  emitter,
	}
}

func newRouter(cfg *config.Config, logger zerolog.Logger, svcs *services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = envelope.ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.Sanitize(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout, "/export"))

	// Auth middleware
	e.Use(auth.Authenticate(svcs.tokens, logger))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	// Rate limiting on the credential endpoints
	rateLimitCfg := middleware.DefaultRateLimitConfig()
	if cfg.RateLimitRPS > 0 {
		rateLimitCfg.RequestsPerSecond = cfg.RateLimitRPS
	}
	if cfg.RateLimitBurst > 0 {
		rateLimitCfg.BurstSize = cfg.RateLimitBurst
	}
	limit := middleware.RateLimit(rateLimitCfg)

	admin.NewHandler(svcs.admins).RegisterRoutes(e.Group("/api/administradores"), limit)

	api := e.Group("/api",
		auth.RequirePrincipal(),
		middleware.Audit(logger, middleware.EventRecorder(svcs.emitter)),
	)

	doctor.NewHandler(svcs.doctors).RegisterRoutes(api.Group("/medicos"))

	patientHandler := patient.NewHandler(svcs.patients)
	patientHandler.RegisterRoutes(api.Group("/pacientes"))
	patientHandler.RegisterRecordRoutes(api.Group("/prontuarios"))

	clinical.NewHandler(svcs.clinical).RegisterRoutes(api)

	return e
}
